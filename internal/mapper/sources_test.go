package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ougirez/tender-normalizer/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMapTEDScenario(t *testing.T) {
	tender := mapJSON(t, domain.SourceTED, "T1", `{
		"id": "T1",
		"title": "Road works",
		"summary": "Build a road",
		"country": "France",
		"deadline_date": "2024-06-01"
	}`)

	assert.Equal(t, "Road works", tender.Title)
	require.NotNil(t, tender.Description)
	assert.Equal(t, "Build a road", *tender.Description)
	require.NotNil(t, tender.Country)
	assert.Equal(t, "France", *tender.Country)
	require.NotNil(t, tender.DeadlineDate)
	assert.Equal(t, day(2024, time.June, 1), *tender.DeadlineDate)
	assert.Equal(t, "ted_eu_mapper", tender.NormalizedMethod)
	assert.Equal(t, domain.SourceTED, tender.SourceTable)
	assert.Equal(t, "T1", tender.SourceID)
	assert.Equal(t, domain.StatusActive, tender.Status)
	assert.Equal(t, domain.TenderTypeWorks, tender.TenderType)
	assert.Nil(t, tender.FallbackReason)
}

func TestMapTEDMissingCountry(t *testing.T) {
	tender := mapJSON(t, domain.SourceTED, "T2", `{"id": "T2", "title": "Supply of laptops", "summary": "Office equipment for the ministry"}`)

	assert.Nil(t, tender.Country)
	assert.Equal(t, "ted_eu_mapper", tender.NormalizedMethod)
}

func TestMapTEDFallbacks(t *testing.T) {
	tender := mapJSON(t, domain.SourceTED, "T3", `{
		"publication_number": "123456-2024",
		"title": "Cleaning services",
		"nuts_code": "EL30",
		"organisation_name": "Municipality of Athens",
		"value_magnitude": 250000,
		"currency": "EUR",
		"procedure_type": "open",
		"language": "ELL",
		"links": {"pdf": "https://ted.europa.eu/doc.pdf"}
	}`)

	require.NotNil(t, tender.Country)
	assert.Equal(t, "Greece", *tender.Country)
	require.NotNil(t, tender.OrganizationName)
	assert.Equal(t, "Municipality of Athens", *tender.OrganizationName)
	assert.True(t, tender.EstimatedValue.Valid)
	assert.Equal(t, "250000", tender.EstimatedValue.Decimal.String())
	require.NotNil(t, tender.Currency)
	assert.Equal(t, "EUR", *tender.Currency)
	require.NotNil(t, tender.ProcurementMethod)
	assert.Equal(t, "Open Procedure", *tender.ProcurementMethod)
	require.NotNil(t, tender.Language)
	assert.Equal(t, "el", *tender.Language)
	assert.Equal(t, []string{
		"https://ted.europa.eu/doc.pdf",
		"https://ted.europa.eu/en/notice/-/detail/123456-2024",
	}, tender.DocumentLinks.URLs())
	assert.Equal(t, domain.TenderTypeServices, tender.TenderType)
}

func TestMapWorldBank(t *testing.T) {
	tender := mapJSON(t, domain.SourceWorldBank, "OP1", `{
		"id": "OP1",
		"title": "Construction of rural roads",
		"description": "<p>The Ministry of Public Works invites bids.</p>",
		"country": "Kenya",
		"deadline": "15/07/2024",
		"notice_status": "Published",
		"bid_reference_no": "KE-123",
		"procurement_method_name": "National Competitive Bidding",
		"document_links": "[\"https://wb.org/a.pdf\"]",
		"url": "https://wb.org/notice/OP1"
	}`)

	require.NotNil(t, tender.Description)
	assert.Equal(t, "The Ministry of Public Works invites bids.", *tender.Description)
	require.NotNil(t, tender.OrganizationName)
	assert.Equal(t, "Ministry of Public Works", *tender.OrganizationName)
	assert.Equal(t, "wb_mapper+text", tender.NormalizedMethod)
	assert.Equal(t, day(2024, time.July, 15), *tender.DeadlineDate)
	assert.Equal(t, domain.StatusActive, tender.Status)
	assert.Equal(t, "KE-123", *tender.ReferenceNumber)
	assert.Equal(t, "National Competitive Bidding", *tender.ProcurementMethod)
	assert.Equal(t, []string{"https://wb.org/a.pdf", "https://wb.org/notice/OP1"}, tender.DocumentLinks.URLs())
	assert.Equal(t, "Kenya", *tender.Country)
	assert.Equal(t, domain.TenderTypeWorks, tender.TenderType)
}

func TestMapWorldBankProjectCountry(t *testing.T) {
	tender := mapJSON(t, domain.SourceWorldBank, "OP2", `{"id": "OP2", "title": "Audit", "country": "N/A", "project_ctry_name": "Republic of Yemen"}`)

	require.NotNil(t, tender.Country)
	assert.Equal(t, "Yemen", *tender.Country)
}

func TestMapAFDPlaceholders(t *testing.T) {
	tender := mapJSON(t, domain.SourceAFD, "5", `{
		"id": "5",
		"notice_title": "No title",
		"notice_content": "NO CONTENT",
		"country": "Sénégal",
		"agency": "AGEROUTE",
		"buyer": "AGEROUTE Sénégal",
		"city_locality": "Dakar",
		"original_language": "French",
		"services": ["Works"],
		"url": "https://afd.fr/n/5"
	}`)

	assert.Equal(t, "AFD notice 5", tender.Title)
	assert.Nil(t, tender.Description)
	assert.Equal(t, "Senegal", *tender.Country)
	assert.Equal(t, "Dakar", *tender.City)
	assert.Equal(t, "AGEROUTE", *tender.OrganizationName)
	assert.Equal(t, "AGEROUTE Sénégal", *tender.Buyer)
	assert.Equal(t, "fr", *tender.Language)
	assert.Equal(t, domain.TenderTypeWorks, tender.TenderType)
	assert.Equal(t, "afd_mapper", tender.NormalizedMethod)
}

func TestMapADB(t *testing.T) {
	tender := mapJSON(t, domain.SourceADB, "ADB1", `{
		"id": "ADB1",
		"project_name": "Mongolia Urban Transport",
		"contract_amount": "1,200,000",
		"type": "Civil Works",
		"borrower_bid_no": "MON-01",
		"project_number": "49001-002",
		"pdf_url": "https://adb.org/x.pdf",
		"country": "Mongolia",
		"sector": "Transport"
	}`)

	assert.Equal(t, "Mongolia Urban Transport", tender.Title)
	assert.Equal(t, "1200000", tender.EstimatedValue.Decimal.String())
	assert.Equal(t, "USD", *tender.Currency)
	assert.Equal(t, domain.TenderTypeWorks, tender.TenderType)
	assert.Equal(t, "MON-01", *tender.ReferenceNumber)
	assert.Equal(t, "49001-002", *tender.ProjectNumber)
	assert.Equal(t, "Transport", *tender.Sector)
	assert.Equal(t, "https://adb.org/x.pdf", *tender.URL)
}

func TestMapIADB(t *testing.T) {
	tender := mapJSON(t, domain.SourceIADB, "AR-L1234", `{
		"project_number": "AR-L1234",
		"notice_title": "",
		"project_name": "Programa de agua potable",
		"country": "Argentina",
		"pue_date": "2024-03-01",
		"url": "",
		"url_pdf": "https://iadb.org/x.pdf"
	}`)

	assert.Equal(t, "Programa de agua potable", tender.Title)
	assert.Equal(t, "es", *tender.Language)
	assert.Equal(t, "https://iadb.org/x.pdf", *tender.URL)
	assert.Equal(t, "Inter-American Development Bank", *tender.Buyer)
	assert.Len(t, tender.DocumentLinks, 1)
	assert.Nil(t, tender.Description)
	assert.Equal(t, domain.StatusComplete, tender.Status)

	bare := mapJSON(t, domain.SourceIADB, "BR-T1", `{"project_number": "BR-T1"}`)
	assert.Equal(t, "IADB Project - BR-T1", bare.Title)
	assert.Equal(t, "iadb_mapper", bare.NormalizedMethod)
}

func TestMapAFDB(t *testing.T) {
	tender := mapJSON(t, domain.SourceAFDB, "AF1", `{
		"id": "AF1",
		"title": "Supply of solar equipment",
		"description": "<p>Estimated budget: 2.5 million XOF. Bids must reach the office, closing date: 12/10/2024</p>",
		"country": "",
		"is_multinational": true
	}`)

	assert.Equal(t, "Multinational", *tender.Country)
	assert.Equal(t, "2500000", tender.EstimatedValue.Decimal.String())
	assert.Equal(t, "XOF", *tender.Currency)
	assert.Equal(t, day(2024, time.October, 12), *tender.DeadlineDate)
	assert.Equal(t, "energy", *tender.Sector)
	assert.Equal(t, "African Development Bank", *tender.Buyer)
	assert.Equal(t, domain.TenderTypeGoods, tender.TenderType)
	assert.Equal(t, "afdb_mapper+text", tender.NormalizedMethod)
	assert.Contains(t, tender.Tags, "multinational")
}

func TestMapAFDBCityFallback(t *testing.T) {
	tender := mapJSON(t, domain.SourceAFDB, "AF2", `{"id": "AF2", "title": "Rehabilitation of the port of Abidjan"}`)

	require.NotNil(t, tender.Country)
	assert.Equal(t, "Ivory Coast", *tender.Country)
	assert.Equal(t, "Abidjan", *tender.City)
}

func TestMapAIIB(t *testing.T) {
	tender := mapJSON(t, domain.SourceAIIB, "77", `{
		"id": 77,
		"date": "March 5, 2024",
		"member": "Bangladesh",
		"project_notice": "",
		"type": "Goods",
		"pdf_content": "Invitation for Bids. Deadline for submission: 30 April 2024. The Bangladesh Power Development Board invites sealed bids."
	}`)

	assert.Equal(t, "AIIB Tender - 77", tender.Title)
	assert.Equal(t, day(2024, time.March, 5), *tender.PublicationDate)
	assert.Equal(t, day(2024, time.April, 30), *tender.DeadlineDate)
	assert.Equal(t, "Bangladesh", *tender.Country)
	require.NotNil(t, tender.OrganizationName)
	assert.Contains(t, *tender.OrganizationName, "Bangladesh Power Development Board")
	assert.Equal(t, domain.TenderTypeGoods, tender.TenderType)
	assert.Equal(t, "aiib_mapper+text", tender.NormalizedMethod)
}

func TestMapSAMGov(t *testing.T) {
	tender := mapJSON(t, domain.SourceSAMGov, "abc123", `{
		"opportunity_id": "abc123",
		"opportunity_title": "",
		"solicitation_number": "N00189-24-Q-0001",
		"description": "Janitorial services",
		"response_date": "2024-08-01T17:00:00-04:00",
		"naics_code": 561720,
		"set_aside": "SBA",
		"place_of_performance": {"city": {"name": "Norfolk"}, "country": {"code": "USA"}},
		"contacts": [{"fullName": "Jane Roe", "email": "jane@navy.mil"}]
	}`)

	assert.Equal(t, "Opportunity abc123", tender.Title)
	assert.Equal(t, "United States", *tender.Country)
	assert.Equal(t, "Norfolk", *tender.City)
	assert.Equal(t, "Jane Roe", *tender.ContactName)
	assert.Equal(t, "jane@navy.mil", *tender.ContactEmail)
	assert.Equal(t, "N00189-24-Q-0001", *tender.ReferenceNumber)
	assert.Equal(t, "Set-Aside: SBA", *tender.ProcurementMethod)
	assert.Equal(t, "https://sam.gov/opp/abc123/view", *tender.URL)
	assert.Equal(t, "en", *tender.Language)
	assert.Equal(t, day(2024, time.August, 1), *tender.DeadlineDate)
	assert.Contains(t, tender.Tags, "naics:561720")
	assert.Contains(t, tender.Tags, "set-aside:sba")
	assert.Equal(t, domain.TenderTypeServices, tender.TenderType)
	assert.Equal(t, "sam_gov_mapper", tender.NormalizedMethod)
}

func TestMapSAMGovForeignPlace(t *testing.T) {
	tender := mapJSON(t, domain.SourceSAMGov, "x1", `{"opportunity_id": "x1", "opportunity_title": "Embassy fit-out", "place_of_performance": "{\"country\": \"Canada\"}"}`)
	assert.Equal(t, "Canada", *tender.Country)
}

func TestMapSAMGovContactOrganization(t *testing.T) {
	tender := mapJSON(t, domain.SourceSAMGov, "gsa1", `{
		"opportunity_id": "gsa1",
		"opportunity_title": "Office furniture",
		"description": "Furniture for the regional office in Ottawa",
		"place_of_performance": {"countryCode": "CAN", "city": {"name": "Ottawa"}},
		"contacts": [{"fullName": "John Doe", "organization": "General Services Administration"}]
	}`)

	require.NotNil(t, tender.OrganizationName)
	assert.Equal(t, "General Services Administration", *tender.OrganizationName)
	assert.Equal(t, "Canada", *tender.Country)
	assert.Equal(t, "Ottawa", *tender.City)
}

func TestMapUNGM(t *testing.T) {
	tender := mapJSON(t, domain.SourceUNGM, "2001", `{
		"id": 2001,
		"title": "LTA for laboratory equipment",
		"reference": "RFQ/2024/01",
		"beneficiary_countries": "Kenya, Uganda",
		"status": "Open",
		"deadline_on": "2024-09-30",
		"contacts": [{"name": "Procurement Unit", "email": "p@un.org", "organization": "UNICEF"}],
		"documents": [{"url": "https://ungm.org/doc/1", "title": "ToR"}],
		"links": {"self": "https://ungm.org/Public/Notice/2001"},
		"unspscs": [{"code": "41100000"}]
	}`)

	assert.Equal(t, "Multinational", *tender.Country)
	assert.Equal(t, "UNICEF", *tender.OrganizationName)
	assert.Equal(t, "Procurement Unit", *tender.ContactName)
	assert.Equal(t, domain.StatusActive, tender.Status)
	assert.Equal(t, "RFQ/2024/01", *tender.ReferenceNumber)
	assert.Equal(t, []string{"https://ungm.org/doc/1", "https://ungm.org/Public/Notice/2001"}, tender.DocumentLinks.URLs())
	assert.Equal(t, "ToR", tender.DocumentLinks[0].Description)
	assert.Contains(t, tender.Tags, "unspsc:41100000")
	assert.Equal(t, domain.TenderTypeGoods, tender.TenderType)
}

func TestMapUNGMNoticeFallbackLink(t *testing.T) {
	tender := mapJSON(t, domain.SourceUNGM, "9", `{"id": "9", "title": "Consultancy", "beneficiary_countries": "Haiti"}`)

	assert.Equal(t, "Haiti", *tender.Country)
	assert.Equal(t, []string{"https://www.ungm.org/Public/Notice/9"}, tender.DocumentLinks.URLs())
	assert.Equal(t, "https://www.ungm.org/Public/Notice/9", *tender.URL)
}
