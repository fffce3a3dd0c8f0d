package mapper

import (
	"strings"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/extract"
	"github.com/ougirez/tender-normalizer/internal/pkg/utils"
)

const (
	samGovCountry   = "United States"
	samGovNoticeURL = "https://sam.gov/opp/%s/view"
)

func mapSAMGov(env Env, r *domain.SAMGovRecord) *domain.UnifiedTender {
	d := newDraft(env, domain.SourceSAMGov, r.OpportunityID.String())
	t := d.t

	d.setTitle(r.OpportunityTitle.String(), idTitle("Opportunity %s", r.OpportunityID.String()))
	d.setDescription(r.Description.String())

	d.setPublicationDate(r.PublishDate.String())
	d.setDeadline(r.ResponseDate.String())

	place := r.PlaceOfPerformance.Object()
	country := samGovCountry
	if raw := nestedName(place, "country", "countryCode", "country_code"); raw != "" {
		if c, ok := extract.CanonicalizeCountry(raw); ok {
			country = c
		}
	}
	t.Country = &country
	setStr(&t.City, nestedName(place, "city"), extract.StringField(place, "cityName", "city_name"))

	if contact := firstObject(r.Contacts); contact != nil {
		setStr(&t.ContactName, extract.StringField(contact, "fullName", "full_name", "name"))
		setStr(&t.ContactEmail, extract.StringField(contact, "email"))
		setStr(&t.ContactPhone, extract.StringField(contact, "phone", "phoneNumber"))
		d.setOrganization(extract.StringField(contact, "organization", "org", "organizationName"))
	}

	d.organizationFromText()
	setStr(&t.OrganizationID, r.OrganizationID.String(), r.OrgKey.String())

	setStr(&t.ReferenceNumber, r.SolicitationNumber.String())
	setStr(&t.NoticeID, r.OpportunityID.String())
	setStr(&t.URL, idTitle(samGovNoticeURL, r.OpportunityID.String()))
	d.links.AddURL(utils.Deref(t.URL), "notice", "SAM.gov opportunity")
	d.links.Add(extract.HTMLLinks(r.Description.String()), "document")

	d.moneyFromText()
	setAside, hasSetAside := extract.Clean(r.SetAside.String())
	if hasSetAside {
		t.ProcurementMethod = utils.StrPtr("Set-Aside: " + setAside)
	} else {
		d.setProcurementMethod()
	}
	d.setStatus(r.OpportunityStatus.String())
	d.setTenderType(r.OpportunityType.String())
	t.Language = utils.StrPtr("en")
	d.setSector()

	if naics := r.NAICSCode.String(); naics != "" {
		d.addTags("naics:" + naics)
	}
	if code := r.ClassificationCode.String(); code != "" {
		d.addTags("psc:" + code)
	}
	if hasSetAside {
		d.addTags("set-aside:" + strings.ToLower(setAside))
	}

	return d.finish()
}

// nestedName reads place_of_performance style values: either "KE" or {"code": "KEN",
// "name": "Kenya"}. The first key holding a value wins.
func nestedName(m map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case map[string]any:
			if s := extract.StringField(v, "name", "code"); s != "" {
				return s
			}
		}
	}
	return ""
}

func firstObject(f domain.FlexJSON) map[string]any {
	for _, item := range f.List() {
		if m, ok := item.(map[string]any); ok {
			return m
		}
	}
	return nil
}
