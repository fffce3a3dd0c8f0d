package mapper

import (
	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/extract"
	"github.com/ougirez/tender-normalizer/internal/pkg/utils"
)

// pdf_content can be a whole bidding document; only its head is mined.
const pdfTextLimit = 20000

func mapADB(env Env, r *domain.ADBRecord) *domain.UnifiedTender {
	d := newDraft(env, domain.SourceADB, r.ID.String())
	t := d.t

	d.setTitle(r.NoticeTitle.String(), r.ProjectName.String(), idTitle("ADB notice %s", r.ID.String()))

	pdf := extract.Truncate(r.PDFContent.String(), pdfTextLimit)
	d.setDescription(r.Description.String(), pdf)
	if !r.Description.IsEmpty() {
		d.addText(pdf)
	}

	d.setPublicationDate(r.PublicationDate.String())
	d.setDeadline(r.DueDate.String())
	d.deadlineFromText()

	d.setCountry(r.Country.String())
	d.countryFromText()

	d.organizationFromText()
	if t.OrganizationName == nil {
		d.setOrganization(r.Contractor.String())
	}

	setStr(&t.ProjectName, r.ProjectName.String())
	setStr(&t.ProjectNumber, r.ProjectNumber.String())
	setStr(&t.ProjectID, r.ProjectID.String(), r.ProjectNumber.String())
	setStr(&t.ReferenceNumber, r.BorrowerBidNo.String(), r.LoanNumber.String())
	setStr(&t.URL, r.PDFURL.String())

	d.links.AddURL(r.PDFURL.String(), "pdf", "ADB notice document")

	if !d.setMoney(r.ContractAmount.String(), "") {
		d.moneyFromText()
	}
	if t.EstimatedValue.Valid && t.Currency == nil {
		t.Currency = utils.StrPtr(currencyUSD)
	}

	d.setProcurementMethod()
	d.setStatus("")
	d.setTenderType(r.Type.String())
	d.setLanguage()
	d.setSector(r.Sector.String())
	if !r.LoanNumber.IsEmpty() {
		d.addTags("loan:" + r.LoanNumber.String())
	}

	return d.finish()
}
