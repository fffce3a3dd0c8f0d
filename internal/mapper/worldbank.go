package mapper

import (
	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/extract"
)

func mapWorldBank(env Env, r *domain.WorldBankRecord) *domain.UnifiedTender {
	d := newDraft(env, domain.SourceWorldBank, r.ID.String())
	t := d.t

	d.setTitle(r.Title.String(), r.ProjectName.String(), idTitle("World Bank notice %s", r.ID.String()))
	d.setDescription(r.Description.String(), r.NoticeText.String())
	if !r.Description.IsEmpty() {
		if notice, ok := extract.CleanDescription(r.NoticeText.String()); ok {
			d.addText(notice)
		}
	}

	d.setPublicationDate(r.PublicationDate.String())
	d.setDeadline(r.Deadline.String())
	d.deadlineFromText()

	d.setCountry(r.Country.String(), r.ProjectCountryName.String())
	d.countryFromText()

	d.setOrganization(r.ContactOrganization.String())
	d.organizationFromText()

	setStr(&t.ContactName, r.ContactName.String())
	setStr(&t.ContactEmail, r.ContactEmail.String())
	setStr(&t.ContactPhone, r.ContactPhone.String())
	setStr(&t.ContactAddress, r.ContactAddress.String())

	setStr(&t.ReferenceNumber, r.BidReferenceNo.String())
	setStr(&t.NoticeID, r.ID.String())
	setStr(&t.ProjectID, r.ProjectID.String())
	setStr(&t.ProjectName, r.ProjectName.String())
	setStr(&t.URL, r.URL.String())

	d.links.Add(decoded(r.DocumentLinks), "document")
	d.links.AddURL(r.URL.String(), "notice", "World Bank notice")

	d.moneyFromText()
	d.setProcurementMethod(r.ProcurementMethodName.String(), r.ProcurementMethod.String(), r.ProcurementMethodCode.String())
	d.setStatus(r.NoticeStatus.String())
	d.setTenderType(r.TenderType.String(), r.NoticeType.String())
	d.setLanguage()
	d.setSector()
	d.addTags(r.NoticeType.String())

	return d.finish()
}
