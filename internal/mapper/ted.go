package mapper

import (
	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/extract"
	"github.com/ougirez/tender-normalizer/internal/pkg/utils"
)

const tedNoticeURL = "https://ted.europa.eu/en/notice/-/detail/%s"

func mapTED(env Env, r *domain.TEDRecord) *domain.UnifiedTender {
	d := newDraft(env, domain.SourceTED, r.ID.Or(r.PublicationNumber).String())
	t := d.t

	d.setTitle(r.Title.String(), idTitle("TED notice %s", r.PublicationNumber.String()))

	summary, _ := extract.CleanDescription(r.Summary.String())
	extra, _ := extract.CleanDescription(r.AdditionalInformation.String())
	switch {
	case summary != "" && extra != "" && extra != summary:
		d.setDescription(summary + "\n\n" + extra)
	default:
		d.setDescription(summary, extra)
	}
	for _, lot := range r.Lots.List() {
		if m, ok := lot.(map[string]any); ok {
			d.addText(extract.StringField(m, "title", "description"))
		}
	}

	d.setPublicationDate(r.PublicationDate.String())
	d.setDeadline(r.DeadlineDate.String())
	d.deadlineFromText()

	if !d.setCountry(r.Country.String(), r.OrganisationCountry.String()) {
		if c, ok := extract.CountryFromNUTS(r.NUTSCode.String()); ok {
			t.Country = &c
		}
	}
	d.countryFromText()
	setStr(&t.City, r.City.String())

	d.setOrganization(r.OrganisationName.String())
	d.organizationFromText()
	setStr(&t.OrganizationID, r.OrganisationID.String())
	setStr(&t.Buyer, utils.Deref(t.OrganizationName))

	if !d.setMoney(r.ValueMagnitude.String(), r.Currency.String()) {
		d.moneyFromText()
	}

	setStr(&t.ContactEmail, r.ContactEmail.String())
	setStr(&t.ContactPhone, r.ContactPhone.String())
	setStr(&t.NoticeID, r.NoticeIdentifier.String(), r.PublicationNumber.String())
	setStr(&t.ReferenceNumber, r.DocumentID.String(), r.PublicationNumber.String())
	setStr(&t.URL, r.ContactURL.String(), idTitle(tedNoticeURL, r.PublicationNumber.String()))

	d.links.Add(decoded(r.Links), "notice")
	d.links.AddURL(idTitle(tedNoticeURL, r.PublicationNumber.String()), "notice", "TED notice")

	d.setProcurementMethod(r.ProcedureType.String())
	d.setStatus(r.NoticeStatus.String())
	if isTrue(r.IsCorrigendum.String()) {
		d.addTags("corrigendum")
	}
	d.setTenderType(r.NoticeType.String())
	d.setLanguage(r.Language.String())
	d.setSector()

	return d.finish()
}
