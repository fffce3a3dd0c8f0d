package mapper

import (
	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/extract"
	"github.com/ougirez/tender-normalizer/internal/pkg/utils"
)

const afdbName = "African Development Bank"

func mapAFDB(env Env, r *domain.AFDBRecord) *domain.UnifiedTender {
	d := newDraft(env, domain.SourceAFDB, r.ID.String())
	t := d.t

	d.setTitle(r.Title.String(), r.ProjectName.String(), idTitle("AfDB tender %s", r.ID.String()))
	d.setDescription(r.Description.String())

	d.setPublicationDate(r.PublicationDate.String())
	d.setDeadline(r.ClosingDate.String())
	d.deadlineFromText()

	if !d.setCountry(r.Country.String()) {
		if c, ok := extract.CountryFromCity(d.text()); ok {
			t.Country = &c
			d.mc.UsedText("country")
		}
	}
	d.countryFromText()
	if t.Country == nil && isTrue(r.IsMultinational.String()) {
		t.Country = utils.StrPtr("Multinational")
	}
	if city, ok := extract.CityFromText(d.text()); ok {
		t.City = &city
	}

	d.organizationFromText()
	t.Buyer = utils.StrPtr(afdbName)

	setStr(&t.ProjectID, r.ProjectID.String())
	setStr(&t.ProjectName, r.ProjectName.String())
	setStr(&t.NoticeID, r.ID.String())
	setStr(&t.URL, r.URL.String())

	d.links.Add(decoded(r.DocumentLinks), "document")
	d.links.AddURL(r.URL.String(), "notice", "AfDB notice")
	if desc := r.Description.String(); desc != "" {
		for _, href := range extract.HTMLLinks(desc) {
			d.links.AddURL(href, "document", "")
		}
	}

	if !d.setMoney(r.EstimatedValue.String(), r.Currency.String()) {
		d.moneyFromText()
	}

	d.setProcurementMethod()
	d.setStatus(r.Status.String())
	d.setTenderType(r.TenderType.String())
	d.setLanguage()
	d.setSector(r.Sector.String())
	if isTrue(r.IsMultinational.String()) {
		d.addTags("multinational")
	}

	return d.finish()
}
