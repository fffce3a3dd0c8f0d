package mapper

import (
	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/extract"
	"github.com/ougirez/tender-normalizer/internal/pkg/utils"
)

const iadbName = "Inter-American Development Bank"

func mapIADB(env Env, r *domain.IADBRecord) *domain.UnifiedTender {
	d := newDraft(env, domain.SourceIADB, r.ProjectNumber.String())
	t := d.t

	d.setTitle(r.NoticeTitle.String(), r.ProjectName.String(), idTitle("IADB Project - %s", r.ProjectNumber.String()))
	d.addText(r.ProjectName.String())

	d.setPublicationDate(r.PublicationDate.String())
	d.setDeadline(r.PueDate.String())

	d.setCountry(r.Country.String())
	d.countryFromText()

	// the bank is the buyer; the executing agency only shows up in the notice title
	d.organizationFromText()
	t.Buyer = utils.StrPtr(iadbName)

	setStr(&t.ProjectName, r.ProjectName.String())
	setStr(&t.ProjectNumber, r.ProjectNumber.String())
	setStr(&t.ProjectID, r.ProjectNumber.String())
	setStr(&t.URL, r.URL.String(), r.URLPDF.String())

	d.links.AddURL(r.URL.String(), "notice", "IADB notice")
	d.links.AddURL(r.URLPDF.String(), "pdf", "IADB notice document")

	d.setProcurementMethod()
	d.setStatus("")
	d.setTenderType(r.Type.String())
	if t.Country != nil && extract.IsSpanishSpeaking(*t.Country) {
		t.Language = utils.StrPtr("es")
	} else {
		t.Language = utils.StrPtr("en")
	}
	d.setSector()
	d.addTags(r.Type.String())

	return d.finish()
}
