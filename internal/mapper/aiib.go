package mapper

import (
	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/extract"
	"github.com/ougirez/tender-normalizer/internal/pkg/utils"
)

const aiibName = "Asian Infrastructure Investment Bank"

func mapAIIB(env Env, r *domain.AIIBRecord) *domain.UnifiedTender {
	d := newDraft(env, domain.SourceAIIB, r.ID.String())
	t := d.t

	notice := r.ProjectNotice.String()
	d.setTitle(notice, idTitle("AIIB Tender - %s", r.ID.String()))

	pdf := extract.Truncate(r.PDFContent.String(), pdfTextLimit)
	switch {
	case notice != "" && pdf != "":
		d.setDescription(notice + "\n\n" + pdf)
	default:
		d.setDescription(notice, pdf)
	}

	d.setPublicationDate(r.Date.String())
	d.deadlineFromText()

	d.setCountry(r.Member.String())
	d.countryFromText()

	d.organizationFromText()
	t.Buyer = utils.StrPtr(aiibName)
	setStr(&t.NoticeID, r.ID.String())

	d.moneyFromText()
	d.setProcurementMethod()
	d.setStatus("")
	d.setTenderType(r.Type.String())
	d.setLanguage()
	d.setSector(r.Sector.String())
	d.addTags(r.Type.String())

	return d.finish()
}
