package mapper

import (
	"strings"

	"github.com/ougirez/tender-normalizer/internal/domain"
)

// afd scrapers store these literals instead of null
const (
	afdNoTitle   = "No title"
	afdNoContent = "NO CONTENT"
)

func mapAFD(env Env, r *domain.AFDRecord) *domain.UnifiedTender {
	d := newDraft(env, domain.SourceAFD, r.ID.Or(r.NoticeID).String())
	t := d.t

	title := r.NoticeTitle.String()
	if strings.EqualFold(title, afdNoTitle) {
		title = ""
	}
	content := r.NoticeContent.String()
	if strings.EqualFold(content, afdNoContent) {
		content = ""
	}

	d.setTitle(title, idTitle("AFD notice %s", r.NoticeID.Or(r.ID).String()))
	d.setDescription(content)

	d.setPublicationDate(r.PublicationDate.String())
	d.setDeadline(r.Deadline.String())
	d.deadlineFromText()

	d.setCountry(r.Country.String())
	d.countryFromText()
	setStr(&t.City, r.CityLocality.String())

	d.setOrganization(r.Agency.String(), r.Buyer.String())
	d.organizationFromText()
	setStr(&t.Buyer, r.Buyer.String())

	setStr(&t.ContactEmail, r.Email.String())
	setStr(&t.ContactAddress, r.Address.String())
	setStr(&t.NoticeID, r.NoticeID.String())
	setStr(&t.URL, r.URL.String())

	d.links.Add(decoded(r.Services), "service")
	d.links.AddURL(r.URL.String(), "notice", "AFD notice")

	d.moneyFromText()
	d.setProcurementMethod()
	d.setStatus("")
	d.setTenderType(servicesText(r.Services))
	d.setLanguage(r.OriginalLanguage.String())
	d.setSector()

	return d.finish()
}

// servicesText flattens the AFD services column ("Works", ["Goods", "Consulting"] ...) for
// tender type classification.
func servicesText(f domain.FlexJSON) string {
	var parts []string
	for _, item := range f.List() {
		switch v := item.(type) {
		case string:
			parts = append(parts, v)
		case map[string]any:
			for _, k := range []string{"name", "type", "label", "title"} {
				if s, ok := v[k].(string); ok {
					parts = append(parts, s)
				}
			}
		}
	}
	return strings.Join(parts, " ")
}
