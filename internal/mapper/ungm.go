package mapper

import (
	"regexp"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/extract"
	"github.com/ougirez/tender-normalizer/internal/pkg/utils"
)

const ungmNoticeURL = "https://www.ungm.org/Public/Notice/%s"

var (
	ungmNoticeKeys = []string{"self", "notice", "tender", "details", "href", "url"}
	countrySplitRe = regexp.MustCompile(`\s*[,;|/]\s*`)
)

func mapUNGM(env Env, r *domain.UNGMRecord) *domain.UnifiedTender {
	d := newDraft(env, domain.SourceUNGM, r.ID.String())
	t := d.t

	d.setTitle(r.Title.String(), idTitle("UNGM notice %s", r.Reference.Or(r.ID).String()))
	d.setDescription(r.Description.String())

	d.setPublicationDate(r.PublishedOn.String())
	d.setDeadline(r.DeadlineOn.String())
	d.deadlineFromText()

	if c, ok := beneficiaryCountry(r.BeneficiaryCountries.String(), r.Countries); ok {
		t.Country = &c
	}
	d.countryFromText()

	contact := firstObject(r.Contacts)
	if contact != nil {
		setStr(&t.ContactName, extract.StringField(contact, "name", "fullName", "contact_name"))
		setStr(&t.ContactEmail, extract.StringField(contact, "email"))
		setStr(&t.ContactPhone, extract.StringField(contact, "phone", "telephone"))
		d.setOrganization(extract.StringField(contact, "organization", "organisation", "agency"))
	}
	d.organizationFromText()
	setStr(&t.Buyer, utils.Deref(t.OrganizationName))

	setStr(&t.ReferenceNumber, r.Reference.String())
	setStr(&t.NoticeID, r.ID.String())

	d.links.Add(decoded(r.Documents), "attachment")
	links := r.Links.Object()
	d.links.AddURL(extract.StringField(links, ungmNoticeKeys...), "main_notice", "Main tender notice")
	d.links.Add(links["items"], "related")
	if len(d.links.Links()) == 0 {
		d.links.AddURL(idTitle(ungmNoticeURL, r.ID.String()), "source", "Source tender notice")
	}
	setStr(&t.URL, extract.StringField(links, ungmNoticeKeys...), idTitle(ungmNoticeURL, r.ID.String()))

	d.moneyFromText()
	if t.EstimatedValue.Valid && t.Currency == nil {
		t.Currency = utils.StrPtr(currencyUSD)
	}

	d.setProcurementMethod()
	d.setStatus(r.Status.String())
	d.setTenderType()
	d.setLanguage()
	d.setSector()

	for _, item := range r.UNSPSCs.List() {
		switch v := item.(type) {
		case string:
			d.addTags("unspsc:" + v)
		case map[string]any:
			if code := extract.StringField(v, "code", "id"); code != "" {
				d.addTags("unspsc:" + code)
			}
		}
	}
	if !r.Sustainability.IsEmpty() {
		d.addTags("sustainability")
	}
	if level, ok := extract.Clean(r.RegistrationLevel.String()); ok {
		d.addTags("registration:" + level)
	}

	return d.finish()
}

// beneficiaryCountry resolves the UNGM beneficiary list. Several distinct countries make the
// notice multinational.
func beneficiaryCountry(raw string, list domain.FlexJSON) (string, bool) {
	var names []string
	if raw != "" {
		names = countrySplitRe.Split(raw, -1)
	}
	if len(names) == 0 {
		for _, item := range list.List() {
			switch v := item.(type) {
			case string:
				names = append(names, v)
			case map[string]any:
				names = append(names, extract.StringField(v, "name", "country", "code"))
			}
		}
	}

	found := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		c, ok := extract.CanonicalizeCountry(n)
		if !ok {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		found = append(found, c)
	}

	switch len(found) {
	case 0:
		return "", false
	case 1:
		return found[0], true
	default:
		return "Multinational", true
	}
}
