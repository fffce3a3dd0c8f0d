package mapper

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/extract"
	"github.com/ougirez/tender-normalizer/internal/pkg/logger"
	"github.com/ougirez/tender-normalizer/internal/pkg/utils"
)

const (
	fallbackMissingTitle = "missing title"
	normalizedByPrefix   = "tender-normalizer/"

	maxTitleLen = 500

	currencyUSD = "USD"
)

// draft accumulates one unified tender while a mapper walks its source record.
type draft struct {
	env    Env
	t      *domain.UnifiedTender
	mc     extract.MethodContext
	links  *extract.LinkCollector
	corpus []string
	tags   []string
}

func newDraft(env Env, kind domain.SourceKind, sourceID string) *draft {
	return &draft{
		env: env,
		t: &domain.UnifiedTender{
			SourceTable: kind,
			SourceID:    sourceID,
			Status:      domain.StatusUnknown,
			TenderType:  domain.TenderTypeUnknown,
		},
		mc:    extract.MethodContext{Source: kind},
		links: extract.NewLinkCollector(),
	}
}

// addText feeds free text to the text extractors (country, deadline, money ...).
func (d *draft) addText(texts ...string) {
	for _, s := range texts {
		if s = strings.TrimSpace(s); s != "" {
			d.corpus = append(d.corpus, s)
		}
	}
}

func (d *draft) text() string {
	return strings.Join(d.corpus, "\n")
}

func (d *draft) setTitle(candidates ...string) {
	for _, c := range candidates {
		if title, ok := extract.NormalizeTitle(c); ok {
			d.t.Title = extract.Truncate(title, maxTitleLen)
			d.addText(title)
			return
		}
	}

	d.t.Title = domain.UntitledTender
	d.t.FallbackReason = utils.StrPtr(fallbackMissingTitle)
	d.mc.TitleFallback = true
	logger.Warnf(d.env.context(), "%s source_id-%s: no usable title, using placeholder", d.t.SourceTable, d.t.SourceID)
}

// idTitle renders a source-specific fallback title, or "" when the id itself is missing.
func idTitle(format string, id string) string {
	if strings.TrimSpace(id) == "" {
		return ""
	}
	return fmt.Sprintf(format, strings.TrimSpace(id))
}

func (d *draft) setDescription(candidates ...string) {
	for _, c := range candidates {
		if desc, ok := extract.CleanDescription(c); ok {
			d.t.Description = &desc
			d.addText(desc)
			return
		}
	}
}

func (d *draft) setPublicationDate(raws ...string) {
	if t, ok := firstDate(raws...); ok {
		d.t.PublicationDate = &t
	}
}

func (d *draft) setDeadline(raws ...string) {
	if t, ok := firstDate(raws...); ok {
		d.t.DeadlineDate = &t
	}
}

func (d *draft) deadlineFromText() {
	if d.t.DeadlineDate != nil {
		return
	}
	if t, ok := extract.DateFromText(d.text()); ok {
		d.t.DeadlineDate = &t
		d.mc.UsedText("deadline")
	}
}

func firstDate(raws ...string) (time.Time, bool) {
	for _, raw := range raws {
		if t, ok := extract.ParseDate(raw); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func (d *draft) setCountry(raws ...string) bool {
	for _, raw := range raws {
		if c, ok := extract.CanonicalizeCountry(raw); ok {
			d.t.Country = &c
			return true
		}
	}
	return false
}

func (d *draft) countryFromText() {
	if d.t.Country != nil {
		return
	}
	if c, ok := extract.CountryFromText(d.text()); ok {
		d.t.Country = &c
		d.mc.UsedText("country")
	}
}

func (d *draft) setOrganization(candidates ...string) bool {
	if org, ok := extract.ExtractOrganization(candidates...); ok {
		d.t.OrganizationName = &org
		return true
	}
	return false
}

func (d *draft) organizationFromText() {
	if d.t.OrganizationName != nil {
		return
	}
	if org, ok := extract.OrganizationFromText(d.text()); ok {
		d.t.OrganizationName = &org
		d.mc.UsedText("organization")
	}
}

func (d *draft) setMoney(amount, currency string) bool {
	m, ok := extract.ParseMoney(amount, currency)
	if !ok {
		return false
	}
	d.applyMoney(m)
	return true
}

func (d *draft) moneyFromText() {
	if d.t.EstimatedValue.Valid {
		return
	}
	if m, ok := extract.ExtractMoney(d.text()); ok {
		d.applyMoney(m)
		d.mc.UsedText("estimated_value")
	}
}

func (d *draft) applyMoney(m extract.Money) {
	d.t.EstimatedValue = decimal.NullDecimal{Decimal: m.Amount, Valid: true}
	d.t.Currency = utils.StrPtr(m.Currency)
}

// setProcurementMethod tries the explicit columns, then notice text, then the source default.
func (d *draft) setProcurementMethod(raws ...string) {
	for _, raw := range raws {
		if m, ok := extract.StandardProcurementMethod(raw); ok {
			d.t.ProcurementMethod = &m
			return
		}
	}
	if m, ok := extract.ProcurementMethodFromText(d.text()); ok {
		d.t.ProcurementMethod = &m
		d.mc.UsedText("procurement_method")
		return
	}
	m := extract.DefaultProcurementMethod(d.t.SourceTable)
	d.t.ProcurementMethod = &m
}

func (d *draft) setStatus(raw string) {
	d.t.Status = extract.ResolveStatus(raw, d.text(), d.t.DeadlineDate, d.env.Now)
}

// setTenderType classifies the explicit type columns first, then title and description.
func (d *draft) setTenderType(candidates ...string) {
	candidates = append(candidates, d.t.Title, utils.Deref(d.t.Description))
	d.t.TenderType = extract.ClassifyTenderType(candidates...)
}

func (d *draft) setLanguage(raws ...string) {
	for _, raw := range raws {
		if code, ok := extract.NormalizeLanguageCode(raw); ok {
			d.t.Language = &code
			return
		}
	}
	sample := strings.TrimSpace(d.t.Title + " " + utils.Deref(d.t.Description))
	if d.mc.TitleFallback {
		sample = utils.Deref(d.t.Description)
	}
	if lang, ok := extract.DetectLanguage(extract.Truncate(sample, 2000)); ok {
		d.t.Language = &lang
	}
}

func (d *draft) setSector(raws ...string) {
	if s, ok := extract.FirstNonEmpty(raws...); ok {
		d.t.Sector = &s
		return
	}
	if s, ok := extract.SectorFromText(d.text()); ok {
		d.t.Sector = &s
	}
}

func (d *draft) addTags(tags ...string) {
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			d.tags = append(d.tags, tag)
		}
	}
}

func (d *draft) finish() *domain.UnifiedTender {
	t := d.t

	d.addTags(extract.SectorsFromText(d.text())...)
	t.Tags = uniqueStrings(d.tags)
	t.DocumentLinks = d.links.Links()
	t.NormalizedMethod = extract.DetermineNormalizedMethod(d.mc)
	t.NormalizedBy = normalizedByPrefix + t.SourceTable.Method()

	return t
}

// setStr stores the first non-placeholder candidate into dst.
func setStr(dst **string, candidates ...string) bool {
	if s, ok := extract.FirstNonEmpty(candidates...); ok {
		*dst = &s
		return true
	}
	return false
}

func uniqueStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// decoded returns the generic JSON value of a FlexJSON column, or nil.
func decoded(f domain.FlexJSON) any {
	v, _ := f.Decode()
	return v
}

func isTrue(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "yes", "y":
		return true
	}
	return false
}
