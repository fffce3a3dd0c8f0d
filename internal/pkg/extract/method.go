package extract

import (
	"regexp"
	"strings"

	"github.com/ougirez/tender-normalizer/internal/domain"
)

type methodRule struct {
	re    *regexp.Regexp
	value string
}

// Ordered: the more specific phrase comes first.
var procurementRules = []methodRule{
	{regexp.MustCompile(`(?i)\bneg(?:otiated)?[- ]w(?:ith)?o(?:ut)?[- ]call\b|negotiated procedure without`), "Negotiated Procedure without Call"},
	{regexp.MustCompile(`(?i)\bneg(?:otiated)?[- ]w(?:ith)?[- ]call\b|negotiated procedure with`), "Negotiated Procedure with Call"},
	{regexp.MustCompile(`(?i)\bnegotiated\b`), "Negotiated Procedure"},
	{regexp.MustCompile(`(?i)competitive dialogue|\bcomp[- ]dial\b`), "Competitive Dialogue"},
	{regexp.MustCompile(`(?i)\bqcbs\b|quality[- ]and[- ]cost[- ]based`), "Quality and Cost-Based Selection"},
	{regexp.MustCompile(`(?i)\bqbs\b|quality[- ]based selection`), "Quality-Based Selection"},
	{regexp.MustCompile(`(?i)\bcqs\b|consultants?'? qualification`), "Consultant Qualification Selection"},
	{regexp.MustCompile(`(?i)\bicb\b|international competitive|international open`), "International Competitive Bidding"},
	{regexp.MustCompile(`(?i)\bncb\b|national competitive`), "National Competitive Bidding"},
	{regexp.MustCompile(`(?i)\brfp\b|request for proposals?`), "Request for Proposal"},
	{regexp.MustCompile(`(?i)\brfq\b|request for quotations?`), "Request for Quotation"},
	{regexp.MustCompile(`(?i)\b(?:itb|ifb)\b|invitation (?:to|for) bids?`), "Invitation to Bid"},
	{regexp.MustCompile(`(?i)\beoi\b|expressions? of interest|manifestation d'int[ée]r[êe]t`), "Expression of Interest"},
	{regexp.MustCompile(`(?i)framework agreement|\bframework\b|accord[- ]cadre`), "Framework Agreement"},
	{regexp.MustCompile(`(?i)\brestricted\b|\bselective\b|\blimited\b|appel d'offres restreint`), "Restricted Procedure"},
	{regexp.MustCompile(`(?i)\bdirect\b|sole[- ]source|single[- ]source|gr[ée] [àa] gr[ée]`), "Direct Procurement"},
	{regexp.MustCompile(`(?i)\bshopping\b`), "Shopping Procedure"},
	{regexp.MustCompile(`(?i)full and open`), "Full and Open Competition"},
	{regexp.MustCompile(`(?i)\bopen\b|appel d'offres ouvert|licitaci[óo]n p[úu]blica`), "Open Procedure"},
}

var tableDefaultMethod = map[domain.SourceKind]string{
	domain.SourceWorldBank: "International Competitive Bidding",
	domain.SourceADB:       "Open Competitive Bidding",
	domain.SourceAFDB:      "International Competitive Bidding",
	domain.SourceAFD:       "International Competitive Bidding",
	domain.SourceAIIB:      "International Open Competitive Tendering",
	domain.SourceIADB:      "International Competitive Bidding",
	domain.SourceTED:       "Open Procedure",
	domain.SourceSAMGov:    "Full and Open Competition",
	domain.SourceUNGM:      "International Competitive Bidding",
}

// StandardProcurementMethod maps a raw procurement method to its standard wording. Unknown
// values are title-cased rather than dropped.
func StandardProcurementMethod(raw string) (string, bool) {
	s, ok := Clean(raw)
	if !ok {
		return "", false
	}
	for _, r := range procurementRules {
		if r.re.MatchString(s) {
			return r.value, true
		}
	}
	return titleWords(strings.ToLower(strings.ReplaceAll(s, "_", " "))), true
}

// ProcurementMethodFromText only accepts a keyword hit; free text is never title-cased.
func ProcurementMethodFromText(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	for _, r := range procurementRules {
		if r.re.MatchString(text) {
			return r.value, true
		}
	}
	return "", false
}

// DefaultProcurementMethod is the method a source uses when a notice does not state one.
func DefaultProcurementMethod(kind domain.SourceKind) string {
	if m, ok := tableDefaultMethod[kind]; ok {
		return m
	}
	return "Competitive Bidding"
}

// MethodContext records which extraction strategies a mapper had to use.
type MethodContext struct {
	Source        domain.SourceKind
	TextExtracted []string // fields recovered from free text, e.g. "country", "deadline"
	TitleFallback bool
}

func (m *MethodContext) UsedText(field string) {
	m.TextExtracted = append(m.TextExtracted, field)
}

// DetermineNormalizedMethod returns the tag stored in normalized_method: the mapper tag,
// plus "+text" when any field came from free-text extraction and "+fallback" when the title
// placeholder was used.
func DetermineNormalizedMethod(ctx MethodContext) string {
	tag := ctx.Source.Method()
	if len(ctx.TextExtracted) > 0 {
		tag += "+text"
	}
	if ctx.TitleFallback {
		tag += "+fallback"
	}
	return tag
}

// IsKnownMethodTag reports whether tag was produced by DetermineNormalizedMethod.
func IsKnownMethodTag(tag string) bool {
	base := tag
	if i := strings.IndexByte(tag, '+'); i >= 0 {
		base = tag[:i]
	}
	if base == "error_fallback" {
		return true
	}
	for _, k := range domain.AllSources {
		if k.Method() == base {
			return true
		}
	}
	return false
}
