package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	spaceRe       = regexp.MustCompile(`[\s\x{00a0}]+`)
	punctRe       = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	htmlHintRe    = regexp.MustCompile(`(?i)<\s*/?\s*[a-z][^>]*>|&[a-z]+;|&#\d+;`)
	titlePrefixRe = regexp.MustCompile(`(?i)^\s*(?:notice|tender|rfp|rfq|ifb|eoi|invitation for bids?|request for (?:proposals?|quotations?))\s*[:\-–]\s*`)
)

var placeholders = map[string]struct{}{
	"":              {},
	"n a":           {},
	"na":            {},
	"none":          {},
	"null":          {},
	"nil":           {},
	"unknown":       {},
	"not specified": {},
	"not available": {},
	"tbd":           {},
	"tba":           {},
	"various":       {},
	"multiple":      {},
	"international": {},
	"worldwide":     {},
	"global":        {},
	"no content":    {},
	"no title":      {},
}

// StripAccents removes diacritics: "Côte d'Ivoire" -> "Cote d'Ivoire".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// foldKey is the lookup key for dictionaries: lowercase, no accents, single spaces, no punctuation.
func foldKey(s string) string {
	s = strings.ToLower(StripAccents(s))
	s = punctRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// IsPlaceholder reports whether s carries no information ("n/a", "various", "-" ...).
func IsPlaceholder(s string) bool {
	_, ok := placeholders[foldKey(s)]
	return ok
}

// Clean trims and collapses whitespace; placeholders become "".
func Clean(s string) (string, bool) {
	s = collapseSpaces(s)
	if IsPlaceholder(s) {
		return "", false
	}
	return s, true
}

// NormalizeTitle strips boilerplate prefixes and shouting case.
func NormalizeTitle(raw string) (string, bool) {
	s, ok := Clean(raw)
	if !ok {
		return "", false
	}

	stripped := titlePrefixRe.ReplaceAllString(s, "")
	if strings.TrimSpace(stripped) != "" {
		s = strings.TrimSpace(stripped)
	}

	if isShouting(s) {
		s = cases.Title(language.English).String(strings.ToLower(s))
	}

	return s, true
}

func isShouting(s string) bool {
	letters, upper := 0, 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	return letters >= 12 && upper == letters
}

// CleanDescription removes HTML markup and entities and collapses whitespace.
func CleanDescription(raw string) (string, bool) {
	s := raw
	if htmlHintRe.MatchString(s) {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
		if err == nil {
			doc.Find("script, style").Remove()
			doc.Find("br, p, div, li, tr").Each(func(_ int, sel *goquery.Selection) {
				sel.AppendHtml(" ")
			})
			s = doc.Text()
		}
	}

	return Clean(s)
}

// HTMLLinks collects href targets from an HTML fragment.
func HTMLLinks(raw string) []string {
	if !strings.Contains(raw, "href") {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil
	}

	var out []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			out = append(out, strings.TrimSpace(href))
		}
	})
	return out
}

// FirstNonEmpty returns the first candidate that is not blank or a placeholder.
func FirstNonEmpty(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if s, ok := Clean(c); ok {
			return s, true
		}
	}
	return "", false
}

// Truncate cuts s to at most n runes on a word boundary.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	cut := string(r[:n])
	if i := strings.LastIndexByte(cut, ' '); i > n/2 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut)
}
