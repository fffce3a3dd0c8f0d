package extract

import (
	"regexp"
	"sort"
	"strings"
)

type countryIndex struct {
	byKey     map[string]string // folded name, alias or code -> canonical
	canonical map[string]struct{}
	textRe    *regexp.Regexp
	cityRe    *regexp.Regexp
}

var countries = buildCountryIndex()

// values that look like countries in source feeds but carry nothing
var countryBlacklist = map[string]struct{}{
	"n a": {}, "na": {}, "none": {}, "null": {}, "unknown": {}, "various": {},
	"various countries": {}, "multiple": {}, "multiple countries": {}, "tbd": {},
	"international": {}, "worldwide": {}, "global": {}, "world": {}, "other": {},
	"not specified": {}, "all countries": {},
}

// aliases too ambiguous to look for inside free text
var textScanSkip = map[string]struct{}{
	"america": {}, "korea": {}, "region": {}, "regional": {}, "multinational": {},
	"multi national": {}, "regional projects": {}, "multinational projects": {}, "britain": {},
}

func buildCountryIndex() *countryIndex {
	idx := &countryIndex{
		byKey:     make(map[string]string, 800),
		canonical: make(map[string]struct{}, 220),
	}

	textTerms := make([]string, 0, 400)
	for _, line := range strings.Split(countryData, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ";")
		name := parts[0]
		idx.canonical[name] = struct{}{}

		for i, p := range parts {
			key := foldKey(p)
			if key == "" {
				continue
			}
			if _, taken := idx.byKey[key]; !taken {
				idx.byKey[key] = name
			}

			// codes (positions 1 and 2) are never searched in free text
			if i == 1 || i == 2 || len(key) < 4 {
				continue
			}
			if _, skip := textScanSkip[key]; skip {
				continue
			}
			textTerms = append(textTerms, key)
		}
	}

	idx.textRe = alternation(textTerms)

	cities := make([]string, 0, len(cityCountry))
	for c := range cityCountry {
		cities = append(cities, c)
	}
	idx.cityRe = alternation(cities)

	return idx
}

// alternation builds \b(?:a|b|...)\b with longer terms first so the longest match wins.
func alternation(terms []string) *regexp.Regexp {
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})

	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// CanonicalizeCountry maps a raw country value to its canonical English name.
// Placeholders and unrecognized values return ("", false).
func CanonicalizeCountry(raw string) (string, bool) {
	if name, ok := lookupCountry(raw); ok {
		return name, true
	}

	// "Kenya - Nairobi", "Senegal (West Africa)": only the head before a known
	// separator is tried, never an arbitrary first word
	if m := countryHeadRe.FindStringSubmatch(raw); m != nil {
		return lookupCountry(m[1])
	}
	return "", false
}

var countryHeadRe = regexp.MustCompile(`^\s*([^()]+?)\s*(?:\([^()]*\)|\s[-/|\x{2013}\x{2014}]\s.*)\s*$`)

func lookupCountry(raw string) (string, bool) {
	key := foldKey(raw)
	if key == "" {
		return "", false
	}
	if _, bad := countryBlacklist[key]; bad {
		return "", false
	}

	if name, ok := countries.byKey[key]; ok {
		return name, true
	}

	// "Republic of Senegal", "Kingdom of Morocco"
	for _, prefix := range countryPrefixes {
		if rest, ok := strings.CutPrefix(key, prefix); ok {
			if name, ok := countries.byKey[rest]; ok {
				return name, true
			}
		}
	}
	return "", false
}

var countryPrefixes = []string{
	"republic of the ", "republic of ", "republique du ", "republique de ", "republica de ",
	"kingdom of ", "state of ",
}

// IsCanonicalCountry reports whether name is already a canonical value.
func IsCanonicalCountry(name string) bool {
	_, ok := countries.canonical[name]
	return ok
}

// CountryFromText finds the first country mentioned in free text, then falls back to
// well-known cities.
func CountryFromText(text string) (string, bool) {
	key := foldKey(text)
	if key == "" {
		return "", false
	}

	if m := countries.textRe.FindString(key); m != "" {
		return countries.byKey[m], true
	}

	return CountryFromCity(text)
}

// CountryFromCity maps a mentioned capital or large city to its country.
func CountryFromCity(text string) (string, bool) {
	key := foldKey(text)
	if key == "" {
		return "", false
	}

	if m := countries.cityRe.FindString(key); m != "" {
		return cityCountry[m], true
	}
	return "", false
}

// CityFromText returns the first known city mentioned in text, title-cased.
func CityFromText(text string) (string, bool) {
	key := foldKey(text)
	if m := countries.cityRe.FindString(key); m != "" {
		return titleWords(m), true
	}
	return "", false
}

// CountryFromNUTS maps a NUTS code (e.g. "FR101") to the country of its level-0 prefix.
func CountryFromNUTS(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 {
		return "", false
	}
	prefix := code[:2]
	if name, ok := nutsOverrides[prefix]; ok {
		return name, true
	}
	return CanonicalizeCountry(prefix)
}

// IsSpanishSpeaking is used to guess the notice language of Latin American sources.
func IsSpanishSpeaking(country string) bool {
	_, ok := spanishSpeaking[country]
	return ok
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
