package extract

import "regexp"

var sectorPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"agriculture", regexp.MustCompile(`(?i)\b(?:agricultur(?:e|al)|farming|irrigation|food security|rural development|agribusiness)\b`)},
	{"energy", regexp.MustCompile(`(?i)\b(?:energy|electricity|power generation|renewable|solar|wind|hydropower)\b`)},
	{"transport", regexp.MustCompile(`(?i)\b(?:transport|roads?|highways?|railways?|aviation|ports?)\b`)},
	{"water", regexp.MustCompile(`(?i)\b(?:water|sanitation|sewage|drainage|wastewater)\b`)},
	{"health", regexp.MustCompile(`(?i)\b(?:health|medical|hospitals?|clinics?|pharmaceutical|healthcare)\b`)},
	{"education", regexp.MustCompile(`(?i)\b(?:education|schools?|university|vocational|skills development)\b`)},
	{"urban", regexp.MustCompile(`(?i)\b(?:urban|city development|municipal|housing|settlements?)\b`)},
	{"finance", regexp.MustCompile(`(?i)\b(?:finance|banking|microfinance|insurance|credit|financial services)\b`)},
	{"environment", regexp.MustCompile(`(?i)\b(?:environment(?:al)?|climate|conservation|biodiversity)\b`)},
	{"ict", regexp.MustCompile(`(?i)\b(?:ict|information technology|digital|telecommunications?|internet|broadband)\b`)},
}

// SectorsFromText returns every sector whose keywords occur in text, in a fixed order.
func SectorsFromText(text string) []string {
	var out []string
	for _, p := range sectorPatterns {
		if p.re.MatchString(text) {
			out = append(out, p.name)
		}
	}
	return out
}

// SectorFromText returns the first matching sector.
func SectorFromText(text string) (string, bool) {
	for _, p := range sectorPatterns {
		if p.re.MatchString(text) {
			return p.name, true
		}
	}
	return "", false
}
