package extract

import (
	"strings"
	"unicode/utf8"
)

var languageMarkers = map[string][]string{
	"fr": {"le", "la", "les", "des", "du", "et", "pour", "avec", "dans", "travaux", "marché", "appel", "d'offres", "fourniture", "projet"},
	"es": {"el", "los", "las", "del", "para", "con", "por", "una", "obras", "licitación", "proyecto", "contratación", "suministro"},
	"pt": {"o", "os", "das", "dos", "para", "com", "uma", "não", "obras", "concurso", "projeto", "fornecimento", "aquisição"},
	"de": {"der", "die", "das", "und", "für", "mit", "von", "auf", "ist", "ausschreibung", "lieferung", "bau"},
	"it": {"il", "gli", "della", "delle", "per", "con", "una", "lavori", "gara", "fornitura", "progetto", "appalto"},
	"en": {"the", "and", "of", "for", "with", "to", "in", "is", "supply", "works", "project", "procurement", "services"},
}

var languageOrder = []string{"en", "fr", "es", "pt", "de", "it"}

// DetectLanguage guesses the language of text from stop-word markers. Text shorter than ten
// characters is not classified.
func DetectLanguage(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < 10 {
		return "", false
	}

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r == '\'' || r == '-' || isWordRune(r))
	})
	if len(words) == 0 {
		return "", false
	}

	counts := make(map[string]int, len(languageMarkers))
	for _, w := range words {
		for lang, markers := range languageMarkers {
			for _, m := range markers {
				if w == m {
					counts[lang]++
					break
				}
			}
		}
	}

	best, bestCount := "en", 0
	for _, lang := range languageOrder {
		if counts[lang] > bestCount {
			best, bestCount = lang, counts[lang]
		}
	}
	return best, true
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r > 127
}

var languageCodes = map[string]string{
	"en": "en", "eng": "en", "english": "en", "anglais": "en", "ingles": "en",
	"fr": "fr", "fra": "fr", "fre": "fr", "french": "fr", "francais": "fr", "frances": "fr",
	"es": "es", "spa": "es", "spanish": "es", "espanol": "es", "espagnol": "es",
	"pt": "pt", "por": "pt", "portuguese": "pt", "portugues": "pt",
	"de": "de", "deu": "de", "ger": "de", "german": "de", "deutsch": "de",
	"it": "it", "ita": "it", "italian": "it", "italiano": "it",
	"nl": "nl", "nld": "nl", "dut": "nl", "dutch": "nl",
	"ar": "ar", "ara": "ar", "arabic": "ar",
	"ru": "ru", "rus": "ru", "russian": "ru",
	"zh": "zh", "zho": "zh", "chi": "zh", "chinese": "zh",
	"pl": "pl", "pol": "pl", "cs": "cs", "ces": "cs", "el": "el", "ell": "el",
	"sv": "sv", "swe": "sv", "ro": "ro", "ron": "ro", "hu": "hu", "hun": "hu",
	"bg": "bg", "bul": "bg", "da": "da", "dan": "da", "fi": "fi", "fin": "fi",
}

// NormalizeLanguageCode maps a language column ("ENG", "French", "fr-FR") to a two-letter code.
func NormalizeLanguageCode(raw string) (string, bool) {
	key := foldKey(raw)
	if key == "" {
		return "", false
	}
	if code, ok := languageCodes[key]; ok {
		return code, true
	}
	// "fr fr", "en gb"
	if i := strings.IndexByte(key, ' '); i > 0 {
		if code, ok := languageCodes[key[:i]]; ok {
			return code, true
		}
	}
	return "", false
}
