package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layouts tried in order. Ambiguous numeric forms prefer day-first, which is what the
// development-bank feeds use; month-first is only accepted when the day-first reading is
// impossible.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999-07:00",
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05",
	"2006-01-02",
	// "2" and "1" also accept two digits, so these cover 05/06/2024 and 5/6/2024
	"2/1/2006",
	"2/1/2006 15:04",
	"2-1-2006",
	"2.1.2006",
	"2006/01/02",
	"January 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"02-Jan-2006",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006",
}

var (
	ordinalRe   = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)\b`)
	unixRe      = regexp.MustCompile(`^\d{9,10}(?:\.\d+)?$`)
	usDateRe    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	deadlineRe  = regexp.MustCompile(`(?i)(?:deadline|closing date|due date|submission date|date limite|fecha l[ií]mite|must be (?:submitted|received) (?:by|before|no later than)|not later than)\s*(?:for [a-z ]+)?[:\-]?\s*(?:on\s+)?(.{6,40})`)
	dateTokenRe = regexp.MustCompile(`(?i)\d{4}-\d{2}-\d{2}|\d{1,2}[./-]\d{1,2}[./-]\d{4}|\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+\d{4}|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}`)
)

// ParseDate parses a source date in any supported layout and returns the calendar date at
// midnight UTC. Unparseable input returns false.
func ParseDate(raw string) (time.Time, bool) {
	s := collapseSpaces(raw)
	if s == "" || IsPlaceholder(s) {
		return time.Time{}, false
	}

	if unixRe.MatchString(s) {
		secs, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return dateOf(time.Unix(int64(secs), 0).UTC()), true
		}
	}

	s = ordinalRe.ReplaceAllString(s, "$1")

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOf(t), true
		}
	}

	// month-first, only when the day-first reading failed (e.g. 06/25/2024)
	if m := usDateRe.FindStringSubmatch(s); m != nil {
		if t, err := time.Parse("1/2/2006", m[1]+"/"+m[2]+"/"+m[3]); err == nil {
			return dateOf(t), true
		}
	}

	// month names in the source language
	if t, ok := parseLocalizedMonth(s); ok {
		return t, true
	}

	return time.Time{}, false
}

// DateFromText finds a deadline phrase followed by a date, or the first date in text.
func DateFromText(text string) (time.Time, bool) {
	if m := deadlineRe.FindStringSubmatch(text); m != nil {
		if tok := dateTokenRe.FindString(m[1]); tok != "" {
			if t, ok := ParseDate(tok); ok {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// FirstDateInText returns the first parseable date token in text.
func FirstDateInText(text string) (time.Time, bool) {
	for _, tok := range dateTokenRe.FindAllString(text, 5) {
		if t, ok := ParseDate(tok); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var localizedMonths = map[string]time.Month{
	"janvier": time.January, "enero": time.January, "janeiro": time.January, "januar": time.January,
	"fevrier": time.February, "febrero": time.February, "fevereiro": time.February, "februar": time.February,
	"mars": time.March, "marzo": time.March, "marco": time.March, "marz": time.March,
	"avril": time.April, "abril": time.April,
	"mai": time.May, "mayo": time.May, "maio": time.May,
	"juin": time.June, "junio": time.June, "junho": time.June, "juni": time.June,
	"juillet": time.July, "julio": time.July, "julho": time.July, "juli": time.July,
	"aout": time.August, "agosto": time.August,
	"septembre": time.September, "septiembre": time.September, "setembro": time.September,
	"octobre": time.October, "octubre": time.October, "outubro": time.October, "oktober": time.October,
	"novembre": time.November, "noviembre": time.November, "novembro": time.November,
	"decembre": time.December, "diciembre": time.December, "dezembro": time.December, "dezember": time.December,
}

var localizedDateRe = regexp.MustCompile(`^(\d{1,2})(?:er)?\s+(?:de\s+)?([a-z]+)\s+(?:de\s+)?(\d{4})$`)

// parseLocalizedMonth handles "1er juin 2024", "25 de junio de 2024", "3. März 2024".
func parseLocalizedMonth(s string) (time.Time, bool) {
	key := strings.ToLower(StripAccents(s))
	key = strings.ReplaceAll(key, ".", "")
	m := localizedDateRe.FindStringSubmatch(collapseSpaces(key))
	if m == nil {
		return time.Time{}, false
	}

	month, ok := localizedMonths[m[2]]
	if !ok {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
