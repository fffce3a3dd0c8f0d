package extract

import (
	"regexp"
	"strings"
)

var orgPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b((?:Ministry|Ministère|Ministerio|Minist[eé]rio|Department|Office|Agency|Authority|Directorate|Commission|Council|Bureau|Secretariat|Institute)\s+(?:of|for|de|du|des|del|da|do)\s+[A-Z][\p{L}&,' -]{2,80}?)(?:\s*[,.;(\n]|\s+(?:is|has|invites|intends|hereby|through|with|for)\b|$)`),
	regexp.MustCompile(`\b((?:[A-Z][\p{L}&'-]+\s+){1,6}(?:Authority|Agency|Corporation|Company|Utility|Municipality|Council|Board|Ministry|University|Hospital|Commission|Fund|Bank))\b`),
	regexp.MustCompile(`(?i)(?:purchaser|employer|contracting authority|buyer|executing agency|implementing agency|client)\s*[:\-]\s*([^\n;]{3,120}?)(?:\s*[,;.\n]|$)`),
}

// OrganizationFromText applies the organization name patterns to free text.
func OrganizationFromText(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	for _, re := range orgPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if org, ok := cleanOrganization(m[1]); ok {
				return org, true
			}
		}
	}
	return "", false
}

// ExtractOrganization returns the first candidate that is non-empty and not a placeholder.
// Candidates are passed in source-specific precedence order.
func ExtractOrganization(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if org, ok := cleanOrganization(c); ok {
			return org, true
		}
	}
	return "", false
}

func cleanOrganization(raw string) (string, bool) {
	s, ok := Clean(raw)
	if !ok {
		return "", false
	}
	s = strings.Trim(s, " ,;:.-")
	if len([]rune(s)) < 3 {
		return "", false
	}
	if IsPlaceholder(s) {
		return "", false
	}
	return Truncate(s, 250), true
}
