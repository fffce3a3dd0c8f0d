package extract

import (
	"regexp"
	"time"

	"github.com/ougirez/tender-normalizer/internal/domain"
)

var statusMap = map[string]domain.TenderStatus{
	"active":                   domain.StatusActive,
	"open":                     domain.StatusActive,
	"published":                domain.StatusActive,
	"ongoing":                  domain.StatusActive,
	"current":                  domain.StatusActive,
	"live":                     domain.StatusActive,
	"en cours":                 domain.StatusActive,
	"ouvert":                   domain.StatusActive,
	"abierto":                  domain.StatusActive,
	"closed":                   domain.StatusComplete,
	"complete":                 domain.StatusComplete,
	"completed":                domain.StatusComplete,
	"awarded":                  domain.StatusComplete,
	"expired":                  domain.StatusComplete,
	"archived":                 domain.StatusComplete,
	"inactive":                 domain.StatusComplete,
	"ferme":                    domain.StatusComplete,
	"cerrado":                  domain.StatusComplete,
	"attribue":                 domain.StatusComplete,
	"cancelled":                domain.StatusCancelled,
	"canceled":                 domain.StatusCancelled,
	"withdrawn":                domain.StatusCancelled,
	"annule":                   domain.StatusCancelled,
	"cancelado":                domain.StatusCancelled,
	"draft":                    domain.StatusPlanned,
	"planned":                  domain.StatusPlanned,
	"forecast":                 domain.StatusPlanned,
	"pipeline":                 domain.StatusPlanned,
	"pre notice":               domain.StatusPlanned,
	"prior information notice": domain.StatusPlanned,
	"pending":                  domain.StatusPlanned,
	"upcoming":                 domain.StatusPlanned,
}

var (
	cancelledRe = regexp.MustCompile(`(?i)\b(?:cancell?ed|cancellation|withdrawn|annul[ée]e?|annulation)\b`)
	awardedRe   = regexp.MustCompile(`(?i)\b(?:contract award|awarded to|award notice|notice of award|attribution)\b`)
	plannedRe   = regexp.MustCompile(`(?i)\b(?:general procurement notice|prior information notice|procurement plan|forecast)\b`)
)

// StandardStatus maps a raw status column value onto the status vocabulary.
func StandardStatus(raw string) (domain.TenderStatus, bool) {
	key := foldKey(raw)
	if key == "" {
		return domain.StatusUnknown, false
	}
	if st, ok := statusMap[key]; ok {
		return st, true
	}
	return domain.StatusUnknown, false
}

// ExtractStatus derives a status from notice text and dates. Explicit cancellation and award
// wording wins over dates; otherwise a future deadline means active, a past one complete.
func ExtractStatus(text string, deadline *time.Time, now time.Time) domain.TenderStatus {
	switch {
	case cancelledRe.MatchString(text):
		return domain.StatusCancelled
	case awardedRe.MatchString(text):
		return domain.StatusComplete
	}

	if deadline != nil {
		if deadline.Before(dateOf(now)) {
			return domain.StatusComplete
		}
		return domain.StatusActive
	}

	if plannedRe.MatchString(text) {
		return domain.StatusPlanned
	}

	return domain.StatusUnknown
}

// ResolveStatus prefers the explicit column and falls back to ExtractStatus.
func ResolveStatus(raw, text string, deadline *time.Time, now time.Time) domain.TenderStatus {
	if st, ok := StandardStatus(raw); ok {
		return st
	}
	return ExtractStatus(text, deadline, now)
}

var tenderTypeRules = []struct {
	re *regexp.Regexp
	tt domain.TenderType
}{
	{regexp.MustCompile(`(?i)consult|advisory|technical assistance|\bstudy\b|\bstudies\b|\betudes?\b|feasibility|\bcqs\b|\bqcbs\b|\bexperts?\b`), domain.TenderTypeConsulting},
	{regexp.MustCompile(`(?i)\bworks?\b|construction|rehabilitation|civil|\btravaux\b|\bobras?\b|building of|road|bridge`), domain.TenderTypeWorks},
	{regexp.MustCompile(`(?i)\bgoods\b|supply|supplies|equipment|procurement of|purchase|\bfournitures?\b|\bbienes\b|vehicles?`), domain.TenderTypeGoods},
	{regexp.MustCompile(`(?i)\bservices?\b|non[- ]consulting|maintenance|cleaning|security|catering|\bprestations?\b`), domain.TenderTypeServices},
}

// ClassifyTenderType maps the first candidate that matches onto the tender type vocabulary.
func ClassifyTenderType(candidates ...string) domain.TenderType {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		for _, r := range tenderTypeRules {
			if r.re.MatchString(c) {
				return r.tt
			}
		}
	}
	return domain.TenderTypeUnknown
}
