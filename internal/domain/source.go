package domain

import (
	"fmt"
	"strings"

	"github.com/ougirez/tender-normalizer/internal/pkg/constants"
)

// SourceKind is the raw table name of an upstream source. It is also written into
// unified_tenders.source_table.
type SourceKind string

const (
	SourceTED       SourceKind = "tedeu"
	SourceWorldBank SourceKind = "wb"
	SourceAFD       SourceKind = "afd"
	SourceADB       SourceKind = "adb"
	SourceIADB      SourceKind = "iadb"
	SourceAFDB      SourceKind = "afdb"
	SourceAIIB      SourceKind = "aiib"
	SourceSAMGov    SourceKind = "samgov"
	SourceUNGM      SourceKind = "ungm"
)

// AllSources is the processing order used when no tables are requested.
var AllSources = []SourceKind{
	SourceTED, SourceUNGM, SourceSAMGov, SourceWorldBank, SourceADB,
	SourceAFD, SourceAFDB, SourceAIIB, SourceIADB,
}

var sourceAliases = map[string]SourceKind{
	"ted_eu":    SourceTED,
	"ted":       SourceTED,
	"sam_gov":   SourceSAMGov,
	"sam":       SourceSAMGov,
	"worldbank": SourceWorldBank,
}

func ParseSourceKind(s string) (SourceKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range AllSources {
		if string(k) == s {
			return k, nil
		}
	}
	if k, ok := sourceAliases[s]; ok {
		return k, nil
	}

	return "", fmt.Errorf("%q: %w", s, constants.ErrUnknownSource)
}

func ParseSourceKinds(names []string) ([]SourceKind, error) {
	if len(names) == 0 {
		return AllSources, nil
	}

	kinds := make([]SourceKind, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		k, err := ParseSourceKind(n)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}

	return kinds, nil
}

func (k SourceKind) Table() string {
	return string(k)
}

// IDColumn is the primary key column of the source table.
func (k SourceKind) IDColumn() string {
	switch k {
	case SourceIADB:
		return "project_number"
	case SourceSAMGov:
		return "opportunity_id"
	default:
		return "id"
	}
}

// Method is the normalized_method tag of the mapper for this source.
func (k SourceKind) Method() string {
	switch k {
	case SourceTED:
		return "ted_eu_mapper"
	case SourceSAMGov:
		return "sam_gov_mapper"
	default:
		return string(k) + "_mapper"
	}
}

func (k SourceKind) DisplayName() string {
	switch k {
	case SourceTED:
		return "TED.eu"
	case SourceWorldBank:
		return "World Bank"
	case SourceSAMGov:
		return "SAM.gov"
	default:
		return strings.ToUpper(string(k))
	}
}

// SourceRow is one raw row fetched from a source table.
type SourceRow struct {
	SourceID string `db:"source_id"`
	Payload  []byte `db:"payload"`
}
