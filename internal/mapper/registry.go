package mapper

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/constants"
)

const errorFallbackMethod = "error_fallback"

// Mapper turns one raw source row into a unified tender.
type Mapper interface {
	Map(env Env, row domain.SourceRow) (*domain.UnifiedTender, error)
}

// typedMapper decodes the row payload into the source record R and runs the source's
// mapping function over it.
type typedMapper[R any] struct {
	kind domain.SourceKind
	fn   func(Env, *R) *domain.UnifiedTender
}

func (m typedMapper[R]) Map(env Env, row domain.SourceRow) (tender *domain.UnifiedTender, err error) {
	defer func() {
		if r := recover(); r != nil {
			tender = nil
			err = fmt.Errorf("%s source_id-%s: panic: %v: %w", m.kind, row.SourceID, r, constants.ErrMapping)
		}
	}()

	var rec R
	if err := sonic.Unmarshal(row.Payload, &rec); err != nil {
		return nil, fmt.Errorf("sonic.Unmarshal, %s source_id-%s: %v: %w", m.kind, row.SourceID, err, constants.ErrMapping)
	}

	tender = m.fn(env, &rec)
	if row.SourceID != "" {
		tender.SourceID = row.SourceID
	}
	if tender.SourceID == "" {
		return nil, fmt.Errorf("%s: record has no id: %w", m.kind, constants.ErrMapping)
	}
	tender.OriginalData = row.Payload

	return tender, nil
}

func register[R any](reg map[domain.SourceKind]Mapper, kind domain.SourceKind, fn func(Env, *R) *domain.UnifiedTender) {
	reg[kind] = typedMapper[R]{kind: kind, fn: fn}
}

// Registry is the dispatch table from source kind to mapper. It is built once and is
// read-only afterwards.
type Registry struct {
	mappers map[domain.SourceKind]Mapper
}

func NewRegistry() *Registry {
	reg := make(map[domain.SourceKind]Mapper, len(domain.AllSources))

	register(reg, domain.SourceTED, mapTED)
	register(reg, domain.SourceWorldBank, mapWorldBank)
	register(reg, domain.SourceAFD, mapAFD)
	register(reg, domain.SourceADB, mapADB)
	register(reg, domain.SourceIADB, mapIADB)
	register(reg, domain.SourceAFDB, mapAFDB)
	register(reg, domain.SourceAIIB, mapAIIB)
	register(reg, domain.SourceSAMGov, mapSAMGov)
	register(reg, domain.SourceUNGM, mapUNGM)

	return &Registry{mappers: reg}
}

func (r *Registry) Len() int {
	return len(r.mappers)
}

func (r *Registry) Has(kind domain.SourceKind) bool {
	_, ok := r.mappers[kind]
	return ok
}

// Map dispatches row to the mapper of kind.
func (r *Registry) Map(env Env, kind domain.SourceKind, row domain.SourceRow) (*domain.UnifiedTender, error) {
	m, ok := r.mappers[kind]
	if !ok {
		return nil, fmt.Errorf("registry.Map, kind-%s: %w", kind, constants.ErrUnknownSource)
	}
	return m.Map(env, row)
}

// ErrorFallback is the minimal tender describing a record that could not be mapped.
func ErrorFallback(kind domain.SourceKind, sourceID string, cause error) *domain.UnifiedTender {
	reason := "Error: unknown"
	if cause != nil {
		reason = "Error: " + cause.Error()
	}

	return &domain.UnifiedTender{
		Title:            fmt.Sprintf("%s tender %s", kind.DisplayName(), sourceID),
		TenderType:       domain.TenderTypeUnknown,
		Status:           domain.StatusUnknown,
		DocumentLinks:    domain.DocumentLinks{},
		FallbackReason:   &reason,
		NormalizedMethod: errorFallbackMethod,
		NormalizedBy:     normalizedByPrefix + errorFallbackMethod,
		SourceTable:      kind,
		SourceID:         sourceID,
	}
}
