package fixer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/extract"
	"github.com/ougirez/tender-normalizer/internal/pkg/logger"
	"github.com/ougirez/tender-normalizer/internal/pkg/store"
	"github.com/ougirez/tender-normalizer/internal/pkg/utils"
)

const (
	defaultBatchSize   = 1000
	minOrganizationLen = 3
	nullCountry        = "<null>"
	errorFallback      = "error_fallback"
)

type Service struct {
	store store.Store
}

func NewFixerService(store store.Store) *Service {
	return &Service{store: store}
}

type FixOptions struct {
	BatchSize int  `json:"batch_size" validate:"omitempty,min=1,max=10000"`
	DryRun    bool `json:"dry_run"`
}

type FixReport struct {
	Checked int  `json:"checked"`
	Fixed   int  `json:"fixed"`
	DryRun  bool `json:"dry_run"`
	// ByCountry считает исправления по новому значению страны.
	ByCountry map[string]int `json:"by_country,omitempty"`
}

// FixCountries re-canonicalizes the country of every stored tender and repairs empty or
// legacy normalized_method values.
func (s *Service) FixCountries(ctx context.Context, opts FixOptions) (*FixReport, error) {
	report := &FixReport{DryRun: opts.DryRun, ByCountry: make(map[string]int)}

	err := s.walk(ctx, opts, report, func(t *domain.UnifiedTender) (store.TenderFix, bool) {
		fix, changed := fixTender(t)
		if changed {
			key := nullCountry
			if fix.Country != nil {
				key = *fix.Country
			}
			report.ByCountry[key]++
		}
		return fix, changed
	})
	if err != nil {
		return report, fmt.Errorf("fixer.FixCountries: %w", err)
	}
	return report, nil
}

// FixOrganizations backfills organization_name on tenders that have none (or a value
// shorter than three characters) from the project name, then the title.
func (s *Service) FixOrganizations(ctx context.Context, opts FixOptions) (*FixReport, error) {
	report := &FixReport{DryRun: opts.DryRun}

	err := s.walk(ctx, opts, report, fixOrganization)
	if err != nil {
		return report, fmt.Errorf("fixer.FixOrganizations: %w", err)
	}
	return report, nil
}

// walk visits every stored tender in id order, one keyset page at a time, and writes the
// fixes each page produced unless the run is dry.
func (s *Service) walk(ctx context.Context, opts FixOptions, report *FixReport,
	fixFn func(t *domain.UnifiedTender) (store.TenderFix, bool),
) error {
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}

	var cursor uuid.UUID
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		page, err := s.store.ListTendersPage(ctx, store.ListTendersPageOpts{
			AfterID: cursor,
			Limit:   uint64(opts.BatchSize),
		})
		if err != nil {
			return err
		}
		if len(page) == 0 {
			return nil
		}
		cursor = page[len(page)-1].ID

		var fixes []store.TenderFix
		for _, t := range page {
			report.Checked++
			if fix, changed := fixFn(t); changed {
				fixes = append(fixes, fix)
			}
		}
		report.Fixed += len(fixes)

		if len(fixes) > 0 && !opts.DryRun {
			if err = s.store.UpdateTenderFixes(ctx, fixes); err != nil {
				return err
			}
		}

		logger.Infof(ctx, "fixer: checked-%d fixed-%d dry_run-%t", report.Checked, report.Fixed, opts.DryRun)

		if len(page) < opts.BatchSize {
			return nil
		}
	}
}

func currentFix(t *domain.UnifiedTender) store.TenderFix {
	return store.TenderFix{
		ID:               t.ID,
		Country:          t.Country,
		NormalizedMethod: t.NormalizedMethod,
		OrganizationName: t.OrganizationName,
	}
}

func fixOrganization(t *domain.UnifiedTender) (store.TenderFix, bool) {
	fix := currentFix(t)
	if t.OrganizationName != nil && len([]rune(strings.TrimSpace(*t.OrganizationName))) >= minOrganizationLen {
		return fix, false
	}

	for _, text := range []string{utils.Deref(t.ProjectName), t.Title} {
		if org, ok := extract.OrganizationFromText(text); ok {
			fix.OrganizationName = &org
			return fix, true
		}
	}
	return fix, false
}

func fixTender(t *domain.UnifiedTender) (store.TenderFix, bool) {
	fix := currentFix(t)
	changed := false

	if t.Country != nil {
		canonical, ok := extract.CanonicalizeCountry(*t.Country)
		switch {
		case !ok:
			fix.Country = nil
			changed = true
		case canonical != *t.Country:
			fix.Country = &canonical
			changed = true
		}
	}

	if method, ok := repairMethod(t.SourceTable, t.NormalizedMethod); ok {
		fix.NormalizedMethod = method
		changed = true
	}

	return fix, changed
}

// repairMethod returns the mapper tag for methods that are empty or predate the current
// "<mapper>[+suffix]" naming.
func repairMethod(table domain.SourceKind, method string) (string, bool) {
	kind, err := domain.ParseSourceKind(string(table))
	if err != nil {
		return "", false
	}

	want := kind.Method()
	if method == want || method == errorFallback || strings.HasPrefix(method, want+"+") {
		return "", false
	}
	return want, true
}
