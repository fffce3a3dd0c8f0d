package normalizer

import (
	"context"
	"fmt"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/mapper"
	"github.com/ougirez/tender-normalizer/internal/pkg/constants"
	"github.com/ougirez/tender-normalizer/internal/pkg/store"
)

// NormalizeOne maps and upserts a single source row regardless of whether it was normalized
// before, and returns the stored tender.
func (s *Service) NormalizeOne(ctx context.Context, kind domain.SourceKind, sourceID string) (*domain.UnifiedTender, error) {
	if !s.registry.Has(kind) {
		return nil, fmt.Errorf("normalizer.NormalizeOne, table-%s: %w", kind, constants.ErrUnknownSource)
	}

	rows, err := s.store.FetchBatch(ctx, store.FetchBatchOpts{
		Table:    kind,
		Limit:    1,
		SingleID: sourceID,
	})
	if err != nil {
		return nil, fmt.Errorf("normalizer.NormalizeOne: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("normalizer.NormalizeOne, %s source_id-%s: %w", kind, sourceID, constants.ErrDBNotFound)
	}

	rc := s.newRunContext(mapper.NewEnv(ctx, s.opts.Clock()), s.opts.Translate, 1, 1)

	tender, err := s.registry.Map(rc.env, kind, rows[0])
	if err != nil {
		return nil, fmt.Errorf("normalizer.NormalizeOne: %w", err)
	}
	if err = s.validate.StructCtx(ctx, tender); err != nil {
		return nil, fmt.Errorf("normalizer.NormalizeOne, %s source_id-%s: %v: %w", kind, sourceID, err, constants.ErrMapping)
	}

	if rc.translate {
		s.translateTender(ctx, rc.translator, tender)
	}
	tender.NormalizedAt = rc.env.Now

	err = s.withRetry(ctx, func() error {
		return s.store.UpsertTender(ctx, tender)
	})
	if err != nil {
		return nil, fmt.Errorf("normalizer.NormalizeOne, %s source_id-%s: %v: %w", kind, sourceID, err, constants.ErrBatchFailed)
	}

	stored, err := s.store.GetTender(ctx, tender.Key())
	if err != nil {
		return nil, fmt.Errorf("normalizer.NormalizeOne: %w", err)
	}
	return stored, nil
}
