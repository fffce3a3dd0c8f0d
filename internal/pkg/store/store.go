package store

import (
	"context"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	// FetchBatch reads one keyset page of raw rows from a source table.
	FetchBatch(ctx context.Context, opts FetchBatchOpts) ([]domain.SourceRow, error)
	CountNormalized(ctx context.Context, table domain.SourceKind) (int, error)

	// UpsertTenders writes a batch with a single statement. Keys must be unique within the batch.
	UpsertTenders(ctx context.Context, tenders []*domain.UnifiedTender) error
	UpsertTender(ctx context.Context, tender *domain.UnifiedTender) error
	GetTender(ctx context.Context, key domain.Key) (*domain.UnifiedTender, error)

	ListTendersPage(ctx context.Context, opts ListTendersPageOpts) ([]*domain.UnifiedTender, error)
	UpdateTenderFixes(ctx context.Context, fixes []TenderFix) error
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
