package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/ougirez/tender-normalizer/internal/domain"
)

type FetchBatchOpts struct {
	Table domain.SourceKind
	Limit uint64
	// SkipNormalized leaves out rows that already have a unified tender.
	SkipNormalized bool
	// SingleID selects exactly one row and ignores SkipNormalized.
	SingleID string
	// AfterID is the keyset cursor: only rows with a greater id are returned.
	AfterID string
}

// FetchBatch selects rows as (id::text, to_jsonb(row)). Table and id column come from the
// closed SourceKind set, so they are safe to format into the query.
func (s *store) FetchBatch(ctx context.Context, opts FetchBatchOpts) ([]domain.SourceRow, error) {
	idExpr := fmt.Sprintf("t.%s::text", opts.Table.IDColumn())

	query := builder().Select(idExpr+" as source_id", "to_jsonb(t) as payload").
		From(opts.Table.Table() + " t").
		OrderBy(idExpr)

	switch {
	case opts.SingleID != "":
		query = query.Where(sq.Expr(idExpr+" = ?", opts.SingleID))
	case opts.SkipNormalized:
		query = query.Where(sq.Expr(
			fmt.Sprintf("not exists (select 1 from %s u where u.source_table = ? and u.source_id = %s)", tableUnifiedTenders, idExpr),
			string(opts.Table),
		))
	}

	if opts.AfterID != "" {
		query = query.Where(sq.Expr(idExpr+" > ?", opts.AfterID))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var rows []domain.SourceRow
	if err := s.pool.Selectx(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("store.FetchBatch, table-%s: %w", opts.Table, wrapErr(err))
	}

	return rows, nil
}

func (s *store) CountNormalized(ctx context.Context, table domain.SourceKind) (int, error) {
	query := builder().Select("count(*)").
		From(tableUnifiedTenders).
		Where(sq.Eq{"source_table": string(table)})

	var count int
	if err := s.pool.Getx(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("store.CountNormalized, table-%s: %w", table, wrapErr(err))
	}

	return count, nil
}
