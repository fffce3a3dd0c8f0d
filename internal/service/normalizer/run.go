package normalizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/mapper"
	"github.com/ougirez/tender-normalizer/internal/pkg/constants"
	"github.com/ougirez/tender-normalizer/internal/pkg/logger"
	"github.com/ougirez/tender-normalizer/internal/pkg/store"
)

// Run normalizes every requested table in order. A batch whose upsert exhausts its retries
// is counted and skipped: the cursor has already moved past it, so the table continues with
// the next page and the remaining tables are still processed. The returned error then wraps
// ErrBatchFailed. Rows of a skipped batch are picked up by the next run with skip-normalized.
func (s *Service) Run(ctx context.Context, opts RunOptions) (*RunReport, error) {
	tables := opts.Tables
	if len(tables) == 0 {
		tables = domain.AllSources
	}
	for _, t := range tables {
		if !s.registry.Has(t) {
			return nil, fmt.Errorf("normalizer.Run, table-%s: %w", t, constants.ErrUnknownSource)
		}
	}

	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	startedAt := s.opts.Clock()
	rc := s.newRunContext(mapper.NewEnv(ctx, startedAt), opts.Translate, opts.BatchSize, opts.Workers)
	report := &RunReport{StartedAt: startedAt}

	var failedTables []domain.SourceKind
	for _, table := range tables {
		stats, err := s.runTable(ctx, rc, table, opts)
		report.Tables = append(report.Tables, stats)

		switch {
		case errors.Is(err, constants.ErrBatchFailed):
			failedTables = append(failedTables, table)
		case err != nil:
			report.Translation = rc.translator.Stats()
			report.FinishedAt = s.opts.Clock()
			return report, fmt.Errorf("normalizer.Run, table-%s: %w", table, err)
		}
	}

	report.Translation = rc.translator.Stats()
	report.FinishedAt = s.opts.Clock()

	total := report.Totals()
	logger.Infof(ctx, "normalizer: run finished, processed-%d skipped-%d failed-%d failed_batches-%d",
		total.Processed, total.Skipped, total.Failed, total.FailedBatches)

	if len(failedTables) > 0 {
		return report, fmt.Errorf("normalizer.Run, tables-%v: %w", failedTables, constants.ErrBatchFailed)
	}
	return report, nil
}

func (s *Service) runTable(ctx context.Context, rc *runContext, table domain.SourceKind, opts RunOptions) (*TableStats, error) {
	ctx = logger.WithFields(ctx, zap.String("source_table", string(table)))
	stats := &TableStats{Table: table}
	started := time.Now()
	defer func() {
		stats.Duration = time.Since(started)
	}()

	if opts.SkipNormalized {
		skipped, err := s.store.CountNormalized(ctx, table)
		if err != nil {
			return stats, err
		}
		stats.Skipped = skipped
	}

	logger.Infof(ctx, "normalizer: table-%s started, skip_normalized-%t", table, opts.SkipNormalized)

	var (
		cursor   string
		batchErr error
	)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		pageSize := rc.batchSize
		if opts.Limit > 0 {
			remaining := opts.Limit - stats.Fetched
			if remaining <= 0 {
				break
			}
			pageSize = min(pageSize, remaining)
		}

		rows, err := s.store.FetchBatch(ctx, store.FetchBatchOpts{
			Table:          table,
			Limit:          uint64(pageSize),
			SkipNormalized: opts.SkipNormalized,
			AfterID:        cursor,
		})
		if err != nil {
			return stats, err
		}
		if len(rows) == 0 {
			break
		}

		stats.Fetched += len(rows)
		cursor = rows[len(rows)-1].SourceID

		err = s.processBatch(ctx, rc, table, rows, stats)
		switch {
		case errors.Is(err, constants.ErrBatchFailed):
			batchErr = err
		case err != nil:
			return stats, err
		}

		elapsed := time.Since(started).Seconds()
		rate := 0.0
		if elapsed > 0 {
			rate = float64(stats.Processed) / elapsed
		}
		logger.Infof(ctx, "normalizer: table-%s processed-%d failed-%d rate-%.1f/s", table, stats.Processed, stats.Failed, rate)

		if len(rows) < pageSize {
			break
		}
	}

	return stats, batchErr
}

func (s *Service) processBatch(ctx context.Context, rc *runContext, table domain.SourceKind, rows []domain.SourceRow, stats *TableStats) error {
	stats.Batches++

	tenders, err := s.mapRows(ctx, rc, table, rows)
	if err != nil {
		return err
	}

	batch := make([]*domain.UnifiedTender, 0, len(tenders))
	for i, t := range tenders {
		if t == nil {
			stats.Failed++
			continue
		}
		if err = s.validate.StructCtx(ctx, t); err != nil {
			logger.Errorf(ctx, "normalizer.validate, table-%s, source_id-%s: %v", table, rows[i].SourceID, err)
			stats.Failed++
			continue
		}
		if t.FallbackReason != nil {
			stats.TitleFallbacks++
		}

		if rc.translate {
			s.translateTender(ctx, rc.translator, t)
		}
		t.NormalizedAt = rc.env.Now
		batch = append(batch, t)
	}

	batch = dedupe(batch)
	if len(batch) == 0 {
		return nil
	}

	err = s.withRetry(ctx, func() error {
		return s.store.UpsertTenders(ctx, batch)
	})
	if err != nil {
		stats.FailedBatches++
		logger.Errorf(ctx, "normalizer.processBatch, table-%s, size-%d: %v", table, len(batch), err)
		return fmt.Errorf("table-%s: %v: %w", table, err, constants.ErrBatchFailed)
	}

	stats.Processed += len(batch)
	return nil
}

// mapRows maps rows on up to rc.workers goroutines. The result is index-aligned with rows;
// a nil entry marks a row that failed to map.
func (s *Service) mapRows(ctx context.Context, rc *runContext, table domain.SourceKind, rows []domain.SourceRow) ([]*domain.UnifiedTender, error) {
	out := make([]*domain.UnifiedTender, len(rows))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(rc.workers)
	for i, row := range rows {
		i, row := i, row
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			t, err := s.registry.Map(rc.env, table, row)
			if err != nil {
				logger.Errorf(ctx, "normalizer.mapRows, table-%s, source_id-%s: %v", table, row.SourceID, err)
				return nil
			}
			out[i] = t
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// withRetry runs a store write with exponential backoff, at most 1+MaxRetries times.
func (s *Service) withRetry(ctx context.Context, op func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.opts.RetryInterval

	return backoff.Retry(
		op,
		backoff.WithContext(
			backoff.WithMaxRetries(policy, s.opts.MaxRetries),
			ctx,
		),
	)
}

// dedupe keeps one tender per natural key. The last occurrence wins and takes the position of
// the first.
func dedupe(batch []*domain.UnifiedTender) []*domain.UnifiedTender {
	pos := make(map[domain.Key]int, len(batch))
	out := batch[:0]
	for _, t := range batch {
		if i, ok := pos[t.Key()]; ok {
			out[i] = t
			continue
		}
		pos[t.Key()] = len(out)
		out = append(out, t)
	}
	return out
}
