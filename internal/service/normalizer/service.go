package normalizer

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/mapper"
	"github.com/ougirez/tender-normalizer/internal/pkg/store"
	"github.com/ougirez/tender-normalizer/internal/pkg/translation"
)

const (
	defaultBatchSize     = 1000
	defaultMaxRetries    = 3
	defaultRetryInterval = 500 * time.Millisecond
)

type Options struct {
	BatchSize int
	Workers   int
	// MaxRetries is the number of upsert retries after the first failed attempt of a batch.
	MaxRetries    uint64
	RetryInterval time.Duration
	// Timeout bounds a whole Run. Zero means no bound.
	Timeout time.Duration
	// Translate is used by NormalizeOne.
	Translate bool
	Clock     func() time.Time
}

type Service struct {
	store       store.Store
	registry    *mapper.Registry
	translators translation.Factory
	validate    *validator.Validate
	opts        Options
}

func NewNormalizerService(
	store store.Store,
	registry *mapper.Registry,
	translators translation.Factory,
	opts Options,
) *Service {
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = defaultRetryInterval
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if translators == nil {
		translators = translation.NoopFactory
	}

	return &Service{
		store:       store,
		registry:    registry,
		translators: translators,
		validate:    validator.New(),
		opts:        opts,
	}
}

type RunOptions struct {
	Tables    []domain.SourceKind
	BatchSize int
	// Limit caps the number of rows read per table. Zero means unlimited.
	Limit          int
	SkipNormalized bool
	Translate      bool
	Workers        int
}

type TableStats struct {
	Table          domain.SourceKind `json:"table"`
	Fetched        int               `json:"fetched"`
	Processed      int               `json:"processed"`
	Skipped        int               `json:"skipped"`
	Failed         int               `json:"failed"`
	TitleFallbacks int               `json:"title_fallbacks"`
	Batches        int               `json:"batches"`
	FailedBatches  int               `json:"failed_batches"`
	Duration       time.Duration     `json:"duration"`
}

type RunReport struct {
	StartedAt   time.Time         `json:"started_at"`
	FinishedAt  time.Time         `json:"finished_at"`
	Tables      []*TableStats     `json:"tables"`
	Translation translation.Stats `json:"translation"`
}

// Totals sums the per-table counters.
func (r *RunReport) Totals() TableStats {
	var total TableStats
	for _, t := range r.Tables {
		total.Fetched += t.Fetched
		total.Processed += t.Processed
		total.Skipped += t.Skipped
		total.Failed += t.Failed
		total.TitleFallbacks += t.TitleFallbacks
		total.Batches += t.Batches
		total.FailedBatches += t.FailedBatches
		total.Duration += t.Duration
	}
	return total
}

func (r *RunReport) FailedBatches() int {
	return r.Totals().FailedBatches
}

// runContext holds everything that lives for exactly one run.
type runContext struct {
	env        mapper.Env
	translator translation.Translator
	translate  bool
	batchSize  int
	workers    int
}

func (s *Service) newRunContext(env mapper.Env, translate bool, batchSize, workers int) *runContext {
	rc := &runContext{
		env:       env,
		translate: translate,
		batchSize: batchSize,
		workers:   workers,
	}
	if translate {
		rc.translator = s.translators()
	} else {
		rc.translator = translation.Noop{}
	}
	if rc.batchSize <= 0 {
		rc.batchSize = s.opts.BatchSize
	}
	if rc.workers <= 0 {
		rc.workers = s.opts.Workers
	}

	return rc
}
