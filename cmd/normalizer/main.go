package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ougirez/tender-normalizer/internal/config"
	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/mapper"
	"github.com/ougirez/tender-normalizer/internal/pkg/constants"
	"github.com/ougirez/tender-normalizer/internal/pkg/logger"
	"github.com/ougirez/tender-normalizer/internal/pkg/store"
	"github.com/ougirez/tender-normalizer/internal/pkg/store/migrations"
	"github.com/ougirez/tender-normalizer/internal/pkg/store/xpgx"
	"github.com/ougirez/tender-normalizer/internal/service/fixer"
	"github.com/ougirez/tender-normalizer/internal/service/normalizer"
)

const (
	exitOK     = 0
	exitFailed = 1

	testModeLimit = 2
)

type flags struct {
	tables       []string
	limit        int
	processAll   bool
	source       string
	id           string
	test         bool
	fixCountries bool
	fixOrgs      bool
	dryRun       bool
	migrate      bool
}

func parseFlags() *flags {
	f := &flags{}
	fs := pflag.NewFlagSet("normalizer", pflag.ExitOnError)

	fs.StringSliceVar(&f.tables, "tables", nil, "comma separated source tables, all when empty")
	fs.Int("batch-size", 1000, "rows per batch")
	fs.IntVar(&f.limit, "limit", 0, "max rows per table, 0 for no limit")
	fs.BoolVar(&f.processAll, "process-all", false, "renormalize rows that already have a unified tender")
	fs.StringVar(&f.source, "source", "", "source table for single record mode")
	fs.StringVar(&f.id, "id", "", "source id for single record mode")
	fs.BoolVar(&f.test, "test", false, "process only 2 rows per table")
	fs.Bool("translate", false, "translate non-English text")
	fs.Int("workers", 1, "parallel mapping workers")
	fs.BoolVar(&f.fixCountries, "fix-countries", false, "re-canonicalize stored countries and exit")
	fs.BoolVar(&f.fixOrgs, "fix-organizations", false, "backfill missing organization names from project name and title, then exit")
	fs.BoolVar(&f.dryRun, "dry-run", false, "with --fix-countries or --fix-organizations: report without writing")
	fs.BoolVar(&f.migrate, "migrate", false, "apply migrations before running")

	_ = fs.Parse(os.Args[1:])

	_ = viper.BindPFlag(constants.ViperBatchSize, fs.Lookup("batch-size"))
	_ = viper.BindPFlag(constants.ViperTranslationEnabled, fs.Lookup("translate"))
	_ = viper.BindPFlag(constants.ViperWorkers, fs.Lookup("workers"))

	return f
}

func runFixes(ctx context.Context, svc *fixer.Service, f *flags, opts fixer.FixOptions) int {
	if f.fixCountries {
		report, err := svc.FixCountries(ctx, opts)
		if err != nil {
			logger.Errorf(ctx, "FixCountries: %v", err)
			return exitFailed
		}
		logger.Infof(ctx, "fix countries: checked-%d fixed-%d dry_run-%t by_country-%v",
			report.Checked, report.Fixed, report.DryRun, report.ByCountry)
	}

	if f.fixOrgs {
		report, err := svc.FixOrganizations(ctx, opts)
		if err != nil {
			logger.Errorf(ctx, "FixOrganizations: %v", err)
			return exitFailed
		}
		logger.Infof(ctx, "fix organizations: checked-%d fixed-%d dry_run-%t",
			report.Checked, report.Fixed, report.DryRun)
	}

	return exitOK
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config.Load: %v\n", err)
		return exitFailed
	}

	if err = logger.Init(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Fprintf(os.Stderr, "logger.Init: %v\n", err)
		return exitFailed
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := xpgx.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Errorf(ctx, "xpgx.NewPool: %v", err)
		return exitFailed
	}
	defer pool.Close()

	if f.migrate {
		pgxPool, _ := xpgx.PgxPool(pool)
		if err = migrations.Run(ctx, pgxPool); err != nil {
			logger.Errorf(ctx, "migrations.Run: %v", err)
			return exitFailed
		}
	}

	st := store.NewStore(pool)

	if f.fixCountries || f.fixOrgs {
		return runFixes(ctx, fixer.NewFixerService(st), f, fixer.FixOptions{
			BatchSize: cfg.BatchSize,
			DryRun:    f.dryRun,
		})
	}

	svc := normalizer.NewNormalizerService(st, mapper.NewRegistry(), cfg.TranslationFactory(), cfg.NormalizerOptions())

	if f.source != "" || f.id != "" {
		return normalizeOne(ctx, svc, f)
	}

	tables, err := domain.ParseSourceKinds(f.tables)
	if err != nil {
		logger.Errorf(ctx, "--tables: %v", err)
		return exitFailed
	}

	limit := f.limit
	if f.test {
		limit = testModeLimit
	}

	report, err := svc.Run(ctx, normalizer.RunOptions{
		Tables:         tables,
		BatchSize:      cfg.BatchSize,
		Limit:          limit,
		SkipNormalized: !f.processAll,
		Translate:      cfg.TranslationEnabled,
		Workers:        cfg.Workers,
	})
	if report != nil {
		logReport(ctx, report)
	}
	if err != nil {
		if errors.Is(err, constants.ErrBatchFailed) {
			logger.Errorf(ctx, "run finished with failed batches: %v", err)
		} else {
			logger.Errorf(ctx, "run aborted: %v", err)
		}
		return exitFailed
	}

	return exitOK
}

func normalizeOne(ctx context.Context, svc *normalizer.Service, f *flags) int {
	if f.source == "" || f.id == "" {
		logger.Error(ctx, "--source and --id must be given together")
		return exitFailed
	}

	kind, err := domain.ParseSourceKind(f.source)
	if err != nil {
		logger.Errorf(ctx, "--source: %v", err)
		return exitFailed
	}

	tender, err := svc.NormalizeOne(ctx, kind, f.id)
	if err != nil {
		logger.Errorf(ctx, "NormalizeOne: %v", err)
		return exitFailed
	}

	logger.FromContext(ctx).Infow("normalized",
		zap.String("id", tender.ID.String()),
		zap.String("title", tender.Title),
		zap.String("normalized_method", tender.NormalizedMethod),
	)
	return exitOK
}

func logReport(ctx context.Context, report *normalizer.RunReport) {
	for _, t := range report.Tables {
		logger.FromContext(ctx).Infow("table done",
			zap.String("source_table", string(t.Table)),
			zap.Int("fetched", t.Fetched),
			zap.Int("processed", t.Processed),
			zap.Int("skipped", t.Skipped),
			zap.Int("failed", t.Failed),
			zap.Int("title_fallbacks", t.TitleFallbacks),
			zap.Int("failed_batches", t.FailedBatches),
			zap.Duration("duration", t.Duration),
		)
	}

	tr := report.Translation
	logger.Infof(ctx, "translation: total-%d success-%d fallback-%d already_english-%d failed-%d",
		tr.TotalRequests, tr.Success, tr.FallbackUsed, tr.AlreadyEnglish, tr.Failed)
}
