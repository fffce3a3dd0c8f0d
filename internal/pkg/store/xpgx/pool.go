package xpgx

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/dbscan"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the subset of pgxpool used by the store, extended with squirrel helpers.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row

	Execx(ctx context.Context, sqlizer squirrel.Sqlizer) (pgconn.CommandTag, error)
	Getx(ctx context.Context, dst interface{}, sqlizer squirrel.Sqlizer) error
	Selectx(ctx context.Context, dst interface{}, sqlizer squirrel.Sqlizer) error

	Close()
}

type pool struct {
	*pgxpool.Pool
	scan *pgxscan.API
}

// NewPool подключается к postgres и проверяет соединение.
func NewPool(ctx context.Context, dsn string) (Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}

	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	if err = p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return Wrap(p)
}

// Wrap adapts an existing pgxpool.Pool.
func Wrap(p *pgxpool.Pool) (Pool, error) {
	dbscanAPI, err := pgxscan.NewDBScanAPI(dbscan.WithAllowUnknownColumns(true))
	if err != nil {
		return nil, fmt.Errorf("pgxscan.NewDBScanAPI: %w", err)
	}

	scanAPI, err := pgxscan.NewAPI(dbscanAPI)
	if err != nil {
		return nil, fmt.Errorf("pgxscan.NewAPI: %w", err)
	}

	return &pool{Pool: p, scan: scanAPI}, nil
}

// PgxPool exposes the underlying pool, used for goose migrations.
func PgxPool(p Pool) (*pgxpool.Pool, bool) {
	wrapped, ok := p.(*pool)
	if !ok {
		return nil, false
	}
	return wrapped.Pool, true
}

func (p *pool) Execx(ctx context.Context, sqlizer squirrel.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("ToSql: %w", err)
	}

	return p.Pool.Exec(ctx, query, args...)
}

func (p *pool) Getx(ctx context.Context, dst interface{}, sqlizer squirrel.Sqlizer) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}

	return p.scan.Get(ctx, p.Pool, dst, query, args...)
}

func (p *pool) Selectx(ctx context.Context, dst interface{}, sqlizer squirrel.Sqlizer) error {
	query, args, err := sqlizer.ToSql()
	if err != nil {
		return fmt.Errorf("ToSql: %w", err)
	}

	return p.scan.Select(ctx, p.Pool, dst, query, args...)
}
