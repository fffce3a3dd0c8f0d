package mapper

import (
	"context"
	"time"
)

// Env is the per-run mapping context. Mappers read the clock only through Now, so the same
// record mapped within one run always yields the same tender.
type Env struct {
	Now time.Time
	Ctx context.Context
}

func NewEnv(ctx context.Context, now time.Time) Env {
	return Env{Now: now.UTC(), Ctx: ctx}
}

func (e Env) context() context.Context {
	if e.Ctx == nil {
		return context.Background()
	}
	return e.Ctx
}
