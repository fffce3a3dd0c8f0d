package controller

import (
	"context"

	"github.com/ougirez/tender-normalizer/internal/pkg/store"
	"github.com/ougirez/tender-normalizer/internal/service/fixer"
	"github.com/ougirez/tender-normalizer/internal/service/normalizer"
)

type Controller struct {
	normalizer *normalizer.Service
	fixer      *fixer.Service
	store      store.Store
	runs       *runRegistry
	// baseCtx outlives requests: background runs are bound to it.
	baseCtx context.Context
}

func NewController(
	baseCtx context.Context,
	normalizerService *normalizer.Service,
	fixerService *fixer.Service,
	store store.Store,
) *Controller {
	return &Controller{
		normalizer: normalizerService,
		fixer:      fixerService,
		store:      store,
		runs:       newRunRegistry(),
		baseCtx:    baseCtx,
	}
}
