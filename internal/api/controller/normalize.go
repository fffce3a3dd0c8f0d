package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/mapper"
	"github.com/ougirez/tender-normalizer/internal/pkg/constants"
)

type TenderPath struct {
	Source string `param:"source" validate:"required"`
	ID     string `param:"id" validate:"required"`
}

type MappingErrorResponse struct {
	Message  string                `json:"message"`
	Code     int                   `json:"code"`
	Fallback *domain.UnifiedTender `json:"fallback"`
}

// NormalizeOne re-normalizes a single source row. A row that cannot be mapped answers 422
// with the error fallback tender for diagnostics; the fallback is not stored.
func (c *Controller) NormalizeOne(ctx echo.Context) error {
	var path TenderPath
	if err := ctx.Bind(&path); err != nil {
		return err
	}
	if err := ctx.Validate(&path); err != nil {
		return err
	}

	kind, err := domain.ParseSourceKind(path.Source)
	if err != nil {
		return err
	}

	tender, err := c.normalizer.NormalizeOne(ctx.Request().Context(), kind, path.ID)
	if errors.Is(err, constants.ErrMapping) {
		return ctx.JSON(http.StatusUnprocessableEntity, MappingErrorResponse{
			Message:  err.Error(),
			Code:     http.StatusUnprocessableEntity,
			Fallback: mapper.ErrorFallback(kind, path.ID, err),
		})
	}
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, tender)
}

func (c *Controller) GetTender(ctx echo.Context) error {
	var path TenderPath
	if err := ctx.Bind(&path); err != nil {
		return err
	}

	kind, err := domain.ParseSourceKind(path.Source)
	if err != nil {
		return err
	}

	tender, err := c.store.GetTender(ctx.Request().Context(), domain.Key{SourceTable: kind, SourceID: path.ID})
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, tender)
}
