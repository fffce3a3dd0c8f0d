package controller

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/tender-normalizer/internal/service/fixer"
)

func (c *Controller) FixCountries(ctx echo.Context) error {
	return c.runFix(ctx, c.fixer.FixCountries)
}

func (c *Controller) FixOrganizations(ctx echo.Context) error {
	return c.runFix(ctx, c.fixer.FixOrganizations)
}

func (c *Controller) runFix(ctx echo.Context, fix func(context.Context, fixer.FixOptions) (*fixer.FixReport, error)) error {
	var opts fixer.FixOptions
	if err := ctx.Bind(&opts); err != nil {
		return err
	}
	if err := ctx.Validate(&opts); err != nil {
		return err
	}

	report, err := fix(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report)
}

func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
