package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/ougirez/tender-normalizer/internal/api/controller"
	"github.com/ougirez/tender-normalizer/internal/pkg/store"
	"github.com/ougirez/tender-normalizer/internal/service/fixer"
	"github.com/ougirez/tender-normalizer/internal/service/normalizer"
)

type APIService struct {
	router *echo.Echo
	// cancel stops background runs on shutdown.
	cancel context.CancelFunc
}

// Serve blocks until the server stops. After Shutdown it returns http.ErrServerClosed.
func (svc *APIService) Serve(addr string) error {
	return svc.router.Start(addr)
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	svc.cancel()
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) Router() *echo.Echo {
	return svc.router
}

func NewAPIService(
	store store.Store,
	normalizerService *normalizer.Service,
	fixerService *fixer.Service,
) (*APIService, error) {
	baseCtx, cancel := context.WithCancel(context.Background())
	svc := &APIService{router: echo.New(), cancel: cancel}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.WARN)
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = JSONSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(baseCtx, normalizerService, fixerService, store)

	api.GET("/health", cntrl.Health)

	runs := api.Group("/runs")
	runs.POST("", cntrl.StartRun, svc.AdminMiddleware)
	runs.GET("/:id", cntrl.GetRun)

	api.POST("/normalize/:source/:id", cntrl.NormalizeOne, svc.AdminMiddleware)
	api.GET("/tenders/:source/:id", cntrl.GetTender)

	fix := api.Group("/fix", svc.AdminMiddleware)
	fix.POST("/countries", cntrl.FixCountries)
	fix.POST("/organizations", cntrl.FixOrganizations)

	return svc, nil
}
