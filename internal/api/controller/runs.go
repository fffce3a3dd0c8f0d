package controller

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ougirez/tender-normalizer/internal/domain"
	"github.com/ougirez/tender-normalizer/internal/pkg/constants"
	"github.com/ougirez/tender-normalizer/internal/pkg/logger"
	"github.com/ougirez/tender-normalizer/internal/pkg/utils"
	"github.com/ougirez/tender-normalizer/internal/service/normalizer"
)

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

type Run struct {
	ID         uuid.UUID             `json:"id"`
	Status     RunStatus             `json:"status"`
	Request    StartRunRequest       `json:"request"`
	Report     *normalizer.RunReport `json:"report,omitempty"`
	Error      string                `json:"error,omitempty"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt *time.Time            `json:"finished_at,omitempty"`
}

// runRegistry tracks background runs. Only one run may be active at a time.
type runRegistry struct {
	mu     sync.Mutex
	runs   map[uuid.UUID]*Run
	active *uuid.UUID
}

func newRunRegistry() *runRegistry {
	return &runRegistry{runs: make(map[uuid.UUID]*Run)}
}

func (r *runRegistry) start(req StartRunRequest) (*Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active != nil {
		return nil, constants.ErrRunInProgress
	}

	run := &Run{
		ID:        uuid.New(),
		Status:    RunStatusRunning,
		Request:   req,
		StartedAt: time.Now().UTC(),
	}
	r.runs[run.ID] = run
	r.active = &run.ID

	return run, nil
}

func (r *runRegistry) finish(id uuid.UUID, report *normalizer.RunReport, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, ok := r.runs[id]
	if !ok {
		return
	}

	run.FinishedAt = utils.Ptr(time.Now().UTC())
	run.Report = report
	run.Status = RunStatusSucceeded
	if err != nil {
		run.Status = RunStatusFailed
		run.Error = err.Error()
	}
	r.active = nil
}

func (r *runRegistry) get(id uuid.UUID) (Run, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, ok := r.runs[id]
	if !ok {
		return Run{}, false
	}
	return *run, true
}

type StartRunRequest struct {
	Tables     []string `json:"tables"`
	BatchSize  int      `json:"batch_size" validate:"omitempty,min=1,max=10000"`
	Limit      int      `json:"limit" validate:"omitempty,min=0"`
	ProcessAll bool     `json:"process_all"`
	Translate  bool     `json:"translate"`
}

type StartRunResponse struct {
	RunID uuid.UUID `json:"run_id"`
}

func (c *Controller) StartRun(ctx echo.Context) error {
	var req StartRunRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	tables, err := domain.ParseSourceKinds(req.Tables)
	if err != nil {
		return err
	}

	run, err := c.runs.start(req)
	if err != nil {
		return err
	}

	opts := normalizer.RunOptions{
		Tables:         tables,
		BatchSize:      req.BatchSize,
		Limit:          req.Limit,
		SkipNormalized: !req.ProcessAll,
		Translate:      req.Translate,
	}

	go func(id uuid.UUID) {
		runCtx := logger.WithFields(c.baseCtx, zap.String("run_id", id.String()))

		report, runErr := c.normalizer.Run(runCtx, opts)
		if runErr != nil && !errors.Is(runErr, constants.ErrBatchFailed) {
			logger.Errorf(runCtx, "controller.StartRun, run_id-%s: %v", id, runErr)
		}
		c.runs.finish(id, report, runErr)
	}(run.ID)

	return ctx.JSON(http.StatusAccepted, StartRunResponse{RunID: run.ID})
}

func (c *Controller) GetRun(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return constants.ErrBadRequest
	}

	run, ok := c.runs.get(id)
	if !ok {
		return constants.ErrRunNotFound
	}

	return ctx.JSON(http.StatusOK, run)
}
