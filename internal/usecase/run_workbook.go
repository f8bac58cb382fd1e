package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/ports"
	ucassert "github.com/aalvaropc/kata/internal/usecase/assert"
)

type RunWorkbook struct {
	workbooks ports.WorkbookLoader
	runner    ports.CaseRunner
	store     ports.ArtifactStore

	log         *slog.Logger
	concurrency int
	newID       func() string
	now         func() time.Time
}

type RunOption func(*RunWorkbook)

// WithConcurrency bounds how many cases run at once. Values below 1 mean 1.
func WithConcurrency(n int) RunOption {
	return func(uc *RunWorkbook) {
		if n < 1 {
			n = 1
		}
		uc.concurrency = n
	}
}

func WithLogger(l *slog.Logger) RunOption {
	return func(uc *RunWorkbook) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithIDGenerator and WithClock are useful for tests.
func WithIDGenerator(f func() string) RunOption {
	return func(uc *RunWorkbook) { uc.newID = f }
}

func WithClock(now func() time.Time) RunOption {
	return func(uc *RunWorkbook) { uc.now = now }
}

// NewRunWorkbook builds the use case. A nil store disables saving.
func NewRunWorkbook(wl ports.WorkbookLoader, rr ports.CaseRunner, store ports.ArtifactStore, opts ...RunOption) *RunWorkbook {
	uc := &RunWorkbook{
		workbooks:   wl,
		runner:      rr,
		store:       store,
		log:         slog.New(slog.NewJSONHandler(io.Discard, nil)),
		concurrency: domain.DefaultConfig().Defaults.Concurrency,
		newID:       uuid.NewString,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs every case of the workbook at path and evaluates its expectations.
// Results keep workbook order regardless of completion order. The returned id is
// the stored artifact id, empty when nothing was saved.
func (uc *RunWorkbook) Execute(ctx context.Context, workbookPath string) (domain.RunResult, string, error) {
	wb, err := uc.workbooks.LoadWorkbook(workbookPath)
	if err != nil {
		return domain.RunResult{}, "", err
	}

	run := domain.RunResult{
		ID:           uc.newID(),
		WorkbookName: wb.Name,
		WorkbookPath: workbookPath,
		StartedAt:    uc.now(),
		Results:      make([]domain.CaseResult, len(wb.Cases)),
	}
	log := uc.log.With("run_id", run.ID, "workbook", wb.Name)

	if err := ctx.Err(); err != nil {
		run.EndedAt = uc.now()
		return run, "", err
	}

	log.Info("run.started", "cases", len(wb.Cases), "concurrency", uc.concurrency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for i, c := range wb.Cases {
		i, c := i, c
		g.Go(func() error {
			res, err := uc.runner.Run(gctx, c)
			if err != nil {
				return fmt.Errorf("case %q: %w", c.Name, err)
			}

			checks := ucassert.Evaluate(c.Expect, c.MaxLatencyMS, res.LatencyMS, res.Output)
			res.Assertions = append(res.Assertions, checks...)
			if res.Assertions == nil {
				res.Assertions = []domain.AssertionResult{}
			}

			// Each goroutine owns one index.
			run.Results[i] = res

			log.Debug("case.finished",
				"case", c.Name,
				"kind", c.Kind,
				"latency_ms", res.LatencyMS,
				"failed", res.Failed(),
			)
			return nil
		})
	}

	err = g.Wait()
	run.EndedAt = uc.now()
	if err != nil {
		log.Error("run.aborted", "err", err)
		return run, "", err
	}

	log.Info("run.finished",
		"failures", run.Failures(),
		"duration_ms", run.EndedAt.Sub(run.StartedAt).Milliseconds(),
	)

	if uc.store == nil {
		return run, "", nil
	}

	id, err := uc.store.SaveRun(run)
	if err != nil {
		log.Error("run.save_failed", "err", err)
		return run, "", err
	}
	return run, id, nil
}
