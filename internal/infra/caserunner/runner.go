package caserunner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/kata"
	"github.com/aalvaropc/kata/internal/ports"
)

// Runner executes workbook cases in-process against the kata operations.
type Runner struct {
	now func() time.Time
}

type Option func(*Runner)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

func New(opts ...Option) *Runner {
	r := &Runner{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.CaseRunner = (*Runner)(nil)

func (r *Runner) Run(ctx context.Context, c domain.Case) (domain.CaseResult, error) {
	if !c.Kind.Valid() {
		return domain.CaseResult{}, &domain.OpError{
			Op:   "caserunner.run",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("case %q: unsupported kind %q", c.Name, c.Kind),
		}
	}

	result := domain.CaseResult{
		Name:       c.Name,
		Kind:       c.Kind,
		Assertions: []domain.AssertionResult{},
	}

	start := r.now()
	out, err := r.execute(ctx, c)
	result.LatencyMS = r.now().Sub(start).Milliseconds()

	var doc map[string]any
	if err != nil {
		result.Error = domain.NewRunError(err)
		doc = map[string]any{"error": result.Error}
	} else {
		doc = map[string]any{"result": out}
	}

	b, err := json.Marshal(doc)
	if err != nil {
		// Only this case fails; the rest of the workbook keeps running.
		result.Error = &domain.RunError{Kind: domain.RunErrorRender, Message: err.Error()}
		if b, err = json.Marshal(map[string]any{"error": result.Error}); err != nil {
			return domain.CaseResult{}, &domain.OpError{
				Op:   "caserunner.marshal",
				Kind: domain.KindExecution,
				Err:  fmt.Errorf("case %q: %w", c.Name, err),
			}
		}
	}
	result.Output = b
	return result, nil
}

// jsonNumber keeps finite numbers as JSON numbers and spells out the rest
// ("+Inf", "-Inf", "NaN"), which JSON cannot encode.
func jsonNumber(f float64) any {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return f
}

func (r *Runner) execute(ctx context.Context, c domain.Case) (any, error) {
	switch c.Kind {
	case domain.CaseFormat:
		return kata.FormatString(c.Text, c.LetterCase), nil

	case domain.CaseFilterRating:
		return kata.FilterByRating(c.Items), nil

	case domain.CaseConcat:
		return kata.Concat(c.Sequences...), nil

	case domain.CaseVehicle:
		return vehicleLines(c.Car)

	case domain.CaseProcessValue:
		return jsonNumber(kata.ProcessValue(c.Value)), nil

	case domain.CaseMostExpensive:
		p, ok := kata.MostExpensive(c.Products)
		if !ok {
			return nil, nil
		}
		return p, nil

	case domain.CaseDayType:
		return kata.DayType(c.Day), nil

	case domain.CaseSquare:
		v, err := kata.SquareAsync(c.Number).Await(ctx)
		if err != nil {
			return nil, err
		}
		return jsonNumber(v), nil

	default:
		return nil, fmt.Errorf("unsupported kind %q", c.Kind)
	}
}

// vehicleLines captures what the vehicle printers write, one entry per line.
// A car with no model prints only the info line.
func vehicleLines(car domain.Car) ([]string, error) {
	var buf bytes.Buffer
	if err := car.PrintInfo(&buf); err != nil {
		return nil, err
	}
	if car.Model != "" {
		if err := car.PrintModel(&buf); err != nil {
			return nil, err
		}
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"), nil
}
