package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// RunErrorKind is a high-level classification of runtime errors.
type RunErrorKind string

const (
	RunErrorUnknown      RunErrorKind = "unknown"
	RunErrorInvalidInput RunErrorKind = "invalid_input"
	RunErrorTimeout      RunErrorKind = "timeout"
	RunErrorCanceled     RunErrorKind = "canceled"
	// RunErrorRender means the drill ran but its result has no JSON form.
	RunErrorRender RunErrorKind = "render"
)

// RunError represents a structured error produced by a case runner.
type RunError struct {
	Kind    RunErrorKind `json:"kind"`
	Message string       `json:"message"`
}

func NewRunError(err error) *RunError {
	if err == nil {
		return nil
	}
	msg := err.Error()
	var de *DomainError
	if errors.As(err, &de) {
		msg = de.Msg
	}
	return &RunError{Kind: ClassifyRunError(err), Message: msg}
}

func ClassifyRunError(err error) RunErrorKind {
	switch {
	case err == nil:
		return RunErrorUnknown
	case errors.Is(err, context.DeadlineExceeded):
		return RunErrorTimeout
	case errors.Is(err, context.Canceled):
		return RunErrorCanceled
	case IsKind(err, KindInvalidInput):
		return RunErrorInvalidInput
	default:
		return RunErrorUnknown
	}
}

// AssertionResult is the output of a single expectation check.
type AssertionResult struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// CaseResult is the outcome of executing a single workbook case.
type CaseResult struct {
	Name string   `json:"name"`
	Kind CaseKind `json:"kind"`

	// Output is the JSON document expectations run against:
	// {"result": ...} on success, {"error": {...}} on failure.
	Output    json.RawMessage `json:"output,omitempty"`
	LatencyMS int64           `json:"latency_ms"`

	Assertions []AssertionResult `json:"assertions"`
	Error      *RunError         `json:"error,omitempty"`
}

// Failed reports whether any expectation did not hold. An error with no
// expectations attached is a failure; one matched by expectations is not.
func (r CaseResult) Failed() bool {
	for _, a := range r.Assertions {
		if !a.Passed {
			return true
		}
	}
	return r.Error != nil && len(r.Assertions) == 0
}

// RunResult aggregates a workbook run. It is also the persisted artifact.
type RunResult struct {
	ID           string    `json:"id"`
	WorkbookName string    `json:"workbook"`
	WorkbookPath string    `json:"workbook_path"`
	StartedAt    time.Time `json:"started_at"`
	EndedAt      time.Time `json:"ended_at"`

	Results []CaseResult `json:"results"`
}

func (r RunResult) Failures() int {
	n := 0
	for _, c := range r.Results {
		if c.Failed() {
			n++
		}
	}
	return n
}
