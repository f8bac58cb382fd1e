package ports

import (
	"context"

	"github.com/aalvaropc/kata/internal/domain"
)

// CaseRunner executes a single workbook case and renders its output document.
// A drill failure is reported in CaseResult.Error; the returned error is for
// cases that could not be executed at all.
type CaseRunner interface {
	Run(ctx context.Context, c domain.Case) (domain.CaseResult, error)
}
