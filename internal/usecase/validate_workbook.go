package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/ports"
	ucassert "github.com/aalvaropc/kata/internal/usecase/assert"
)

type ValidateWorkbook struct {
	workbooks ports.WorkbookLoader
}

func NewValidateWorkbook(wl ports.WorkbookLoader) *ValidateWorkbook {
	return &ValidateWorkbook{workbooks: wl}
}

// Execute loads a workbook and checks what loading alone does not:
// JSONPath syntax and regex patterns of every expectation. Nothing is run.
func (uc *ValidateWorkbook) Execute(ctx context.Context, workbookPath string) error {
	wb, err := uc.workbooks.LoadWorkbook(workbookPath)
	if err != nil {
		return err
	}

	for _, c := range wb.Cases {
		if err := ctx.Err(); err != nil {
			return err
		}

		exprs := make([]string, 0, len(c.Expect))
		for expr := range c.Expect {
			exprs = append(exprs, expr)
		}
		sort.Strings(exprs)

		for _, expr := range exprs {
			if !c.Expect[expr].HasChecks() {
				return invalidCase(workbookPath, c.Name, fmt.Errorf("expect %q: no checks", expr))
			}
			if err := ucassert.Compile(expr); err != nil {
				return invalidCase(workbookPath, c.Name, fmt.Errorf("expect %q: %w", expr, err))
			}
			if m := c.Expect[expr].Matches; m != nil {
				if _, err := regexp.Compile(*m); err != nil {
					return invalidCase(workbookPath, c.Name, fmt.Errorf("expect %q: invalid regex %q: %w", expr, *m, err))
				}
			}
		}
	}

	return nil
}

func invalidCase(path, name string, err error) error {
	return &domain.OpError{
		Op:   "usecase.validate_workbook",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("case %q: %w", name, err),
	}
}
