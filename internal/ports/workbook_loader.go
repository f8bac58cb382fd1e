package ports

import "github.com/aalvaropc/kata/internal/domain"

// WorkbookLoader loads workbooks from a source (e.g., filesystem).
type WorkbookLoader interface {
	LoadWorkbook(path string) (domain.Workbook, error)
	ListWorkbooks(root string) ([]domain.WorkbookRef, error)
}
