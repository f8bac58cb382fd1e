package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kata/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var workbook string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check a workbook without running it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolveWorkbookPath(ws, workbook)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateWorkbook(ws.workbooks)
			if err := uc.Execute(cmd.Context(), path); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&workbook, "workbook", "b", "", "Workbook name or path (defaults to kata.defaults.workbook)")

	return c
}
