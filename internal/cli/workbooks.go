package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func workbooksCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "workbooks",
		Short: "Manage workbooks in a workspace",
	}

	c.AddCommand(workbooksListCmd())
	return c
}

func workbooksListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workbooks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.catalog.ListWorkbooks(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no workbooks found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
