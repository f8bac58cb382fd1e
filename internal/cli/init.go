package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kata/internal/infra/fsworkspace"
	"github.com/aalvaropc/kata/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a kata workspace (kata.yaml, workbooks/, runs/)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized kata workspace in %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite template files that already exist")
	return c
}
