package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kata/internal/infra/fsworkspace"
	"github.com/aalvaropc/kata/internal/infra/logger"
	"github.com/aalvaropc/kata/internal/infra/workspacefinder"
	"github.com/aalvaropc/kata/internal/ui/tui"
)

// Execute runs the kata command tree and exits 1 on any command error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:          "kata",
		Short:        "kata: small Go drills, run one by one or as workbooks",
		Long:         "Run a single drill directly (kata format, kata square, ...) or a whole workbook of cases with expectations (kata run). Without arguments kata opens the interactive workbook browser.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return launchTUI(debug)
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .kata/logs/kata.log")

	root.AddCommand(
		initCmd(),
		runCmd(),
		validateCmd(),
		workbooksCmd(),
		versionCmd(),
	)
	root.AddCommand(drillCmds()...)
	return root
}

// launchTUI logs under the enclosing workspace when there is one, else the cwd.
func launchTUI(debug bool) error {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	finder := workspacefinder.NewFinder()
	logRoot := wd
	if root, ferr := finder.FindRoot(wd); ferr == nil {
		logRoot = root
	}

	if cleanup, lerr := logger.Setup(logger.Config{Root: logRoot, Debug: debug}); lerr == nil {
		defer func() { _ = cleanup() }()
	}

	return tui.Run(tui.Deps{
		WorkspaceLocator:     finder,
		WorkspaceInitializer: fsworkspace.NewInitializer(),
		Logger:               logger.Component("tui"),
		Debug:                debug,
	})
}
