package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/infra/logger"
	"github.com/aalvaropc/kata/internal/usecase"
)

func runCmd() *cobra.Command {
	var workspace string
	var workbook string
	var noSave bool
	var format string
	var concurrency int

	c := &cobra.Command{
		Use:   "run",
		Short: "Run every case of a workbook and check its expectations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolveWorkbookPath(ws, workbook)
			if err != nil {
				return err
			}

			defer setupLogging(cmd, ws.root)()

			store := ws.store
			if noSave {
				store = nil
			}

			n := ws.cfg.Defaults.Concurrency
			if cmd.Flags().Changed("concurrency") {
				n = concurrency
			}

			uc := usecase.NewRunWorkbook(ws.workbooks, ws.runner, store,
				usecase.WithConcurrency(n),
				usecase.WithLogger(logger.Component("run")),
			)

			out := cmd.OutOrStdout()
			run, artifactID, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				// Print whatever finished before the failure.
				_ = printRun(out, run, artifactID, format)
				return err
			}

			if err := printRun(out, run, artifactID, format); err != nil {
				return err
			}

			if fails := run.Failures(); fails > 0 {
				return fmt.Errorf("run failed (%d failed case(s))", fails)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&workbook, "workbook", "b", "", "Workbook name or path (defaults to kata.defaults.workbook)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save run artifact under runs/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().IntVar(&concurrency, "concurrency", 0, "Cases run in parallel (defaults to kata.defaults.concurrency)")

	return c
}

func printRun(w io.Writer, run domain.RunResult, artifactID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"artifact_id": artifactID,
			"run":         run,
		})
	case "pretty", "":
		printPrettyRun(w, run, artifactID)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyRun(w io.Writer, run domain.RunResult, artifactID string) {
	total := run.EndedAt.Sub(run.StartedAt)
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Workbook:   %s\n", run.WorkbookName)
	fmt.Fprintf(w, "Run ID:     %s\n", run.ID)
	fmt.Fprintf(w, "Started:    %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:   %s\n", total)
	if artifactID != "" {
		fmt.Fprintf(w, "Artifact:   %s\n", artifactID)
	}
	fmt.Fprintln(w)

	for _, r := range run.Results {
		status := "OK"
		if r.Failed() {
			status = "FAIL"
		}

		fmt.Fprintf(w, "- [%s] %s (%s) %dms\n", status, r.Name, r.Kind, r.LatencyMS)

		if r.Error != nil {
			fmt.Fprintf(w, "  error: %s (%s)\n", r.Error.Message, r.Error.Kind)
		} else if len(r.Output) > 0 {
			fmt.Fprintf(w, "  output: %s\n", r.Output)
		}

		if len(r.Assertions) > 0 {
			pass, fail := countAssertionPassFail(r.Assertions)
			fmt.Fprintf(w, "  expectations: %d pass / %d fail\n", pass, fail)
			for _, a := range r.Assertions {
				mark := "✓"
				if !a.Passed {
					mark = "✗"
				}
				fmt.Fprintf(w, "    %s %s: %s\n", mark, a.Name, a.Message)
			}
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%d case(s), %d failed\n", len(run.Results), run.Failures())
}

func countAssertionPassFail(in []domain.AssertionResult) (pass int, fail int) {
	for _, a := range in {
		if a.Passed {
			pass++
		} else {
			fail++
		}
	}
	return pass, fail
}
