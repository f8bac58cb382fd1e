package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/infra/caserunner"
	"github.com/aalvaropc/kata/internal/infra/logger"
	"github.com/aalvaropc/kata/internal/infra/runstore"
	"github.com/aalvaropc/kata/internal/infra/workspacefinder"
	"github.com/aalvaropc/kata/internal/infra/yamlworkbook"
	"github.com/aalvaropc/kata/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	workbooks ports.WorkbookLoader
	catalog   workbookCatalog

	runner ports.CaseRunner
	store  ports.ArtifactStore
}

type workbookCatalog interface {
	ListWorkbooks(root string) ([]domain.WorkbookRef, error)
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	loader := yamlworkbook.NewLoader(
		yamlworkbook.WithWorkbooksDir(cfg.Paths.WorkbooksDir),
	)

	return &workspaceCtx{
		root:      root,
		cfg:       cfg,
		workbooks: loader,
		catalog:   loader,
		runner:    caserunner.New(),
		store:     runstore.NewJSONStore(root, cfg, runstore.WithIndex(true)),
	}, nil
}

// setupLogging opens the workspace log for commands that run workbooks.
// Logging is best effort: a failure leaves the discarding logger in place.
func setupLogging(cmd *cobra.Command, root string) func() {
	debug, _ := cmd.Flags().GetBool("debug")
	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `kata init`): %w", wd, err)
	}
	return root, nil
}

// resolveWorkbookPath accepts a path, a file name under the workbooks dir,
// a bare file stem, or a workbook name. Empty means the configured default.
func resolveWorkbookPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		in = ws.cfg.Defaults.Workbook
	}
	if in == "" {
		return "", fmt.Errorf("workbook is required (use --workbook or -b)")
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	dir := filepath.Join(ws.root, ws.cfg.Paths.WorkbooksDir)

	if hasYAMLExt(in) {
		p := filepath.Join(dir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(dir, in+ext)
		if fileExists(p) {
			return p, nil
		}
	}

	// Last resort: match on the workbook's name field.
	if refs, err := ws.catalog.ListWorkbooks(ws.root); err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("workbook %q not found in %q", in, dir)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
