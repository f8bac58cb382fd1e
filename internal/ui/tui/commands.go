package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/infra/caserunner"
	"github.com/aalvaropc/kata/internal/infra/runstore"
	"github.com/aalvaropc/kata/internal/infra/workspacefinder"
	"github.com/aalvaropc/kata/internal/infra/yamlworkbook"
	"github.com/aalvaropc/kata/internal/usecase"
)

const runTimeout = 5 * time.Minute

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, err: findErr}
		}
		return workspaceRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}
		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadWorkbooks(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return workbooksLoadedMsg{root: root, err: err}
		}

		loader := yamlworkbook.NewLoader(yamlworkbook.WithWorkbooksDir(cfg.Paths.WorkbooksDir))
		refs, err := loader.ListWorkbooks(root)
		return workbooksLoadedMsg{root: root, refs: refs, err: err}
	}
}

func cmdPreviewWorkbook(path string) tea.Cmd {
	return func() tea.Msg {
		p := filepath.Clean(path)
		wb, err := yamlworkbook.NewLoader().LoadWorkbook(p)
		if err != nil {
			return workbookPreviewMsg{path: p, err: err}
		}
		return workbookPreviewMsg{path: p, preview: renderPreview(wb)}
	}
}

func listenRunner(ch <-chan runnerDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return runnerDoneMsg{err: errors.New("runner channel closed")}
		}
		return msg
	}
}

// startRunAsync runs the workbook off the UI goroutine; the returned command
// delivers the outcome as a runnerDoneMsg.
func startRunAsync(workspaceRoot, workbookPath string, log *slog.Logger, debug bool) (chan runnerDoneMsg, tea.Cmd) {
	ch := make(chan runnerDoneMsg, 1)

	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	go func() {
		defer close(ch)

		log.Info("tui.run.start", "workspace", workspaceRoot, "workbook_path", workbookPath, "debug", debug)

		cfg, err := workspacefinder.LoadConfig(workspaceRoot)
		if err != nil {
			log.Error("tui.run.load_config.failed", "err", err)
			ch <- runnerDoneMsg{err: err}
			return
		}

		loader := yamlworkbook.NewLoader(yamlworkbook.WithWorkbooksDir(cfg.Paths.WorkbooksDir))
		store := runstore.NewJSONStore(workspaceRoot, cfg, runstore.WithIndex(true))

		uc := usecase.NewRunWorkbook(loader, caserunner.New(), store,
			usecase.WithConcurrency(cfg.Defaults.Concurrency),
			usecase.WithLogger(log),
		)

		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		run, id, execErr := uc.Execute(ctx, workbookPath)
		if execErr != nil {
			log.Error("tui.run.failed", "err", execErr, "artifact_id", id)
		} else {
			log.Info("tui.run.ok", "artifact_id", id, "failures", run.Failures())
		}

		if debug {
			for _, cr := range run.Results {
				log.Debug("tui.case",
					"name", cr.Name,
					"kind", string(cr.Kind),
					"latency_ms", cr.LatencyMS,
					"failed", cr.Failed(),
				)
			}
		}

		ch <- runnerDoneMsg{run: run, artifactID: id, err: execErr}
	}()

	return ch, listenRunner(ch)
}
