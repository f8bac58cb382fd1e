package tui

import "github.com/aalvaropc/kata/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type workbooksLoadedMsg struct {
	root string
	refs []domain.WorkbookRef
	err  error
}

type workbookPreviewMsg struct {
	path    string
	preview string
	err     error
}

type runnerDoneMsg struct {
	run        domain.RunResult
	artifactID string
	err        error
}
