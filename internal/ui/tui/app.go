package tui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/kata/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenPreview
	screenRunning
	screenResults
)

type workbookItem struct {
	ref domain.WorkbookRef
	rel string
}

func (w workbookItem) Title() string       { return w.ref.Name }
func (w workbookItem) Description() string { return w.rel }
func (w workbookItem) FilterValue() string { return w.ref.Name }

type caseItem struct {
	res domain.CaseResult
}

func (c caseItem) Title() string {
	status := "OK"
	if c.res.Failed() {
		status = "FAIL"
	}
	return fmt.Sprintf("[%s] %s", status, c.res.Name)
}

func (c caseItem) Description() string {
	return fmt.Sprintf("%s • %dms", c.res.Kind, c.res.LatencyMS)
}

func (c caseItem) FilterValue() string { return c.res.Name }

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr screen

	workbooks list.Model
	results   list.Model
	spin      spinner.Model

	workspaceFound bool
	workspaceRoot  string
	cwd            string

	running    bool
	runTarget  string
	lastRun    domain.RunResult
	artifactID string
	preview    string
	toast      string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	wb := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	wb.Title = "Workbooks"
	wb.SetShowStatusBar(false)
	wb.SetFilteringEnabled(true)
	wb.SetShowHelp(false)

	rs := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	rs.Title = "Cases"
	rs.SetShowStatusBar(false)
	rs.SetFilteringEnabled(false)
	rs.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := model{
		theme:     t,
		deps:      deps,
		log:       log,
		scr:       screenHome,
		workbooks: wb,
		results:   rs,
		spin:      sp,
	}

	if wd, err := os.Getwd(); err == nil {
		m.cwd = wd
	}
	return m
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.workbooks.SetSize(w-4, h-10)
		m.results.SetSize(w/2-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		if msg.cwd != "" {
			m.cwd = msg.cwd
		}
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if !msg.found {
			m.workbooks.SetItems(nil)
			return m, nil
		}
		return m, cmdLoadWorkbooks(msg.root)

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.log.Error("tui.init.failed", "root", msg.root, "err", msg.err)
			return m, nil
		}
		m.toast = "Workspace initialized"
		return m, cmdRefreshWorkspace(m.deps)

	case workbooksLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			rel, err := filepath.Rel(msg.root, r.Path)
			if err != nil {
				rel = r.Path
			}
			items = append(items, workbookItem{ref: r, rel: rel})
		}
		cmd := m.workbooks.SetItems(items)
		return m, cmd

	case workbookPreviewMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.preview = msg.preview
		m.scr = screenPreview
		return m, nil

	case runnerDoneMsg:
		m.running = false
		m.lastRun = msg.run
		m.artifactID = msg.artifactID
		if msg.err != nil {
			m.toast = userMessage(msg.err)
		} else if n := msg.run.Failures(); n > 0 {
			m.toast = fmt.Sprintf("%d case(s) failed", n)
		} else {
			m.toast = "All cases passed"
		}
		items := make([]list.Item, 0, len(msg.run.Results))
		for _, r := range msg.run.Results {
			items = append(items, caseItem{res: r})
		}
		cmd := m.results.SetItems(items)
		m.results.Select(0)
		m.scr = screenResults
		return m, cmd

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.scr == screenHome && m.workbooks.FilterState() == list.Filtering {
			break
		}
		if m.running {
			return m, nil
		}

		switch msg.String() {
		case "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m.scr = screenHome
			return m, nil

		case "esc", "b":
			if m.scr != screenHome {
				m.scr = screenHome
				return m, nil
			}

		case "enter":
			if m.scr == screenHome || m.scr == screenPreview {
				return m.startRun()
			}

		case "p":
			if m.scr == screenHome {
				if it, ok := m.workbooks.SelectedItem().(workbookItem); ok {
					m.runTarget = it.ref.Path
					return m, cmdPreviewWorkbook(it.ref.Path)
				}
			}

		case "i":
			if m.scr == screenHome && !m.workspaceFound && m.cwd != "" {
				return m, cmdInitWorkspaceHere(m.deps, m.cwd)
			}

		case "r":
			if m.scr == screenHome {
				m.toast = ""
				return m, cmdRefreshWorkspace(m.deps)
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenHome:
		m.workbooks, cmd = m.workbooks.Update(msg)
	case screenResults:
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

func (m model) startRun() (tea.Model, tea.Cmd) {
	path := m.runTarget
	if m.scr == screenHome {
		it, ok := m.workbooks.SelectedItem().(workbookItem)
		if !ok {
			return m, nil
		}
		path = it.ref.Path
	}
	if path == "" || !m.workspaceFound {
		return m, nil
	}

	m.runTarget = path
	m.running = true
	m.toast = ""
	m.scr = screenRunning

	_, listen := startRunAsync(m.workspaceRoot, path, m.log, m.deps.Debug)
	return m, tea.Batch(listen, m.spin.Tick)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("kata") + "\n" +
		m.theme.Subtitle.Render("Small Go drills, run as workbooks") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		banner = m.theme.Card.Render("No workspace found.\n\nPress i to create one here.")
	}
	if m.toast != "" {
		banner += "\n" + m.theme.Toast.Render(m.toast)
	}

	var body, help string
	switch m.scr {
	case screenHome:
		body = m.theme.Card.Render(m.workbooks.View())
		help = "↑/↓ navigate • enter run • p preview • / search • r refresh • q quit"

	case screenPreview:
		body = m.theme.Card.Render(m.preview)
		help = "enter run • esc/b back • q home"

	case screenRunning:
		body = m.theme.Card.Render(fmt.Sprintf("%s Running %s…", m.spin.View(), filepath.Base(m.runTarget)))
		help = "ctrl+c quit"

	case screenResults:
		var detail string
		if it, ok := m.results.SelectedItem().(caseItem); ok {
			detail = renderCaseDetails(m.theme, it.res)
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.theme.Card.Render(m.results.View()),
			m.theme.Card.Render(renderRunSummary(m.lastRun, m.artifactID)+"\n\n"+detail),
		)
		help = "↑/↓ cases • esc/b back • q home"

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}

	return wrap.Render(header + "\n" + banner + "\n\n" + body + "\n" + m.theme.Help.Render(help))
}
