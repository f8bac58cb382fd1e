package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Unexpected error (see logs)"

// recoverable is a model that can put itself back into a usable state
// after a panic in its Update.
type recoverable interface {
	tea.Model
	recovered() tea.Model
}

// safeModel turns panics in Update or View into a log entry and a toast,
// so a bad drill result never leaves the terminal in the alt screen.
type safeModel struct {
	inner recoverable
	log   *slog.Logger
}

func wrapSafe(m recoverable, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{inner: m, log: log}
}

func (s safeModel) Init() tea.Cmd { return s.inner.Init() }

func (s safeModel) Update(msg tea.Msg) (out tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("update", r)
			if m, ok := s.inner.recovered().(recoverable); ok {
				s.inner = m
			}
			out, cmd = s, nil
		}
	}()

	next, c := s.inner.Update(msg)
	if m, ok := next.(recoverable); ok {
		s.inner = m
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("view", r)
			out = panicToast
		}
	}()
	return s.inner.View()
}

func (s safeModel) logPanic(where string, r any) {
	s.log.Error("tui.panic",
		"where", where,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

// recovered drops back to the workbook list with a toast.
func (m model) recovered() tea.Model {
	m.scr = screenHome
	m.running = false
	m.toast = panicToast
	return m
}

var (
	_ tea.Model   = safeModel{}
	_ recoverable = model{}
)
