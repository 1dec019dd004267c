package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/restsnap/restsnap/internal/core/project"
)

// NewProgressSink returns the sink matching the terminal: an animated
// spinner per stage, or plain log lines when headless or colorless.
func NewProgressSink(theme *Theme, hm *HeadlessManager, w io.Writer) project.ProgressSink {
	if hm.IsHeadless() || theme.NoColor {
		return NewHeadlessSink(theme, w)
	}
	return newInteractiveSink(theme, w)
}

// --- interactive ---

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the stage spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "...\n"
}

// interactiveSink shows a spinner while a stage runs and replaces it with
// a status line when the stage ends. Interrupts are handled by the
// caller's signal context, so the program does not grab stdin.
type interactiveSink struct {
	theme    *Theme
	writer   io.Writer
	progOpts []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

func newInteractiveSink(theme *Theme, w io.Writer, opts ...tea.ProgramOption) *interactiveSink {
	base := []tea.ProgramOption{tea.WithOutput(w), tea.WithInput(nil), tea.WithoutSignalHandler()}
	return &interactiveSink{theme: theme, writer: w, progOpts: append(base, opts...)}
}

func (s *interactiveSink) Started(stage project.Stage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()

	p := tea.NewProgram(newSpinnerModel(s.theme, stage.Title()), s.progOpts...)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()
	s.program = p
	s.done = done
}

func (s *interactiveSink) Succeeded(stage project.Stage, summary string) {
	s.finish(s.theme.Success(glyphOK), stage.Title(), s.theme.Muted(summary))
}

func (s *interactiveSink) Failed(stage project.Stage, err error) {
	s.finish(s.theme.Error(glyphFail), stage.Title(), s.theme.Error(err.Error()))
}

func (s *interactiveSink) Skipped(stage project.Stage, reason string) {
	s.finish(s.theme.Muted(glyphSkip), stage.Title(), s.theme.Muted("skipped ("+reason+")"))
}

func (s *interactiveSink) finish(glyph, title, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	_, _ = fmt.Fprintf(s.writer, "%s %s  %s\n", glyph, title, detail)
}

// stopLocked halts the running spinner, if any, and waits for it to
// clear its line.
func (s *interactiveSink) stopLocked() {
	if s.program == nil {
		return
	}
	s.program.Send(spinnerStopMsg{})
	<-s.done
	s.program = nil
	s.done = nil
}

// --- headless ---

// HeadlessSink writes one plain line per stage event.
type HeadlessSink struct {
	theme  *Theme
	writer io.Writer
	index  map[project.Stage]int
}

// NewHeadlessSink creates a HeadlessSink writing to w.
func NewHeadlessSink(theme *Theme, w io.Writer) *HeadlessSink {
	index := make(map[project.Stage]int)
	for i, st := range project.Stages() {
		index[st] = i + 1
	}
	return &HeadlessSink{theme: theme, writer: w, index: index}
}

func (s *HeadlessSink) prefix(stage project.Stage) string {
	return fmt.Sprintf("[%d/%d]", s.index[stage], len(s.index))
}

func (s *HeadlessSink) Started(stage project.Stage) {
	_, _ = fmt.Fprintf(s.writer, "%s %s...\n", s.prefix(stage), stage.Title())
}

func (s *HeadlessSink) Succeeded(stage project.Stage, summary string) {
	_, _ = fmt.Fprintf(s.writer, "%s %s %s\n", s.prefix(stage), s.theme.Success(glyphOK), summary)
}

func (s *HeadlessSink) Failed(stage project.Stage, err error) {
	_, _ = fmt.Fprintf(s.writer, "%s %s %v\n", s.prefix(stage), s.theme.Error(glyphFail), err)
}

func (s *HeadlessSink) Skipped(stage project.Stage, reason string) {
	_, _ = fmt.Fprintf(s.writer, "%s %s skipped (%s)\n", s.prefix(stage), stage.Title(), reason)
}
