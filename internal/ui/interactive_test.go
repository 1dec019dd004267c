package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/restsnap/restsnap/internal/core/project"
)

func testTheme() *Theme {
	return NewTheme(true)
}

// newTestSink creates an interactiveSink whose spinner programs run without
// a renderer, so only the status lines reach buf.
func newTestSink(buf *bytes.Buffer) *interactiveSink {
	return newInteractiveSink(testTheme(), buf, tea.WithoutRenderer())
}

// runWithTimeout fails the test if fn does not return within two seconds.
func runWithTimeout(t *testing.T, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sink did not finish within 2 second timeout")
	}
}

func TestInteractiveSink_StageLifecycle(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSink(&buf)

	runWithTimeout(t, func() {
		s.Started(project.StageMaterialize)
		s.Succeeded(project.StageMaterialize, "created 15 directories")
		s.Started(project.StageInstall)
		s.Failed(project.StageInstall, errors.New("npm install exited with code 1"))
	})

	out := buf.String()
	for _, want := range []string{
		"✓ Creating project structure  created 15 directories",
		"✗ Installing dependencies  npm install exited with code 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if s.program != nil {
		t.Error("spinner program still running after stage ended")
	}
}

func TestInteractiveSink_Skipped(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSink(&buf)

	runWithTimeout(t, func() {
		s.Skipped(project.StageInstall, "--skip-install")
	})

	if !strings.Contains(buf.String(), "Installing dependencies  skipped (--skip-install)") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestInteractiveSink_RestartStopsPreviousSpinner(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSink(&buf)

	runWithTimeout(t, func() {
		s.Started(project.StageCopy)
		s.Started(project.StageDescriptor)
		s.Succeeded(project.StageDescriptor, "ok")
	})
}

func TestSpinnerModel_Update_SpinnerTickMsg(t *testing.T) {
	m := newSpinnerModel(NewTheme(false), "Ticking")
	tickCmd := m.Init()
	if tickCmd == nil {
		t.Fatal("Init should return a non-nil tick command")
	}
	msg := tickCmd()
	if _, ok := msg.(spinner.TickMsg); !ok {
		t.Skip("unexpected message type from tick command")
	}
	updated, _ := m.Update(msg)
	if updated.(spinnerModel).done {
		t.Error("tick should not stop the spinner")
	}
}

func TestSpinnerModel_StopClearsView(t *testing.T) {
	m := newSpinnerModel(testTheme(), "Copying template files")
	if !strings.Contains(m.View(), "Copying template files...") {
		t.Errorf("View() = %q", m.View())
	}

	updated, cmd := m.Update(spinnerStopMsg{})
	if cmd == nil {
		t.Error("stop should return tea.Quit")
	}
	if v := updated.View(); v != "" {
		t.Errorf("View() after stop = %q, want empty", v)
	}
}
