package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/exp/teatest/v2"
	"github.com/hylla/taskboard/internal/app"
)

// TestModelWithTeatest verifies the board renders for a preset user and quits.
func TestModelWithTeatest(t *testing.T) {
	m := NewModel(newFakeService(), WithUsername("ada"))
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() {
		_ = tm.Quit()
	})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return strings.Contains(string(out), "Charlie")
	}, teatest.WithDuration(2*time.Second), teatest.WithCheckInterval(10*time.Millisecond))

	tm.Send(tea.KeyPressMsg{Code: 'q', Text: "q"})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}

// TestModelWithTeatestMouseDragAcrossLanes drags a card into another lane
// through a running program and checks the single committed move.
func TestModelWithTeatestMouseDragAcrossLanes(t *testing.T) {
	svc := newFakeService()
	m := NewModel(svc, WithUsername("ada"))
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))
	t.Cleanup(func() {
		_ = tm.Quit()
	})

	var captured bytes.Buffer
	stream := io.TeeReader(tm.Output(), &captured)
	teatest.WaitFor(t, stream, func(out []byte) bool {
		return strings.Contains(string(out), "Charlie")
	}, teatest.WithDuration(2*time.Second), teatest.WithCheckInterval(10*time.Millisecond))

	// 120 columns over three lanes gives a 35-cell inner width and a 40-cell stride.
	targetX := 40 + 2
	tm.Send(tea.MouseClickMsg{X: 2, Y: cardsTop, Button: tea.MouseLeft})
	teatest.WaitFor(t, stream, func(out []byte) bool {
		return strings.Contains(string(out), "moving: Alpha")
	}, teatest.WithDuration(2*time.Second), teatest.WithCheckInterval(10*time.Millisecond))

	tm.Send(tea.MouseMotionMsg{X: targetX, Y: cardsTop, Button: tea.MouseLeft})
	tm.Send(tea.MouseReleaseMsg{X: targetX, Y: cardsTop, Button: tea.MouseLeft})
	teatest.WaitFor(t, stream, func([]byte) bool {
		return len(svc.recordedMoves()) == 1
	}, teatest.WithDuration(2*time.Second), teatest.WithCheckInterval(10*time.Millisecond))

	tm.Send(tea.KeyPressMsg{Code: 'q', Text: "q"})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	if _, err := io.ReadAll(io.TeeReader(tm.FinalOutput(t, teatest.WithFinalTimeout(2*time.Second)), &captured)); err != nil {
		t.Fatalf("ReadAll(final output) error = %v", err)
	}
	if !strings.Contains(captured.String(), "moving: Alpha") {
		t.Fatalf("expected drag status in program output, got %q", captured.String())
	}

	moves := svc.recordedMoves()
	want := app.MoveCardInput{CardID: "a", ColumnID: "progress", Index: 0, Actor: "ada"}
	if moves[0] != want {
		t.Fatalf("unexpected committed move %#v", moves[0])
	}

	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(2*time.Second)).(Model)
	if !ok {
		t.Fatal("expected final model of type Model")
	}
	if got := laneCardIDs(final, 0); got != "b,c" {
		t.Fatalf("expected todo lane b,c, got %q", got)
	}
	if got := laneCardIDs(final, 1); got != "a" {
		t.Fatalf("expected progress lane a, got %q", got)
	}
	if final.drag.InFlight() != 0 {
		t.Fatal("expected no card in flight after the drop")
	}
	view := final.renderDashboard()
	for _, want := range []string{"To Do (2)", "In Progress (1)"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in final dashboard", want)
		}
	}
}
