package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pathtrace/pathtrace/pkg/graph"
	"github.com/pathtrace/pathtrace/pkg/search"
)

func testAnimModel(t *testing.T) AnimModel {
	t.Helper()
	g := graph.New()
	g.SetPosition(graph.Name("A"), 0, 0)
	g.SetPosition(graph.Name("B"), 1, 0)
	g.SetPosition(graph.Name("C"), 2, 0)
	g.AddEdge(graph.Name("A"), graph.Name("B"))
	g.AddEdge(graph.Name("B"), graph.Name("C"))

	res, err := search.Run(search.KindBFS, g.Adjacency(), g.Positions(), graph.Name("A"), graph.Name("C"))
	if err != nil {
		t.Fatal(err)
	}
	return NewAnimModel("test", g, search.KindBFS, graph.Name("A"), graph.Name("C"), res, 200*time.Millisecond)
}

func update(t *testing.T, m AnimModel, msg tea.Msg) AnimModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(AnimModel)
	if !ok {
		t.Fatalf("Update returned %T, want AnimModel", next)
	}
	return out
}

func TestAnimModelTickAdvances(t *testing.T) {
	m := testAnimModel(t)
	// 3 visited + 3 path nodes.
	if m.totalSteps() != 6 {
		t.Fatalf("totalSteps = %d, want 6", m.totalSteps())
	}

	for i := 1; i <= 6; i++ {
		m = update(t, m, tickMsg(time.Now()))
		if m.Step() != i {
			t.Fatalf("after tick %d: Step = %d", i, m.Step())
		}
	}
	if !m.Done() {
		t.Error("Done() = false after final tick")
	}

	// Playback stops at the end; further ticks are inert.
	m = update(t, m, tickMsg(time.Now()))
	if m.Step() != 6 {
		t.Errorf("Step = %d after post-completion tick, want 6", m.Step())
	}
}

func TestAnimModelManualStepPauses(t *testing.T) {
	m := testAnimModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if m.Step() != 1 {
		t.Errorf("Step = %d, want 1", m.Step())
	}
	if m.playing {
		t.Error("manual stepping must pause autoplay")
	}

	// Ticks are ignored while paused.
	m = update(t, m, tickMsg(time.Now()))
	if m.Step() != 1 {
		t.Errorf("Step = %d after tick while paused, want 1", m.Step())
	}
}

func TestAnimModelPauseResume(t *testing.T) {
	m := testAnimModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	if m.playing {
		t.Error("space must pause")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	if !m.playing {
		t.Error("space must resume")
	}
}

func TestAnimModelReset(t *testing.T) {
	m := testAnimModel(t)
	for i := 0; i < 4; i++ {
		m = update(t, m, tickMsg(time.Now()))
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.Step() != 0 {
		t.Errorf("Step = %d after reset, want 0", m.Step())
	}
	if !m.playing {
		t.Error("reset must resume autoplay")
	}
}

func TestAnimModelQuit(t *testing.T) {
	m := testAnimModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q must produce a quit command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("cmd() = %v, want tea.QuitMsg", msg)
	}
}

func TestAnimModelIntervalClamped(t *testing.T) {
	fast := testAnimModel(t)
	fast.interval = minInterval
	fast = update(t, fast, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if fast.interval != minInterval {
		t.Errorf("interval = %v, want clamped at %v", fast.interval, minInterval)
	}

	slow := testAnimModel(t)
	slow.interval = maxInterval
	slow = update(t, slow, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if slow.interval != maxInterval {
		t.Errorf("interval = %v, want clamped at %v", slow.interval, maxInterval)
	}

	m := NewAnimModel("test", graph.New(), search.KindBFS, graph.Node{}, graph.Node{}, search.Result[graph.Node]{}, time.Hour)
	if m.interval != maxInterval {
		t.Errorf("constructor interval = %v, want clamped at %v", m.interval, maxInterval)
	}
}

func TestAnimModelSweepPhases(t *testing.T) {
	m := testAnimModel(t)

	tests := []struct {
		step    int
		visited int
		path    int
	}{
		{0, 0, 0},
		{2, 2, 0},
		{3, 3, 0},
		{4, 3, 1},
		{6, 3, 3},
	}
	for _, tt := range tests {
		m.step = tt.step
		visited, path := m.sweep()
		if len(visited) != tt.visited || len(path) != tt.path {
			t.Errorf("step %d: sweep = %d visited, %d path, want %d, %d",
				tt.step, len(visited), len(path), tt.visited, tt.path)
		}
	}
}

func TestAnimModelViewRendersNodes(t *testing.T) {
	m := testAnimModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	view := m.View()
	if !strings.Contains(view, "test") {
		t.Error("view is missing the graph name")
	}
	if !strings.Contains(view, "●") {
		t.Error("view is missing node markers")
	}
	for _, label := range []string{"A", "B", "C"} {
		if !strings.Contains(view, label) {
			t.Errorf("view is missing label %s", label)
		}
	}
}
