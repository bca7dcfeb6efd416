package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazeblast/internal/storage"
)

func TestScoreboardShowsRunsAndStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("tui_broken", 150, 2)
	store.SaveScore("tui_broken", 90, 1)
	store.SaveScore("tui_stub", 40, 1)

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 2 {
		t.Fatalf("expected 2 runs for the first maze, got %d", len(m.scores))
	}
	view := m.View()
	for _, want := range []string{"TUI_BROKEN", "150", "Runs: 2", "Max level: 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 1 || m.scores[0].Score != 40 {
		t.Errorf("tab should switch to the next maze, got %+v", m.scores)
	}
	if m.stats.Runs != 1 {
		t.Errorf("stats should follow the selected maze, got %+v", m.stats)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("expected the empty message:\n%s", m.View())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || !isQuit(cmd) {
		t.Error("esc should go back")
	}
}
