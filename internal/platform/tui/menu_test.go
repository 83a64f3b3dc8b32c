package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-samegame/internal/core"
	"github.com/vovakirdan/tui-samegame/internal/registry"
)

var lastCreated *recordingGame

func init() {
	registry.Register("recording", func() registry.Game {
		lastCreated = &recordingGame{}
		return lastCreated
	})
}

func newTestMenu() MenuModel {
	return NewMenuModel(core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30, Seed: 5}, plainRenderer())
}

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	menu, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return menu
}

func TestMenuListsRegisteredGames(t *testing.T) {
	m := newTestMenu()

	view := m.View()
	if !strings.Contains(view, "> Recording") {
		t.Errorf("view should highlight the first game:\n%s", view)
	}
}

func TestMenuNavigationStaysInRange(t *testing.T) {
	m := newTestMenu()

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}

	for i, n := 0, len(m.items)+2; i < n; i++ {
		m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuSelect(t *testing.T) {
	m := newTestMenu()

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil {
		t.Fatal("Enter should select the highlighted game")
	}
	if m.Selected().GameID != m.items[0].GameID {
		t.Errorf("selected %q, want %q", m.Selected().GameID, m.items[0].GameID)
	}
	if m.IsQuitting() {
		t.Error("selecting is not quitting")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := newTestMenu()

	m = updateMenu(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	cfg := m.Config()
	if cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("config size = %dx%d, want 100x30", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.Seed != 5 {
		t.Errorf("seed = %d, want 5", cfg.Seed)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30, Seed: 5}, plainRenderer(), nil)

	// Move the cursor onto the stub game
	for i := range s.menu.items {
		if s.menu.items[i].GameID == "recording" {
			s.menu.cursor = i
		}
	}

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if !s.InGame() {
		t.Fatal("selecting a game should start it")
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}
	if len(lastCreated.resets) != 1 {
		t.Fatalf("game resets = %d, want 1", len(lastCreated.resets))
	}
	if got := lastCreated.resets[0].ScreenH; got != 20-helpHeight {
		t.Errorf("game height = %d, want %d", got, 20-helpHeight)
	}

	next, _ = s.Update(runes("q"))
	s = next.(SessionModel)
	if s.InGame() {
		t.Fatal("quitting a game should return to the menu")
	}
	if s.View() == "" {
		t.Error("menu should render after leaving a game")
	}

	next, cmd = s.Update(runes("q"))
	s = next.(SessionModel)
	if cmd == nil {
		t.Error("quitting the menu should end the program")
	}
	if s.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
