package samegame

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-samegame/internal/core"
	"github.com/vovakirdan/tui-samegame/internal/games/samegame/board"
)

// newLayoutGame starts a classic game on a fixed board.
func newLayoutGame(t *testing.T, rows string, screenW, screenH int) *Game {
	t.Helper()

	grid := board.MustParse(rows)
	opts := DefaultOptions()
	opts.Layout = &grid
	opts.LayoutName = "test"

	prev := CurrentOptions()
	SetOptions(opts)
	t.Cleanup(func() { SetOptions(prev) })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: screenW, ScreenH: screenH, Seed: 1})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 30}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	steps := []core.InputFrame{
		input(core.ActionUp),
		input(core.ActionRight),
		input(core.ActionSelect),
		input(core.ActionRight, core.ActionUp),
		input(core.ActionSelect),
	}
	for _, in := range steps {
		g1.Step(in)
		g2.Step(in)
	}

	snap1, snap2 := g1.Snapshot(), g2.Snapshot()
	if snap1 != snap2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}

	fresh := New()
	fresh.Reset(cfg)
	other := New()
	other.Reset(core.RuntimeConfig{Seed: 54321, ScreenW: 80, ScreenH: 30})
	if other.Snapshot().Board == fresh.Snapshot().Board {
		t.Error("different seeds should deal different boards")
	}
}

func TestGameIDs(t *testing.T) {
	if New().ID() != "samegame" || New().Title() != "SameGame" {
		t.Errorf("classic: got %q / %q", New().ID(), New().Title())
	}
	if NewMini().ID() != "samegame_mini" || NewMini().Title() != "SameGame (Mini)" {
		t.Errorf("mini: got %q / %q", NewMini().ID(), NewMini().Title())
	}
}

func TestSummary(t *testing.T) {
	if got := NewMini().Summary(); got != "8x6, 3 colors" {
		t.Errorf("mini summary = %q", got)
	}
	if got := New().Summary(); got != "15x10, 3 colors" {
		t.Errorf("classic summary = %q", got)
	}

	newLayoutGame(t, "AB\nBA\nAA", 80, 24) // installs a layout
	if got := New().Summary(); got != "2x3, layout test" {
		t.Errorf("layout summary = %q", got)
	}
	if got := NewMini().Summary(); got != "8x6, 3 colors" {
		t.Errorf("mini should ignore the layout, got %q", got)
	}
}

func TestMiniIgnoresLayout(t *testing.T) {
	newLayoutGame(t, "AB\nBA", 80, 24) // installs a layout

	g := NewMini()
	g.Reset(core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24})

	snap := g.Snapshot()
	if snap.Width != miniWidth || snap.Height != miniHeight {
		t.Errorf("mini board should be %dx%d, got %dx%d", miniWidth, miniHeight, snap.Width, snap.Height)
	}
	if snap.Remaining != miniWidth*miniHeight {
		t.Errorf("new board should be full, %d tiles", snap.Remaining)
	}
}

func TestCursorMovementClamped(t *testing.T) {
	g := newLayoutGame(t, "AAB\nABB\nCAB", 80, 24)

	if g.Cursor() != board.C(0, 2) {
		t.Fatalf("cursor should start bottom-left, got %s", g.Cursor())
	}

	g.Step(input(core.ActionLeft))
	g.Step(input(core.ActionDown))
	if g.Cursor() != board.C(0, 2) {
		t.Errorf("cursor should stay clamped, got %s", g.Cursor())
	}

	for i := 0; i < 5; i++ {
		g.Step(input(core.ActionUp, core.ActionRight))
	}
	if g.Cursor() != board.C(2, 0) {
		t.Errorf("cursor should stop at top-right, got %s", g.Cursor())
	}
}

func TestSelectPopsGroupUnderCursor(t *testing.T) {
	g := newLayoutGame(t, "AAB\nABB\nCAB", 80, 24)

	// Lone C under the cursor: no-op
	res := g.Step(input(core.ActionSelect))
	if res.Changed || g.Snapshot().Remaining != 9 {
		t.Fatalf("clicking a lone tile should not change the board")
	}

	g.Step(input(core.ActionUp))
	if g.Snapshot().Group != 3 {
		t.Errorf("group under cursor = %d, want 3", g.Snapshot().Group)
	}

	res = g.Step(input(core.ActionSelect))
	if !res.Changed {
		t.Error("popping a group should report a change")
	}

	snap := g.Snapshot()
	if snap.Board != "..B\n.BB\nCAB" {
		t.Errorf("board after pop:\n%s", snap.Board)
	}
	if snap.Remaining != 6 || snap.Moves != 1 || res.State.Remaining != 6 {
		t.Errorf("remaining = %d, moves = %d, state = %+v", snap.Remaining, snap.Moves, res.State)
	}
	if g.lastPopped != 3 {
		t.Errorf("lastPopped = %d, want 3", g.lastPopped)
	}
}

func TestClickPopsAndMovesCursor(t *testing.T) {
	g := newLayoutGame(t, "AAB\nABB\nCAB", 80, 24)

	rect := g.view.CellRect(board.C(2, 0))
	in := core.NewInputFrame()
	in.SetClick(rect.Right()-1, rect.Bottom()-1)
	res := g.Step(in)

	if !res.Changed {
		t.Fatal("click on a group should pop it")
	}
	if got := g.Snapshot().Board; got != "A..\nAA.\nCA." {
		t.Errorf("board after click:\n%s", got)
	}
	if g.Cursor() != board.C(2, 0) {
		t.Errorf("cursor should follow the click, got %s", g.Cursor())
	}
}

func TestIdleStepOnlyAdvancesTick(t *testing.T) {
	g := newLayoutGame(t, "AAB\nABB\nCAB", 80, 24)
	g.Step(input(core.ActionUp))
	before := g.Snapshot()

	res := g.Step(input())
	after := g.Snapshot()
	if res.Changed {
		t.Error("idle step should not report a change")
	}
	if after.Tick != before.Tick+1 {
		t.Errorf("tick = %d, want %d", after.Tick, before.Tick+1)
	}
	after.Tick = before.Tick
	if after != before {
		t.Errorf("idle step changed the game:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestClickOutsideBoardIgnored(t *testing.T) {
	g := newLayoutGame(t, "AAB\nABB\nCAB", 80, 24)

	in := core.NewInputFrame()
	in.SetClick(0, 0)
	if res := g.Step(in); res.Changed {
		t.Error("click on the HUD should be ignored")
	}
	if g.Cursor() != board.C(0, 2) {
		t.Errorf("cursor moved to %s", g.Cursor())
	}
}

func TestWinClearsBoard(t *testing.T) {
	g := newLayoutGame(t, "AA\nBB", 80, 24)

	g.Step(input(core.ActionSelect))
	if got := g.Snapshot().Board; got != "..\nAA" {
		t.Fatalf("board after first pop:\n%s", got)
	}

	res := g.Step(input(core.ActionSelect))
	if !res.State.Won || !res.State.GameOver || res.State.Remaining != 0 {
		t.Fatalf("expected won state, got %+v", res.State)
	}
	if g.Snapshot().State != StateWon {
		t.Errorf("snapshot state = %s", g.Snapshot().State)
	}

	// Input is ignored until restart
	g.Step(input(core.ActionUp))
	if g.Cursor() != board.C(0, 1) {
		t.Errorf("cursor moved after win: %s", g.Cursor())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "BOARD CLEARED!") {
		t.Error("win overlay missing")
	}
	if !strings.Contains(screen.String(), "Cleared in 2 moves") {
		t.Error("move count missing from win overlay")
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 2})
	if g.State().Won || g.State().Remaining != 4 {
		t.Errorf("Reset should deal the layout again, got %+v", g.State())
	}
}

func TestPause(t *testing.T) {
	g := newLayoutGame(t, "AA\nBB", 80, 24)

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	if res := g.Step(input(core.ActionSelect)); res.Changed {
		t.Error("paused game should ignore pops")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestStuckBoard(t *testing.T) {
	g := newLayoutGame(t, "AB\nBA", 80, 24)

	if g.Snapshot().State != StateStuck {
		t.Errorf("state = %s, want %s", g.Snapshot().State, StateStuck)
	}
	if g.State().GameOver {
		t.Error("a board without moves is not game over")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "No moves left") {
		t.Error("no-moves hint missing")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 10, ScreenH: 5})

	if !g.tooSmall {
		t.Fatal("game should detect window is too small")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("state = %s", g.Snapshot().State)
	}

	screen := core.NewScreen(10, 5)
	g.Render(screen)
	// The message is clipped to the 10-column screen.
	if !strings.Contains(screen.String(), "too") {
		t.Error("too-small message missing")
	}

	before := g.Snapshot().Board
	g.Resize(80, 30)
	if g.tooSmall {
		t.Error("resize should fit the board")
	}
	if g.Snapshot().Board != before {
		t.Error("resize should keep the board")
	}
}

func TestRender(t *testing.T) {
	g := newLayoutGame(t, "AA\nAB", 80, 24)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "SameGame - test") {
		t.Error("HUD should contain the title and layout name")
	}
	if !strings.Contains(content, "Tiles: 4  Colors: 2") {
		t.Errorf("HUD stats missing:\n%s", content)
	}
	if !strings.Contains(content, "Group: 3") {
		t.Error("HUD should show the group under the cursor")
	}

	// Group members are highlighted, other tiles are solid.
	member := g.view.CellRect(board.C(1, 0))
	cx, cy := member.Center()
	if c := screen.GetCell(cx, cy); c.Rune != highlightRune || c.Color != g.opts.Palette.ColorOf(0) {
		t.Errorf("group member drawn as %+v", c)
	}
	other := g.view.CellRect(board.C(1, 1))
	cx, cy = other.Center()
	if c := screen.GetCell(cx, cy); c.Rune != tileRune || c.Color != g.opts.Palette.ColorOf(1) {
		t.Errorf("other tile drawn as %+v", c)
	}

	cursor := g.view.CellRect(g.Cursor())
	if screen.Get(cursor.X, cursor.Y) != '[' || screen.Get(cursor.Right()-1, cursor.Y) != ']' {
		t.Error("cursor brackets missing")
	}
}

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name         string
		cols, rows   int
		cellW, cellH int
		screenW      int
		screenH      int
		wantW, wantH int
		tooSmall     bool
	}{
		{"configured size fits", 15, 10, 4, 2, 80, 30, 4, 2, false},
		{"shrinks to fit", 15, 10, 4, 2, 80, 24, 3, 1, false},
		{"single cells", 15, 10, 4, 2, 17, 15, 1, 1, false},
		{"too small", 15, 10, 4, 2, 16, 15, 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, tooSmall := fitViewport(tc.cols, tc.rows, tc.cellW, tc.cellH, tc.screenW, tc.screenH)
			if tooSmall != tc.tooSmall {
				t.Fatalf("tooSmall = %v, want %v", tooSmall, tc.tooSmall)
			}
			if v.cellW != tc.wantW || v.cellH != tc.wantH {
				t.Errorf("cell size = %dx%d, want %dx%d", v.cellW, v.cellH, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestCellAtInvertsCellRect(t *testing.T) {
	v, tooSmall := fitViewport(5, 4, 4, 2, 80, 24)
	if tooSmall {
		t.Fatal("board should fit")
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			r := v.CellRect(board.C(x, y))
			for _, p := range [][2]int{{r.X, r.Y}, {r.Right() - 1, r.Bottom() - 1}} {
				got, ok := v.CellAt(p[0], p[1])
				if !ok || got != board.C(x, y) {
					t.Errorf("CellAt(%d, %d) = %s, %v; want %s", p[0], p[1], got, ok, board.C(x, y))
				}
			}
		}
	}

	if _, ok := v.CellAt(v.frame.X, v.frame.Y); ok {
		t.Error("border should not map to a cell")
	}
	if _, ok := (viewport{}).CellAt(0, 0); ok {
		t.Error("zero viewport should not map to a cell")
	}
}
