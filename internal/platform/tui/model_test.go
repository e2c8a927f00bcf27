package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tower/internal/core"
	"github.com/vovakirdan/tui-tower/internal/storage"
)

// stubGame records what the model feeds it.
type stubGame struct {
	resets   int
	resized  []core.RuntimeConfig
	left     bool
	steps    []core.InputFrame
	state    core.GameState
	lastCfg  core.RuntimeConfig
	restarts int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.lastCfg = cfg
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	if in.Has(core.ActionRestart) && g.state.GameOver {
		g.restarts++
		g.state = core.GameState{}
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(s *core.Screen) {
	s.Clear()
	s.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Resize(cfg core.RuntimeConfig) { g.resized = append(g.resized, cfg) }

func (g *stubGame) ReturnToMenu() { g.left = true }

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1, Difficulty: "slow"}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelInitResetsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if g.lastCfg.Difficulty != "slow" {
		t.Errorf("difficulty = %q, want slow", g.lastCfg.Difficulty)
	}
}

func TestModelDefaultsSeedAndTickRate(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 10, ScreenH: 10})
	m.Init()

	if g.lastCfg.Seed == 0 {
		t.Error("seed should default to a time-based value")
	}
	if g.lastCfg.TickRate != core.DefaultConfig().TickRate {
		t.Errorf("tick rate = %d, want %d", g.lastCfg.TickRate, core.DefaultConfig().TickRate)
	}
}

func TestModelForwardsPlaceOnTick(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	m, _ = update(t, m, keyMsg(" "))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if len(g.steps) != 1 || !g.steps[0].Has(core.ActionPlace) {
		t.Fatalf("first step should carry Place, got %+v", g.steps)
	}

	// Input is cleared after each tick
	update(t, m, TickMsg{})
	if g.steps[1].Has(core.ActionPlace) {
		t.Error("Place should not repeat on the next tick")
	}
}

func TestModelMouseClickPlaces(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m, _ = update(t, m, click)
	update(t, m, TickMsg{})

	if !g.steps[0].Has(core.ActionPlace) {
		t.Error("left click should place")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	m, _ = update(t, m, keyMsg("r"))
	m, _ = update(t, m, TickMsg{})
	if g.steps[0].Has(core.ActionRestart) {
		t.Error("restart should be ignored while playing")
	}

	g.state = core.GameState{GameOver: true, Score: 3}
	m, _ = update(t, m, TickMsg{})
	if !m.State().GameOver {
		t.Fatal("model should see game over")
	}

	m, _ = update(t, m, keyMsg("r"))
	m, _ = update(t, m, TickMsg{})
	if g.restarts != 1 {
		t.Errorf("restarts = %d, want 1", g.restarts)
	}
	if m.State().GameOver {
		t.Error("state should be live after restart")
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	m, cmd := update(t, m, keyMsg("b"))
	if !m.BackToMenu() {
		t.Error("b should request the menu")
	}
	if !g.left {
		t.Error("game should be told to return to menu")
	}
	if cmd == nil {
		t.Error("standalone model should quit its program")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}
}

func TestModelEmbeddedBackDoesNotQuit(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime()).Embedded()
	m.Init()

	m, cmd := update(t, m, keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("esc should request the menu")
	}
	if cmd != nil {
		t.Error("embedded model must not quit the host program")
	}
}

func TestModelQuit(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	m, cmd := update(t, m, keyMsg("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelResizeForwardsToResizable(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if len(g.resized) != 1 {
		t.Fatalf("resize calls = %d, want 1", len(g.resized))
	}
	if g.resized[0].ScreenW != 100 || g.resized[0].ScreenH != 40 {
		t.Errorf("resized to %dx%d, want 100x40", g.resized[0].ScreenW, g.resized[0].ScreenH)
	}
	if g.resets != 1 {
		t.Error("resizable games should not be reset")
	}
}

func TestModelView(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	if view := m.View(); len(view) == 0 {
		t.Error("view should render the game")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m := NewModel(g, store, testRuntime())
	m.Init()

	g.state = core.GameState{GameOver: true, Won: true, Score: 7}
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	runs, err := store.AllScores("stub")
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	if runs[0].Score != 7 || runs[0].Outcome != storage.OutcomeWon || runs[0].Difficulty != "slow" {
		t.Errorf("unexpected run %+v", runs[0])
	}

	// A restarted session records its own run
	m, _ = update(t, m, keyMsg("r"))
	m, _ = update(t, m, TickMsg{})
	g.state = core.GameState{GameOver: true, Score: 2}
	update(t, m, TickMsg{})

	runs, err = store.AllScores("stub")
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("runs = %d, want 2", len(runs))
	}
}
