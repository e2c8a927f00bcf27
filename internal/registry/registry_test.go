package registry

import (
	"testing"

	"github.com/vovakirdan/tui-tower/internal/core"
)

type fakeGame struct {
	id      string
	resized core.RuntimeConfig
	left    bool
}

func (g *fakeGame) ID() string                           { return g.id }
func (g *fakeGame) Title() string                        { return "Fake " + g.id }
func (g *fakeGame) Reset(core.RuntimeConfig)             {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen)                  {}
func (g *fakeGame) State() core.GameState                { return core.GameState{} }
func (g *fakeGame) Resize(cfg core.RuntimeConfig)        { g.resized = cfg }
func (g *fakeGame) ReturnToMenu()                        { g.left = true }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_fake", func() Game { return &fakeGame{id: "zz_fake"} })

	if !Exists("zz_fake") {
		t.Fatal("expected zz_fake to be registered")
	}

	g, err := Create("zz_fake")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz_fake" {
		t.Errorf("ID = %q, want zz_fake", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_fake" {
			found = true
			if info.Title != "Fake zz_fake" {
				t.Errorf("Title = %q, want %q", info.Title, "Fake zz_fake")
			}
		}
	}
	if !found {
		t.Error("zz_fake missing from List()")
	}
}

func TestListIsSorted(t *testing.T) {
	Register("zz_sort_b", func() Game { return &fakeGame{id: "zz_sort_b"} })
	Register("zz_sort_a", func() Game { return &fakeGame{id: "zz_sort_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("does_not_exist") {
		t.Error("Exists should be false for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &fakeGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_dup", func() Game { return &fakeGame{id: "zz_dup"} })
}

func TestOptionalInterfaces(t *testing.T) {
	var g Game = &fakeGame{id: "zz_caps"}

	r, ok := g.(Resizable)
	if !ok {
		t.Fatal("fakeGame should be Resizable")
	}
	r.Resize(core.RuntimeConfig{ScreenW: 100, ScreenH: 40})
	if got := g.(*fakeGame).resized.ScreenW; got != 100 {
		t.Errorf("resized width = %d, want 100", got)
	}

	l, ok := g.(Leaver)
	if !ok {
		t.Fatal("fakeGame should be a Leaver")
	}
	l.ReturnToMenu()
	if !g.(*fakeGame).left {
		t.Error("ReturnToMenu not called")
	}
}

type describedGame struct {
	fakeGame
}

func (g *describedGame) Description() string { return "stacks things" }

func TestListIncludesDescription(t *testing.T) {
	Register("zz_described", func() Game { return &describedGame{fakeGame{id: "zz_described"}} })

	for _, info := range List() {
		switch info.ID {
		case "zz_described":
			if info.Description != "stacks things" {
				t.Errorf("Description = %q, want %q", info.Description, "stacks things")
			}
		case "zz_fake":
			if info.Description != "" {
				t.Errorf("games without Describer should have no description, got %q", info.Description)
			}
		}
	}
}
