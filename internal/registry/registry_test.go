package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/balloon-shooter/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return &stubGame{id: "aa-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("Exists() should report a registered game")
	}

	g, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "aa-stub" {
		t.Errorf("Create() returned %q", g.ID())
	}

	games := List()
	if len(games) < 2 {
		t.Fatalf("List() returned %d games", len(games))
	}
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}
	if games[0].ID != "aa-stub" || games[0].Title != "Stub aa-stub" {
		t.Errorf("List()[0] = %+v", games[0])
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("missing")
	if err == nil || !strings.Contains(err.Error(), `unknown game "missing"`) {
		t.Errorf("Create() error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", func() Game { return &stubGame{id: "dup-stub"} })
}
