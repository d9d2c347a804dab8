package registry

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                           { return s.id }
func (s stubGame) Title() string                        { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)             {}
func (s stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s stubGame) Render(*core.Screen)                  {}
func (s stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_test", func() Game { return stubGame{id: "zz_test"} })
	Register("aa_test", func() Game { return stubGame{id: "aa_test"} })

	if !Exists("zz_test") || Exists("missing") {
		t.Fatal("Exists() mismatch")
	}

	g, err := Create("aa_test")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "aa_test" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}

	ids := IDs()
	if !slices.IsSorted(ids) {
		t.Errorf("IDs() not sorted: %v", ids)
	}
	for _, info := range List() {
		if info.ID == "aa_test" && info.Title != "Stub aa_test" {
			t.Errorf("title = %q", info.Title)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_test", func() Game { return stubGame{id: "dup_test"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup_test", func() Game { return stubGame{id: "dup_test"} })
}
