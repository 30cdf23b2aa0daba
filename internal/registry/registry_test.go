package registry

import (
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

type stubGame struct {
	id string
	fb *core.Framebuffer
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type pixelGame struct{ stubGame }

func (g *pixelGame) Framebuffer() *core.Framebuffer { return g.fb }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered scenario not found")
	}
	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID = %q, expected zz-stub", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = info.Title == "Stub zz-stub"
		}
	}
	if !found {
		t.Error("List does not report the stub with its title")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}

func TestPixels(t *testing.T) {
	if _, ok := Pixels(&stubGame{}); ok {
		t.Error("text-only scenario reported a framebuffer")
	}
	fb := core.NewFramebuffer(2, 2)
	fg, ok := Pixels(&pixelGame{stubGame{fb: fb}})
	if !ok || fg.Framebuffer() != fb {
		t.Error("framebuffer scenario not detected")
	}
}

type labeledGame struct{ pixelGame }

func (g *labeledGame) Labels() []core.Label {
	return []core.Label{{X: 1, Y: 2, Text: "hi", Color: core.ColorWhite}}
}

func TestLabels(t *testing.T) {
	if got := Labels(&pixelGame{}); got != nil {
		t.Errorf("Labels = %v, expected nil for a scenario without text", got)
	}
	got := Labels(&labeledGame{})
	if len(got) != 1 || got[0].Text != "hi" {
		t.Errorf("Labels = %v, expected the scenario's label", got)
	}
}
