package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	got := RenderScreen(s)
	expected := "ab   \ncd   "
	if got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestRenderScreenColoredRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColored(0, 0, "RED", core.ColorRed)
	s.SetCell(3, 0, core.Cell{Rune: '▀', Fg: core.ColorBlue, Bg: core.ColorGreen})

	got := RenderScreen(s)
	for _, want := range []string{"RED", "▀"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
	if !strings.HasSuffix(got, "  ") {
		t.Errorf("uncolored tail should be written as-is: %q", got)
	}
}

func TestPaletteColor(t *testing.T) {
	if got := paletteColor(core.ColorBrown); got != "#aa5500" {
		t.Errorf("paletteColor(brown) = %q, expected #aa5500", got)
	}
	a := styleFor(cellStyle{core.ColorRed, core.ColorDefault})
	b := styleFor(cellStyle{core.ColorRed, core.ColorDefault})
	if a.GetForeground() != b.GetForeground() {
		t.Error("cached style differs")
	}
}
