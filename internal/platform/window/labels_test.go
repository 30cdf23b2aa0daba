package window

import (
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// labeledGame is a pixelGame with two labels.
type labeledGame struct {
	pixelGame
}

func (g *labeledGame) Labels() []core.Label {
	return []core.Label{
		{X: 1, Y: 2, Text: "HP 10", Color: core.ColorYellow},
		{X: 4, Y: 5, Text: "OVER", Color: core.ColorWhite, Centered: true},
	}
}

func TestPlaceLabels(t *testing.T) {
	r, err := NewRunner(&labeledGame{}, nil, core.DefaultConfig(), Options{Scale: 10})
	if err != nil {
		t.Fatalf("NewRunner() failed: %v", err)
	}

	// Seven window pixels per rune, like the bitmap face
	advance := func(s string) float64 { return float64(7 * len(s)) }
	got := r.placeLabels(advance)

	tests := []struct {
		x, y  float64
		text  string
		color core.Color
	}{
		{10, 20 + hudHeight, "HP 10", core.ColorYellow},
		{40 - 14, 50 + hudHeight, "OVER", core.ColorWhite},
	}
	if len(got) != len(tests) {
		t.Fatalf("placed %d labels, expected %d", len(got), len(tests))
	}
	for i, tc := range tests {
		l := got[i]
		if l.x != tc.x || l.y != tc.y || l.text != tc.text {
			t.Errorf("label %d = (%v, %v, %q), expected (%v, %v, %q)", i, l.x, l.y, l.text, tc.x, tc.y, tc.text)
		}
		if l.color != paletteRGBA(tc.color) {
			t.Errorf("label %d color = %v, expected palette %d", i, l.color, tc.color)
		}
	}
}

func TestPlaceLabelsWithoutText(t *testing.T) {
	r, err := NewRunner(&pixelGame{}, nil, core.DefaultConfig(), DefaultOptions())
	if err != nil {
		t.Fatalf("NewRunner() failed: %v", err)
	}
	if got := r.placeLabels(func(string) float64 { return 0 }); len(got) != 0 {
		t.Errorf("placed %d labels for a scenario without text", len(got))
	}
}
