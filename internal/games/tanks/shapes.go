package tanks

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/sprite"
)

// baseBrickSize is the cell size the sprite art below is drawn for.
const baseBrickSize = 4

var (
	playerArt = []string{
		".Y.",
		"GYG",
		"G.G",
	}
	enemyArt = [4][]string{
		{".W.", "RWR", "R.R"},
		{".W.", "MWM", "M.M"},
		{".W.", "CWC", "C.C"},
		{".W.", "BWB", "B.B"},
	}
	bulletArt = []string{"W"}
	brickArt  = [4][]string{
		{"rrrb", "rrrb", "rbrr", "bbrb"},
		{"ssss", "sLLs", "sLLs", "ssss"},
		{"gggg", "gGGg", "gGGg", "gggg"},
		{"uuuu", "uUUu", "uUUu", "uuuu"},
	}
)

var artLegend = map[rune]core.Color{
	'Y': core.ColorYellow,
	'G': core.ColorGreen,
	'W': core.ColorWhite,
	'R': core.ColorRed,
	'M': core.ColorMagenta,
	'C': core.ColorCyan,
	'B': core.ColorLightBlue,
	'r': core.ColorBrown,
	'b': core.ColorLightRed,
	's': core.ColorDarkGray,
	'L': core.ColorLightGray,
	'g': core.ColorGreen,
	'u': core.ColorBlue,
	'U': core.ColorLightBlue,
}

// Shapes is the immutable shape table for one brick size. Entities hold
// references into it; nothing mutates it after NewShapes returns.
type Shapes struct {
	Player  sprite.Set
	Enemies [4]sprite.Set
	Bullet  sprite.Set
	Bricks  [4]*sprite.Sprite // brick types 1..4
}

// NewShapes builds every sprite scaled to the given brick size.
func NewShapes(brickSize float64) *Shapes {
	scale := int(brickSize) / baseBrickSize
	if scale < 1 {
		scale = 1
	}

	tank := func(art []string) sprite.Set {
		s := sprite.MustParse(art, artLegend)
		s.OriginX, s.OriginY = s.Width/2, s.Height/2
		return sprite.Oriented(s.Scale(scale))
	}

	sh := &Shapes{
		Player: tank(playerArt),
		Bullet: sprite.Oriented(sprite.MustParse(bulletArt, artLegend).Scale(scale)),
	}
	for i, art := range enemyArt {
		sh.Enemies[i] = tank(art)
	}
	for i, art := range brickArt {
		sh.Bricks[i] = sprite.MustParse(art, artLegend).Scale(scale)
	}
	return sh
}
