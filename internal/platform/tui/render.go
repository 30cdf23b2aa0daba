package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// cellStyle is the colour pair of one run of cells.
type cellStyle struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per palette colour pair in use.
// SSH sessions render concurrently.
var (
	styleCache = map[cellStyle]lipgloss.Style{}
	styleMu    sync.Mutex
)

// paletteColor converts a palette index to a true-colour lipgloss colour.
func paletteColor(c core.Color) lipgloss.Color {
	return lipgloss.Color(core.Palette(c).Hex())
}

func styleFor(cs cellStyle) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()

	if st, ok := styleCache[cs]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if cs.fg != core.ColorDefault {
		st = st.Foreground(paletteColor(cs.fg))
	}
	if cs.bg != core.ColorDefault {
		st = st.Background(paletteColor(cs.bg))
	}
	styleCache[cs] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{cell.Fg, cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{cell.Fg, cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.fg == core.ColorDefault && start.bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
