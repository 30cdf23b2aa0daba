package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// recentLimit bounds how many of the player's runs the menu scans for the
// last score per scenario.
const recentLimit = 100

// MenuItem represents a selectable scenario in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Pixels bool // Draws into a framebuffer, so it can also run in a window

	Best int // Best score by anyone, 0 when never played
	Runs int
	Last int  // The menu player's most recent score
	Seen bool // Whether Last is set
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(paletteColor(core.ColorYellow))
	menuItemStyle  = lipgloss.NewStyle().Foreground(paletteColor(core.ColorLightGray))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(paletteColor(core.ColorWhite))
	menuDimStyle   = lipgloss.NewStyle().Foreground(paletteColor(core.ColorDarkGray))
	menuTagStyle   = lipgloss.NewStyle().Foreground(paletteColor(core.ColorLightCyan))
)

// MenuModel is the Bubble Tea model for the scenario picker menu.
type MenuModel struct {
	items          []MenuItem
	player         string
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a scenario
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model for player. Scores are read once;
// the menu is rebuilt after every run.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, player string) MenuModel {
	if player == "" {
		player = storage.LocalPlayer
	}

	m := MenuModel{
		items:     menuItems(),
		player:    player,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	m.loadScores()
	return m
}

func menuItems() []MenuItem {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if game, err := registry.Create(g.ID); err == nil {
			_, item.Pixels = registry.Pixels(game)
		}
		items = append(items, item)
	}
	return items
}

// loadScores fills in the per-scenario stats and the player's last runs.
func (m *MenuModel) loadScores() {
	if m.store == nil {
		return
	}

	stats, _ := m.store.GetAllGamesStats()
	recent, _ := m.store.PlayerScores(m.player, recentLimit)

	for i := range m.items {
		it := &m.items[i]
		if st, ok := stats[it.GameID]; ok {
			it.Best, it.Runs = st.HighScore, st.GamesCount
		}
		// Newest first, so the first match is the last run
		for _, e := range recent {
			if e.GameID == it.GameID {
				it.Last, it.Seen = e.Score, true
				break
			}
		}
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation. The cursor wraps.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	n := len(m.items)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}

	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}

	case MenuActionSelect:
		if n > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the scenario
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  R E T R O   A R C A D E  "), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(paletteStrip(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Player: "+m.player), m.width))
	b.WriteString("\n\n")

	titleW := 0
	for _, it := range m.items {
		titleW = max(titleW, len(it.Title))
	}
	for i, it := range m.items {
		b.WriteString(centerText(m.renderItem(i, it, titleW), m.width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(m.itemDetail(m.items[m.cursor])), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// renderItem draws one row: cursor, padded title, window tag and best score.
func (m MenuModel) renderItem(i int, it MenuItem, titleW int) string {
	cursor, style := "  ", menuItemStyle
	if i == m.cursor {
		cursor, style = "> ", menuCurStyle
	}

	tag := "   "
	if it.Pixels {
		tag = menuTagStyle.Render("px ")
	}

	best := "        "
	if it.Runs > 0 {
		best = fmt.Sprintf("best %-3d", it.Best)
	}
	return style.Render(fmt.Sprintf("%s%-*s", cursor, titleW, it.Title)) + "  " + tag + " " + menuDimStyle.Render(best)
}

// itemDetail is the line under the list describing the highlighted scenario.
func (m MenuModel) itemDetail(it MenuItem) string {
	if it.Runs == 0 {
		return "Not played yet"
	}
	line := fmt.Sprintf("%d runs  |  best %d", it.Runs, it.Best)
	if it.Seen {
		line += fmt.Sprintf("  |  your last %d", it.Last)
	}
	return line
}

// paletteStrip renders the sixteen EGA colours as a row of blocks.
func paletteStrip() string {
	var b strings.Builder
	for c := core.ColorBlack; c <= core.ColorWhite; c++ {
		b.WriteString(lipgloss.NewStyle().Foreground(paletteColor(c)).Render("██"))
	}
	return b.String()
}

// Items returns the menu entries.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// Cursor returns the highlighted entry index.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers styled text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Pixels          bool
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu for the local player and returns the selection.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg, storage.LocalPlayer)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
		result.Pixels = m.Selected().Pixels
	} else {
		result.Quit = true
	}

	return result, nil
}
