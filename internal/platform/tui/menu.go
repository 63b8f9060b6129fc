package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceContinue
	ChoiceNewGame
	ChoiceScores
	ChoiceReset
	ChoiceQuit
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))
	menuHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	slot      Slot
	scores    bool // Score history available
	status    string
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a new menu model. The Continue and Reset entries only
// appear while the slot holds a save.
func NewMenuModel(slot Slot, scores bool, width, height int) MenuModel {
	m := MenuModel{
		width:     width,
		height:    height,
		slot:      slot,
		scores:    scores,
		keyMapper: NewKeyMapper(),
	}
	m.items = m.buildItems()
	return m
}

func (m MenuModel) buildItems() []MenuItem {
	saved, hasSave := m.slot.LoadProgress()

	items := make([]MenuItem, 0, 5)
	if hasSave {
		items = append(items, MenuItem{
			Choice: ChoiceContinue,
			Title:  fmt.Sprintf("Continue (Level %d, Score %d)", saved.Level, saved.Score),
		})
	}
	items = append(items, MenuItem{Choice: ChoiceNewGame, Title: "New Game"})
	if m.scores {
		items = append(items, MenuItem{Choice: ChoiceScores, Title: "High Scores"})
	}
	if hasSave {
		items = append(items, MenuItem{Choice: ChoiceReset, Title: "Reset Progress"})
	}
	items = append(items, MenuItem{Choice: ChoiceQuit, Title: "Quit"})
	return items
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		if m.scores {
			m.selected = &MenuItem{Choice: ChoiceScores}
			return m, tea.Quit
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		switch item.Choice {
		case ChoiceReset:
			return m.resetProgress(), nil
		case ChoiceQuit:
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &item
		return m, tea.Quit
	}

	return m, nil
}

// resetProgress clears the save slot and rebuilds the entries.
func (m MenuModel) resetProgress() MenuModel {
	if err := m.slot.ClearProgress(); err != nil {
		m.status = "Could not reset progress"
		return m
	}
	m.status = "Progress reset"
	m.items = m.buildItems()
	m.cursor = 0
	return m
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B R I C K S"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(centerText(m.status, m.width))
		b.WriteString("\n")
	}
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	if m.scores {
		controls = "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	}
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width, measuring the visible width
// so styled strings line up.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

var _ Slot = (*bricks.MemoryStore)(nil)
