package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuHighscores
	MenuSettings
	MenuQuit
)

func (c MenuChoice) String() string {
	switch c {
	case MenuPlay:
		return "Play"
	case MenuHighscores:
		return "Highscores"
	case MenuSettings:
		return "Settings"
	case MenuQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuChoices = []MenuChoice{MenuPlay, MenuHighscores, MenuSettings, MenuQuit}

// maxNameLen limits player names to what fits the highscore table.
const maxNameLen = 16

// MenuModel is the Bubble Tea model for the main menu.
// The cursor is -1 while the name field has focus.
type MenuModel struct {
	name       textinput.Model
	cursor     int
	width      int
	height     int
	difficulty config.Difficulty
	best       int
	keyMapper  *KeyMapper
	choice     MenuChoice
}

// NewMenuModel creates a menu with the name field prefilled.
func NewMenuModel(player string, d config.Difficulty, best, width, height int) MenuModel {
	ti := textinput.New()
	ti.Placeholder = DefaultPlayer
	ti.CharLimit = maxNameLen
	ti.Width = maxNameLen
	ti.Prompt = "Name: "
	ti.SetValue(player)

	m := MenuModel{
		name:       ti,
		width:      width,
		height:     height,
		difficulty: d,
		best:       best,
		keyMapper:  NewKeyMapper(),
	}
	if player == "" {
		m.cursor = -1
		m.name.Focus()
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	if m.name.Focused() {
		return textinput.Blink
	}
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.cursor < 0 {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// handleNameKey edits the name; navigation keys leave the field.
func (m MenuModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.choice = MenuQuit
		return m, tea.Quit
	case "enter", "down", "tab":
		m.cursor = 0
		m.name.Blur()
		return m, nil
	case "esc":
		m.name.Blur()
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" || msg.String() == "n" {
		m.cursor = -1
		return m, m.name.Focus()
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuQuit
		return m, tea.Quit

	case MenuActionUp:
		m.cursor--
		if m.cursor < 0 {
			return m, m.name.Focus()
		}

	case MenuActionDown:
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = menuChoices[m.cursor]
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.name.View(), m.width))
	b.WriteString("\n\n")

	for i, c := range menuChoices {
		line := "  " + c.String()
		if i == m.cursor {
			line = activeStyle.Render("> " + c.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := fmt.Sprintf("Difficulty: %s  |  Best: %d", m.difficulty.Title(), m.best)
	b.WriteString(centerText(dimStyle.Render(status), m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Edit name  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Player returns the entered name, or DefaultPlayer when empty.
func (m MenuModel) Player() string {
	if name := strings.TrimSpace(m.name.Value()); name != "" {
		return name
	}
	return DefaultPlayer
}

// Choice returns the selected entry, or MenuNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice  MenuChoice
	Player  string
	ScreenW int
	ScreenH int
}

// RunMenu runs the main menu and returns the selection.
func RunMenu(player string, d config.Difficulty, best, width, height int) (MenuResult, error) {
	model := NewMenuModel(player, d, best, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuNone {
		return MenuResult{Choice: MenuQuit, Player: player, ScreenW: width, ScreenH: height}, nil
	}

	return MenuResult{
		Choice:  m.Choice(),
		Player:  m.Player(),
		ScreenW: m.width,
		ScreenH: m.height,
	}, nil
}
