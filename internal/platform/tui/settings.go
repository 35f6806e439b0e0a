package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/levels"
)

// Settings holds the round setup chosen on the settings screen.
type Settings struct {
	Difficulty config.Difficulty
	Level      string // Empty means the difficulty's own obstacles
}

// levelOption is one row of the level list.
type levelOption struct {
	id    string
	title string
}

// SettingsModel lets users pick a difficulty and then an obstacle layout.
type SettingsModel struct {
	cfg           config.Config
	cursor        int
	levelCursor   int
	inLevelSelect bool
	levels        []levelOption
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     Settings
	choosing      bool
	quitting      bool
	back          bool
}

// NewSettingsModel creates a settings screen with the cursor on current.
func NewSettingsModel(cfg config.Config, current Settings, width, height int) SettingsModel {
	options := []levelOption{{id: "", title: "Difficulty default"}}
	for _, id := range levels.BuiltinIDs() {
		title := id
		if lvl, err := levels.Builtin(id); err == nil {
			title = lvl.Name
		}
		options = append(options, levelOption{id: id, title: title})
	}

	m := SettingsModel{
		cfg:       cfg,
		levels:    options,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		selection: current,
		choosing:  true,
	}
	for i, d := range config.Difficulties() {
		if d == current.Difficulty {
			m.cursor = i
		}
	}
	for i, o := range options {
		if o.id == current.Level {
			m.levelCursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleDifficultyKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SettingsModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	tiers := config.Difficulties()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(tiers)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Difficulty = tiers[m.cursor]
		m.inLevelSelect = true
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m SettingsModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Level = m.levels[m.levelCursor].id
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the difficulty or level list.
func (m SettingsModel) View() string {
	if m.quitting || m.back || !m.choosing {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewDifficultySelect()
}

func (m SettingsModel) viewDifficultySelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S E T T I N G S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, d := range config.Difficulties() {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-8s %s", cursor, d.Title(), m.describeTier(d)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m SettingsModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT OBSTACLES", m.width))
	b.WriteString("\n\n")

	for i, o := range m.levels {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%2d. %s", cursor, i+1, o.title), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// describeTier summarizes a tier's pace and obstacles.
func (m SettingsModel) describeTier(d config.Difficulty) string {
	tier := m.cfg.Tier(d)
	switch {
	case tier.Obstacles.Level != "":
		return fmt.Sprintf("%2d tps, level %s", tier.TickRate, tier.Obstacles.Level)
	case tier.Obstacles.Random > 0:
		return fmt.Sprintf("%2d tps, %d random blocks", tier.TickRate, tier.Obstacles.Random)
	default:
		return fmt.Sprintf("%2d tps, open field", tier.TickRate)
	}
}

// Selected returns the selection, or nil if still choosing.
func (m SettingsModel) Selected() *Settings {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SettingsModel) WantsBack() bool {
	return m.back
}

// RunSettings runs the settings screen. It returns nil when the user backs
// out, and quit reports whether the user asked to leave the game entirely.
func RunSettings(cfg config.Config, current Settings, width, height int) (selected *Settings, quit bool, err error) {
	model := NewSettingsModel(cfg, current, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(SettingsModel)
	if !ok {
		return nil, false, nil
	}

	return m.Selected(), m.IsQuitting(), nil
}
