package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// scoreKeys are the scoreboard bindings. Scrolling keys are handled by the
// table itself and only listed here for the help line.
type scoreKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

func (k scoreKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultScoreKeys() scoreKeys {
	return scoreKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next difficulty")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev difficulty")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = tabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	frameStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	helpLineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// scoreTabs are the difficulty filters; the empty tab shows every entry.
var scoreTabs = append([]config.Difficulty{""}, config.Difficulties()...)

func tabTitle(d config.Difficulty) string {
	if d == "" {
		return "All"
	}
	return d.Title()
}

// ScoreboardModel is the Bubble Tea model for the highscore screen.
type ScoreboardModel struct {
	entries   []storage.Entry // Whole table, best first
	shown     []storage.Entry // Entries of the current tab
	tab       int
	loadErr   error
	table     table.Model
	help      help.Model
	keys      scoreKeys
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the whole table.
func NewScoreboardModel(scores storage.Scores, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		keys:   defaultScoreKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if scores != nil {
		m.entries, m.loadErr = scores.Top(0)
	}
	m.table = newScoreTable(height)
	m.applyTab()
	return m
}

func newScoreTable(height int) table.Model {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	return table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Name", Width: maxNameLen},
			{Title: "Score", Width: 7},
			{Title: "Difficulty", Width: 10},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 5)), // title, tabs, frame and help
		table.WithStyles(styles),
	)
}

// applyTab filters entries by the current tab and refreshes the rows.
// Ranks stay those of the whole table.
func (m *ScoreboardModel) applyTab() {
	filter := scoreTabs[m.tab]

	m.shown = nil
	var rows []table.Row
	for i, e := range m.entries {
		if filter != "" && e.Difficulty != string(filter) {
			continue
		}
		m.shown = append(m.shown, e)

		difficulty := "-"
		if d, err := config.ParseDifficulty(e.Difficulty); err == nil {
			difficulty = d.Title()
		}
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			e.Name,
			strconv.Itoa(e.Score),
			difficulty,
			e.CreatedAt.Local().Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.tab = (m.tab + 1) % len(scoreTabs)
			m.applyTab()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.tab = (m.tab + len(scoreTabs) - 1) % len(scoreTabs)
			m.applyTab()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(max(m.height-10, 5))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	tabs := make([]string, len(scoreTabs))
	for i, d := range scoreTabs {
		style := tabStyle
		if i == m.tab {
			style = activeTabStyle
		}
		tabs[i] = style.Render(tabTitle(d))
	}

	var body string
	switch {
	case m.loadErr != nil:
		body = noticeStyle.Render("Could not load scores.\n" + m.loadErr.Error())
	case len(m.shown) == 0:
		body = noticeStyle.Render("No scores recorded yet.\nPlay a round to set a high score!")
	default:
		body = m.table.View()
	}

	page := lipgloss.JoinVertical(lipgloss.Center,
		boardTitleStyle.Render("HIGH SCORES"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		frameStyle.Render(body),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, page) + "\n" +
		helpLineStyle.Render(m.help.View(m.keys))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the highscore screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(scores storage.Scores, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(scores, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
