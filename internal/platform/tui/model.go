package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// DefaultPlayer is used when no name was entered.
const DefaultPlayer = "player"

// Session describes how rounds are set up and where their results go.
type Session struct {
	Config     config.Config
	Difficulty config.Difficulty
	Level      string // Overrides the difficulty's obstacles when set
	Player     string
	Seed       int64 // 0 means a time-based seed
	Scores     storage.Scores
	Logger     *log.Logger
	ScreenW    int
	ScreenH    int
}

// frameSink keeps the latest snapshot for View.
type frameSink struct {
	snap snake.Snapshot
}

func (f *frameSink) Render(s snake.Snapshot) {
	f.snap = s
}

// Model is the Bubble Tea model that runs snake rounds.
type Model struct {
	session    Session
	round      *snake.Round
	roundID    string
	frame      *frameSink
	screen     *core.Screen
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	best       int
	quitting   bool
	tooSmall   bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewModel creates a model and starts the first round.
func NewModel(s Session) (Model, error) {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.Player == "" {
		s.Player = DefaultPlayer
	}

	m := Model{
		session:    s,
		frame:      &frameSink{},
		screen:     core.NewScreen(s.ScreenW, s.ScreenH),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	m.tooSmall = m.checkSize()

	if s.Scores != nil {
		best, err := s.Scores.HighScore()
		if err != nil {
			s.Logger.Warn("could not read high score", "error", err)
		}
		m.best = best
	}

	if err := m.startRound(s.Seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// startRound replaces the current round with a fresh one.
func (m *Model) startRound(seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts, err := snake.OptionsFor(m.session.Config, m.session.Difficulty, m.session.Level, seed)
	if err != nil {
		return err
	}
	opts.Sink = m.frame

	round, err := snake.NewRound(opts)
	if err != nil {
		return err
	}

	m.round = round
	m.roundID = uuid.NewString()
	m.frame.snap = round.Snapshot()
	m.scoreSaved = false
	m.inputFrame.Clear()

	m.session.Logger.Info("round started",
		"round", m.roundID,
		"player", m.session.Player,
		"difficulty", m.session.Difficulty,
		"obstacles", m.frame.snap.Level,
		"seed", seed,
	)
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.round.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.session.ScreenW = msg.Width
		m.session.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.tooSmall = m.checkSize()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.round.Running() {
		if quit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame); quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Game over: only restart and quit are meaningful.
	// Esc pauses a running round and leaves a finished one.
	action, quit := m.keyMapper.MapKey(msg)
	switch {
	case quit, action == core.ActionBack, msg.Type == tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionRestart:
		if err := m.startRound(m.session.Seed); err != nil {
			m.session.Logger.Error("could not restart round", "error", err)
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleTick advances the round. Ticks keep arriving after game over so a
// restart picks up the loop without scheduling a second one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.tooSmall {
		return m, tickCmd(m.round.TickRate())
	}

	result := m.round.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.State.GameOver && !m.scoreSaved {
		m.saveScore(result.State.Score)
	}

	return m, tickCmd(m.round.TickRate())
}

// saveScore appends the finished round to the highscore table, once.
func (m *Model) saveScore(score int) {
	m.scoreSaved = true
	m.best = max(m.best, score)

	logger := m.session.Logger.With("round", m.roundID)
	if m.session.Scores == nil {
		logger.Info("round finished", "score", score, "cause", m.round.Cause())
		return
	}

	rank, err := m.session.Scores.Append(storage.Entry{
		RoundID:    m.roundID,
		Name:       m.session.Player,
		Score:      score,
		Difficulty: string(m.session.Difficulty),
	})
	if err != nil {
		logger.Error("could not save score", "error", err)
		return
	}
	logger.Info("round finished", "score", score, "rank", rank, "cause", m.round.Cause())
}

func (m Model) checkSize() bool {
	w, h := snake.MinScreenSize(m.session.Config.Bounds())
	return m.screen.Width() < w || m.screen.Height() < h
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.session.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.session.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.session.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.session.Logger.Info("screenshot saved", "path", path)
}

func (m Model) draw() {
	snake.Draw(m.screen, m.frame.snap, snake.View{
		Player:     m.session.Player,
		Best:       m.best,
		Difficulty: m.session.Difficulty.Title(),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Best returns the best score known to the session.
func (m Model) Best() int {
	return m.best
}

// Run plays rounds until the player quits.
func Run(s Session) error {
	model, err := NewModel(s)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
