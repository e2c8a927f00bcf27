package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tower/internal/config"
	"github.com/vovakirdan/tui-tower/internal/core"
	"github.com/vovakirdan/tui-tower/internal/games/stacker"
	"github.com/vovakirdan/tui-tower/internal/storage"
)

// DifficultyModel lets users choose the swing speed before a session starts.
type DifficultyModel struct {
	options   []config.Difficulty
	cursor    int
	width     int
	height    int
	best      int
	keyMapper *KeyMapper
	selection config.Difficulty
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a selector with the cursor on the default difficulty.
func NewDifficultyModel(width, height, best int) DifficultyModel {
	options := config.Difficulties()
	cursor := 0
	for i, d := range options {
		if d == config.DefaultDifficulty {
			cursor = i
		}
	}

	return DifficultyModel{
		options:   options,
		cursor:    cursor,
		width:     width,
		height:    height,
		best:      best,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = m.options[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty list.
func (m DifficultyModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("D I F F I C U L T Y", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
	b.WriteString("\n\n")

	for i, d := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+d.Title(), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen difficulty, or nil if still choosing.
func (m DifficultyModel) Selected() *config.Difficulty {
	if m.choosing {
		return nil
	}
	d := m.selection
	return &d
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// loadBest reads the persisted best score, treating a missing store as zero.
func loadBest(store *storage.Store) int {
	if store == nil {
		return 0
	}
	best, err := store.LoadBest(stacker.BestScoreKey)
	if err != nil {
		return 0
	}
	return best
}

// RunDifficultySelector runs the difficulty picker.
// Returns nil when the user backs out or quits.
func RunDifficultySelector(store *storage.Store, cfg core.RuntimeConfig) (*config.Difficulty, error) {
	model := NewDifficultyModel(cfg.ScreenW, cfg.ScreenH, loadBest(store))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
