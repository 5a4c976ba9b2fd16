package status

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/psttools/pstsweep/internal/config"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type tickMsg time.Time

type snapshotMsg struct {
	snap *Snapshot
	err  error
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea model for the pipeline status dashboard: volume
// free space, temp-copy usage, state-file presence, and whether the mail
// client is running.
type Model struct {
	cfg             config.Config
	Snap            *Snapshot
	Width           int
	Height          int
	refreshInterval time.Duration
	quitting        bool
	Err             error
}

// NewModel creates a dashboard model with the given refresh cadence.
func NewModel(cfg config.Config, refreshInterval time.Duration) Model {
	if refreshInterval <= 0 {
		refreshInterval = time.Second
	}
	return Model{
		cfg:             cfg,
		Width:           80,
		Height:          24,
		refreshInterval: refreshInterval,
	}
}

func (m Model) doTick() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) collect() tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		snap, err := Collect(cfg)
		return snapshotMsg{snap: snap, err: err}
	}
}

// ─── tea.Model interface ─────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	// Collect immediately; the first snapshotMsg starts the tick loop so
	// collection and display stay strictly sequential.
	return m.collect()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m, m.collect()
		}
		return m, nil

	case tickMsg:
		return m, m.collect()

	case snapshotMsg:
		if msg.err != nil {
			m.Err = msg.err
			return m, m.doTick()
		}
		m.Snap = msg.snap
		m.Err = nil
		return m, m.doTick()
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderView()
}
