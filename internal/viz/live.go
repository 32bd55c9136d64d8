package viz

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/yulelog/internal/input"
	"github.com/san-kum/yulelog/internal/render"
	"github.com/san-kum/yulelog/internal/sim"
)

type TickMsg time.Time

// Model runs a Simulator under bubbletea. The simulator is created from the
// first window size message and keeps that size for the whole run.
type Model struct {
	cfg   sim.Config
	opts  []sim.Option
	sim   *sim.Simulator
	frame *render.Frame
}

func NewModel(cfg sim.Config, opts ...sim.Option) Model {
	return Model{cfg: cfg, opts: opts}
}

func tick() tea.Cmd {
	return tea.Tick(sim.FrameDelay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.sim == nil {
			m.sim = sim.New(m.cfg, msg.Width, msg.Height, m.opts...)
			m.frame = render.NewFrame(msg.Width, msg.Height)
		}
	case tea.KeyMsg:
		if input.IsQuit(keyFromTea(msg)) {
			if m.sim != nil {
				m.sim.Stop()
			}
			return m, tea.Quit
		}
	case TickMsg:
		if m.sim != nil && m.sim.State() == sim.Running {
			m.sim.Step(m.frame)
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	if m.frame == nil {
		return ""
	}
	return FrameView(m.frame)
}

// Simulator is nil until the first window size message.
func (m Model) Simulator() *sim.Simulator { return m.sim }

func keyFromTea(msg tea.KeyMsg) input.Key {
	switch msg.Type {
	case tea.KeyEsc:
		return input.Key{Code: input.KeyEscape}
	case tea.KeyCtrlC:
		return input.Key{Code: input.KeyCtrlC, Ctrl: true}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return input.Key{Code: input.KeyRune, Rune: msg.Runes[0]}
		}
	}
	return input.Key{Code: input.KeyOther}
}

// Run blocks until a quit key or ctx is done. The alternate screen is
// released by bubbletea on every exit path.
func Run(ctx context.Context, cfg sim.Config, opts ...sim.Option) error {
	p := tea.NewProgram(NewModel(cfg, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
