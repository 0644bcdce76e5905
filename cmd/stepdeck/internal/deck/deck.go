// Package deck implements the stepdeck bubbletea model: a vertical deck of
// stepper dials driven by the keyboard.
//
// The deck keeps the steppers on their cooperative single-goroutine model:
// every dial shares one ManualScheduler, and the deck advances it from its
// own periodic tick by the elapsed wall time. Auto-repeat steps therefore always
// fire inside Update, on the program goroutine, interleaved with key events.
package deck

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/germanamz/stepkit/cmd/stepdeck/internal/styles"
	"github.com/germanamz/stepkit/pkg/stepper"
)

// tickInterval is the deck heartbeat: it advances the shared repeat
// scheduler and the gesture quiet-window checks.
const tickInterval = 50 * time.Millisecond

type tickMsg time.Time

// Model is the root bubbletea model for the deck.
type Model struct {
	title  string
	dials  []*Dial
	cursor int
	keys   keyMap

	sched    *stepper.ManualScheduler
	lastTick time.Time

	width    int
	showHelp bool
}

// New assembles a deck model. Every dial's stepper is re-scheduled onto the
// deck's shared manual scheduler; steppers must not have a hold in flight.
func New(title string, dials []*Dial) Model {
	sched := stepper.NewManualScheduler()
	for _, d := range dials {
		d.S.SetScheduler(sched)
	}

	return Model{
		title: title,
		dials: dials,
		keys:  defaultKeyMap(),
		sched: sched,
	}
}

// Init starts the deck heartbeat.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		for _, d := range m.dials {
			d.close()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.current().cancelHold()
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.dials)-1 {
			m.current().cancelHold()
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Decrement):
		m.current().press(ActuatorDecrement)
		return m, nil

	case key.Matches(msg, m.keys.Increment):
		m.current().press(ActuatorIncrement)
		return m, nil

	case key.Matches(msg, m.keys.Wrap):
		s := m.current().S
		s.SetWraps(!s.Wraps())
		return m, nil

	case key.Matches(msg, m.keys.Repeat):
		s := m.current().S
		s.SetAutoRepeat(!s.AutoRepeat())
		return m, nil
	}

	return m, nil
}

func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	elapsed := tickInterval
	if !m.lastTick.IsZero() {
		elapsed = at.Sub(m.lastTick)
	}
	m.lastTick = at

	// Drive auto-repeat by the wall time that actually passed, then let the
	// gesture detectors notice quiet windows.
	if elapsed > 0 {
		m.sched.Advance(elapsed)
	}
	for _, d := range m.dials {
		d.tick()
	}

	return m, m.tickCmd()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, d := range m.dials {
		b.WriteString(d.view(i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(renderHelp(m.width))
	} else {
		b.WriteString(styles.HintStyle.Render("←/→ step · hold to repeat · w wrap · r auto-repeat · ? help · q quit"))
	}

	return b.String()
}

func (m Model) current() *Dial {
	return m.dials[m.cursor]
}
