// Package tui hosts the live integration view: a bubbletea program
// that steps a run in real time and renders progress, state and a
// sparkline of the leading component.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/odelab/internal/ode"
	"github.com/san-kum/odelab/internal/viz"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	problem string
	method  ode.Method
	run     *ode.Run

	paused  bool
	speed   float64
	history []float64
	stepErr error

	lastFrame time.Time
	fps       float64
	width     int
	height    int
}

// NewLive wraps an already validated run for interactive stepping.
func NewLive(problem string, m ode.Method, run *ode.Run) tea.Model {
	return model{
		problem: problem,
		method:  m,
		run:     run,
		speed:   1,
		history: make([]float64, 0, 120),
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "escape":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "+", "=":
			m.speed = math.Min(m.speed*2, 64)
		case "-", "_":
			m.speed = math.Max(m.speed/2, 1)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.paused || m.stepErr != nil || m.run.Done() {
			return m, tick()
		}
		now := time.Now()
		if !m.lastFrame.IsZero() {
			if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
				m.fps = 1 / dt
			}
		}
		m.lastFrame = now

		for i := 0; i < int(m.speed) && !m.run.Done(); i++ {
			if err := m.run.Step(); err != nil {
				m.stepErr = err
				break
			}
			y := m.run.State()
			m.history = append(m.history, y[0])
			if len(m.history) > 120 {
				m.history = m.history[1:]
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	status := viz.Good.Render("● running")
	switch {
	case m.stepErr != nil:
		status = viz.Bad.Render("✖ aborted")
	case m.run.Done():
		status = viz.Good.Render("✔ done")
	case m.paused:
		status = viz.Warn.Render("○ paused")
	}
	b.WriteString(fmt.Sprintf("\n  %s  %s  %s\n",
		viz.Title.Render(m.problem), viz.Subtle.Render(m.method.String()), status))

	progress := 0.0
	if m.run.Steps() > 0 {
		progress = float64(m.run.StepsTaken()) / float64(m.run.Steps())
	}
	b.WriteString(fmt.Sprintf("  %s %s\n\n",
		viz.ProgressBar(progress, 40),
		viz.Subtle.Render(fmt.Sprintf("t=%.3f  %dx  %.0ffps", m.run.Time(), int(m.speed), m.fps))))

	y := m.run.State()
	var stateStr strings.Builder
	stateStr.WriteString("  ")
	for i, v := range y {
		if i >= 4 {
			stateStr.WriteString(viz.Subtle.Render("…"))
			break
		}
		stateStr.WriteString(viz.Subtle.Render(fmt.Sprintf("y%d=", i)))
		stateStr.WriteString(fmt.Sprintf("%-12.5g", v))
	}
	b.WriteString(stateStr.String() + "\n")

	if len(m.history) > 1 {
		b.WriteString("  " + viz.Accent.Render(viz.Sparkline(m.history, 60)) + "\n")
	}

	if m.stepErr != nil {
		b.WriteString("\n  " + viz.Bad.Render(m.stepErr.Error()) + "\n")
	}

	b.WriteString("\n" + viz.Subtle.Render("  space pause  ± speed  q quit") + "\n")
	return b.String()
}

// RunLive blocks until the user quits the view.
func RunLive(problem string, method ode.Method, run *ode.Run) error {
	p := tea.NewProgram(NewLive(problem, method, run), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
