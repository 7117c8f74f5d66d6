package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mechlab/internal/config"
	"github.com/san-kum/mechlab/internal/gravity"
)

const (
	width           = 60
	height          = 24
	historyCapacity = 600
	trailCapacity   = 400
)

type TickMsg time.Time

type dot struct{ x, y int }

// OrbitModel steps a gravity session on every tick.
type OrbitModel struct {
	sys      *gravity.System
	initial  *gravity.System
	params   gravity.Params
	scale    float64
	frames   int
	interval time.Duration
	title    string

	canvas  *Canvas
	trails  [][]dot
	energy  []float64
	running bool
	err     error
}

// NewOrbitModel animates sys. frames caps the number of steps taken while
// running (0 means no cap); scale is the plot half-width in metres.
func NewOrbitModel(sys *gravity.System, params gravity.Params, scale float64, frames, fps int, title string) OrbitModel {
	if fps <= 0 {
		fps = 30
	}
	return OrbitModel{
		sys:      sys,
		initial:  sys.Clone(),
		params:   params,
		scale:    scale,
		frames:   frames,
		interval: time.Second / time.Duration(fps),
		title:    title,
		canvas:   NewCanvas(width, height),
		trails:   make([][]dot, len(sys.Bodies)+len(sys.Tracers)),
		energy:   make([]float64, 0, historyCapacity),
		running:  true,
	}
}

func (m OrbitModel) System() *gravity.System { return m.sys }
func (m OrbitModel) Err() error              { return m.err }
func (m OrbitModel) Running() bool           { return m.running }

func (m OrbitModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m OrbitModel) Init() tea.Cmd {
	return m.tick()
}

func (m OrbitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running && m.err == nil
		case "n", "right":
			m.running = false
			m.step()
		case "r":
			m.reset()
		case "+", "=":
			m.scale /= 1.25
		case "-", "_":
			m.scale *= 1.25
		}
	case TickMsg:
		if m.running {
			if m.frames > 0 && m.sys.Steps >= m.frames {
				m.running = false
			} else {
				m.step()
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *OrbitModel) step() {
	if m.err != nil {
		return
	}
	if err := m.sys.Step(m.params); err != nil {
		m.err = err
		m.running = false
		return
	}

	m.energy = append(m.energy, m.sys.Energy(m.params.G))
	if len(m.energy) > historyCapacity {
		m.energy = m.energy[1:]
	}

	for i, b := range m.sys.All() {
		if px, py, ok := m.canvas.Project(b.Pos.X, b.Pos.Y, m.scale); ok {
			m.trails[i] = append(m.trails[i], dot{px, py})
			if len(m.trails[i]) > trailCapacity {
				m.trails[i] = m.trails[i][1:]
			}
		}
	}
}

func (m *OrbitModel) reset() {
	m.sys = m.initial.Clone()
	m.err = nil
	m.energy = m.energy[:0]
	for i := range m.trails {
		m.trails[i] = m.trails[i][:0]
	}
	m.running = true
}

func (m *OrbitModel) draw() {
	m.canvas.Clear()
	for _, trail := range m.trails {
		for _, d := range trail {
			m.canvas.Set(d.x, d.y)
		}
	}
	for _, b := range m.sys.All() {
		if px, py, ok := m.canvas.Project(b.Pos.X, b.Pos.Y, m.scale); ok {
			m.canvas.Marker(px, py)
		}
	}
}

func (m OrbitModel) View() string {
	m.draw()

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.title)) + "\n")
	switch {
	case m.err != nil:
		s.WriteString(errorStyle.Render("HALTED") + "\n\n")
	case m.running:
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f days", m.sys.Time/config.Day)) + "\n")
	s.WriteString(labelStyle.Render("Step") + valueStyle.Render(fmt.Sprintf("%d", m.sys.Steps)) + "\n")
	s.WriteString(labelStyle.Render("Scale") + valueStyle.Render(fmt.Sprintf("%.0f km", m.scale/config.Kilometer)) + "\n\n")

	if len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy (J)"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(Bodies(m.sys))
	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Pause N:Step R:Reset +/-:Zoom Q:Quit"))

	canvasView := canvasStyle.Render(m.canvas.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// RunOrbit runs the live view until the user quits and returns the final
// model.
func RunOrbit(m OrbitModel) (OrbitModel, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return m, err
	}
	return final.(OrbitModel), nil
}
