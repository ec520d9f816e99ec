package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/scene"
	"github.com/san-kum/gravsim/internal/sim"
)

const (
	width           = 80
	height          = 24
	statsWidth      = 45
	historyCapacity = 300
)

type TickMsg time.Time

// Model drives a simulator from bubbletea ticks and renders it on a
// braille canvas next to a stats panel.
type Model struct {
	sim           *sim.Simulator
	canvas        *Canvas
	sink          *CanvasSink
	theme         Theme
	name          string
	fps           int
	running       bool
	contacts      int
	energyHistory []float64
}

func NewModel(s *sim.Simulator, viewport scene.Viewport, name string, fps int, theme string) Model {
	if fps <= 0 {
		fps = 60
	}
	canvas := NewCanvas(width, height)
	m := Model{
		sim:           s,
		canvas:        canvas,
		sink:          NewCanvasSink(canvas, viewport),
		theme:         GetTheme(theme),
		name:          name,
		fps:           fps,
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
	}
	m.sink.Draw(scene.Build(s.World()))
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "t":
			m.theme = NextTheme(m.theme.Name)
		}
	case tea.WindowSizeMsg:
		cols := msg.Width - statsWidth - 8
		rows := msg.Height - 4
		if cols > 10 && rows > 5 {
			m.canvas.Resize(cols, rows)
			m.sink.Draw(scene.Build(m.sim.World()))
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	m.contacts += len(m.sim.Frame(m.sink))

	p := m.sim.Params()
	m.energyHistory = append(m.energyHistory, physics.Energy(m.sim.World(), p.G, p.Softening))
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
}

func (m *Model) reset() {
	m.sim.Reset()
	m.contacts = 0
	m.energyHistory = m.energyHistory[:0]
	m.sink.Draw(scene.Build(m.sim.World()))
}

func (m Model) Running() bool { return m.running }

func (m Model) View() string {
	title := lipgloss.NewStyle().Foreground(m.theme.Title).Bold(true).MarginBottom(1)

	var s strings.Builder
	s.WriteString(title.Render(strings.ToUpper(m.name)) + "\n")
	if m.running {
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Foreground(m.theme.Graph).Render(chart) + "\n\n")
	}

	energy := 0.0
	if n := len(m.energyHistory); n > 0 {
		energy = m.energyHistory[n-1]
	}
	p := physics.Momentum(m.sim.World())
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.sim.Time())) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", m.sim.World().Len())) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4g", energy)) + "\n")
	s.WriteString(labelStyle.Render("Momentum") + valueStyle.Render(fmt.Sprintf("%.4g", p.Len())) + "\n")
	s.WriteString(labelStyle.Render("Contacts") + valueStyle.Render(fmt.Sprintf("%d", m.contacts)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n")
	s.WriteString(helpStyle.Foreground(m.theme.Muted).Render("─────────────────────\nSP:Pause R:Reset\nT:Theme  Q:Quit"))

	canvasView := canvasStyle.Render(m.canvas.Render(m.theme))
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// Run starts the terminal UI and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
