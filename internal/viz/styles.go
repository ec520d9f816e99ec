package viz

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// greyLevels is the number of shades trail cells are quantised to, taken
// from the 236..255 span of the xterm-256 grey ramp.
const greyLevels = 12

var greyStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, greyLevels)
	for i := range styles {
		code := 236 + i*(255-236)/(greyLevels-1)
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(code)))
	}
	return styles
}()

// shade maps a brightness in [0,1] to a grey style index.
func shade(level float64) int {
	i := int(level*float64(greyLevels-1) + 0.5)
	if i < 0 {
		return 0
	}
	if i >= greyLevels {
		return greyLevels - 1
	}
	return i
}

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(statsWidth)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusPaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))
)
