package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of braille cells. Each cell also keeps the brightest
// level plotted into it and whether a body covers it.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	level         [][]float64
	solid         [][]bool
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the grid; the contents are cleared.
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.Width, c.Height = w, h
	c.Grid = make([][]rune, h)
	c.level = make([][]float64, h)
	c.solid = make([][]bool, h)
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.level[i] = make([]float64, w)
		c.solid[i] = make([]bool, w)
	}
	c.Clear()
}

// PixelSize is the canvas size in sub-pixels.
func (c *Canvas) PixelSize() (int, int) { return c.Width * 2, c.Height * 4 }

// Plot sets the sub-pixel (x, y) and raises its cell to level.
func (c *Canvas) Plot(x, y int, level float64) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if level > c.level[row][col] {
		c.level[row][col] = level
	}
}

func (c *Canvas) Set(x, y int) { c.Plot(x, y, 1) }

func (c *Canvas) cell(x, y int) (int, int, bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

// Level reports the brightness of the cell at (col, row).
func (c *Canvas) Level(col, row int) float64 { return c.level[row][col] }

// Solid reports whether a body was drawn into the cell at (col, row).
func (c *Canvas) Solid(col, row int) bool { return c.solid[row][col] }

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.level[i][j] = 0
			c.solid[i][j] = false
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, level float64) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Plot(x0, y0, level)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle fills a disk of radius r sub-pixels and marks its cells solid.
// A radius below one still plots the centre.
func (c *Canvas) FillCircle(cx, cy, r int) {
	if r < 1 {
		r = 0
	}
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r*r {
				continue
			}
			c.Plot(x, y, 1)
			if row, col, ok := c.cell(x, y); ok {
				c.solid[row][col] = true
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render draws the canvas with bodies in the theme's body colour and every
// other cell as a grey level matching its brightness.
func (c *Canvas) Render(t Theme) string {
	body := lipgloss.NewStyle().Foreground(t.Body).Bold(true)

	var b strings.Builder
	for row := range c.Grid {
		var run strings.Builder
		runStyle := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			switch runStyle {
			case -1:
				b.WriteString(run.String())
			case greyLevels:
				b.WriteString(body.Render(run.String()))
			default:
				b.WriteString(greyStyles[runStyle].Render(run.String()))
			}
			run.Reset()
		}

		for col, r := range c.Grid[row] {
			style := -1
			switch {
			case c.solid[row][col]:
				style = greyLevels
			case r != blank:
				style = shade(c.level[row][col])
			}
			if style != runStyle {
				flush()
				runStyle = style
			}
			run.WriteRune(r)
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
