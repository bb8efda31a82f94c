package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellAspect compensates for terminal cells being roughly twice as tall
// as they are wide, so world-space circles stay circular on screen.
const cellAspect = 0.5

type cell struct {
	ch    rune
	style lipgloss.Style
	set   bool
}

// Canvas is a styled cell grid the graph is drawn into each frame.
type Canvas struct {
	width, height int
	cells         []cell
}

func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
}

func (c *Canvas) Set(x, y int, ch rune, style lipgloss.Style) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{ch: ch, style: style, set: true}
}

// SetString draws s left-to-right starting at x, clipping at the edges.
func (c *Canvas) SetString(x, y int, s string, style lipgloss.Style) {
	for i, ch := range []rune(s) {
		c.Set(x+i, y, ch, style)
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			if !cl.set {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(cl.style.Render(string(cl.ch)))
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Camera maps world coordinates to canvas cells. Zoom scales world
// units per cell; X/Y is the world point at the canvas center.
type Camera struct {
	X, Y, Zoom float64
}

func (cam Camera) ToScreen(wx, wy float64, width, height int) (int, int) {
	sx := (wx-cam.X)*cam.Zoom + float64(width)/2
	sy := (wy-cam.Y)*cam.Zoom*cellAspect + float64(height)/2
	return int(sx + 0.5), int(sy + 0.5)
}

// drawLine plots a straight cell run between two screen points
// (Bresenham), skipping the endpoints themselves so node glyphs stay
// visible.
func (c *Canvas) drawLine(x0, y0, x1, y1 int, ch rune, style lipgloss.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if (x != x0 || y != y0) && (x != x1 || y != y1) {
			c.Set(x, y, ch, style)
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
