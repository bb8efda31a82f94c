package tui

import (
	"hash/fnv"
	"math"

	"github.com/zayeemZaki/ai-memory-app/internal/layout"
)

const (
	particlePeriod = 24 // frames for a particle to traverse its link
	maxLabelWidth  = 16
	focusZoom      = 2.5
	focusFrames    = 12 // fixed-duration camera transition
)

// camTransition is an eased recenter+zoom onto a point. Pure UI
// affordance; it never touches graph data.
type camTransition struct {
	from, to    Camera
	step, total int
}

func (t *camTransition) at() Camera {
	p := float64(t.step) / float64(t.total)
	p = p * p * (3 - 2*p) // smoothstep
	return Camera{
		X:    t.from.X + (t.to.X-t.from.X)*p,
		Y:    t.from.Y + (t.to.Y-t.from.Y)*p,
		Zoom: t.from.Zoom + (t.to.Zoom-t.from.Zoom)*p,
	}
}

// graphPane renders the force layout into a cell canvas with an
// interactive camera.
type graphPane struct {
	sim           *layout.Simulation
	cam           Camera
	anim          *camTransition
	width, height int
	frame         int
	selected      string // node id, empty when nothing is selected
}

func newGraphPane(sim *layout.Simulation) *graphPane {
	return &graphPane{
		sim: sim,
		cam: Camera{Zoom: 1},
	}
}

// setSize follows the measured container; the simulation arena adapts
// to the available space rather than a fixed pixel size.
func (g *graphPane) setSize(width, height int) {
	g.width, g.height = width, height
	g.sim.SetSize(float64(width), float64(height)/cellAspect)
}

// tickFrame advances one animation frame: layout cooling, particle
// phases, and any camera transition.
func (g *graphPane) tickFrame() {
	g.sim.Tick()
	g.frame++
	if g.anim != nil {
		g.anim.step++
		if g.anim.step >= g.anim.total {
			g.cam = g.anim.to
			g.anim = nil
		} else {
			g.cam = g.anim.at()
		}
	}
}

func (g *graphPane) pan(dx, dy float64) {
	g.anim = nil
	g.cam.X += dx / g.cam.Zoom
	g.cam.Y += dy / g.cam.Zoom
}

func (g *graphPane) zoomBy(factor float64) {
	g.anim = nil
	g.cam.Zoom *= factor
	if g.cam.Zoom < 0.2 {
		g.cam.Zoom = 0.2
	}
	if g.cam.Zoom > 8 {
		g.cam.Zoom = 8
	}
}

// cycleSelection moves the node selection forward or backward through
// the snapshot order.
func (g *graphPane) cycleSelection(dir int) {
	nodes := g.sim.Nodes()
	if len(nodes) == 0 {
		g.selected = ""
		return
	}
	idx := -1
	for i, n := range nodes {
		if n.ID == g.selected {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(nodes) + 1) % (len(nodes) + 1)
	if idx == len(nodes) {
		g.selected = ""
		return
	}
	g.selected = nodes[idx].ID
}

// focusSelected starts the fixed-duration camera transition onto the
// selected node: recenter on its coordinates and zoom in.
func (g *graphPane) focusSelected() {
	n := g.sim.NodeByID(g.selected)
	if n == nil {
		return
	}
	g.anim = &camTransition{
		from:  g.cam,
		to:    Camera{X: n.X, Y: n.Y, Zoom: focusZoom},
		total: focusFrames,
	}
}

func (g *graphPane) view() string {
	cv := NewCanvas(g.width, g.height)

	for _, l := range g.sim.Links() {
		g.drawLink(cv, l)
	}
	for _, n := range g.sim.Nodes() {
		g.drawNode(cv, n)
	}
	return cv.String()
}

func (g *graphPane) drawLink(cv *Canvas, l layout.Link) {
	x0, y0 := g.cam.ToScreen(l.Source.X, l.Source.Y, g.width, g.height)
	x1, y1 := g.cam.ToScreen(l.Target.X, l.Target.Y, g.width, g.height)
	cv.drawLine(x0, y0, x1, y1, '·', linkStyle)

	// Direction arrow near the target end, glyph chosen by the link's
	// screen-space angle.
	ax := x0 + (x1-x0)*7/10
	ay := y0 + (y1-y0)*7/10
	cv.Set(ax, ay, directionGlyph(float64(x1-x0), float64(y1-y0)), linkStyle)

	// Background-padded name label centered on the link, always drawn
	// upright regardless of endpoint order.
	label := " " + truncate(l.Name, maxLabelWidth) + " "
	mx := (x0 + x1) / 2
	my := (y0 + y1) / 2
	cv.SetString(mx-len([]rune(label))/2, my, label, linkNameStyle)

	// Flow particle at constant speed, independent of layout motion.
	phase := (g.frame + linkSeed(l)) % particlePeriod
	p := float64(phase) / particlePeriod
	px := x0 + int(float64(x1-x0)*p+0.5)
	py := y0 + int(float64(y1-y0)*p+0.5)
	if (px != x0 || py != y0) && (px != x1 || py != y1) {
		cv.Set(px, py, '•', particleStyle)
	}
}

func (g *graphPane) drawNode(cv *Canvas, n *layout.Node) {
	x, y := g.cam.ToScreen(n.X, n.Y, g.width, g.height)

	h := HaloFor(n.IsGlobal)
	cv.SetString(x-len(h.left), y, h.left, h.style)
	cv.SetString(x+1, y, h.right, h.style)

	style := NodeStyle(n.Group)
	if n.ID == g.selected {
		style = selectedStyle
	}
	cv.Set(x, y, '●', style)

	// Label centered beneath the node; cell size is constant at every
	// zoom level, so text stays legible regardless of camera scale.
	name := truncate(n.Name, maxLabelWidth)
	cv.SetString(x-len([]rune(name))/2, y+1, name, labelStyle)
}

// directionGlyph picks one of eight arrows for the given screen-space
// direction. The angle is normalized so the mapping is stable for any
// endpoint order.
func directionGlyph(dx, dy float64) rune {
	arrows := []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	angle := math.Atan2(dy, dx)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	octant := int(angle/(math.Pi/4)+0.5) % 8
	return arrows[octant]
}

// linkSeed desynchronizes particle phases across links.
func linkSeed(l layout.Link) int {
	h := fnv.New32a()
	h.Write([]byte(l.Source.ID))
	h.Write([]byte(l.Name))
	h.Write([]byte(l.Target.ID))
	return int(h.Sum32() % particlePeriod)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
