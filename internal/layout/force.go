package layout

import (
	"math"

	"github.com/zayeemZaki/ai-memory-app/internal/core"
)

const (
	alphaMin      = 0.001
	alphaDecay    = 0.0228 // 1 - pow(alphaMin, 1/300), the usual 300-tick cooldown
	velocityDecay = 0.4
	centerPull    = 0.05
	linkStrength  = 0.3
	initialRadius = 10.0
	goldenAngle   = 2.399963229728653 // pi * (3 - sqrt(5))

	// Close-range clamp so the pairwise repulsion stays finite.
	minDistance = 0.01
)

// Node is a laid-out graph node. Positions live in world coordinates
// centered on the origin; the camera maps them to the screen.
type Node struct {
	core.GraphNode
	X, Y   float64
	VX, VY float64
}

type link struct {
	source, target int
	name           string
}

// Link is a resolved, renderable edge between two laid-out nodes.
type Link struct {
	Source, Target *Node
	Name           string
}

// Simulation is a force-directed layout: pairwise repulsion, springs
// toward a target link distance, and a centering pull, integrated with
// velocity decay. Repulsion strength and link distance are tunable.
type Simulation struct {
	nodes []*Node
	links []link
	byID  map[string]*Node

	alpha  float64
	charge float64
	dist   float64

	halfW, halfH float64
}

// NewSimulation creates a simulation with the given repulsion strength
// (negative repels) and target link distance.
func NewSimulation(chargeStrength, linkDistance float64) *Simulation {
	return &Simulation{
		charge: chargeStrength,
		dist:   linkDistance,
		byID:   map[string]*Node{},
	}
}

// SetSize updates the world bounds from the measured viewport so the
// arena adapts to available space. Positions are softly clamped inside.
func (s *Simulation) SetSize(width, height float64) {
	s.halfW = width / 2
	s.halfH = height / 2
}

// SetSnapshot replaces the laid-out graph. Surviving nodes keep their
// positions; new nodes seed on a phyllotaxis spiral around the origin so
// they spread instead of stacking. Links with a missing endpoint are
// skipped. The simulation reheats so new nodes are not stranded.
func (s *Simulation) SetSnapshot(snap core.GraphSnapshot) {
	old := s.byID
	s.nodes = make([]*Node, 0, len(snap.Nodes))
	s.byID = make(map[string]*Node, len(snap.Nodes))
	index := make(map[string]int, len(snap.Nodes))

	for i, gn := range snap.Nodes {
		n, ok := old[gn.ID]
		if ok {
			n.GraphNode = gn
		} else {
			r := initialRadius * math.Sqrt(0.5+float64(i))
			a := float64(i) * goldenAngle
			n = &Node{GraphNode: gn, X: r * math.Cos(a), Y: r * math.Sin(a)}
		}
		s.nodes = append(s.nodes, n)
		s.byID[gn.ID] = n
		index[gn.ID] = i
	}

	s.links = s.links[:0]
	for _, gl := range snap.Links {
		si, ok := index[gl.Source]
		if !ok {
			continue
		}
		ti, ok := index[gl.Target]
		if !ok {
			continue
		}
		s.links = append(s.links, link{source: si, target: ti, name: gl.Name})
	}

	s.alpha = 1
}

func (s *Simulation) Nodes() []*Node {
	return s.nodes
}

func (s *Simulation) Links() []Link {
	out := make([]Link, len(s.links))
	for i, l := range s.links {
		out[i] = Link{Source: s.nodes[l.source], Target: s.nodes[l.target], Name: l.name}
	}
	return out
}

func (s *Simulation) NodeByID(id string) *Node {
	return s.byID[id]
}

// Running reports whether the simulation has cooled below its threshold.
func (s *Simulation) Running() bool {
	return s.alpha >= alphaMin
}

// Alpha exposes the current heat, mainly for tests.
func (s *Simulation) Alpha() float64 {
	return s.alpha
}

// Reheat restarts cooling without touching positions.
func (s *Simulation) Reheat() {
	s.alpha = 1
}

// Tick advances the simulation one step. It is a no-op once cooled.
func (s *Simulation) Tick() {
	if !s.Running() {
		return
	}
	s.alpha += (0 - s.alpha) * alphaDecay

	s.applyLinks()
	s.applyCharge()
	s.applyCenter()
	s.integrate()
}

func (s *Simulation) applyLinks() {
	for _, l := range s.links {
		src, tgt := s.nodes[l.source], s.nodes[l.target]
		dx := tgt.X + tgt.VX - src.X - src.VX
		dy := tgt.Y + tgt.VY - src.Y - src.VY
		d := math.Max(math.Hypot(dx, dy), minDistance)
		k := (d - s.dist) / d * s.alpha * linkStrength
		tgt.VX -= dx * k / 2
		tgt.VY -= dy * k / 2
		src.VX += dx * k / 2
		src.VY += dy * k / 2
	}
}

func (s *Simulation) applyCharge() {
	for i, a := range s.nodes {
		for j := i + 1; j < len(s.nodes); j++ {
			b := s.nodes[j]
			dx := b.X - a.X
			dy := b.Y - a.Y
			d2 := dx*dx + dy*dy
			if d2 < minDistance {
				d2 = minDistance
			}
			f := s.charge * s.alpha / d2
			a.VX += dx * f
			a.VY += dy * f
			b.VX -= dx * f
			b.VY -= dy * f
		}
	}
}

func (s *Simulation) applyCenter() {
	for _, n := range s.nodes {
		n.VX -= n.X * centerPull * s.alpha
		n.VY -= n.Y * centerPull * s.alpha
	}
}

func (s *Simulation) integrate() {
	for _, n := range s.nodes {
		n.VX *= 1 - velocityDecay
		n.VY *= 1 - velocityDecay
		n.X += n.VX
		n.Y += n.VY
		if s.halfW > 0 {
			n.X = math.Max(-s.halfW, math.Min(s.halfW, n.X))
		}
		if s.halfH > 0 {
			n.Y = math.Max(-s.halfH, math.Min(s.halfH, n.Y))
		}
	}
}
