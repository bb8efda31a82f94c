package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zayeemZaki/ai-memory-app/internal/core"
)

func snapshot(links []core.GraphLink, ids ...string) core.GraphSnapshot {
	s := core.GraphSnapshot{Links: links}
	for _, id := range ids {
		s.Nodes = append(s.Nodes, core.GraphNode{ID: id, Name: id, Group: core.GroupEntity})
	}
	return s
}

func TestSetSnapshotReheatsAndSeeds(t *testing.T) {
	sim := NewSimulation(-120, 14)
	sim.SetSnapshot(snapshot(nil, "a", "b", "c"))

	require.True(t, sim.Running())
	assert.Len(t, sim.Nodes(), 3)

	// New nodes must not all stack at the origin.
	for _, n := range sim.Nodes()[1:] {
		assert.NotZero(t, math.Hypot(n.X, n.Y))
	}
}

func TestSetSnapshotPreservesSurvivorPositions(t *testing.T) {
	sim := NewSimulation(-120, 14)
	sim.SetSnapshot(snapshot(nil, "a", "b"))
	for i := 0; i < 50; i++ {
		sim.Tick()
	}

	a := sim.NodeByID("a")
	x, y := a.X, a.Y

	sim.SetSnapshot(snapshot(nil, "a", "c"))
	assert.Equal(t, x, sim.NodeByID("a").X)
	assert.Equal(t, y, sim.NodeByID("a").Y)
	assert.Nil(t, sim.NodeByID("b"))
	require.True(t, sim.Running(), "snapshot change must reheat the simulation")
}

func TestDanglingLinkSkipped(t *testing.T) {
	sim := NewSimulation(-120, 14)
	sim.SetSnapshot(snapshot([]core.GraphLink{
		{Source: "a", Target: "b", Name: "KNOWS"},
		{Source: "a", Target: "ghost", Name: "HAUNTS"},
		{Source: "ghost", Target: "b", Name: "HAUNTS"},
	}, "a", "b"))

	links := sim.Links()
	require.Len(t, links, 1)
	assert.Equal(t, "KNOWS", links[0].Name)
}

func TestTickCoolsDown(t *testing.T) {
	sim := NewSimulation(-120, 14)
	sim.SetSnapshot(snapshot([]core.GraphLink{{Source: "a", Target: "b", Name: "X"}}, "a", "b"))

	before := sim.Alpha()
	sim.Tick()
	assert.Less(t, sim.Alpha(), before)

	for i := 0; i < 1000; i++ {
		sim.Tick()
	}
	assert.False(t, sim.Running())
}

func TestChargeSeparatesNodes(t *testing.T) {
	sim := NewSimulation(-120, 14)
	sim.SetSnapshot(snapshot(nil, "a", "b"))

	a, b := sim.NodeByID("a"), sim.NodeByID("b")
	a.X, a.Y = -1, 0
	b.X, b.Y = 1, 0
	for i := 0; i < 30; i++ {
		sim.Tick()
	}
	assert.Greater(t, math.Hypot(a.X-b.X, a.Y-b.Y), 2.0, "repulsion must push crowded nodes apart")
}

func TestLinkForcePullsTowardDistance(t *testing.T) {
	sim := NewSimulation(0, 10) // charge off to isolate the spring
	sim.SetSnapshot(snapshot([]core.GraphLink{{Source: "a", Target: "b", Name: "X"}}, "a", "b"))

	a, b := sim.NodeByID("a"), sim.NodeByID("b")
	a.X, a.Y = -40, 0
	b.X, b.Y = 40, 0

	for i := 0; i < 300; i++ {
		sim.Tick()
	}
	d := math.Hypot(a.X-b.X, a.Y-b.Y)
	assert.Less(t, d, 80.0, "spring must contract a stretched link")
}

func TestSetSizeClampsPositions(t *testing.T) {
	sim := NewSimulation(-120, 14)
	sim.SetSize(40, 20)
	sim.SetSnapshot(snapshot(nil, "a"))

	n := sim.NodeByID("a")
	n.X, n.Y = 1000, -1000
	sim.Tick()
	assert.LessOrEqual(t, n.X, 20.0)
	assert.GreaterOrEqual(t, n.Y, -10.0)
}
