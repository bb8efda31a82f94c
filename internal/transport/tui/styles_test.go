package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zayeemZaki/ai-memory-app/internal/core"
)

var allGroups = []core.NodeGroup{
	core.GroupPerson,
	core.GroupProject,
	core.GroupTechnology,
	core.GroupCompany,
	core.GroupLocation,
	core.GroupEntity,
}

func TestNodeStyleDistinctPerGroup(t *testing.T) {
	seen := make(map[any]core.NodeGroup)
	for _, g := range allGroups {
		fg := NodeStyle(g).GetForeground()
		if prev, dup := seen[fg]; dup {
			t.Errorf("groups %s and %s share a fill color", prev, g)
		}
		seen[fg] = g
	}
}

func TestNodeStyleUnknownGroupFallsBack(t *testing.T) {
	assert.Equal(t,
		NodeStyle(core.GroupEntity).GetForeground(),
		NodeStyle(core.NodeGroup("Unicorn")).GetForeground(),
		"unrecognized group must use the Entity palette entry")
}

func TestHaloEncodingsDistinct(t *testing.T) {
	// The halo is the only signal separating the global layer from the
	// session layer: it must differ in both width and color, and must
	// not depend on the node's group (including unknown groups).
	global := HaloFor(true)
	private := HaloFor(false)

	assert.NotEqual(t, global.left, private.left)
	assert.NotEqual(t, global.right, private.right)
	assert.Greater(t, len(global.left), len(private.left))
	assert.NotEqual(t, global.style.GetForeground(), private.style.GetForeground())

	for _, g := range append(allGroups, core.NodeGroup("Unknown")) {
		// Fill and halo stay independent encodings for every group.
		assert.NotEqual(t, NodeStyle(g).GetForeground(), global.style.GetForeground(), "group %s", g)
	}
}
