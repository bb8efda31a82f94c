package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/zayeemZaki/ai-memory-app/internal/core"
)

// Fixed six-entry palette keyed by node group. Entity doubles as the
// fallback for any group the server sends that the client doesn't know.
var groupStyles = map[core.NodeGroup]lipgloss.Style{
	core.GroupPerson:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")), // pink
	core.GroupProject:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // green
	core.GroupTechnology: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // blue
	core.GroupCompany:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
	core.GroupLocation:   lipgloss.NewStyle().Foreground(lipgloss.Color("135")), // purple
	core.GroupEntity:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")), // gray
}

// NodeStyle returns the fill style for a group, falling back to the
// Entity entry for unrecognized groups.
func NodeStyle(group core.NodeGroup) lipgloss.Style {
	if s, ok := groupStyles[group]; ok {
		return s
	}
	return groupStyles[core.GroupEntity]
}

// Halo encoding is the only visual signal separating the global layer
// from the session-private layer: global facts get a wide gold ring,
// session facts a thin dim one.
var (
	globalHaloStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	sessionHaloStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type halo struct {
	left, right string
	style       lipgloss.Style
}

// HaloFor returns the ring decoration for a node's layer.
func HaloFor(isGlobal bool) halo {
	if isGlobal {
		return halo{left: "((", right: "))", style: globalHaloStyle}
	}
	return halo{left: "(", right: ")", style: sessionHaloStyle}
}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	userMsgStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	botMsgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	actionOnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	linkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	linkNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("235"))
	particleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("227"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))

	focusedPaneStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("205"))
)
