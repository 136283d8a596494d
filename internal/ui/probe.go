package ui

import (
	"fmt"
	"strings"

	"github.com/bnema/wlidle/internal/bridge"
	"github.com/charmbracelet/lipgloss"
)

// RenderReport formats a probe report for a terminal
func RenderReport(r *bridge.Report) string {
	var out strings.Builder

	out.WriteString(HeaderStyle.Render("COMPOSITOR GLOBALS"))
	out.WriteString("\n")

	nameStyle := lipgloss.NewStyle().Foreground(ColorSubtle).Width(6).Align(lipgloss.Right)
	ifaceStyle := TextStyle.Width(48)

	for _, g := range r.Globals {
		iface := ifaceStyle.Render(g.Interface)
		if g.Interface == bridge.SeatInterface || g.Interface == bridge.IdleNotifierInterface {
			iface = HighlightStyle.Width(48).Render(g.Interface)
		}
		out.WriteString(fmt.Sprintf("%s  %s %s\n",
			nameStyle.Render(fmt.Sprintf("%d", g.Name)),
			iface,
			SubtleStyle.Render(fmt.Sprintf("v%d", g.Version)),
		))
	}
	if len(r.Globals) == 0 {
		out.WriteString(MutedStyle.Italic(true).Render("No globals advertised"))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(CreateSeparator(50, "─"))
	out.WriteString("\n")

	checks := lipgloss.JoinVertical(lipgloss.Left,
		SubheaderStyle.Render("Required capabilities"),
		FormatCheck(r.HasSeat, bridge.SeatInterface),
		FormatCheck(r.HasIdleNotifier, bridge.IdleNotifierInterface),
	)
	out.WriteString(BoxStyle.Render(checks))
	out.WriteString("\n")

	return out.String()
}
