package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hooplink/hooplink/pkg/algorithms"
	"github.com/hooplink/hooplink/pkg/pipeline"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF8C00")).
			MarginTop(1)

	summaryBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00AFFF")).
			Padding(0, 2)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00AFFF")).
			MarginTop(1)

	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#AAAAAA"))

	notableStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF87"))
)

// zNotable is the conventional 95% threshold; beyond it a brokerage z-score
// is highlighted as statistically notable. Reporting convention only.
const zNotable = 1.96

func renderReport(result *pipeline.Result, topN int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("hooplink: teammate network analysis"))
	b.WriteString("\n\n")

	summary := fmt.Sprintf(
		"players %d   edges %d   components %d\ncommunities %d   modularity %.4f",
		result.Graph.Order(), result.Graph.Size(), result.Components,
		len(result.Communities.Communities), result.Communities.Modularity)
	b.WriteString(summaryBoxStyle.Render(summary))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Communities"))
	b.WriteString("\n")
	b.WriteString(headerRowStyle.Render(fmt.Sprintf("%-4s %-6s %-8s %s", "ID", "SIZE", "DENSITY", "MEMBERS")))
	b.WriteString("\n")
	for _, c := range result.Communities.Communities {
		members := strings.Join(c.Members, ", ")
		if len(c.Members) > 6 {
			members = strings.Join(c.Members[:6], ", ") + ", …"
		}
		b.WriteString(fmt.Sprintf("%-4d %-6d %-8.2f %s\n", c.ID, c.Size, c.Density, members))
	}

	b.WriteString(sectionStyle.Render("Betweenness centrality"))
	b.WriteString("\n")
	b.WriteString(headerRowStyle.Render(fmt.Sprintf("%-24s %10s %12s", "PLAYER", "RAW", "NORMALIZED")))
	b.WriteString("\n")
	for i, rp := range result.Centrality.Ranked {
		if i >= topN {
			break
		}
		b.WriteString(fmt.Sprintf("%-24s %10.2f %12.4f\n",
			rp.Player, rp.Score, result.Centrality.Normalized[rp.Player]))
	}

	b.WriteString(sectionStyle.Render("Brokerage roles (z-scores)"))
	b.WriteString("\n")
	b.WriteString(headerRowStyle.Render(fmt.Sprintf("%-24s %7s %7s %7s %7s %7s %8s",
		"PLAYER", "COORD", "CONSUL", "GATE", "REPR", "LIAIS", "TOTAL")))
	b.WriteString("\n")

	byPlayer := make(map[string]algorithms.BrokerageScore, len(result.Brokerage.Scores))
	for _, s := range result.Brokerage.Scores {
		byPlayer[s.Player] = s
	}
	for i, rp := range result.Brokerage.Ranked {
		if i >= topN {
			break
		}
		s := byPlayer[rp.Player]
		line := fmt.Sprintf("%-24s %7.2f %7.2f %7.2f %7.2f %7.2f %8.2f",
			s.Player, s.Coordinator, s.Consultant, s.Gatekeeper, s.Representative, s.Liaison, s.Total)
		if s.Total > zNotable {
			line = notableStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
