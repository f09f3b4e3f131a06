package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/tourbound/dataset"
	"github.com/katalvlaran/tourbound/tsp"
)

var (
	colorCyan  = lipgloss.Color("36")  // teal - headings
	colorWhite = lipgloss.Color("255") // bright white - routes
	colorGray  = lipgloss.Color("245") // gray - secondary detail
	colorGreen = lipgloss.Color("35")  // green - the winning cost
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleRoute  = lipgloss.NewStyle().Foreground(colorWhite)
	styleDetail = lipgloss.NewStyle().Foreground(colorGray)
	styleBest   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)

// renderResult renders one solver outcome under a heading.
func renderResult(in *dataset.Instance, heading string, res tsp.TSResult) (string, error) {
	report, err := dataset.Report(in, res)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(styleTitle.Render(heading))
	sb.WriteByte('\n')
	sb.WriteString(styleRoute.Render(report))
	if res.Nodes > 0 {
		sb.WriteByte('\n')
		sb.WriteString(styleDetail.Render(fmt.Sprintf("search nodes expanded: %d", res.Nodes)))
	}

	return sb.String(), nil
}

// renderComparison renders both outcomes plus the saved-distance summary
// (the terminal stand-in for the case study's bar chart).
func renderComparison(in *dataset.Instance, cmp tsp.Comparison) (string, error) {
	greedy, err := renderResult(in, "Nearest-neighbor greedy", cmp.Greedy)
	if err != nil {
		return "", err
	}
	exact, err := renderResult(in, "Branch-and-Bound (exact)", cmp.Exact)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(greedy)
	sb.WriteString("\n\n")
	sb.WriteString(exact)
	sb.WriteString("\n\n")

	saved := cmp.Greedy.Cost - cmp.Exact.Cost
	unit := in.Unit
	if unit != "" {
		unit = " " + unit
	}
	if saved > 0 {
		sb.WriteString(styleBest.Render(
			fmt.Sprintf("Exact tour saves %g%s over greedy (%g vs %g).",
				saved, unit, cmp.Exact.Cost, cmp.Greedy.Cost)))
	} else {
		sb.WriteString(styleBest.Render(
			fmt.Sprintf("Greedy already found the optimum (%g%s).", cmp.Exact.Cost, unit)))
	}

	return sb.String(), nil
}
