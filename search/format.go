package search

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/slideworks/atomix/grid"
)

// FormatSolution lists the moves of a solved search followed by the final
// board. Unsolved results are formatted with FormatNoSolution.
func FormatSolution(g *grid.Grid, r *Result) string {
	if r == nil || !r.Solved || len(r.Path) == 0 {
		return FormatNoSolution()
	}

	var b strings.Builder
	b.WriteString("\nSolved in ")
	b.WriteString(color.Green.Sprintf("%d", len(r.Path)-1))
	b.WriteString(" steps.\n\n")

	for i, m := range r.Moves() {
		b.WriteString(fmt.Sprintf("%02d. move  %s  to  %s\n", i+1, m.From, m.To))
	}

	b.WriteString("\nEND STATE:\n\n")
	b.WriteString(g.RenderString(r.Path[len(r.Path)-1].Config))
	b.WriteString("\n")
	return b.String()
}

func FormatNoSolution() string {
	return color.Red.Sprint("\nNo solution found.") + "\n"
}

// FormatStatistics formats search statistics for display
func FormatStatistics(stats Statistics) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(color.Cyan.Sprint("=== Search statistics ==="))
	b.WriteString("\n")
	b.WriteString(color.Bold.Sprint("Iterations: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.Iterations))
	b.WriteString(color.Bold.Sprint("States generated: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.Generated))
	b.WriteString(color.Bold.Sprint("Unique states found: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.UniqueStates))
	b.WriteString(color.Bold.Sprint("Duplicate states pruned: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.DuplicateStates))
	b.WriteString(color.Bold.Sprint("Closed states: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.ClosedStates))
	b.WriteString(color.Bold.Sprint("Largest open list: "))
	b.WriteString(fmt.Sprintf("%d\n", stats.MaxOpenSize))
	b.WriteString(color.Bold.Sprint("Elapsed: "))
	b.WriteString(fmt.Sprintf("%s\n", stats.Elapsed))
	return b.String()
}
