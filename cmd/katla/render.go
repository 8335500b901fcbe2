package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var (
	tile = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF"))

	tileStyles = map[solver.Status]lipgloss.Style{
		solver.Absent:  tile.Background(lipgloss.Color("#787C7E")),
		solver.Present: tile.Background(lipgloss.Color("#C9B458")),
		solver.Correct: tile.Background(lipgloss.Color("#6AAA64")),
	}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6AAA64"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#787C7E"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
)

// renderTiles draws a guess as colored letter tiles.
func renderTiles(g solver.Guess) string {
	cells := make([]string, 0, solver.WordLen)
	for i := 0; i < solver.WordLen; i++ {
		cells = append(cells, tileStyles[g.Feedback[i]].Render(string(g.Word[i])))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// printState writes the accumulated constraints and the remaining count.
func printState(w io.Writer, snap game.Snapshot) {
	v := snap.Constraints
	fmt.Fprintln(w, titleStyle.Render("Constraints"))
	fmt.Fprintf(w, "  forbidden:  %s\n", strings.Join(v.Forbidden, " "))
	fmt.Fprintf(w, "  min counts: %s\n", formatCounts(v.MinCount))
	fmt.Fprintf(w, "  max counts: %s\n", formatCounts(v.MaxCount))
	fmt.Fprintf(w, "  fixed:      %s\n", formatPositions(v.Fixed))
	fmt.Fprintf(w, "  excluded:   %s\n", formatExcluded(v.Excluded))
	fmt.Fprintf(w, "  remaining:  %d\n", snap.Remaining)
}

// printCandidates writes the sorted pool, or a note when it is empty.
func printCandidates(w io.Writer, candidates []string) {
	if len(candidates) == 0 {
		fmt.Fprintln(w, warnStyle.Render("No candidates left; check the feedback you entered."))
		return
	}
	fmt.Fprintln(w, mutedStyle.Render("Candidates:"))
	fmt.Fprintln(w, strings.Join(candidates, ", "))
}

func formatCounts(m map[string]int) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return strings.Join(parts, " ")
}

func formatPositions(m map[int]string) string {
	parts := make([]string, 0, len(m))
	for pos := 1; pos <= solver.WordLen; pos++ {
		if l, ok := m[pos]; ok {
			parts = append(parts, fmt.Sprintf("%d:%s", pos, l))
		}
	}
	return strings.Join(parts, " ")
}

func formatExcluded(m map[int][]string) string {
	parts := make([]string, 0, len(m))
	for pos := 1; pos <= solver.WordLen; pos++ {
		if ls, ok := m[pos]; ok && len(ls) > 0 {
			parts = append(parts, fmt.Sprintf("%d:%s", pos, strings.Join(ls, "")))
		}
	}
	return strings.Join(parts, " ")
}
