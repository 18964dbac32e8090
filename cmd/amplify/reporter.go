package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/MikeSquared-Agency/Amplify/internal/scoring"
)

// printResult writes a human-readable report of r.
func printResult(w io.Writer, r scoring.ScoreResult) {
	fmt.Fprintf(w, "Score: %.1f / 100 (%s)\n", r.TotalScore, r.Variant)
	fmt.Fprintf(w, "Reach: %d   Diversity risk: %s\n\n", r.ReachScore, r.DiversityRisk)

	fmt.Fprintln(w, "Breakdown:")
	for _, b := range r.Breakdown.Buckets {
		fmt.Fprintf(w, "  %s %8.2f\n", padRight(b.Name, 12), b.Value)
	}
	fmt.Fprintf(w, "  %s %8.2f\n", padRight("negative", 12), -r.Breakdown.NegativeImpact)

	if c := r.Checklist; c != nil {
		items := slices.Concat(c.Bonuses, c.Penalties)
		width := 0
		for _, d := range items {
			width = max(width, runewidth.StringWidth(d.Label))
		}
		fmt.Fprintln(w, "\nChecklist:")
		for _, d := range items {
			mark := " "
			if d.Applied {
				mark = "x"
			}
			fmt.Fprintf(w, "  [%s] %s %+4d\n", mark, padRight(d.Label, width), d.Points)
		}
	}

	printList(w, "Advice", r.Advice)
	printList(w, "Warnings", r.Warnings)
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, s := range items {
		fmt.Fprintf(w, "  - %s\n", s)
	}
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
