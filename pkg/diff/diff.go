// Package diff compares line oriented text such as theme token dumps.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts the lines a diff adds and removes.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether the compared texts differ.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Unified compares from and to line by line and renders the result in
// unified diff form with every unchanged line kept as context. It returns an
// empty string when both texts are identical. Output beyond 10,000 lines is
// truncated with a marker.
func Unified(from, to, fromLabel, toLabel string) (string, Stats) {
	if from == to {
		return "", Stats{}
	}

	var (
		buf   strings.Builder
		stats Stats
	)

	fmt.Fprintf(&buf, "--- %s\n", fromLabel)
	fmt.Fprintf(&buf, "+++ %s\n", toLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(from), countLines(to))

	for _, d := range lineDiffs(from, to) {
		lines := strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")

		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
			stats.Removed += len(lines)
		case diffmatchpatch.DiffInsert:
			prefix = "+"
			stats.Added += len(lines)
		}

		for _, line := range lines {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n", stats
	}
	return result, stats
}

// lineDiffs diffs whole lines so a changed token never shows up as a
// character level edit.
func lineDiffs(from, to string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, index := dmp.DiffLinesToChars(ensureNewline(from), ensureNewline(to))
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, index)
}

func ensureNewline(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(ensureNewline(text), "\n")
}
