package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"screenwatch/internal/core/extract"
)

// TopLineLimit caps the echoed first line, in characters
const TopLineLimit = 140

var unicodeWord = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Local is the offline heuristic analyzer. It never fails
type Local struct{}

// Analyze implements domain.AnalyzerPort
func (Local) Analyze(_ context.Context, text string) (string, error) {
	return Narrate(text), nil
}

// Narrate renders line/word counts, the first line and detected themes
func Narrate(text string) string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	words := len(unicodeWord.FindAllStringIndex(text, -1))

	parts := []string{fmt.Sprintf("%d non-empty lines, ~%d words.", len(lines), words)}
	if len(lines) > 0 {
		parts = append(parts, "Top line: "+truncate(lines[0], TopLineLimit))
	}
	if themes := extract.Themes(text); len(themes) > 0 {
		parts = append(parts, "Detected themes: "+strings.Join(themes, ", "))
	} else {
		parts = append(parts, "No high-signal keywords detected.")
	}
	return strings.Join(parts, " ")
}

// truncate keeps the first n runes of s
func truncate(s string, n int) string {
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}
