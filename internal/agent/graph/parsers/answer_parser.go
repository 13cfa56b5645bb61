package parsers

import (
	"strings"

	"github.com/voting-agent/server/internal/agent/model"
)

const (
	markerQuestion = "Selected Question:"
	markerAnswer   = "Humanized Answer:"
)

// ParseAnswer splits a final model reply into its question and answer parts.
// Markers may appear anywhere in a line, so numbering, quoting or bold
// around them is tolerated. The question is the text after the first
// "Selected Question:" marker; the answer is the text after the
// "Humanized Answer:" marker plus every line after it. A missing question
// falls back to query and a missing answer to the whole reply. It never fails.
func ParseAnswer(query, raw string) model.Result {
	var (
		question    string
		answer      string
		hasQuestion bool
		hasAnswer   bool
	)

	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, markerQuestion); !hasQuestion && idx >= 0 {
			question = afterMarker(line, idx, markerQuestion)
			hasQuestion = true
			continue
		}
		if idx := strings.Index(line, markerAnswer); idx >= 0 {
			rest := append([]string{afterMarker(line, idx, markerAnswer)}, lines[i+1:]...)
			answer = strings.TrimSpace(strings.Join(rest, "\n"))
			hasAnswer = true
			break
		}
	}

	if !hasQuestion || question == "" {
		question = query
	}
	if !hasAnswer || answer == "" {
		answer = raw
	}
	return model.Result{
		SelectedQuestion: question,
		HumanizedAnswer:  answer,
	}
}

// afterMarker returns the trimmed text following the marker at idx. When the
// marker is wrapped in markdown emphasis ("**Marker:**") the closing stars
// are dropped; stars inside the value are kept.
func afterMarker(line string, idx int, marker string) string {
	prefix := line[:idx]
	stars := len(prefix) - len(strings.TrimRight(prefix, "*"))
	rest := line[idx+len(marker):]
	if stars > 0 && strings.HasPrefix(rest, strings.Repeat("*", stars)) {
		rest = rest[stars:]
	}
	return strings.TrimSpace(rest)
}
