package news

import "strings"

// SummaryLine is one display line of a summary.
type SummaryLine struct {
	Text   string
	Bullet bool
}

// SummaryLines splits a summary for display. Summaries that contain
// "・" or "- " are treated as bullet lists, one line each; anything else
// is a single paragraph.
func SummaryLines(summary string) []SummaryLine {
	if summary == "" {
		return nil
	}
	if !strings.Contains(summary, "・") && !strings.Contains(summary, "- ") {
		return []SummaryLine{{Text: summary}}
	}

	var lines []SummaryLine
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "・") || strings.HasPrefix(line, "-") {
			text := strings.TrimLeft(line, "・-")
			lines = append(lines, SummaryLine{Text: strings.TrimSpace(text), Bullet: true})
			continue
		}
		lines = append(lines, SummaryLine{Text: line})
	}
	return lines
}
