package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muu0726/Tech-Information/internal/news"
	"github.com/muu0726/Tech-Information/internal/view"
)

func renderPreview(card *view.Card, width, height, scroll int, l layout) string {
	if card == nil {
		return center(l.st.placeholder.Render(l.loc.selectArticle), width, height)
	}
	it := card.Item

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := l.st.previewTitle.Width(contentWidth).Render(it.Title)

	meta := it.Source
	if it.Category != "" {
		meta += " · " + it.Category
	}
	if !it.Updated.IsZero() {
		meta += " · " + it.Updated.Format(l.loc.dateFormat)
	}
	if card.Saved {
		meta += " " + l.st.savedMark.Render("★")
	}
	source := l.st.previewSource.Render(meta)

	body := renderSummary(it.Summary, contentWidth, l)
	link := l.st.previewLink.Width(contentWidth).Render(l.loc.readMore + it.Link)

	parts := []string{title}
	if it.OriginalTitle != "" && it.OriginalTitle != it.Title {
		parts = append(parts, l.st.itemTime.Width(contentWidth).Render(it.OriginalTitle))
	}
	parts = append(parts, source, "", body, "", link)
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

// renderSummary draws bullet summaries one bullet per line and anything
// else as a wrapped paragraph.
func renderSummary(summary string, width int, l layout) string {
	lines := news.SummaryLines(summary)
	if len(lines) == 0 {
		return l.st.placeholder.Render(l.loc.summaryPending)
	}

	var out []string
	for _, line := range lines {
		if !line.Bullet {
			out = append(out, l.st.previewBody.Width(width).Render(wrapText(line.Text, width)))
			continue
		}
		text := l.st.previewBody.Width(width - 2).Render(wrapText(line.Text, width-2))
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, l.st.bullet.Render("・"), text))
	}
	return strings.Join(out, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if lipgloss.Width(line)+1+lipgloss.Width(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
