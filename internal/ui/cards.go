package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/prizma-news/prizma/internal/feed"
	"github.com/prizma-news/prizma/internal/format"
)

// biasBarWidth is the character width of the proportional bias bar.
const biasBarWidth = 20

// maxTagChips caps the number of tag chips shown per card.
const maxTagChips = 4

// noTitle is the placeholder for items without any title.
const noTitle = "(no title)"

// renderBiasBar draws the proportional bar for a clamped bias score.
func renderBiasBar(score float64) string {
	clamped := format.Clamp(score, 0, 100)
	filled := int(math.Round(clamped / 100 * biasBarWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", biasBarWidth-filled)
	return lipgloss.NewStyle().Foreground(biasColor(clamped)).Render(bar)
}

// renderCard renders one full news card.
func renderCard(it feed.NewsItem, selected bool, width int, lang format.Lang) string {
	border := CardBorder
	if selected {
		border = SelectedCardBorder
	}

	inner := width - 4 // border + padding
	if inner < 24 {
		inner = 24
	}

	title := it.Title()
	if title == "" {
		title = noTitle
	}

	itemLang := format.ParseLang(it.Lang)

	meta := MetaStyle.Render(fmt.Sprintf("%s · %s · %s",
		it.Source,
		format.Date(it.PublishedAt, lang),
		strings.ToUpper(it.Lang)))

	bias := fmt.Sprintf("%s %s",
		renderBiasBar(it.BiasScore),
		MetaStyle.Render(fmt.Sprintf("%g/100 · %d · %s",
			it.BiasScore,
			int(math.Round(it.LeftRightIndex)),
			format.LeftRight(it.LeftRightIndex, itemLang))))

	recap := it.RecapNeutral
	if recap == "" {
		recap = "—"
	}

	ideaLabel := "Main idea:"
	if itemLang == format.LangRU {
		ideaLabel = "Суть:"
	}

	var lines []string
	lines = append(lines, TitleStyle.Width(inner).Render(title))
	lines = append(lines, meta)
	lines = append(lines, bias)
	lines = append(lines, lipgloss.NewStyle().Width(inner).Render(recap))
	if it.MainIdea != "" {
		lines = append(lines, IdeaStyle.Width(inner).Render(ideaLabel+" "+it.MainIdea))
	}

	bottom := ""
	tags := it.Tags
	if len(tags) > maxTagChips {
		tags = tags[:maxTagChips]
	}
	for _, tag := range tags {
		bottom += TagChip.Render(tag)
	}
	if it.Confidence != "" {
		bottom += MetaStyle.Render(it.Confidence)
	}
	if bottom != "" {
		lines = append(lines, bottom)
	}
	if it.URL != "" {
		lines = append(lines, URLStyle.Render(truncate(it.URL, inner)))
	}

	return border.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

// RenderCards renders the visible window of cards, keeping the cursor card
// on screen. Cards vary in height, so the window is computed by walking
// upward from the cursor until the viewport is full.
func RenderCards(items []feed.NewsItem, cursor, width, height int, lang format.Lang) string {
	if len(items) == 0 {
		return HelpStyle.Render("No items to display. Press 'r' to reload.")
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(items) {
		cursor = len(items) - 1
	}

	rendered := make([]string, len(items))
	heights := make([]int, len(items))
	for i, it := range items {
		rendered[i] = renderCard(it, i == cursor, width, lang)
		heights[i] = lipgloss.Height(rendered[i])
	}

	// Walk upward from the cursor to find the first visible card.
	start := cursor
	used := heights[cursor]
	for start > 0 && used+heights[start-1] <= height {
		start--
		used += heights[start]
	}

	var b strings.Builder
	used = 0
	for i := start; i < len(items); i++ {
		if used+heights[i] > height && i > cursor {
			break
		}
		b.WriteString(rendered[i])
		b.WriteString("\n")
		used += heights[i]
	}
	return b.String()
}

// truncate shortens a string to max runes, appending "…" if truncated.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
