package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/purrfect/pkg/app/styles"
	"github.com/kerbaras/purrfect/pkg/data"
)

const (
	// cardGap is the horizontal space between grid cells.
	cardGap = 1
	// columnMaxWidth caps card width in column and infinite layouts.
	columnMaxWidth = 72
	minCardWidth   = 16
)

// GridColumns returns how many cards fit side by side in width.
func GridColumns(width int) int {
	switch {
	case width < 60:
		return 1
	case width < 90:
		return 2
	case width < 120:
		return 3
	case width < 150:
		return 4
	default:
		return 5
	}
}

// Card renders one image as a bordered box exactly width cells wide.
func Card(img data.Image, width int) string {
	width = max(width, minCardWidth)
	// border takes two cells and padding two more
	inner := width - 4

	title := styles.CardTitleStyle.Render(truncate("🐱 "+img.ID, inner))
	url := styles.TextStyle.Render(truncate(img.URL, inner))

	return styles.CardStyle.
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, url))
}

// Grid lays images out row by row in GridColumns(width) columns.
func Grid(images []data.Image, width int) string {
	if len(images) == 0 {
		return ""
	}
	cols := GridColumns(width)
	cardWidth := (width - cardGap*(cols-1)) / cols

	var rows []string
	for start := 0; start < len(images); start += cols {
		end := min(start+cols, len(images))
		cells := make([]string, 0, 2*(end-start))
		for i, img := range images[start:end] {
			if i > 0 {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, Card(img, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Column stacks one card per row, centered in width.
func Column(images []data.Image, width int) string {
	if len(images) == 0 {
		return ""
	}
	cardWidth := min(width, columnMaxWidth)
	cards := make([]string, len(images))
	for i, img := range images {
		cards[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, Card(img, cardWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// Infinite is the column layout followed by the feed footer.
func Infinite(images []data.Image, width int, loading, hasMore bool) string {
	var footer string
	switch {
	case loading && len(images) > 0:
		footer = styles.StatusLoading.Render("Loading more cats...")
	case !hasMore && len(images) > 0:
		footer = styles.MutedStyle.Render("That's every cat for now.")
	}

	list := Column(images, width)
	if footer == "" {
		return list
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		list,
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, footer),
	)
}

func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+3 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
