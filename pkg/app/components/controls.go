package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/purrfect/pkg/app/styles"
	"github.com/kerbaras/purrfect/pkg/data"
)

// Tabs renders the mode selector with active highlighted.
func Tabs(active data.ViewMode) string {
	tabs := make([]string, len(data.ViewModes))
	for i, mode := range data.ViewModes {
		style := styles.InactiveTabStyle
		if mode == active {
			style = styles.ActiveTabStyle
		}
		tabs[i] = style.Render(mode.Label())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// Pager renders the Previous / page / Next controls.
func Pager(page int, canPrev, canNext bool) string {
	button := func(label string, enabled bool) string {
		if enabled {
			return styles.ButtonStyle.Render(label)
		}
		return styles.DisabledButtonStyle.Render(label)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		button("Previous", canPrev),
		styles.MutedStyle.Padding(0, 2).Render(fmt.Sprintf("Page %d", page)),
		button("Next", canNext),
	)
}
