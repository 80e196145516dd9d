// Package render assembles screens from styled blocks.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/go2048/internal/grid"
	"github.com/vinser/go2048/internal/style"
)

// Page stacks a title, pre-rendered content and a footer, centering the
// content vertically within height. With a known terminal size the whole
// page is centered on screen.
func Page(title, renderedContent, footer string, width, height, termWidth, termHeight int) string {
	renderedTopPattern := style.TopPattern.Render(strings.Repeat("/", width))

	renderedTitle := style.Title.Render(title)

	renderedFooter := style.Footer.Render(footer)

	// Calculate available height for content after accounting for title and footer
	availableHeight := height - lipgloss.Height(renderedTopPattern) - lipgloss.Height(renderedTitle) - lipgloss.Height(renderedFooter)

	// Place content vertically centered within the available height
	centeredContent := lipgloss.PlaceVertical(availableHeight, lipgloss.Center, renderedContent)

	// Assemble the final page
	view := lipgloss.JoinVertical(
		lipgloss.Left,
		renderedTopPattern,
		renderedTitle,
		centeredContent,
		renderedFooter,
	)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Grid renders the board as a block of colored tiles.
func Grid(g grid.Grid) string {
	rows := g.Rows()
	lines := make([]string, 0, grid.Size)
	for _, row := range rows {
		tiles := make([]string, 0, grid.Size)
		for _, v := range row {
			tiles = append(tiles, style.Tile(v).Render(tileLabel(v)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return style.Board.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func tileLabel(v int) string {
	if v == 0 {
		return "·"
	}
	return strconv.Itoa(v)
}
