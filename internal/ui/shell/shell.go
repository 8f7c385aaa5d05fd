// Package shell frames every protected view: a one-line header with fixed
// side slots, the body, and the bottom navigation bar.
package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"instalike/internal/ui/nav"
	"instalike/internal/ui/theme"
)

// SlotWidth is the fixed width of the header side slots, so the title stays
// centered whatever the slots hold.
const SlotWidth = 10

// MinWidth is the narrowest frame Compose lays out.
const MinWidth = 3*SlotWidth + 2

type Frame struct {
	Title string
	Left  string
	Right string
	Body  string
	// Active highlights the matching bottom-nav destination, if any.
	Active nav.Route
}

type Destination struct {
	Key   string
	Glyph string
	Label string
	Route nav.Route
}

// Cell is the text a destination renders as in the bottom bar.
func (d Destination) Cell() string { return d.Glyph + " " + d.Key + " " + d.Label }

// BottomNav is the fixed set of bottom-bar destinations, in display order.
var BottomNav = [5]Destination{
	{Key: "1", Glyph: "⌂", Label: "home", Route: nav.Home},
	{Key: "2", Glyph: "⌕", Label: "search", Route: nav.Search},
	{Key: "3", Glyph: "⊕", Label: "create", Route: nav.Create},
	{Key: "4", Glyph: "♡", Label: "activity", Route: nav.Activity},
	{Key: "5", Glyph: "☺", Label: "profile", Route: nav.Profile},
}

// DestinationForKey maps a bottom-bar key to its route.
func DestinationForKey(k string) (nav.Route, bool) {
	for _, d := range BottomNav {
		if d.Key == k {
			return d.Route, true
		}
	}
	return 0, false
}

// Compose lays a frame out at the given size. A height of zero or less leaves
// the body unpadded.
func Compose(f Frame, width, height int) string {
	if width < MinWidth {
		width = MinWidth
	}
	header := renderHeader(f, width)
	divider := theme.Divider.Render(strings.Repeat("─", width))
	bar := renderBottomNav(f.Active, width)

	body := f.Body
	if height > 0 {
		bodyH := height - lipgloss.Height(header) - 2*lipgloss.Height(divider) - lipgloss.Height(bar)
		if bodyH < 1 {
			bodyH = 1
		}
		body = lipgloss.NewStyle().Width(width).Height(bodyH).MaxHeight(bodyH).Render(body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, divider, body, divider, bar)
}

func renderHeader(f Frame, width int) string {
	slot := lipgloss.NewStyle().Inline(true).Width(SlotWidth).MaxWidth(SlotWidth)
	titleW := width - 2*SlotWidth
	left := slot.Render(f.Left)
	right := slot.Align(lipgloss.Right).Render(f.Right)
	title := theme.Header.Inline(true).Width(titleW).MaxWidth(titleW).Align(lipgloss.Center).Render(f.Title)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, title, right)
}

func renderBottomNav(active nav.Route, width int) string {
	cellW := width / len(BottomNav)
	compact := false
	for _, d := range BottomNav {
		if lipgloss.Width(d.Cell()) > cellW {
			compact = true
		}
	}
	cells := make([]string, len(BottomNav))
	for i, d := range BottomNav {
		style := theme.Muted
		if d.Route == active {
			style = theme.Hot
		}
		text := d.Cell()
		if compact {
			text = d.Glyph + " " + d.Key
		}
		cells[i] = style.Inline(true).Width(cellW).MaxWidth(cellW).Align(lipgloss.Center).Render(text)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
