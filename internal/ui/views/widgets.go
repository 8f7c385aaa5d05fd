package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"instalike/internal/ui/theme"
)

// NewInput builds a text input with a steady cursor.
func NewInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = "› "
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func Handle(name string) string { return "@" + name }

// Grid lays cells out in rows of cols, each cell width/cols wide.
func Grid(cells []string, cols, width int) string {
	if cols < 1 || len(cells) == 0 {
		return ""
	}
	cellW := width / cols
	if cellW < 1 {
		cellW = 1
	}
	style := lipgloss.NewStyle().Inline(true).Width(cellW).MaxWidth(cellW)
	rows := make([]string, 0, (len(cells)+cols-1)/cols)
	for i := 0; i < len(cells); i += cols {
		end := min(i+cols, len(cells))
		row := make([]string, 0, cols)
		for _, c := range cells[i:end] {
			row = append(row, style.Render(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

// Field renders a labelled input.
func Field(label string, in textinput.Model) string {
	return theme.Muted.Render(label) + "\n" + in.View()
}

// Button renders a key-labelled action.
func Button(keyName, label string) string {
	return theme.Action.Render("["+keyName+"]") + " " + label
}

func ErrorLine(err string) string {
	if err == "" {
		return ""
	}
	return theme.Danger.Render("! " + err)
}
