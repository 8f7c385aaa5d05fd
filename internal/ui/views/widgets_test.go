package views_test

import (
	"strings"
	"testing"

	"instalike/internal/ui/views"
)

func TestGridRows(t *testing.T) {
	t.Parallel()
	out := views.Grid([]string{"a", "b", "c", "d"}, 3, 30)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two rows, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "a") || !strings.Contains(lines[0], "c") || !strings.HasPrefix(lines[1], "d") {
		t.Fatalf("unexpected layout %q", out)
	}
	if views.Grid(nil, 3, 30) != "" {
		t.Fatalf("empty grid must render nothing")
	}
}

func TestNewInputHasNoBlink(t *testing.T) {
	t.Parallel()
	in := views.NewInput("x", 10)
	if cmd := in.Focus(); cmd != nil {
		t.Fatalf("focus must not schedule a blink")
	}
}
