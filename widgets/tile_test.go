package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func renderPlain(t Tile, width, height int) []string {
	return strings.Split(ansi.Strip(t.Render(width, height)), "\n")
}

func TestTileRenderShape(t *testing.T) {
	lines := renderPlain(Tile{Title: "Keyboard", Icon: "⌨", Status: "Layout: us", Height: 5}, 30, 5)
	if len(lines) != 5 {
		t.Fatalf("want 5 rows, got %d: %q", len(lines), lines)
	}
	for i, line := range lines {
		if got := ansi.StringWidth(line); got != 30 {
			t.Fatalf("row %d width %d, want 30: %q", i, got, line)
		}
	}
	if !strings.Contains(lines[0], "Keyboard") {
		t.Fatalf("title missing from border row: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Layout: us") {
		t.Fatalf("status missing: %q", lines[1])
	}
}

func TestTileMarkers(t *testing.T) {
	lines := renderPlain(Tile{Title: "Software", Status: "Nothing selected", Warning: true, Height: 3}, 30, 3)
	if !strings.Contains(lines[0], "! Software") {
		t.Fatalf("incomplete screens carry a warning marker: %q", lines[0])
	}

	lines = renderPlain(Tile{Title: "Software", Status: "Server", Selected: true, Height: 3}, 30, 3)
	if !strings.Contains(lines[0], "▶ Software") {
		t.Fatalf("selected marker missing: %q", lines[0])
	}
}

func TestTileDisabledHidesStatus(t *testing.T) {
	lines := renderPlain(Tile{Title: "Installation Destination", Status: "sda", Disabled: true, Height: 3}, 40, 3)
	if !strings.Contains(lines[1], "probing...") {
		t.Fatalf("disabled tile shows probe placeholder: %q", lines[1])
	}
	if strings.Contains(lines[1], "sda") {
		t.Fatalf("disabled tile must not leak stale status: %q", lines[1])
	}
}

func TestTileTruncatesLongTitles(t *testing.T) {
	lines := renderPlain(Tile{Title: strings.Repeat("x", 60), Status: "ok", Height: 3}, 20, 3)
	for i, line := range lines {
		if got := ansi.StringWidth(line); got != 20 {
			t.Fatalf("row %d width %d after truncation: %q", i, got, line)
		}
	}
}
