package editor

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func viewRows(m Model) []string {
	rows := strings.Split(m.View(), "\n")
	for i := range rows {
		rows[i] = strings.TrimRight(rows[i], " ")
	}
	return rows
}

func TestView_Layout(t *testing.T) {
	_, store := newTestModel(t, 70, 5, "abc", "def")
	m := New(Config{
		Filename: testFile,
		Store:    store,
		Title:    "tide",
		Version:  "0.9.0",
		Width:    70,
		Height:   5,
	})

	got := viewRows(m)
	want := []string{
		fmt.Sprintf("%-57s%s", "tide (0.9.0) 'doc.txt'", "2 lines - 1,1"),
		"abc",
		"def",
		"",
		"(F1) reload file | (F2) save file | (F12) quit <> opened doc.txt",
	}
	if len(got) != len(want) {
		t.Fatalf("rows: got %d, want %d\n%q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d:\n got: %q\nwant: %q", i, got[i], want[i])
		}
	}
}

func TestView_HeightMatchesTerminal(t *testing.T) {
	for _, h := range []int{1, 2, 3, 10} {
		m, _ := newTestModel(t, 30, h, "a", "b", "c", "d", "e")
		want := max(h, 3)
		if got := lipgloss.Height(m.View()); got != want {
			t.Fatalf("height %d: got %d rows, want %d", h, got, want)
		}
	}
}

func TestView_NarrowTerminalTruncatesChrome(t *testing.T) {
	m, _ := newTestModel(t, 10, 3, "a long line of text")
	for i, row := range strings.Split(m.View(), "\n") {
		if w := lipgloss.Width(row); w > 10 {
			t.Fatalf("row %d width: got %d, want <= 10 (%q)", i, w, row)
		}
	}
}

func TestView_HeaderTracksCursorAndModified(t *testing.T) {
	m, _ := newTestModel(t, 80, 6, "abc", "def")
	m = press(m, tea.KeyDown, tea.KeyEnd)

	header := viewRows(m)[0]
	if !strings.HasSuffix(header, "2 lines - 4,2") {
		t.Fatalf("header position: %q", header)
	}
	if strings.Contains(header, "[+]") {
		t.Fatalf("unexpected modified marker: %q", header)
	}

	m = typeRunes(m, "x")
	if header := viewRows(m)[0]; !strings.Contains(header, "'doc.txt' [+]") {
		t.Fatalf("missing modified marker: %q", header)
	}

	m = press(m, tea.KeyF2)
	rows := viewRows(m)
	if strings.Contains(rows[0], "[+]") {
		t.Fatalf("modified marker after save: %q", rows[0])
	}
	if footer := rows[len(rows)-1]; !strings.HasSuffix(footer, "<> saved doc.txt (2 lines)") {
		t.Fatalf("footer after save: %q", footer)
	}
}

func TestView_ScrollsHorizontallyToCursor(t *testing.T) {
	m, _ := newTestModel(t, 5, 3, "abcdefgh")
	m = press(m, tea.KeyEnd)

	if got := m.ViewportState().LeftColumn; got != 4 {
		t.Fatalf("left column: got %d, want 4", got)
	}
	if got := viewRows(m)[1]; got != "efgh" {
		t.Fatalf("body row: got %q, want %q", got, "efgh")
	}

	m = press(m, tea.KeyHome)
	if got := viewRows(m)[1]; got != "abcde" {
		t.Fatalf("body row after home: got %q, want %q", got, "abcde")
	}
}

func TestView_ControlBytesRenderAsGlyph(t *testing.T) {
	m, _ := newTestModel(t, 20, 3, "a\tb\r")
	if got := viewRows(m)[1]; got != "a?b?" {
		t.Fatalf("body row: got %q, want %q", got, "a?b?")
	}
}

func TestView_ShowsWindowAfterScroll(t *testing.T) {
	m, _ := newTestModel(t, 10, 4, "0", "1", "2", "3")
	m = press(m, tea.KeyDown, tea.KeyDown, tea.KeyDown)

	rows := viewRows(m)
	if rows[1] != "2" || rows[2] != "3" {
		t.Fatalf("body rows: got %q", rows[1:3])
	}
	st := m.ViewportState()
	if st.TopLine != 2 || st.VisibleLines != 2 || st.Cursor != (Cursor{Col: 0, Row: 2}) {
		t.Fatalf("viewport state: %+v", st)
	}
}
