package editor

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/tide/storage"
)

func TestRenderLine_Plain(t *testing.T) {
	cases := []struct {
		name      string
		line      string
		left      int
		width     int
		cursorCol int
		want      string
	}{
		{name: "no cursor", line: "abc", width: 10, cursorCol: -1, want: "abc"},
		{name: "cursor inside", line: "abc", width: 10, cursorCol: 1, want: "abc"},
		{name: "cursor at end", line: "ab", width: 5, cursorCol: 2, want: "ab "},
		{name: "clipped", line: "abcdefgh", width: 3, cursorCol: -1, want: "abc"},
		{name: "offset", line: "abcdefgh", left: 3, width: 4, cursorCol: 6, want: "defg"},
		{name: "offset past end", line: "ab", left: 4, width: 3, cursorCol: -1, want: ""},
		{name: "control bytes", line: "a\tb\x01", width: 10, cursorCol: -1, want: "a?b?"},
		{name: "cursor on control byte", line: "a\tb", width: 10, cursorCol: 1, want: "a?b"},
		{name: "zero width", line: "abc", width: 0, cursorCol: 0, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := renderLine(Style{}, tc.line, tc.left, tc.width, tc.cursorCol)
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderLine_UsesStyles(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{
		Text:    r.NewStyle(),
		Control: r.NewStyle().Faint(true),
		Cursor:  r.NewStyle().Reverse(true),
	}

	got := renderLine(st, "a\tbc", 0, 10, 2)
	want := st.Text.Render("a") + st.Control.Render("?") + st.Cursor.Render("b") + st.Text.Render("c")
	if got != want {
		t.Fatalf("styled line:\n got: %q\nwant: %q", got, want)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI sequences in %q", got)
	}
}

func TestHorizontalOffset(t *testing.T) {
	cases := []struct{ col, width, want int }{
		{0, 10, 0},
		{9, 10, 0},
		{10, 10, 1},
		{25, 10, 16},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := horizontalOffset(tc.col, tc.width); got != tc.want {
			t.Fatalf("horizontalOffset(%d, %d): got %d, want %d", tc.col, tc.width, got, tc.want)
		}
	}
}

func TestRenderFooter_DefaultStyleKeepsWidth(t *testing.T) {
	m := New(Config{
		Filename: testFile,
		Store:    storage.NewMemStore(),
		Style:    DefaultStyle(),
		Width:    40,
		Height:   5,
	})
	if got := lipgloss.Width(m.renderFooter()); got != 40 {
		t.Fatalf("footer width: got %d, want 40", got)
	}
	if got := lipgloss.Width(m.renderHeader()); got != 40 {
		t.Fatalf("header width: got %d, want 40", got)
	}
}
