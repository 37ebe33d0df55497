// Package cells measures and fits text in terminal cells.
package cells

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the terminal cell width of s.
func Width(s string) int {
	if s == "" {
		return 0
	}
	n := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		n += clusterWidth(g.Str())
	}
	return n
}

// Truncate cuts s to at most width cells without splitting a grapheme
// cluster.
func Truncate(s string, width int) string {
	if width <= 0 || s == "" {
		return ""
	}
	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := clusterWidth(g.Str())
		if used+w > width {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	return sb.String()
}

// Fit truncates s to width cells and pads it with spaces to exactly width.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = Truncate(s, width)
	if pad := width - Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// Justify places left and right on one row of exactly width cells. When both
// do not fit, right wins and left is truncated.
func Justify(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	right = Truncate(right, width)
	room := width - Width(right)
	return Fit(left, room) + right
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}
