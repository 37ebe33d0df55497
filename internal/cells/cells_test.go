package cells

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 0, Width(""))
	assert.Equal(t, 5, Width("hello"))
	assert.Equal(t, 4, Width("テテ"))
	assert.Equal(t, 4, Width("café"))
}

func TestTruncate_KeepsWholeClusters(t *testing.T) {
	assert.Equal(t, "hel", Truncate("hello", 3))
	assert.Equal(t, "テ", Truncate("テテ", 3), "wide cluster must not be split")
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "abc", Truncate("abc", 10))
}

func TestFit_PadsToWidth(t *testing.T) {
	assert.Equal(t, "ab   ", Fit("ab", 5))
	assert.Equal(t, "abcde", Fit("abcdefgh", 5))
	assert.Equal(t, "テ ", Fit("テテ", 3))
	assert.Equal(t, "", Fit("abc", -1))
}

func TestJustify(t *testing.T) {
	assert.Equal(t, "left     right", Justify("left", "right", 14))
	assert.Equal(t, "lright", Justify("left", "right", 6))
	assert.Equal(t, "righ", Justify("left", "right", 4))
	for _, w := range []int{1, 7, 20} {
		assert.Equal(t, w, Width(Justify("some title", "3 lines - 0,1", w)))
	}
}
