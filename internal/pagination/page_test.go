package pagination_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogspace/internal/pagination"
)

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestPaginatePartition(t *testing.T) {
	const n, size = 25, 10
	items := seq(n)

	var gathered []int
	first := pagination.Paginate(items, size, "1")
	require.Equal(t, 3, first.TotalPages)
	require.Equal(t, n, first.Count)

	for p := 1; p <= first.TotalPages; p++ {
		page := pagination.Paginate(items, size, strconv.Itoa(p))
		assert.Equal(t, p, page.Number)
		assert.LessOrEqual(t, len(page.Items), size)
		gathered = append(gathered, page.Items...)
	}

	// Every element exactly once, input order preserved.
	assert.Equal(t, items, gathered)
}

func TestPaginateClamping(t *testing.T) {
	items := seq(25)

	pageOne := pagination.Paginate(items, 10, "1")
	for _, raw := range []string{"", "abc", "0", "-5", "1"} {
		t.Run("raw="+raw, func(t *testing.T) {
			assert.Equal(t, pageOne, pagination.Paginate(items, 10, raw))
		})
	}

	last := pagination.Paginate(items, 10, "3")
	assert.Equal(t, last, pagination.Paginate(items, 10, "9999"))
	assert.Len(t, last.Items, 5)
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())
}

func TestPaginateEmpty(t *testing.T) {
	page := pagination.Paginate([]int(nil), 10, "")
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.Count)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasPrev())
	assert.False(t, page.HasNext())
}

func TestPaginateExactMultiple(t *testing.T) {
	page := pagination.Paginate(seq(20), 10, "2")
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 10)
	assert.False(t, page.HasNext())
}

func TestPageNumber(t *testing.T) {
	cases := map[string]int{
		"":     1,
		"x":    1,
		"0":    1,
		"-3":   1,
		"1":    1,
		"7":    7,
		"9999": 9999,
	}
	for raw, want := range cases {
		assert.Equal(t, want, pagination.PageNumber(raw), "raw=%q", raw)
	}
}
