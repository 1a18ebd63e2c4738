package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"empty collection still has one page", 0, 1},
		{"single item", 1, 1},
		{"exactly one page", 6, 1},
		{"one past a boundary", 7, 2},
		{"partial last page", 17, 3},
		{"exactly three pages", 18, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.n))
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		n      int
		want   int
	}{
		{"in range", 2, 18, 2},
		{"zero clamps to first", 0, 18, 1},
		{"negative clamps to first", -5, 18, 1},
		{"beyond last clamps to last", 99, 18, 3},
		{"empty collection clamps to one", 7, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.cursor, tt.n))
		})
	}
}

func TestPaginateFirstPage(t *testing.T) {
	page := Paginate(sequence(18), 1)

	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 18, page.TotalItems)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, page.Items)
	assert.False(t, page.HasPrevious)
	assert.True(t, page.HasNext)
}

func TestPaginateLastPartialPage(t *testing.T) {
	page := Paginate(sequence(17), 3)

	assert.Equal(t, 3, page.Number)
	assert.Equal(t, []int{12, 13, 14, 15, 16}, page.Items)
	assert.Len(t, page.Items, 17%PageSize)
	assert.True(t, page.HasPrevious)
	assert.False(t, page.HasNext)
}

func TestPaginateReclampsStaleCursor(t *testing.T) {
	// A cursor that was valid before the collection shrank must still
	// produce a valid page at read time.
	tests := []struct {
		name       string
		n          int
		cursor     int
		wantNumber int
		wantLen    int
	}{
		{"cursor past end", 12, 3, 2, 6},
		{"cursor far past end", 6, 42, 1, 6},
		{"cursor below range", 18, -1, 1, 6},
		{"empty collection", 0, 3, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(sequence(tt.n), tt.cursor)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Len(t, page.Items, tt.wantLen)
		})
	}
}

func TestPaginateSliceLengthInvariant(t *testing.T) {
	// Every page except possibly the last holds exactly PageSize items.
	for n := 0; n <= 20; n++ {
		items := sequence(n)
		total := TotalPages(n)
		for cursor := 1; cursor <= total; cursor++ {
			page := Paginate(items, cursor)
			if cursor < total {
				assert.Len(t, page.Items, PageSize, "n=%d cursor=%d", n, cursor)
			} else {
				want := n % PageSize
				if want == 0 && n > 0 {
					want = PageSize
				}
				assert.Len(t, page.Items, want, "n=%d cursor=%d", n, cursor)
			}
		}
	}
}

func TestPageNumbers(t *testing.T) {
	page := Paginate(sequence(18), 2)
	assert.Equal(t, []int{1, 2, 3}, page.Numbers())

	empty := Paginate([]int{}, 1)
	assert.Equal(t, []int{1}, empty.Numbers())
}
