// Package paging derives page views from an ordered collection.
//
// The calculator is pure and stateless: every call recomputes the view from
// scratch. Collections here are small (bounded by the feed fetch limit), so
// nothing is cached or incrementally maintained.
package paging

// PageSize is the number of items shown per page. Fixed for the process lifetime.
const PageSize = 6

// Page is a derived, read-only view of one page of an ordered collection.
type Page[T any] struct {
	// Items is the visible slice. It is shorter than PageSize only on the
	// last page.
	Items []T
	// Number is the effective page number after clamping.
	Number      int
	TotalPages  int
	TotalItems  int
	HasPrevious bool
	HasNext     bool
}

// TotalPages returns the number of pages needed for n items.
// An empty collection still occupies one (empty) page.
func TotalPages(n int) int {
	pages := (n + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Clamp constrains a cursor into [1, TotalPages(n)] for a collection of n items.
func Clamp(cursor, n int) int {
	total := TotalPages(n)
	if cursor < 1 {
		return 1
	}
	if cursor > total {
		return total
	}
	return cursor
}

// Paginate slices items for the given cursor. The cursor is re-clamped here
// even though the store clamps after every mutation, so a stale or
// out-of-range cursor still yields a valid page.
func Paginate[T any](items []T, cursor int) Page[T] {
	total := TotalPages(len(items))
	number := Clamp(cursor, len(items))

	start := (number - 1) * PageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:       items[start:end],
		Number:      number,
		TotalPages:  total,
		TotalItems:  len(items),
		HasPrevious: number > 1,
		HasNext:     number < total,
	}
}

// Numbers returns the ordered page numbers 1..TotalPages for rendering a
// page-selector row.
func (p Page[T]) Numbers() []int {
	numbers := make([]int, p.TotalPages)
	for i := range numbers {
		numbers[i] = i + 1
	}
	return numbers
}
