// Package pagination slices an ordered feed into fixed-size pages.
//
// Page numbers arrive from untrusted query strings, so every invalid input
// is normalized instead of rejected: missing, non-numeric and non-positive
// values mean page 1, and anything past the end clamps to the last page.
package pagination

import "strconv"

// Page is one bounded slice of an ordered sequence plus the metadata a
// client needs to render previous/next controls.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	TotalPages int `json:"total_pages"`
	Count      int `json:"count"`
}

func (p Page[T]) HasPrev() bool { return p.Number > 1 }
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// PageNumber normalizes a raw page query parameter to a positive page
// number. It never fails.
func PageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate returns the requested page of items. An empty input yields an
// empty page 1 of 1; a request past the last page returns the last page.
func Paginate[T any](items []T, pageSize int, rawPage string) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	total := (len(items) + pageSize - 1) / pageSize
	if total == 0 {
		total = 1
	}
	n := PageNumber(rawPage)
	if n > total {
		n = total
	}
	lo := min((n-1)*pageSize, len(items))
	hi := min(lo+pageSize, len(items))
	return Page[T]{
		Items:      items[lo:hi],
		Number:     n,
		TotalPages: total,
		Count:      len(items),
	}
}
