// Package pagination slices ordered sequences into fixed-size pages.
//
// Page numbers are 1-based. Requests past the last page clamp to the last
// page instead of failing: listing pages should survive stale bookmarks and
// hand-edited query strings.
package pagination

import "strconv"

type Page[T any] struct {
	Items      []T
	Number     int
	PerPage    int
	TotalPages int
	TotalItems int
}

func (p Page[T]) HasPrevious() bool {
	return p.Number > 1
}

func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}

func (p Page[T]) PreviousNumber() int {
	return p.Number - 1
}

func (p Page[T]) NextNumber() int {
	return p.Number + 1
}

// Paginate returns the requested page of items. number is clamped into
// [1, totalPages]; an empty input yields a single empty page.
func Paginate[T any](items []T, number, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = 1
	}

	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * perPage
	end := start + perPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     number,
		PerPage:    perPage,
		TotalPages: totalPages,
		TotalItems: len(items),
	}
}

// ParseNumber converts a raw ?page= query value to a page number,
// falling back to 1 for absent, non-numeric or non-positive input.
func ParseNumber(raw string) int {
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		return 1
	}
	return number
}
