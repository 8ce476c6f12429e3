package pagination

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPage     = errors.New("page must be a positive integer")
	ErrInvalidPageSize = errors.New("page size must be a positive integer")
)

// Page is one slice of an ordered result set
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	StartIndex int
	EndIndex   int
	// ResetToFirst is set when the requested page lies beyond TotalPages,
	// e.g. after cancellations shrank the set. Callers should go back to page 1.
	ResetToFirst bool
}

// Paginate slices items deterministically. It never clamps the page:
// an out-of-range page yields no items and ResetToFirst.
func Paginate[T any](items []T, pageSize, page int) (Page[T], error) {
	if pageSize < 1 {
		return Page[T]{}, ErrInvalidPageSize
	}
	if page < 1 {
		return Page[T]{}, ErrInvalidPage
	}

	total := len(items)
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	// Pages past the end are empty; checked before multiplying so a huge
	// page number cannot overflow into a negative offset.
	start, end := total, total
	if page <= totalPages {
		start = (page - 1) * pageSize
		end = start + min(pageSize, total-start)
	}

	return Page[T]{
		Items:        items[start:end:end],
		Page:         page,
		PageSize:     pageSize,
		Total:        total,
		TotalPages:   totalPages,
		StartIndex:   start,
		EndIndex:     end,
		ResetToFirst: page > totalPages,
	}, nil
}

// RangeLabel renders the "6-10 of 12" summary shown above a list
func (p Page[T]) RangeLabel() string {
	if p.Total == 0 {
		return "0 total"
	}
	if len(p.Items) == 0 {
		return fmt.Sprintf("0 of %d", p.Total)
	}
	return fmt.Sprintf("%d-%d of %d", p.StartIndex+1, p.EndIndex, p.Total)
}

// Window returns up to width consecutive page numbers around the current page,
// shifted so the strip stays inside [1, totalPages].
func Window(page, totalPages, width int) []int {
	if totalPages < 1 || width < 1 {
		return []int{}
	}
	width = min(width, totalPages)

	first := page - width/2
	first = max(first, 1)
	first = min(first, totalPages-width+1)

	pages := make([]int, 0, width)
	for p := first; p < first+width; p++ {
		pages = append(pages, p)
	}
	return pages
}
