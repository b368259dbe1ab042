package services

import "fmt"

// QuestionsPerPage is the fixed page size for every paginated listing.
const QuestionsPerPage = 10

// Paginate returns the slice of items covering zero-based offsets
// [pageSize*(page-1), pageSize*page), clipped to the bounds of items.
// A range entirely beyond the collection yields an empty slice; page
// numbers below 1 are outside the domain and fail with ErrInvalidPage.
// Pure function; the input slice is never mutated.
func Paginate[T any](items []T, page, pageSize int) ([]T, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page %d", ErrInvalidPage, page)
	}

	start := min((page-1)*pageSize, len(items))
	end := min(page*pageSize, len(items))
	return items[start:end], nil
}
