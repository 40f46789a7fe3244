package store

// Paginate slices items into the window for the given 1-based page.
// Out-of-range input is clamped rather than yielding an empty slice: page
// below 1 becomes 1, a page past the end becomes the last page, and size
// floors at 1. Returns the window and the total page count (at least 1).
func Paginate[T any](items []T, page, size int) ([]T, int) {
	if size < 1 {
		size = 1
	}
	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
