package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 12
	// MaxPageSize caps how many items any listing page can request.
	MaxPageSize = 100
)

// NormalizePageSize enforces the configured default and maximum sizes.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// TotalPages returns the page count for the filtered item count. An empty
// result set still has one (empty) page.
func TotalPages(count, pageSize int) int {
	pageSize = NormalizePageSize(pageSize)
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ResolvePage clamps the requested page into [1, totalPages].
func ResolvePage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Bounds returns the half-open slice range for the resolved page over a
// collection of count items.
func Bounds(resolvedPage, pageSize, count int) (int, int) {
	pageSize = NormalizePageSize(pageSize)
	start := (resolvedPage - 1) * pageSize
	if start > count {
		start = count
	}
	end := start + pageSize
	if end > count {
		end = count
	}
	return start, end
}
