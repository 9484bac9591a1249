package core

import "strings"

// Sort orders.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// DefaultPageSize applies when a list request does not specify per_page.
// Content listings default to ContentPageSize for the frontend's grid layout.
const (
	DefaultPageSize = 10
	ContentPageSize = 12
)

// Paginate slices items to the requested 1-based page window.
// It must be called on the filtered and sorted collection: the returned
// Pagination.Total is the full post-filter count.
func Paginate[T any](items []T, page, perPage int) ([]T, Pagination) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	total := len(items)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return items[start:end], Pagination{CurrentPage: page, Total: total, PerPage: perPage}
}

// MatchesSearch reports whether any of fields contains search,
// case-insensitively. An empty search matches everything.
func MatchesSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	for _, fld := range fields {
		if strings.Contains(strings.ToLower(fld), search) {
			return true
		}
	}
	return false
}

// LessStrings compares case-insensitively, falling back to the original
// strings so equal folds keep a deterministic order.
func LessStrings(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
