package util

import (
	"sort"
	"strings"
)

// Paginate cuts the window for the requested page out of items. Pages are
// 1-based; a window past the end yields an empty, non-nil slice.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 || limit < 1 {
		return []T{}
	}
	// Checked by division so (page-1)*limit cannot wrap negative for
	// arbitrarily large page values.
	if page-1 > (len(items)-1)/limit {
		return []T{}
	}
	offset := (page - 1) * limit
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// SortCaseInsensitive orders items by the given key, stable and
// case-insensitive.
func SortCaseInsensitive[T any](items []T, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(key(items[i])) < strings.ToLower(key(items[j]))
	})
}
