package util

import (
	"testing"
)

func TestPaginateWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	got := Paginate(items, 2, 3)
	if len(got) != 3 || got[0] != 4 || got[2] != 6 {
		t.Fatalf(`Unexpected window: %v`, got)
	}

	// Last partial page.
	got = Paginate(items, 3, 3)
	if len(got) != 1 || got[0] != 7 {
		t.Fatalf(`Unexpected last page: %v`, got)
	}

	// Past the end is empty, not nil.
	got = Paginate(items, 4, 3)
	if got == nil || len(got) != 0 {
		t.Fatalf(`Expected empty page, got %v`, got)
	}
}

func TestPaginateHugePageNumber(t *testing.T) {
	items := []int{1, 2, 3}

	// A page this large used to wrap the offset negative and panic on the
	// slice expression. It is just another empty window.
	got := Paginate(items, 184467440737095517, 100)
	if got == nil || len(got) != 0 {
		t.Fatalf(`Expected empty page, got %v`, got)
	}

	got = Paginate(items, int(^uint(0)>>1), 1)
	if got == nil || len(got) != 0 {
		t.Fatalf(`Expected empty page for max int, got %v`, got)
	}

	// An oversized limit on the first page still returns everything.
	got = Paginate(items, 1, int(^uint(0)>>1))
	if len(got) != len(items) {
		t.Fatalf(`Expected full slice, got %v`, got)
	}
}

func TestPaginateCoversAllItemsOnce(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	const limit = 5
	var seen []int
	for page := 1; ; page++ {
		window := Paginate(items, page, limit)
		if len(window) == 0 {
			break
		}
		seen = append(seen, window...)
	}

	if len(seen) != len(items) {
		t.Fatalf(`Concatenated pages hold %d items, want %d`, len(seen), len(items))
	}
	for i := range items {
		if seen[i] != items[i] {
			t.Fatalf(`Item %d out of place`, i)
		}
	}
}

func TestSortCaseInsensitive(t *testing.T) {
	items := []string{"banana", "Abacaxi", "amora", "Banana"}
	SortCaseInsensitive(items, func(s string) string { return s })

	want := []string{"Abacaxi", "amora", "banana", "Banana"}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf(`Unexpected order: %v`, items)
		}
	}
}
