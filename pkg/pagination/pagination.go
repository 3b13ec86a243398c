package pagination

import (
	"strings"
)

// VisibleThreshold is the largest page count rendered without ellipses.
const VisibleThreshold = 7

// Item is one slot of a page control: a page number or an ellipsis.
type Item struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Window returns the page numbers to render for a page control.
// Up to VisibleThreshold pages are listed in full; beyond that the first and
// last pages are always present, with neighbours of current and single
// ellipses standing in for the gaps.
func Window(current, total int) []Item {
	if total <= 0 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	if total <= VisibleThreshold {
		out := make([]Item, 0, total)
		for p := 1; p <= total; p++ {
			out = append(out, Item{Page: p})
		}
		return out
	}

	var pages []int
	switch {
	case current <= 4:
		pages = []int{1, 2, 3, 4, 5, total}
	case current >= total-3:
		pages = []int{1, total - 4, total - 3, total - 2, total - 1, total}
	default:
		pages = []int{1, current - 1, current, current + 1, total}
	}

	out := make([]Item, 0, VisibleThreshold)
	prev := 0
	for _, p := range pages {
		if prev != 0 && p-prev > 1 {
			out = append(out, Item{Ellipsis: true})
		}
		out = append(out, Item{Page: p})
		prev = p
	}
	return out
}

// Criteria is the search box and status dropdown of a list page.
type Criteria struct {
	Search string
	Status string
}

func (c Criteria) statusActive() bool {
	s := strings.TrimSpace(c.Status)
	return s != "" && !strings.EqualFold(s, "all")
}

// Filter narrows items in memory. Search matches case-insensitively as a
// substring of any field returned by fields; Status compares case-insensitively
// with status(item). A nil fields or status func switches that filter off.
// With no search and status "all" the input is returned as is.
func Filter[T any](items []T, c Criteria, fields func(T) []string, status func(T) string) []T {
	search := strings.ToLower(strings.TrimSpace(c.Search))
	if fields == nil {
		search = ""
	}
	byStatus := c.statusActive() && status != nil
	if search == "" && !byStatus {
		return items
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		if byStatus && !strings.EqualFold(status(it), strings.TrimSpace(c.Status)) {
			continue
		}
		if search != "" && !matchesAny(fields(it), search) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesAny(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// Meta mirrors the backend's list envelope.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices items for page (1-based), clamping page into range.
func Paginate[T any](items []T, page, limit int) ([]T, Meta) {
	if limit <= 0 {
		limit = 10
	}
	total := len(items)
	pages := (total + limit - 1) / limit
	if page < 1 {
		page = 1
	}
	if pages > 0 && page > pages {
		page = pages
	}
	meta := Meta{Page: page, Limit: limit, TotalItems: total, TotalPages: pages}

	start := (page - 1) * limit
	if start >= total {
		return []T{}, meta
	}
	end := start + limit
	if end > total {
		end = total
	}
	return items[start:end], meta
}
