package pagination

import (
	"reflect"
	"testing"
)

func pagesOf(items []Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		if it.Ellipsis {
			out = append(out, -1)
			continue
		}
		out = append(out, it.Page)
	}
	return out
}

func TestWindow_SmallTotalsListEveryPage(t *testing.T) {
	for total := 1; total <= VisibleThreshold; total++ {
		for current := 1; current <= total; current++ {
			got := pagesOf(Window(current, total))
			if len(got) != total {
				t.Fatalf("Window(%d,%d) = %v, want 1..%d", current, total, got, total)
			}
			for i, p := range got {
				if p != i+1 {
					t.Fatalf("Window(%d,%d) = %v, want 1..%d", current, total, got, total)
				}
			}
		}
	}
}

func TestWindow_Shapes(t *testing.T) {
	tests := []struct {
		name           string
		current, total int
		want           []int
	}{
		{name: "start", current: 1, total: 10, want: []int{1, 2, 3, 4, 5, -1, 10}},
		{name: "near_start", current: 4, total: 10, want: []int{1, 2, 3, 4, 5, -1, 10}},
		{name: "middle", current: 5, total: 10, want: []int{1, -1, 4, 5, 6, -1, 10}},
		{name: "near_end", current: 7, total: 10, want: []int{1, -1, 6, 7, 8, 9, 10}},
		{name: "end", current: 10, total: 10, want: []int{1, -1, 6, 7, 8, 9, 10}},
		{name: "eight_pages", current: 4, total: 8, want: []int{1, 2, 3, 4, 5, -1, 8}},
		{name: "clamped_high", current: 99, total: 9, want: []int{1, -1, 5, 6, 7, 8, 9}},
		{name: "clamped_low", current: -3, total: 9, want: []int{1, 2, 3, 4, 5, -1, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagesOf(Window(tt.current, tt.total))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Window(%d,%d) = %v, want %v", tt.current, tt.total, got, tt.want)
			}
		})
	}
}

func TestWindow_LargeTotalsInvariants(t *testing.T) {
	for total := VisibleThreshold + 1; total <= 60; total++ {
		for current := 1; current <= total; current++ {
			items := Window(current, total)
			seen := map[int]bool{}
			hasFirst, hasLast := false, false
			for i, it := range items {
				if it.Ellipsis {
					if i > 0 && items[i-1].Ellipsis {
						t.Fatalf("Window(%d,%d): adjacent ellipses", current, total)
					}
					continue
				}
				if seen[it.Page] {
					t.Fatalf("Window(%d,%d): duplicate page %d", current, total, it.Page)
				}
				seen[it.Page] = true
				hasFirst = hasFirst || it.Page == 1
				hasLast = hasLast || it.Page == total
			}
			if !hasFirst || !hasLast {
				t.Fatalf("Window(%d,%d) misses first or last page: %v", current, total, pagesOf(items))
			}
			if !seen[current] {
				t.Fatalf("Window(%d,%d) misses current page", current, total)
			}
		}
	}
}

func TestWindow_EmptyTotal(t *testing.T) {
	if got := Window(1, 0); got != nil {
		t.Fatalf("expected nil for zero pages, got %v", got)
	}
}

type customer struct {
	Name   string
	Email  string
	Status string
}

func customerFields(c customer) []string { return []string{c.Name, c.Email} }
func customerStatus(c customer) string   { return c.Status }

var customers = []customer{
	{Name: "Pho Hoa", Email: "owner@phohoa.vn", Status: "ACTIVE"},
	{Name: "Bun Cha 34", Email: "hello@buncha.vn", Status: "BLOCKED"},
	{Name: "Banh Mi Queen", Email: "queen@banhmi.vn", Status: "ACTIVE"},
}

func TestFilter_IdentityWithoutCriteria(t *testing.T) {
	for _, status := range []string{"all", "ALL", ""} {
		got := Filter(customers, Criteria{Search: "  ", Status: status}, customerFields, customerStatus)
		if len(got) != len(customers) || &got[0] != &customers[0] {
			t.Fatalf("status %q: expected the original slice back", status)
		}
	}
}

func TestFilter_CaseInsensitiveSearch(t *testing.T) {
	got := Filter(customers, Criteria{Search: "PHO", Status: "all"}, customerFields, customerStatus)
	if len(got) != 1 || got[0].Name != "Pho Hoa" {
		t.Fatalf("unexpected result %+v", got)
	}
	got = Filter(customers, Criteria{Search: "Banhmi.VN"}, customerFields, customerStatus)
	if len(got) != 1 || got[0].Name != "Banh Mi Queen" {
		t.Fatalf("expected email match, got %+v", got)
	}
}

func TestFilter_StatusAndSearchCombine(t *testing.T) {
	got := Filter(customers, Criteria{Status: "active"}, customerFields, customerStatus)
	if len(got) != 2 {
		t.Fatalf("expected 2 active customers, got %d", len(got))
	}
	got = Filter(customers, Criteria{Search: "bun", Status: "ACTIVE"}, customerFields, customerStatus)
	if len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestFilter_NilAccessors(t *testing.T) {
	got := Filter(customers, Criteria{Search: "pho", Status: "active"}, nil, customerStatus)
	if len(got) != 2 {
		t.Fatalf("expected search ignored without fields, got %+v", got)
	}
	got = Filter(customers, Criteria{Search: "pho", Status: "active"}, customerFields, nil)
	if len(got) != 1 || got[0].Name != "Pho Hoa" {
		t.Fatalf("expected status ignored without accessor, got %+v", got)
	}
	if got := Filter(customers, Criteria{Search: "pho"}, nil, nil); len(got) != len(customers) {
		t.Fatalf("expected identity with no accessors, got %+v", got)
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	page, meta := Paginate(items, 3, 3)
	if !reflect.DeepEqual(page, []int{7}) {
		t.Fatalf("unexpected page %v", page)
	}
	if meta != (Meta{Page: 3, Limit: 3, TotalItems: 7, TotalPages: 3}) {
		t.Fatalf("unexpected meta %+v", meta)
	}

	page, meta = Paginate(items, 10, 3)
	if meta.Page != 3 || len(page) != 1 {
		t.Fatalf("expected clamp to last page, got %+v %v", meta, page)
	}

	page, meta = Paginate([]int{}, 1, 10)
	if len(page) != 0 || meta.TotalPages != 0 {
		t.Fatalf("unexpected empty pagination %+v %v", meta, page)
	}
}
