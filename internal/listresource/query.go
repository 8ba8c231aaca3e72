package listresource

import (
	"sort"
	"strings"
)

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder accepts "asc"/"desc" in any case. Anything else yields "".
func ParseOrder(raw string) Order {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "asc":
		return Asc
	case "desc":
		return Desc
	}
	return ""
}

// Query is the filter/search/sort state of a list page.
type Query struct {
	Search   string
	Category string
	Status   string
	Sort     string
	Order    Order
}

// IsAll reports whether a filter value bypasses filtering.
func IsAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "all")
}

// Apply derives the filtered, sorted view of items. It never mutates items
// and the result only ever contains elements of items.
func Apply[T any](items []T, spec Spec[T], q Query) []T {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]T, 0, len(items))
	for _, it := range items {
		if term != "" && !matchesAny(spec, it, term) {
			continue
		}
		if spec.Category != nil && !IsAll(q.Category) && spec.Category(it) != q.Category {
			continue
		}
		if spec.Status != nil && !IsAll(q.Status) && spec.Status(it) != q.Status {
			continue
		}
		out = append(out, it)
	}

	less, order := spec.comparator(q.Sort, q.Order)
	if less == nil {
		return out
	}
	// Stable: ties keep source order in both directions.
	sort.SliceStable(out, func(i, j int) bool {
		if order == Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func matchesAny[T any](spec Spec[T], it T, term string) bool {
	if spec.SearchFields == nil {
		return false
	}
	for _, field := range spec.SearchFields(it) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
