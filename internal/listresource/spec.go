package listresource

import "context"

// DataSource is where a resource reads and writes its entities. Mock,
// database and upstream implementations are interchangeable.
type DataSource[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Less reports whether a sorts before b in ascending order.
type Less[T any] func(a, b T) bool

// Stats holds the summary numbers of a list (counts, sums, averages).
type Stats map[string]float64

// Spec describes how one entity type is identified, searched, filtered,
// sorted, validated and summarized.
type Spec[T any] struct {
	Name string

	ID    func(T) string
	Clone func(T) T

	// SearchFields returns the string fields matched by a search term.
	SearchFields func(T) []string
	// Category and Status are nil when the page has no such filter.
	Category func(T) string
	Status   func(T) string

	SetStatus func(*T, string)
	Statuses  []string

	Sorts        map[string]Less[T]
	DefaultSort  string
	DefaultOrder Order

	// Normalize recomputes derived fields. It runs on every loaded item and
	// before and after every save.
	Normalize func(*T)
	Validate  func(T) error
	Summarize func([]T) Stats

	ReadOnly bool
}

func (s Spec[T]) comparator(key string, order Order) (Less[T], Order) {
	less, ok := s.Sorts[key]
	if !ok {
		less = s.Sorts[s.DefaultSort]
	}
	if order == "" {
		order = s.DefaultOrder
	}
	return less, order
}

func (s Spec[T]) clone(v T) T {
	if s.Clone != nil {
		return s.Clone(v)
	}
	return v
}

func (s Spec[T]) normalize(v *T) {
	if s.Normalize != nil {
		s.Normalize(v)
	}
}

func (s Spec[T]) summarize(items []T) Stats {
	stats := Stats{"total": float64(len(items))}
	if s.Summarize == nil {
		return stats
	}
	for k, v := range s.Summarize(items) {
		stats[k] = v
	}
	return stats
}

// HasStatus reports whether status is one of s.Statuses.
func (s Spec[T]) HasStatus(status string) bool {
	for _, st := range s.Statuses {
		if st == status {
			return true
		}
	}
	return false
}
