package listresource

import (
	"testing"
)

type item struct {
	ID       string
	Name     string
	Owner    string
	Category string
	Status   string
	Score    int
}

func itemSpec() Spec[item] {
	return Spec[item]{
		Name:         "items",
		ID:           func(i item) string { return i.ID },
		SearchFields: func(i item) []string { return []string{i.Name, i.Owner} },
		Category:     func(i item) string { return i.Category },
		Status:       func(i item) string { return i.Status },
		SetStatus:    func(i *item, s string) { i.Status = s },
		Statuses:     []string{"open", "pending", "resolved", "urgent"},
		Sorts: map[string]Less[item]{
			"name":  func(a, b item) bool { return a.Name < b.Name },
			"score": func(a, b item) bool { return a.Score < b.Score },
		},
		DefaultSort:  "score",
		DefaultOrder: Desc,
		Validate: func(i item) error {
			return Required(Field{"name", i.Name})
		},
		Summarize: func(items []item) Stats {
			s := Stats{"resolved": 0, "score_sum": 0}
			for _, i := range items {
				if i.Status == "resolved" {
					s["resolved"]++
				}
				s["score_sum"] += float64(i.Score)
			}
			return s
		},
	}
}

func fixtures() []item {
	return []item{
		{ID: "1", Name: "Water wells", Owner: "Priya Sharma", Category: "health", Status: "open", Score: 3},
		{ID: "2", Name: "School books", Owner: "Arjun Mehta", Category: "education", Status: "resolved", Score: 7},
		{ID: "3", Name: "Night shelter", Owner: "priya nair", Category: "health", Status: "resolved", Score: 7},
		{ID: "4", Name: "Food bank", Owner: "Kiran Rao", Category: "food", Status: "Resolved", Score: 1},
	}
}

func ids(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{name: "no filters uses default sort", query: Query{}, want: []string{"2", "3", "1", "4"}},
		{name: "search is case insensitive", query: Query{Search: "PRIYA", Sort: "name", Order: Asc}, want: []string{"3", "1"}},
		{name: "search matches any field", query: Query{Search: "shelter"}, want: []string{"3"}},
		{name: "all sentinel bypasses category", query: Query{Category: "All", Sort: "name", Order: Asc}, want: []string{"4", "3", "2", "1"}},
		{name: "category exact match", query: Query{Category: "health"}, want: []string{"3", "1"}},
		{name: "status exact match", query: Query{Status: "resolved"}, want: []string{"2", "3"}},
		{name: "combined filters", query: Query{Search: "priya", Category: "health", Status: "resolved"}, want: []string{"3"}},
		{name: "no match", query: Query{Search: "zzz"}, want: []string{}},
		{name: "ascending score keeps ties in source order", query: Query{Sort: "score", Order: Asc}, want: []string{"4", "1", "2", "3"}},
		{name: "unknown sort falls back to default", query: Query{Sort: "bogus"}, want: []string{"2", "3", "1", "4"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Apply(fixtures(), itemSpec(), tc.query))
			if !equalIDs(got, tc.want) {
				t.Fatalf("Apply() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestApplyReturnsSubset(t *testing.T) {
	source := fixtures()
	known := map[string]bool{}
	for _, it := range source {
		known[it.ID] = true
	}

	searches := []string{"", "priya", "o", "zzz"}
	categories := []string{"", "all", "health", "education", "food", "none"}
	statuses := []string{"", "All", "open", "resolved", "Resolved"}
	sorts := []string{"", "name", "score"}

	for _, s := range searches {
		for _, c := range categories {
			for _, st := range statuses {
				for _, so := range sorts {
					got := Apply(source, itemSpec(), Query{Search: s, Category: c, Status: st, Sort: so})
					if len(got) > len(source) {
						t.Fatalf("Apply(%q,%q,%q) returned %d items from %d", s, c, st, len(got), len(source))
					}
					seen := map[string]bool{}
					for _, it := range got {
						if !known[it.ID] || seen[it.ID] {
							t.Fatalf("Apply(%q,%q,%q) produced unexpected item %q", s, c, st, it.ID)
						}
						seen[it.ID] = true
					}
				}
			}
		}
	}
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	source := fixtures()
	Apply(source, itemSpec(), Query{Sort: "name", Order: Asc})
	if got := ids(source); !equalIDs(got, []string{"1", "2", "3", "4"}) {
		t.Fatalf("source order changed to %v", got)
	}
}

func TestParseOrder(t *testing.T) {
	for raw, want := range map[string]Order{"ASC": Asc, "desc": Desc, " Desc ": Desc, "": "", "up": ""} {
		if got := ParseOrder(raw); got != want {
			t.Fatalf("ParseOrder(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestRequired(t *testing.T) {
	err := Required(Field{"title", "ok"}, Field{"email", "  "}, Field{"name", ""})
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("Required() error = %v, want *ValidationError", err)
	}
	if ve.Field != "email" {
		t.Fatalf("Required() field = %q, want %q", ve.Field, "email")
	}
	if err := Required(Field{"title", "x"}); err != nil {
		t.Fatalf("Required() = %v, want nil", err)
	}
}
