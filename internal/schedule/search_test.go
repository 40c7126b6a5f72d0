package schedule

import (
	"testing"
)

func seedSearch(t *testing.T) *Registry {
	t.Helper()
	r := newTestRegistry(t)
	mustAdd(t, r, AddParams{
		Start: "2025-06-03", End: "2025-06-03",
		Task: "Write report", Description: "quarterly numbers", ValueNote: "keeps leadership informed",
	})
	mustAdd(t, r, AddParams{
		Start: "2025-06-02", End: "2025-06-02",
		Task: "Review numbers", Description: "double-check the report draft",
	})
	mustAdd(t, r, AddParams{
		Start: "2025-06-04", End: "2025-06-04",
		Task: "Gym",
	})
	return r
}

func TestSearchKeywordSpansAllFields(t *testing.T) {
	r := seedSearch(t)
	got := r.Search(SearchParams{Keyword: "REPORT"})
	if !sameTasks(got, "Review numbers", "Write report") {
		t.Errorf("keyword should hit task and description, sorted by start; got %v", tasks(got))
	}
	if got := r.Search(SearchParams{Keyword: "leadership"}); !sameTasks(got, "Write report") {
		t.Errorf("keyword should also reach the value note, got %v", tasks(got))
	}
}

func TestSearchFieldCriteriaAreDisjunctive(t *testing.T) {
	r := seedSearch(t)
	got := r.Search(SearchParams{Task: "Gym", Description: "quarterly"})
	if !sameTasks(got, "Write report", "Gym") {
		t.Errorf("field criteria OR-merge, got %v", tasks(got))
	}
}

func TestSearchIncludesSoftDeleted(t *testing.T) {
	r := seedSearch(t)
	if _, err := r.SoftDelete(ByID(2)); err != nil { // "Gym"
		t.Fatal(err)
	}
	if got := r.Search(SearchParams{Task: "Gym"}); !sameTasks(got, "Gym") {
		t.Errorf("search covers deleted records, got %v", tasks(got))
	}
}

func TestSearchCaseSensitive(t *testing.T) {
	r := seedSearch(t)
	if got := r.Search(SearchParams{Keyword: "gym", CaseSensitive: true}); len(got) != 0 {
		t.Errorf("case-sensitive mismatch should not match, got %v", tasks(got))
	}
}

func TestSearchNoCriteria(t *testing.T) {
	r := seedSearch(t)
	if got := r.Search(SearchParams{}); got != nil {
		t.Errorf("no criteria should return nothing, got %v", tasks(got))
	}
}
