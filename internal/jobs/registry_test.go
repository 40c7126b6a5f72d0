package jobs

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jchen89/taskdesk/internal/apperr"
	"github.com/jchen89/taskdesk/internal/model"
)

var jobHeaders = []string{"link", "title", "timestamp", "tags"}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := Open(filepath.Join(t.TempDir(), "job_list.json"), zerolog.Nop())
	r.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local) }
	return r
}

func mustImport(t *testing.T, r *Registry, path string, rows []map[string]string) ImportStats {
	t.Helper()
	stats, err := r.ImportRows(path, jobHeaders, rows)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	return stats
}

func TestImportDedupByLink(t *testing.T) {
	r := newTestRegistry(t)
	rows := []map[string]string{
		{"link": "https://x.test/1", "title": "First"},
		{"link": "https://x.test/1", "title": "First again"},
		{"link": "https://x.test/2", "title": "Second"},
	}
	stats := mustImport(t, r, filepath.Join(t.TempDir(), "a.csv"), rows)
	if stats.Added != 2 || stats.Skipped != 1 || stats.Total != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if got := len(r.List(0, false)); got != 2 {
		t.Errorf("expected 2 stored jobs, got %d", got)
	}
}

func TestImportDedupByTitleAndTimestamp(t *testing.T) {
	r := newTestRegistry(t)
	rows := []map[string]string{
		{"link": "", "title": "Same", "timestamp": "2025-01-01"},
		{"link": "", "title": "Same", "timestamp": "2025-01-01"},
		{"link": "", "title": "Same", "timestamp": "2025-01-02"},
	}
	stats := mustImport(t, r, filepath.Join(t.TempDir(), "a.csv"), rows)
	if stats.Added != 2 || stats.Skipped != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestImportSamePathTwiceRejected(t *testing.T) {
	r := newTestRegistry(t)
	path := filepath.Join(t.TempDir(), "a.csv")
	rows := []map[string]string{{"link": "https://x.test/1", "title": "A"}}

	mustImport(t, r, path, rows)
	stats, err := r.ImportRows(path, jobHeaders, rows)
	if err == nil {
		t.Fatal("expected re-import to fail")
	}
	if !apperr.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if stats.Added != 0 {
		t.Errorf("added = %d, want 0", stats.Added)
	}
}

func TestImportRequiresLinkOrTitleColumn(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.ImportRows(filepath.Join(t.TempDir(), "a.csv"),
		[]string{"url", "name"},
		[]map[string]string{{"url": "x", "name": "y"}})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := len(r.List(0, true)); got != 0 {
		t.Errorf("nothing should be stored, got %d", got)
	}
}

func TestImportAcrossFilesDedups(t *testing.T) {
	r := newTestRegistry(t)
	dir := t.TempDir()
	mustImport(t, r, filepath.Join(dir, "a.csv"), []map[string]string{
		{"link": "https://x.test/1", "title": "A"},
	})
	stats := mustImport(t, r, filepath.Join(dir, "b.csv"), []map[string]string{
		{"link": "https://x.test/1", "title": "A from another export"},
		{"link": "https://x.test/2", "title": "B"},
	})
	if stats.Added != 1 || stats.Skipped != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if s := r.Stats(); len(s.CSVFiles) != 2 {
		t.Errorf("expected 2 recorded files, got %v", s.CSVFiles)
	}
}

func TestAddTagIdempotent(t *testing.T) {
	r := newTestRegistry(t)
	mustImport(t, r, filepath.Join(t.TempDir(), "a.csv"), []map[string]string{
		{"link": "https://x.test/1", "title": "A", "tags": "go"},
	})

	job, err := r.AddTag("https://x.test/1", "cli")
	if err != nil {
		t.Fatalf("add tag: %v", err)
	}
	if job.Tags() != "go, cli" {
		t.Errorf("tags = %q", job.Tags())
	}

	job, err = r.AddTag("https://x.test/1", "cli")
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if job.Tags() != "go, cli" {
		t.Errorf("second add should be a no-op, tags = %q", job.Tags())
	}
}

func TestRemoveTag(t *testing.T) {
	r := newTestRegistry(t)
	mustImport(t, r, filepath.Join(t.TempDir(), "a.csv"), []map[string]string{
		{"link": "https://x.test/1", "title": "A", "tags": "go, cli"},
	})

	job, err := r.RemoveTag("https://x.test/1", "go")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if job.Tags() != "cli" {
		t.Errorf("tags = %q", job.Tags())
	}

	if _, err := r.RemoveTag("https://x.test/1", "absent"); !apperr.IsValidation(err) {
		t.Errorf("removing an absent tag should fail, got %v", err)
	}

	job, err = r.RemoveTag("https://x.test/1", "cli")
	if err != nil {
		t.Fatalf("remove last: %v", err)
	}
	if job.Tags() != "" {
		t.Errorf("removing the last tag should leave empty string, got %q", job.Tags())
	}
}

func TestSoftDeleteAndRestore(t *testing.T) {
	r := newTestRegistry(t)
	mustImport(t, r, filepath.Join(t.TempDir(), "a.csv"), []map[string]string{
		{"link": "https://x.test/1", "title": "A", "tags": "go"},
	})

	job, err := r.SoftDelete("https://x.test/1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !job.Deleted() {
		t.Fatal("expected deleted")
	}
	if job[model.FieldDeletedAt] != "2025-06-01 10:00:00" {
		t.Errorf("deleted_at = %v", job[model.FieldDeletedAt])
	}
	if _, err := r.SoftDelete("https://x.test/1"); !errors.Is(err, apperr.ErrAlreadyDeleted) {
		t.Errorf("double delete should fail, got %v", err)
	}
	if got := len(r.List(0, false)); got != 0 {
		t.Errorf("active view should be empty, got %d", got)
	}
	if got := len(r.Deleted(0)); got != 1 {
		t.Errorf("deleted view should have 1, got %d", got)
	}

	job, err = r.Restore("https://x.test/1")
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if job.Deleted() {
		t.Fatal("expected restored")
	}
	if _, ok := job[model.FieldDeletedAt]; ok {
		t.Error("deleted_at should be gone")
	}
	if job.Tags() != "go" {
		t.Errorf("other fields must survive the round trip, tags = %q", job.Tags())
	}
	if _, err := r.Restore("https://x.test/1"); !errors.Is(err, apperr.ErrNotDeleted) {
		t.Errorf("restoring an active job should fail, got %v", err)
	}
}

func TestFindByIndexTracksFilteredView(t *testing.T) {
	r := newTestRegistry(t)
	mustImport(t, r, filepath.Join(t.TempDir(), "a.csv"), []map[string]string{
		{"link": "https://x.test/1", "title": "A"},
		{"link": "https://x.test/2", "title": "B"},
		{"link": "https://x.test/3", "title": "C"},
	})

	if _, err := r.SoftDelete("https://x.test/1"); err != nil {
		t.Fatal(err)
	}

	// After the delete, index 0 of the active view is B.
	job, err := r.FindByIndex(0, false)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if job.Title() != "B" {
		t.Errorf("active index 0 = %q, want B", job.Title())
	}

	// With deleted included, index 0 is still A.
	job, err = r.FindByIndex(0, true)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if job.Title() != "A" {
		t.Errorf("full index 0 = %q, want A", job.Title())
	}

	if _, err := r.FindByIndex(5, false); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("out of range should be not found, got %v", err)
	}

	deleted, err := r.FindDeletedByIndex(0)
	if err != nil {
		t.Fatalf("deleted index: %v", err)
	}
	if deleted.Title() != "A" {
		t.Errorf("deleted index 0 = %q, want A", deleted.Title())
	}
}

func TestUpdateMergePatch(t *testing.T) {
	r := newTestRegistry(t)
	mustImport(t, r, filepath.Join(t.TempDir(), "a.csv"), []map[string]string{
		{"link": "https://x.test/1", "title": "A"},
	})

	job, err := r.Update("https://x.test/1", map[string]any{
		"title":    "A renamed",
		"priority": "high", // new field, added on the fly
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if job.Title() != "A renamed" {
		t.Errorf("title = %q", job.Title())
	}
	if job["priority"] != "high" {
		t.Errorf("new field not merged: %v", job["priority"])
	}

	if _, err := r.Update("nope", map[string]any{"x": "y"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("unknown key should be not found, got %v", err)
	}
}

func TestReloadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job_list.json")

	r := Open(path, zerolog.Nop())
	mustImport(t, r, filepath.Join(dir, "a.csv"), []map[string]string{
		{"link": "https://x.test/1", "title": "A", "tags": "go", "summary": "line one\nline two"},
	})

	r2 := Open(path, zerolog.Nop())
	list := r2.List(0, true)
	if len(list) != 1 {
		t.Fatalf("expected 1 job after reload, got %d", len(list))
	}
	job := list[0]
	if job.Title() != "A" || job.Tags() != "go" || job.Summary() != "line one\nline two" {
		t.Errorf("reload lost fields: %v", job)
	}
	if s := r2.Stats(); len(s.CSVFiles) != 1 {
		t.Errorf("imported paths should survive reload, got %v", s.CSVFiles)
	}
}
