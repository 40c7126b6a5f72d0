// Package jobs maintains the persisted job list: CSV import with
// dedup-by-key, tag management, soft delete/restore, and search.
package jobs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/jchen89/taskdesk/internal/apperr"
	"github.com/jchen89/taskdesk/internal/csvfile"
	"github.com/jchen89/taskdesk/internal/jsonstore"
	"github.com/jchen89/taskdesk/internal/model"
)

// Document is the persisted job-list file: previously imported CSV paths
// plus the job records themselves, both in append order.
type Document struct {
	CSVFiles []string    `json:"csv_files"`
	Jobs     []model.Job `json:"jobs"`
}

// Registry owns one job-list document.
type Registry struct {
	store *jsonstore.Store[Document]
	doc   Document
	now   func() time.Time
	log   zerolog.Logger
}

// Open loads (or initializes) the job list at path.
func Open(path string, log zerolog.Logger) *Registry {
	st := jsonstore.New[Document](path, log)
	return &Registry{
		store: st,
		doc:   st.Load(),
		now:   time.Now,
		log:   log,
	}
}

// Path returns the backing file path.
func (r *Registry) Path() string { return r.store.Path() }

// save rewrites the whole document. On failure the in-memory mutation stays
// applied; the caller gets a PersistError alongside the updated record.
func (r *Registry) save() error {
	if err := r.store.Save(r.doc); err != nil {
		r.log.Error().Err(err).Str("path", r.store.Path()).Msg("save job list failed")
		return &apperr.PersistError{Err: err}
	}
	return nil
}

// ImportStats summarizes one CSV import.
type ImportStats struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// ImportCSV parses the CSV file at path and merges its rows into the job
// list. Re-importing a path that was already loaded is rejected.
func (r *Registry) ImportCSV(path string) (ImportStats, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ImportStats{}, apperr.Validationf("resolve path %q: %v", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return ImportStats{}, apperr.Validationf("file does not exist: %s", path)
	}
	tbl, err := csvfile.Parse(abs)
	if err != nil {
		return ImportStats{}, apperr.Validationf("parse csv: %v", err)
	}
	return r.ImportRows(abs, tbl.Headers, tbl.Rows)
}

// ImportRows merges pre-parsed CSV rows into the job list. The header set
// must contain a link or title column. Rows whose identity key already
// exists (in storage or earlier in the batch) are skipped; the rest are
// appended in input order. The normalized path is recorded so the same file
// is not imported twice.
func (r *Registry) ImportRows(path string, headers []string, rows []map[string]string) (ImportStats, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ImportStats{}, apperr.Validationf("resolve path %q: %v", path, err)
	}
	for _, p := range r.doc.CSVFiles {
		if p == abs {
			return ImportStats{}, apperr.Validationf("file already imported: %s", abs)
		}
	}

	hasLink, hasTitle := false, false
	for _, h := range headers {
		switch h {
		case model.FieldLink:
			hasLink = true
		case model.FieldTitle:
			hasTitle = true
		}
	}
	if !hasLink && !hasTitle {
		return ImportStats{Total: len(rows)}, apperr.Validationf("csv has neither a %q nor a %q column", model.FieldLink, model.FieldTitle)
	}

	existing := make(map[string]bool, len(r.doc.Jobs))
	for _, j := range r.doc.Jobs {
		existing[j.Key()] = true
	}

	stats := ImportStats{Total: len(rows)}
	for _, row := range rows {
		job := model.JobFromRow(row)
		key := job.Key()
		if existing[key] {
			stats.Skipped++
			continue
		}
		r.doc.Jobs = append(r.doc.Jobs, job)
		existing[key] = true
		stats.Added++
	}
	r.doc.CSVFiles = append(r.doc.CSVFiles, abs)

	// Counts are reported even when the write fails; the merge already happened.
	return stats, r.save()
}

// List returns jobs in storage order. limit <= 0 means all. Soft-deleted
// jobs are excluded unless includeDeleted is set.
func (r *Registry) List(limit int, includeDeleted bool) []model.Job {
	out := make([]model.Job, 0, len(r.doc.Jobs))
	for _, j := range r.doc.Jobs {
		if includeDeleted || !j.Deleted() {
			out = append(out, j)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Deleted returns only the soft-deleted jobs, in storage order.
func (r *Registry) Deleted(limit int) []model.Job {
	out := make([]model.Job, 0)
	for _, j := range r.doc.Jobs {
		if j.Deleted() {
			out = append(out, j)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Find returns the first job whose identity key matches.
func (r *Registry) Find(key string, includeDeleted bool) (model.Job, error) {
	for _, j := range r.doc.Jobs {
		if j.Key() == key {
			if includeDeleted || !j.Deleted() {
				return j, nil
			}
		}
	}
	return nil, apperr.ErrNotFound
}

// FindByIndex resolves a position in the freshly computed filtered view.
// Indices are only meaningful against the view the caller just printed;
// they are never cached across mutations.
func (r *Registry) FindByIndex(index int, includeDeleted bool) (model.Job, error) {
	view := r.List(0, includeDeleted)
	if index < 0 || index >= len(view) {
		return nil, apperr.ErrNotFound
	}
	return view[index], nil
}

// FindDeletedByIndex resolves a position in the deleted-only view. Restore
// addresses records through this view.
func (r *Registry) FindDeletedByIndex(index int) (model.Job, error) {
	view := r.Deleted(0)
	if index < 0 || index >= len(view) {
		return nil, apperr.ErrNotFound
	}
	return view[index], nil
}

// Update merge-patches the job with the given identity key: patch keys are
// added when absent and overwritten when present. Deleted jobs are still
// addressable for editing.
func (r *Registry) Update(key string, patch map[string]any) (model.Job, error) {
	job, err := r.Find(key, true)
	if err != nil {
		return nil, err
	}
	for k, v := range patch {
		job[k] = v
	}
	return job, r.save()
}

// AddTag appends a tag to the job's tag string. Adding a tag that is
// already present is a successful no-op.
func (r *Registry) AddTag(key, tag string) (model.Job, error) {
	job, err := r.Find(key, true)
	if err != nil {
		return nil, err
	}
	tags := model.SplitTags(job.Tags())
	present := false
	for _, t := range tags {
		if t == tag {
			present = true
			break
		}
	}
	if !present {
		tags = append(tags, tag)
		job[model.FieldTags] = model.JoinTags(tags)
	}
	return job, r.save()
}

// RemoveTag drops a tag from the job's tag string. A missing tag is a
// failure. Removing the last tag leaves an empty string.
func (r *Registry) RemoveTag(key, tag string) (model.Job, error) {
	job, err := r.Find(key, true)
	if err != nil {
		return nil, err
	}
	tags := model.SplitTags(job.Tags())
	if len(tags) == 0 {
		return job, apperr.Validationf("job has no tags")
	}
	kept := make([]string, 0, len(tags))
	found := false
	for _, t := range tags {
		if t == tag && !found {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return job, apperr.Validationf("tag not found: %s", tag)
	}
	job[model.FieldTags] = model.JoinTags(kept)
	return job, r.save()
}

// SoftDelete marks the job deleted and records the local deletion time.
func (r *Registry) SoftDelete(key string) (model.Job, error) {
	job, err := r.Find(key, true)
	if err != nil {
		return nil, err
	}
	if job.Deleted() {
		return job, apperr.ErrAlreadyDeleted
	}
	job.MarkDeleted(r.now().Format(model.SecondLayout))
	return job, r.save()
}

// Restore clears the delete markers on a soft-deleted job.
func (r *Registry) Restore(key string) (model.Job, error) {
	job, err := r.Find(key, true)
	if err != nil {
		return nil, err
	}
	if !job.Deleted() {
		return job, apperr.ErrNotDeleted
	}
	job.ClearDeleted()
	return job, r.save()
}

// ClearAll wipes the job list and the imported-file record.
func (r *Registry) ClearAll() error {
	r.doc = Document{}
	return r.save()
}

// Stats summarizes the job list.
type Stats struct {
	TotalJobs   int      `json:"total_jobs"`
	ActiveJobs  int      `json:"active_jobs"`
	DeletedJobs int      `json:"deleted_jobs"`
	CSVFiles    []string `json:"csv_files"`
}

// Stats reports record counts and the imported CSV paths.
func (r *Registry) Stats() Stats {
	s := Stats{TotalJobs: len(r.doc.Jobs), CSVFiles: r.doc.CSVFiles}
	for _, j := range r.doc.Jobs {
		if j.Deleted() {
			s.DeletedJobs++
		} else {
			s.ActiveJobs++
		}
	}
	return s
}
