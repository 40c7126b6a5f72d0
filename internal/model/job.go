// Package model defines the job and schedule record types.
package model

import "strings"

// Well-known job fields. Anything else in a CSV row is carried through untouched.
const (
	FieldLink      = "link"
	FieldTitle     = "title"
	FieldTimestamp = "timestamp"
	FieldTags      = "tags"
	FieldSummary   = "summary"
	FieldDeleted   = "deleted"
	FieldDeletedAt = "deleted_at"
)

// Job is an open record: well-known fields plus arbitrary pass-through columns.
type Job map[string]any

// JobFromRow converts a parsed CSV row into a Job.
func JobFromRow(row map[string]string) Job {
	j := make(Job, len(row))
	for k, v := range row {
		j[k] = v
	}
	return j
}

func (j Job) str(field string) string {
	if v, ok := j[field].(string); ok {
		return v
	}
	return ""
}

// Link returns the job's link, if any.
func (j Job) Link() string { return j.str(FieldLink) }

// Title returns the job's title.
func (j Job) Title() string { return j.str(FieldTitle) }

// Timestamp returns the job's timestamp string.
func (j Job) Timestamp() string { return j.str(FieldTimestamp) }

// Tags returns the comma-joined tag string.
func (j Job) Tags() string { return j.str(FieldTags) }

// Summary returns the summary text, which may contain embedded newlines.
func (j Job) Summary() string { return j.str(FieldSummary) }

// Key is the identity used for dedup and addressing: the link when present,
// otherwise "{title}|{timestamp}".
func (j Job) Key() string {
	if link := j.Link(); link != "" {
		return link
	}
	return j.Title() + "|" + j.Timestamp()
}

// Deleted reports whether the job is soft-deleted.
func (j Job) Deleted() bool {
	v, ok := j[FieldDeleted].(bool)
	return ok && v
}

// MarkDeleted soft-deletes the job, recording the deletion time.
func (j Job) MarkDeleted(at string) {
	j[FieldDeleted] = true
	j[FieldDeletedAt] = at
}

// ClearDeleted restores the job, dropping both delete markers.
func (j Job) ClearDeleted() {
	j[FieldDeleted] = false
	delete(j, FieldDeletedAt)
}

// SplitTags parses a comma-separated tag string, trimming whitespace around
// each tag. An empty input yields nil.
func SplitTags(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

// JoinTags re-serializes a tag list as a comma+space-joined string.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
