package schedule

import (
	"strings"

	"github.com/jchen89/taskdesk/internal/model"
)

// SearchParams selects schedules by substring match. The criteria are
// OR-merged: a record matches if any provided one matches its field.
// Keyword spans task, description, and value note.
type SearchParams struct {
	Keyword       string
	Task          string
	Description   string
	ValueNote     string
	CaseSensitive bool
}

// Search scans the whole list, soft-deleted slots included, and returns
// matches ascending by start (with the usual all-or-nothing sort fallback).
func (r *Registry) Search(p SearchParams) []*model.Schedule {
	if p.Keyword == "" && p.Task == "" && p.Description == "" && p.ValueNote == "" {
		return nil
	}

	fold := func(s string) string {
		if p.CaseSensitive {
			return s
		}
		return strings.ToLower(s)
	}

	var out []*model.Schedule
	for _, s := range r.doc.Schedules {
		task := fold(s.Task)
		desc := fold(s.Description)
		value := fold(s.ValueNote)

		matched := false
		if p.Keyword != "" {
			kw := fold(p.Keyword)
			matched = strings.Contains(task, kw) || strings.Contains(desc, kw) || strings.Contains(value, kw)
		}
		if !matched && p.Task != "" && strings.Contains(task, fold(p.Task)) {
			matched = true
		}
		if !matched && p.Description != "" && strings.Contains(desc, fold(p.Description)) {
			matched = true
		}
		if !matched && p.ValueNote != "" && strings.Contains(value, fold(p.ValueNote)) {
			matched = true
		}
		if matched {
			out = append(out, s)
		}
	}
	sortByStartAsc(out)
	return out
}
