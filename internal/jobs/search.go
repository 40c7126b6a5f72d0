package jobs

import (
	"strings"

	"github.com/jchen89/taskdesk/internal/model"
)

// SearchParams selects jobs by substring match. Keyword alone matches title
// OR tags. Title and Tag together require both to match (AND); one of them
// alone matches just that field. Matching is case-folded unless
// CaseSensitive is set.
type SearchParams struct {
	Keyword       string
	Title         string
	Tag           string
	CaseSensitive bool
	IncludeDeleted bool
}

// Search scans the job list and returns matches in storage order.
func (r *Registry) Search(p SearchParams) []model.Job {
	if p.Keyword == "" && p.Title == "" && p.Tag == "" {
		return nil
	}

	fold := func(s string) string {
		if p.CaseSensitive {
			return s
		}
		return strings.ToLower(s)
	}

	var out []model.Job
	for _, job := range r.doc.Jobs {
		if !p.IncludeDeleted && job.Deleted() {
			continue
		}
		title := fold(job.Title())
		tags := fold(job.Tags())

		var match bool
		switch {
		case p.Keyword != "":
			kw := fold(p.Keyword)
			match = strings.Contains(title, kw) || strings.Contains(tags, kw)
		case p.Title != "" && p.Tag != "":
			match = strings.Contains(title, fold(p.Title)) && strings.Contains(tags, fold(p.Tag))
		case p.Title != "":
			match = strings.Contains(title, fold(p.Title))
		case p.Tag != "":
			match = strings.Contains(tags, fold(p.Tag))
		}
		if match {
			out = append(out, job)
		}
	}
	return out
}
