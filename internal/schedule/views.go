package schedule

import (
	"time"

	"github.com/jchen89/taskdesk/internal/model"
)

// The derived views below each take now() once per call and silently skip
// records whose timestamps fail to parse.

// Future returns active slots whose start is after now, ascending by start.
func (r *Registry) Future() []*model.Schedule {
	now := r.now()
	var out []*model.Schedule
	for _, s := range r.doc.Schedules {
		if s.Deleted {
			continue
		}
		start, err := s.StartTime()
		if err != nil {
			continue
		}
		if start.After(now) {
			out = append(out, s)
		}
	}
	sortByStartAsc(out)
	return out
}

// InProgress returns active slots whose window contains now, ascending by
// start.
func (r *Registry) InProgress() []*model.Schedule {
	now := r.now()
	var out []*model.Schedule
	for _, s := range r.doc.Schedules {
		if s.Deleted {
			continue
		}
		start, err := s.StartTime()
		if err != nil {
			continue
		}
		end, err := s.EndTime()
		if err != nil {
			continue
		}
		if !start.After(now) && !end.Before(now) {
			out = append(out, s)
		}
	}
	sortByStartAsc(out)
	return out
}

// Expired returns active, not-completed slots whose end has passed,
// most recent first.
func (r *Registry) Expired() []*model.Schedule {
	now := r.now()
	var out []*model.Schedule
	for _, s := range r.doc.Schedules {
		if s.Deleted || s.Status == model.StatusCompleted {
			continue
		}
		end, err := s.EndTime()
		if err != nil {
			continue
		}
		if end.Before(now) {
			out = append(out, s)
		}
	}
	sortByEndDesc(out)
	return out
}

// History returns active slots that ended within the last days days,
// most recent first.
func (r *Registry) History(days int) []*model.Schedule {
	now := r.now()
	floor := now.Add(-time.Duration(days) * 24 * time.Hour)
	var out []*model.Schedule
	for _, s := range r.doc.Schedules {
		if s.Deleted {
			continue
		}
		end, err := s.EndTime()
		if err != nil {
			continue
		}
		if end.Before(now) && !end.Before(floor) {
			out = append(out, s)
		}
	}
	sortByEndDesc(out)
	return out
}

// SoftDeleteFuture soft-deletes every active slot whose end is after now
// and returns how many it marked. Keying off the end rather than the start
// matches the expired/history views, so a slot currently underway is also
// cleared when the operator replans.
func (r *Registry) SoftDeleteFuture() (int, error) {
	now := r.now()
	count := 0
	for _, s := range r.doc.Schedules {
		if s.Deleted {
			continue
		}
		end, err := s.EndTime()
		if err != nil {
			continue
		}
		if end.After(now) {
			s.Deleted = true
			count++
		}
	}
	return count, r.save()
}
