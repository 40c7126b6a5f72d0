// Package schedule manages the time-boxed task list: slot creation with
// end >= start enforcement, status lifecycle, date-range queries, and the
// interactive plan workflow.
package schedule

import (
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"

	"github.com/jchen89/taskdesk/internal/apperr"
	"github.com/jchen89/taskdesk/internal/jsonstore"
	"github.com/jchen89/taskdesk/internal/model"
)

// Document is the persisted schedule file.
type Document struct {
	Schedules []*model.Schedule `json:"schedules"`
}

// Registry owns one schedule document.
type Registry struct {
	store *jsonstore.Store[Document]
	doc   Document
	now   func() time.Time
	log   zerolog.Logger
}

// Open loads (or initializes) the schedule list at path.
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

func (r *Registry) save() error {
	if err := r.store.Save(r.doc); err != nil {
		r.log.Error().Err(err).Str("path", r.store.Path()).Msg("save schedule list failed")
		return &apperr.PersistError{Err: err}
	}
	return nil
}

// AddParams holds the fields of a new schedule slot.
type AddParams struct {
	Start       string
	End         string
	Task        string
	Status      model.Status // empty defaults to not_started
	Description string
	ValueNote   string
}

// Validate checks the required fields are present.
func (p AddParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Start, validation.Required),
		validation.Field(&p.End, validation.Required),
		validation.Field(&p.Task, validation.Required),
	)
}

// Add creates a schedule slot. Both endpoints accept YYYY-MM-DD or
// YYYY-MM-DD HH:MM; the end may not precede the start. The id is
// max(existing)+1 and is never reused after a hard delete.
func (r *Registry) Add(p AddParams) (*model.Schedule, error) {
	if err := p.Validate(); err != nil {
		return nil, apperr.Validationf("%v", err)
	}
	startDT, err := model.ParseStamp(p.Start)
	if err != nil {
		return nil, apperr.Validationf("start: %v", err)
	}
	endDT, err := model.ParseStamp(p.End)
	if err != nil {
		return nil, apperr.Validationf("end: %v", err)
	}
	if endDT.Before(startDT) {
		return nil, apperr.Validationf("end time cannot be earlier than start time")
	}
	status := p.Status
	if status == "" {
		status = model.StatusNotStarted
	}
	if !status.Valid() {
		return nil, apperr.Validationf("invalid status %q (valid: completed, in_progress, not_started, shelved, postponed)", status)
	}

	maxID := -1
	for _, s := range r.doc.Schedules {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	s := &model.Schedule{
		ID:          maxID + 1,
		Start:       p.Start,
		End:         p.End,
		Task:        p.Task,
		Status:      status,
		Description: p.Description,
		ValueNote:   p.ValueNote,
		CreatedAt:   r.now().Format(model.SecondLayout),
	}
	r.doc.Schedules = append(r.doc.Schedules, s)
	return s, r.save()
}

// ListParams filters the schedule list.
type ListParams struct {
	Limit          int
	Status         model.Status
	StartDate      string // keep slots starting on or after this date (YYYY-MM-DD)
	EndDate        string // keep slots ending on or before this date (YYYY-MM-DD)
	IncludeDeleted bool
}

// List returns schedules matching the filters, ascending by parsed start
// time. Records whose stamps fail a date filter's parse are kept rather
// than raising. The sort is all-or-nothing: a single unparsable start skips
// the sort step entirely and leaves input order.
func (r *Registry) List(p ListParams) []*model.Schedule {
	filtered := make([]*model.Schedule, 0, len(r.doc.Schedules))
	for _, s := range r.doc.Schedules {
		if !p.IncludeDeleted && s.Deleted {
			continue
		}
		filtered = append(filtered, s)
	}

	if p.Status != "" {
		kept := filtered[:0:0]
		for _, s := range filtered {
			if s.Status == p.Status {
				kept = append(kept, s)
			}
		}
		filtered = kept
	}

	if p.StartDate != "" {
		if floor, err := time.ParseInLocation(model.DateLayout, p.StartDate, time.Local); err == nil {
			kept := filtered[:0:0]
			for _, s := range filtered {
				d, err := time.ParseInLocation(model.DateLayout, model.DatePortion(s.Start), time.Local)
				if err != nil || !d.Before(floor) {
					kept = append(kept, s)
				}
			}
			filtered = kept
		}
	}

	if p.EndDate != "" {
		if ceil, err := time.ParseInLocation(model.DateLayout, p.EndDate, time.Local); err == nil {
			kept := filtered[:0:0]
			for _, s := range filtered {
				d, err := time.ParseInLocation(model.DateLayout, model.DatePortion(s.End), time.Local)
				if err != nil || !d.After(ceil) {
					kept = append(kept, s)
				}
			}
			filtered = kept
		}
	}

	sortByStartAsc(filtered)

	if p.Limit > 0 && len(filtered) > p.Limit {
		filtered = filtered[:p.Limit]
	}
	return filtered
}

// FindByID scans the raw list, deleted records included, so edits can still
// reach a soft-deleted slot.
func (r *Registry) FindByID(id int) (*model.Schedule, error) {
	for _, s := range r.doc.Schedules {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperr.ErrNotFound
}

// FindByIndex resolves a position in the active, start-sorted view — the
// same view List prints with no filters.
func (r *Registry) FindByIndex(index int) (*model.Schedule, error) {
	view := r.List(ListParams{})
	if index < 0 || index >= len(view) {
		return nil, apperr.ErrNotFound
	}
	return view[index], nil
}

// Ref addresses a schedule by id or by position in the active view.
type Ref struct {
	ID    int
	Index int
}

// ByID builds an id reference.
func ByID(id int) Ref { return Ref{ID: id, Index: -1} }

// ByIndex builds an index reference.
func ByIndex(index int) Ref { return Ref{ID: -1, Index: index} }

func (r *Registry) resolve(ref Ref) (*model.Schedule, error) {
	if ref.ID >= 0 {
		return r.FindByID(ref.ID)
	}
	if ref.Index >= 0 {
		return r.FindByIndex(ref.Index)
	}
	return nil, apperr.ErrNotFound
}

// UpdateParams carries optional field edits; nil means leave unchanged.
type UpdateParams struct {
	Start       *string
	End         *string
	Task        *string
	Status      *model.Status
	Description *string
	ValueNote   *string
}

// Update edits the addressed slot field by field, re-validating each edit
// exactly as on creation. Endpoint edits are checked against the other,
// possibly unmodified, endpoint so end >= start always holds. Supplying no
// fields is a failure; the file is rewritten only when something changed.
func (r *Registry) Update(ref Ref, p UpdateParams) (*model.Schedule, error) {
	s, err := r.resolve(ref)
	if err != nil {
		return nil, err
	}

	changed := false

	if p.Start != nil {
		startDT, err := model.ParseStamp(*p.Start)
		if err != nil {
			return nil, apperr.Validationf("start: %v", err)
		}
		if s.End != "" {
			endDT, err := model.ParseStamp(s.End)
			if err == nil && endDT.Before(startDT) {
				return nil, apperr.Validationf("end time cannot be earlier than start time")
			}
		}
		s.Start = *p.Start
		changed = true
	}

	if p.End != nil {
		endDT, err := model.ParseStamp(*p.End)
		if err != nil {
			return nil, apperr.Validationf("end: %v", err)
		}
		if s.Start != "" {
			startDT, err := model.ParseStamp(s.Start)
			if err == nil && endDT.Before(startDT) {
				return nil, apperr.Validationf("end time cannot be earlier than start time")
			}
		}
		s.End = *p.End
		changed = true
	}

	if p.Task != nil {
		s.Task = *p.Task
		changed = true
	}

	if p.Status != nil {
		if !p.Status.Valid() {
			return nil, apperr.Validationf("invalid status %q (valid: completed, in_progress, not_started, shelved, postponed)", *p.Status)
		}
		s.Status = *p.Status
		changed = true
	}

	if p.Description != nil {
		s.Description = *p.Description
		changed = true
	}

	if p.ValueNote != nil {
		s.ValueNote = *p.ValueNote
		changed = true
	}

	if !changed {
		return s, apperr.ErrNoFields
	}
	return s, r.save()
}

// Delete removes the addressed slot from storage outright. Its id is not
// reused by later Adds.
func (r *Registry) Delete(ref Ref) error {
	s, err := r.resolve(ref)
	if err != nil {
		return err
	}
	for i, cur := range r.doc.Schedules {
		if cur == s {
			r.doc.Schedules = append(r.doc.Schedules[:i], r.doc.Schedules[i+1:]...)
			break
		}
	}
	return r.save()
}

// SoftDelete marks the addressed slot deleted; the record stays in storage.
func (r *Registry) SoftDelete(ref Ref) (*model.Schedule, error) {
	s, err := r.resolve(ref)
	if err != nil {
		return nil, err
	}
	s.Deleted = true
	return s, r.save()
}

// Extend pushes the end of the addressed slot out by minutes (> 0),
// preserving the date-only vs date+minute form of the stored string, and
// forces the status to postponed.
func (r *Registry) Extend(ref Ref, minutes float64) (*model.Schedule, error) {
	if minutes <= 0 {
		return nil, apperr.Validationf("extension must be greater than zero minutes")
	}
	s, err := r.resolve(ref)
	if err != nil {
		return nil, err
	}
	endDT, err := model.ParseStamp(s.End)
	if err != nil {
		return nil, apperr.Validationf("end: %v", err)
	}
	newEnd := endDT.Add(time.Duration(minutes * float64(time.Minute)))
	s.End = model.FormatStamp(newEnd, model.IsDateOnly(s.End))
	s.Status = model.StatusPostponed
	return s, r.save()
}

// Stats counts schedules by status.
type Stats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	NotStarted int `json:"not_started"`
	Shelved    int `json:"shelved"`
	Postponed  int `json:"postponed"`
}

// Stats summarizes the whole list, deleted records included.
func (r *Registry) Stats() Stats {
	s := Stats{Total: len(r.doc.Schedules)}
	for _, cur := range r.doc.Schedules {
		switch cur.Status {
		case model.StatusCompleted:
			s.Completed++
		case model.StatusInProgress:
			s.InProgress++
		case model.StatusNotStarted:
			s.NotStarted++
		case model.StatusShelved:
			s.Shelved++
		case model.StatusPostponed:
			s.Postponed++
		}
	}
	return s
}

// sortByStartAsc sorts in place by parsed start time. If any record's start
// fails to parse, the whole sort is skipped and input order stands.
func sortByStartAsc(items []*model.Schedule) {
	for _, s := range items {
		if _, err := s.StartTime(); err != nil {
			return
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		ti, _ := items[i].StartTime()
		tj, _ := items[j].StartTime()
		return ti.Before(tj)
	})
}

// sortByEndDesc sorts in place by parsed end time, most recent first, with
// the same all-or-nothing fallback.
func sortByEndDesc(items []*model.Schedule) {
	for _, s := range items {
		if _, err := s.EndTime(); err != nil {
			return
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		ti, _ := items[i].EndTime()
		tj, _ := items[j].EndTime()
		return tj.Before(ti)
	})
}
