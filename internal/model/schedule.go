package model

import "time"

// Status is the completion state of a schedule slot.
type Status string

// Valid schedule statuses.
const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in_progress"
	StatusNotStarted Status = "not_started"
	StatusShelved    Status = "shelved"
	StatusPostponed  Status = "postponed"
)

// Statuses lists the valid statuses in display order.
var Statuses = []Status{
	StatusCompleted,
	StatusInProgress,
	StatusNotStarted,
	StatusShelved,
	StatusPostponed,
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Schedule is one time-boxed task slot.
type Schedule struct {
	ID          int    `json:"id"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Task        string `json:"task"`
	Status      Status `json:"status"`
	Description string `json:"description"`
	ValueNote   string `json:"value_note"`
	CreatedAt   string `json:"created_at"`
	Deleted     bool   `json:"deleted,omitempty"`
}

// StartTime parses the start timestamp.
func (s *Schedule) StartTime() (time.Time, error) { return ParseStamp(s.Start) }

// EndTime parses the end timestamp.
func (s *Schedule) EndTime() (time.Time, error) { return ParseStamp(s.End) }
