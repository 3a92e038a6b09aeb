package entity

import "time"

// AssignmentStatus is the assignment lifecycle state. Assignments are never
// physically deleted; they transition to cancelled instead.
type AssignmentStatus string

const (
	AssignmentScheduled  AssignmentStatus = "SCHEDULED"
	AssignmentConfirmed  AssignmentStatus = "CONFIRMED"
	AssignmentInProgress AssignmentStatus = "IN_PROGRESS"
	AssignmentCompleted  AssignmentStatus = "COMPLETED"
	AssignmentCancelled  AssignmentStatus = "CANCELLED"
)

// Assignment is one analyst's monitoring duty on one date for one kind.
// At most one non-cancelled assignment exists per (date, kind).
type Assignment struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	KindID    int64     `json:"kind_id"`
	AnalystID int64     `json:"analyst_id"`

	// Denormalized read-only fields populated by queries.
	KindCode    string `json:"kind_code"`
	AnalystName string `json:"analyst_name"`

	WindowStart   time.Time `json:"window_start"`
	WindowEnd     time.Time `json:"window_end"`
	DurationHours float64   `json:"duration_hours"`

	IsMondayAssignment bool `json:"is_monday_assignment"`
	IsExtendedWindow   bool `json:"is_extended_window"`

	Status          AssignmentStatus `json:"status"`
	Notes           string           `json:"notes"`
	CompletionNotes string           `json:"completion_notes"`

	ReportSubmitted   bool       `json:"report_submitted"`
	ReportSubmittedAt *time.Time `json:"report_submitted_at,omitempty"`
	ReportVerified    bool       `json:"report_verified"`
	ReportVerifiedBy  *int64     `json:"report_verified_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPastDue reports whether the assignment date has passed without the
// assignment reaching a terminal state.
func (a *Assignment) IsPastDue(today time.Time) bool {
	return a.Date.Before(today) &&
		a.Status != AssignmentCompleted && a.Status != AssignmentCancelled
}
