package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeaveType categorizes a leave request.
type LeaveType string

const (
	LeaveVacation LeaveType = "VACATION"
	LeaveSick     LeaveType = "SICK"
	LeavePersonal LeaveType = "PERSONAL"
	LeaveTraining LeaveType = "TRAINING"
	LeaveOther    LeaveType = "OTHER"
)

// LeaveStatus is the leave-request lifecycle state.
type LeaveStatus string

const (
	LeavePending   LeaveStatus = "PENDING"
	LeaveApproved  LeaveStatus = "APPROVED"
	LeaveRejected  LeaveStatus = "REJECTED"
	LeaveCancelled LeaveStatus = "CANCELLED"
)

// LeaveRequest is an analyst's leave over [StartDate, EndDate] inclusive.
// The affected assignment set is computed, never chosen by the caller, and
// recomputed on every impact assessment.
type LeaveRequest struct {
	ID        uuid.UUID   `json:"id"`
	AnalystID int64       `json:"analyst_id"`
	StartDate time.Time   `json:"start_date"`
	EndDate   time.Time   `json:"end_date"`
	LeaveType LeaveType   `json:"leave_type"`
	Reason    string      `json:"reason"`
	Status    LeaveStatus `json:"status"`

	CoveredByID   *int64 `json:"covered_by_id,omitempty"`
	CoverageNotes string `json:"coverage_notes"`
	AutoAdjust    bool   `json:"auto_adjust"`

	RespondedByID *int64 `json:"responded_by_id,omitempty"`

	RequestedAt time.Time `json:"requested_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
