package entity

import (
	"time"

	"github.com/google/uuid"
)

// SwapStatus is the swap-request lifecycle state. Approved, rejected,
// cancelled and expired are terminal.
type SwapStatus string

const (
	SwapPending   SwapStatus = "PENDING"
	SwapApproved  SwapStatus = "APPROVED"
	SwapRejected  SwapStatus = "REJECTED"
	SwapCancelled SwapStatus = "CANCELLED"
	SwapExpired   SwapStatus = "EXPIRED"
)

// SwapRequest asks to hand an assignment over to another analyst. On
// approval the original assignment is cancelled and the reciprocal
// assignment, linked here, takes its place.
type SwapRequest struct {
	ID                   uuid.UUID  `json:"id"`
	OriginalAssignmentID int64      `json:"original_assignment_id"`
	TargetAnalystID      int64      `json:"target_analyst_id"`
	RequestedByID        int64      `json:"requested_by_id"`
	Status               SwapStatus `json:"status"`
	Reason               string     `json:"reason"`
	Notes                string     `json:"notes"`

	ReciprocalAssignmentID *int64 `json:"reciprocal_assignment_id,omitempty"`
	RespondedByID          *int64 `json:"responded_by_id,omitempty"`

	RequestedAt time.Time  `json:"requested_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}
