package contract

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/socops/soc-schedule/internal/domain/entity"
)

// ScheduleService generates and queries monitoring assignments.
type ScheduleService interface {
	// Generate fills [start, end] inclusive with assignments, skipping any
	// date that already has one. Returns the number of assignments created.
	Generate(ctx context.Context, start, end time.Time) (int, error)
	AssignmentsForDate(date time.Time) ([]*entity.Assignment, error)
	AssignmentsForRange(start, end time.Time) ([]*entity.Assignment, error)
	ConfirmAssignment(ctx context.Context, assignmentID int64) error
	StartAssignment(ctx context.Context, assignmentID int64) error
	SubmitReport(ctx context.Context, assignmentID, analystID int64, notes string) error
	VerifyReport(ctx context.Context, assignmentID, verifierID int64) error
}

// SwapService validates and executes shift exchanges.
type SwapService interface {
	RequestSwap(ctx context.Context, assignmentID, targetAnalystID, requesterID int64, reason string) (*entity.SwapRequest, error)
	ApproveSwap(ctx context.Context, requestID uuid.UUID, approverID int64) (*entity.Assignment, error)
	RejectSwap(ctx context.Context, requestID uuid.UUID, responderID int64) error
	PendingSwaps() ([]*entity.SwapRequest, error)
	// ExpireOverdue expires pending requests whose assignment date has passed.
	ExpireOverdue(ctx context.Context) (int64, error)
}

// LeaveService validates leave intervals and arranges coverage.
type LeaveService interface {
	RequestLeave(ctx context.Context, analystID int64, start, end time.Time, leaveType entity.LeaveType, reason string) (*entity.LeaveRequest, error)
	AssessImpact(ctx context.Context, requestID uuid.UUID) ([]*entity.Assignment, error)
	// ApproveLeave returns the number of affected assignments. When
	// coverageAnalystID is non-nil every affected assignment is cancelled
	// and re-created for the coverage analyst with the same window.
	ApproveLeave(ctx context.Context, requestID uuid.UUID, approverID int64, coverageAnalystID *int64) (int, error)
	RejectLeave(ctx context.Context, requestID uuid.UUID, responderID int64) error
}
