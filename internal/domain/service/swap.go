package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/socops/soc-schedule/internal/domain"
	"github.com/socops/soc-schedule/internal/domain/contract"
	"github.com/socops/soc-schedule/internal/domain/entity"
)

type swapService struct {
	dm       contract.DataManager
	notifier *notifier
}

func newSwap(dm contract.DataManager, notifier *notifier) *swapService {
	return &swapService{
		dm:       dm,
		notifier: notifier,
	}
}

// RequestSwap validates and records a request to hand an assignment over to
// another analyst. No assignment is mutated until approval.
func (s *swapService) RequestSwap(ctx context.Context, assignmentID, targetAnalystID, requesterID int64, reason string) (*entity.SwapRequest, error) {
	assignment, err := s.dm.Assignment().GetByID(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if assignment == nil {
		return nil, domain.NewValidationError("assignment %d not found", assignmentID)
	}

	target, err := s.dm.Analyst().GetByID(targetAnalystID)
	if err != nil {
		return nil, fmt.Errorf("failed to get target analyst: %w", err)
	}
	if target == nil || !target.IsActive {
		return nil, domain.NewValidationError("target analyst %d not found or inactive", targetAnalystID)
	}

	if err := s.validateSwap(assignment, target); err != nil {
		return nil, err
	}

	pending, err := s.dm.Swap().GetPendingByAssignment(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending swaps: %w", err)
	}
	if pending != nil {
		return nil, domain.NewConflictError("a pending swap request already exists for assignment %d", assignmentID)
	}

	request := &entity.SwapRequest{
		OriginalAssignmentID: assignmentID,
		TargetAnalystID:      targetAnalystID,
		RequestedByID:        requesterID,
		Status:               entity.SwapPending,
		Reason:               reason,
	}

	if err := s.dm.Swap().Create(request); err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(target, entity.NotifySwapRequest,
		"Shift swap requested",
		fmt.Sprintf("%s asked you to take %s monitoring on %s. Reason: %s",
			assignment.AnalystName, assignment.KindCode,
			assignment.Date.Format(domain.DateLayout), reason),
		request.ID.String(),
	); err != nil {
		return nil, err
	}

	return request, nil
}

// validateSwap enforces the rotation invariants: no swapping past dates and
// no double-booking the target. The active-assignment lookup spans both
// kinds, so it also rejects handing EM and DM to one analyst on the same day.
func (s *swapService) validateSwap(assignment *entity.Assignment, target *entity.Analyst) error {
	if assignment.Date.Before(domain.Today()) {
		return domain.NewValidationError("cannot swap assignments for past dates")
	}

	existing, err := s.dm.Assignment().GetActiveByAnalystAndDate(target.ID, assignment.Date)
	if err != nil {
		return fmt.Errorf("failed to check target assignments: %w", err)
	}
	if existing != nil {
		return domain.NewConflictError("%s already has %s monitoring on %s",
			target.DisplayName, existing.KindCode, assignment.Date.Format(domain.DateLayout))
	}

	return nil
}

// ApproveSwap executes a pending swap: the original assignment is
// cancelled in place (keeping its holder for the audit trail) and a
// reciprocal CONFIRMED assignment with the identical window is created for
// the target analyst. Everything happens in one transaction.
func (s *swapService) ApproveSwap(ctx context.Context, requestID uuid.UUID, approverID int64) (*entity.Assignment, error) {
	request, err := s.dm.Swap().GetByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get swap request: %w", err)
	}
	if request == nil {
		return nil, domain.NewValidationError("swap request %s not found", requestID)
	}
	if request.Status != entity.SwapPending {
		return nil, domain.NewStateError("swap request %s is %s, not pending", requestID, request.Status)
	}

	target, err := s.dm.Analyst().GetByID(request.TargetAnalystID)
	if err != nil {
		return nil, fmt.Errorf("failed to get target analyst: %w", err)
	}
	if target == nil || !target.IsActive {
		return nil, domain.NewConfigurationError("target analyst %d no longer active", request.TargetAnalystID)
	}

	var reciprocal *entity.Assignment
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		original, err := tx.Assignment().GetByID(request.OriginalAssignmentID)
		if err != nil {
			return err
		}
		if original == nil {
			return domain.NewValidationError("assignment %d not found", request.OriginalAssignmentID)
		}

		// State may have moved since the request was filed.
		conflict, err := tx.Assignment().GetActiveByAnalystAndDate(target.ID, original.Date)
		if err != nil {
			return err
		}
		if conflict != nil {
			return domain.NewConflictError("%s already has %s monitoring on %s",
				target.DisplayName, conflict.KindCode, original.Date.Format(domain.DateLayout))
		}

		originalAnalyst := original.AnalystName
		original.Status = entity.AssignmentCancelled
		original.Notes = fmt.Sprintf("Reassigned to %s via swap", target.DisplayName)
		if err := tx.Assignment().Update(original); err != nil {
			return err
		}

		reciprocal = &entity.Assignment{
			Date:               original.Date,
			KindID:             original.KindID,
			KindCode:           original.KindCode,
			AnalystID:          target.ID,
			AnalystName:        target.DisplayName,
			WindowStart:        original.WindowStart,
			WindowEnd:          original.WindowEnd,
			DurationHours:      original.DurationHours,
			IsMondayAssignment: original.IsMondayAssignment,
			IsExtendedWindow:   original.IsExtendedWindow,
			Status:             entity.AssignmentConfirmed,
			Notes:              fmt.Sprintf("Swapped from %s. %s", originalAnalyst, request.Reason),
		}
		if err := tx.Assignment().Create(reciprocal); err != nil {
			return err
		}

		now := time.Now().UTC()
		request.Status = entity.SwapApproved
		request.ReciprocalAssignmentID = &reciprocal.ID
		request.RespondedByID = &approverID
		request.RespondedAt = &now

		return tx.Swap().Update(request)
	})
	if err != nil {
		return nil, err
	}

	if requester, err := s.dm.Analyst().GetByID(request.RequestedByID); err == nil && requester != nil {
		_ = s.notifier.Notify(requester, entity.NotifySwapApproved,
			"Shift swap approved",
			fmt.Sprintf("Your swap request for %s on %s was approved; %s now covers the shift.",
				reciprocal.KindCode, reciprocal.Date.Format(domain.DateLayout), target.DisplayName),
			request.ID.String(),
		)
	}

	return reciprocal, nil
}

// RejectSwap declines a pending request. Terminal states cannot be rejected.
func (s *swapService) RejectSwap(ctx context.Context, requestID uuid.UUID, responderID int64) error {
	request, err := s.dm.Swap().GetByID(requestID)
	if err != nil {
		return fmt.Errorf("failed to get swap request: %w", err)
	}
	if request == nil {
		return domain.NewValidationError("swap request %s not found", requestID)
	}
	if request.Status != entity.SwapPending {
		return domain.NewStateError("swap request %s is %s, not pending", requestID, request.Status)
	}

	now := time.Now().UTC()
	request.Status = entity.SwapRejected
	request.RespondedByID = &responderID
	request.RespondedAt = &now

	if err := s.dm.Swap().Update(request); err != nil {
		return err
	}

	if requester, err := s.dm.Analyst().GetByID(request.RequestedByID); err == nil && requester != nil {
		_ = s.notifier.Notify(requester, entity.NotifySwapRejected,
			"Shift swap rejected",
			fmt.Sprintf("Your swap request for assignment %d was rejected.", request.OriginalAssignmentID),
			request.ID.String(),
		)
	}

	return nil
}

func (s *swapService) PendingSwaps() ([]*entity.SwapRequest, error) {
	return s.dm.Swap().GetPending()
}

// ExpireOverdue expires every pending request whose assignment date has
// already passed; expired is terminal.
func (s *swapService) ExpireOverdue(ctx context.Context) (int64, error) {
	return s.dm.Swap().ExpirePendingBefore(domain.Today())
}
