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

type leaveService struct {
	dm       contract.DataManager
	notifier *notifier
}

func newLeave(dm contract.DataManager, notifier *notifier) *leaveService {
	return &leaveService{
		dm:       dm,
		notifier: notifier,
	}
}

// RequestLeave validates the interval and records a pending leave request.
func (s *leaveService) RequestLeave(ctx context.Context, analystID int64, start, end time.Time, leaveType entity.LeaveType, reason string) (*entity.LeaveRequest, error) {
	start = domain.Date(start)
	end = domain.Date(end)

	if end.Before(start) {
		return nil, domain.NewValidationError("leave end date must not be before start date")
	}
	if start.Before(domain.Today()) {
		return nil, domain.NewValidationError("cannot request leave for past dates")
	}

	analyst, err := s.dm.Analyst().GetByID(analystID)
	if err != nil {
		return nil, fmt.Errorf("failed to get analyst: %w", err)
	}
	if analyst == nil || !analyst.IsActive {
		return nil, domain.NewValidationError("analyst %d not found or inactive", analystID)
	}

	request := &entity.LeaveRequest{
		AnalystID:  analystID,
		StartDate:  start,
		EndDate:    end,
		LeaveType:  leaveType,
		Reason:     reason,
		Status:     entity.LeavePending,
		AutoAdjust: true,
	}

	if err := s.dm.Leave().Create(request); err != nil {
		return nil, err
	}

	return request, nil
}

// AssessImpact recomputes which assignments the leave would disrupt: every
// SCHEDULED or CONFIRMED assignment of the analyst inside the interval. The
// stored set is replaced on each call.
func (s *leaveService) AssessImpact(ctx context.Context, requestID uuid.UUID) ([]*entity.Assignment, error) {
	request, err := s.dm.Leave().GetByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}
	if request == nil {
		return nil, domain.NewValidationError("leave request %s not found", requestID)
	}

	return s.assessImpact(s.dm, request)
}

func (s *leaveService) assessImpact(dm contract.DataManager, request *entity.LeaveRequest) ([]*entity.Assignment, error) {
	affected, err := dm.Assignment().GetByAnalystAndRange(
		request.AnalystID, request.StartDate, request.EndDate,
		[]entity.AssignmentStatus{entity.AssignmentScheduled, entity.AssignmentConfirmed},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to assess leave impact: %w", err)
	}

	ids := make([]int64, 0, len(affected))
	for _, assignment := range affected {
		ids = append(ids, assignment.ID)
	}
	if err := dm.Leave().SetAffectedAssignments(request.ID, ids); err != nil {
		return nil, err
	}

	return affected, nil
}

// ApproveLeave approves a pending request, recomputes the impact, and, when
// a coverage analyst is given, replaces every affected assignment with a
// covering one: the original is cancelled and a CONFIRMED assignment with
// the identical window is created for the coverage analyst. One transaction.
func (s *leaveService) ApproveLeave(ctx context.Context, requestID uuid.UUID, approverID int64, coverageAnalystID *int64) (int, error) {
	request, err := s.dm.Leave().GetByID(requestID)
	if err != nil {
		return 0, fmt.Errorf("failed to get leave request: %w", err)
	}
	if request == nil {
		return 0, domain.NewValidationError("leave request %s not found", requestID)
	}
	if request.Status != entity.LeavePending {
		return 0, domain.NewStateError("leave request %s is %s, not pending", requestID, request.Status)
	}

	var coverage *entity.Analyst
	if coverageAnalystID != nil {
		if *coverageAnalystID == request.AnalystID {
			return 0, domain.NewValidationError("analysts cannot cover their own leave")
		}
		coverage, err = s.dm.Analyst().GetByID(*coverageAnalystID)
		if err != nil {
			return 0, fmt.Errorf("failed to get coverage analyst: %w", err)
		}
		if coverage == nil || !coverage.IsActive {
			return 0, domain.NewConfigurationError("coverage analyst %d not found or inactive", *coverageAnalystID)
		}
	}

	approver, err := s.dm.Analyst().GetByID(approverID)
	if err != nil {
		return 0, fmt.Errorf("failed to get approver: %w", err)
	}

	affectedCount := 0
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		affected, err := s.assessImpact(tx, request)
		if err != nil {
			return err
		}
		affectedCount = len(affected)

		if coverage != nil && request.AutoAdjust {
			if err := s.arrangeCoverage(tx, request, coverage, affected); err != nil {
				return err
			}
			request.CoveredByID = coverageAnalystID
			if approver != nil {
				request.CoverageNotes = fmt.Sprintf("Coverage arranged by %s", approver.DisplayName)
			}
		}

		request.Status = entity.LeaveApproved
		request.RespondedByID = &approverID

		return tx.Leave().Update(request)
	})
	if err != nil {
		return 0, err
	}

	if analyst, err := s.dm.Analyst().GetByID(request.AnalystID); err == nil && analyst != nil {
		message := fmt.Sprintf("Your leave from %s to %s was approved.",
			request.StartDate.Format(domain.DateLayout), request.EndDate.Format(domain.DateLayout))
		if coverage != nil {
			message += fmt.Sprintf(" %s covers your %d affected shift(s).", coverage.DisplayName, affectedCount)
		}
		_ = s.notifier.Notify(analyst, entity.NotifyLeaveApproved,
			"Leave approved", message, request.ID.String())
	}
	if coverage != nil && affectedCount > 0 {
		_ = s.notifier.Notify(coverage, entity.NotifyScheduleChange,
			"Coverage assigned",
			fmt.Sprintf("You cover %d shift(s) from %s to %s.",
				affectedCount,
				request.StartDate.Format(domain.DateLayout),
				request.EndDate.Format(domain.DateLayout)),
			request.ID.String())
	}

	return affectedCount, nil
}

// arrangeCoverage cancels each affected assignment and creates the covering
// one. Cancelling first keeps the one-live-assignment-per-key invariant.
func (s *leaveService) arrangeCoverage(tx contract.DataManager, request *entity.LeaveRequest, coverage *entity.Analyst, affected []*entity.Assignment) error {
	for _, assignment := range affected {
		conflict, err := tx.Assignment().GetActiveByAnalystAndDate(coverage.ID, assignment.Date)
		if err != nil {
			return err
		}
		if conflict != nil {
			return domain.NewConflictError("%s already has %s monitoring on %s",
				coverage.DisplayName, conflict.KindCode,
				assignment.Date.Format(domain.DateLayout))
		}

		originalAnalyst := assignment.AnalystName
		assignment.Status = entity.AssignmentCancelled
		assignment.Notes = fmt.Sprintf("Cancelled due to leave. Covered by %s", coverage.DisplayName)
		if err := tx.Assignment().Update(assignment); err != nil {
			return err
		}

		covering := &entity.Assignment{
			Date:               assignment.Date,
			KindID:             assignment.KindID,
			KindCode:           assignment.KindCode,
			AnalystID:          coverage.ID,
			AnalystName:        coverage.DisplayName,
			WindowStart:        assignment.WindowStart,
			WindowEnd:          assignment.WindowEnd,
			DurationHours:      assignment.DurationHours,
			IsMondayAssignment: assignment.IsMondayAssignment,
			IsExtendedWindow:   assignment.IsExtendedWindow,
			Status:             entity.AssignmentConfirmed,
			Notes:              fmt.Sprintf("Covering for %s on leave", originalAnalyst),
		}
		if err := tx.Assignment().Create(covering); err != nil {
			return err
		}
	}

	return nil
}

// RejectLeave declines a pending request.
func (s *leaveService) RejectLeave(ctx context.Context, requestID uuid.UUID, responderID int64) error {
	request, err := s.dm.Leave().GetByID(requestID)
	if err != nil {
		return fmt.Errorf("failed to get leave request: %w", err)
	}
	if request == nil {
		return domain.NewValidationError("leave request %s not found", requestID)
	}
	if request.Status != entity.LeavePending {
		return domain.NewStateError("leave request %s is %s, not pending", requestID, request.Status)
	}

	request.Status = entity.LeaveRejected
	request.RespondedByID = &responderID

	return s.dm.Leave().Update(request)
}
