package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/socops/soc-schedule/internal/domain"
	"github.com/socops/soc-schedule/internal/domain/contract"
	"github.com/socops/soc-schedule/internal/domain/entity"
)

type scheduleService struct {
	dm       contract.DataManager
	notifier *notifier
}

func newSchedule(dm contract.DataManager, notifier *notifier) *scheduleService {
	return &scheduleService{
		dm:       dm,
		notifier: notifier,
	}
}

// Generate fills [start, end] inclusive with assignments following the
// active rotation pattern. A date that already has any assignment is skipped
// whole, so re-running over the same range creates nothing new. The full
// range is written in one transaction.
func (s *scheduleService) Generate(ctx context.Context, start, end time.Time) (int, error) {
	start = domain.Date(start)
	end = domain.Date(end)
	if end.Before(start) {
		return 0, domain.NewValidationError("end date %s is before start date %s",
			end.Format(domain.DateLayout), start.Format(domain.DateLayout))
	}

	pattern, err := s.dm.Pattern().GetActive()
	if err != nil {
		return 0, fmt.Errorf("failed to get rotation pattern: %w", err)
	}
	if pattern == nil {
		return 0, domain.NewConfigurationError("no active rotation pattern configured")
	}

	emKind, err := s.dm.MonitoringKind().GetByCode(entity.KindEM)
	if err != nil {
		return 0, fmt.Errorf("failed to get EM kind: %w", err)
	}
	dmKind, err := s.dm.MonitoringKind().GetByCode(entity.KindDM)
	if err != nil {
		return 0, fmt.Errorf("failed to get DM kind: %w", err)
	}
	if emKind == nil || dmKind == nil {
		return 0, domain.NewConfigurationError("monitoring kinds are not configured")
	}

	var generated []*entity.Assignment
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
			exists, err := tx.Assignment().ExistsForDate(date)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			emSlot, dmSlot := pattern.SlotsFor(date)
			if emSlot == dmSlot {
				return domain.NewConfigurationError(
					"pattern assigns both kinds to slot %d on %s",
					emSlot, date.Format(domain.DateLayout))
			}

			emAnalyst, err := tx.Analyst().GetActiveBySlot(emSlot)
			if err != nil {
				return err
			}
			dmAnalyst, err := tx.Analyst().GetActiveBySlot(dmSlot)
			if err != nil {
				return err
			}
			if emAnalyst == nil || dmAnalyst == nil {
				return domain.NewConfigurationError(
					"no active analyst for rotation slots %d, %d", emSlot, dmSlot)
			}

			emAssignment, err := createAssignment(tx, date, emKind, emAnalyst)
			if err != nil {
				return err
			}
			generated = append(generated, emAssignment)

			dmAssignment, err := createAssignment(tx, date, dmKind, dmAnalyst)
			if err != nil {
				return err
			}
			generated = append(generated, dmAssignment)
		}

		return tx.Pattern().SetLastGenerated(pattern.ID, time.Now().UTC())
	})
	if err != nil {
		return 0, err
	}

	s.notifyGenerated(start, end, generated)

	return len(generated), nil
}

// notifyGenerated tells each analyst how many assignments the run gave them.
// Delivery problems only log; the schedule itself is already committed.
func (s *scheduleService) notifyGenerated(start, end time.Time, generated []*entity.Assignment) {
	perAnalyst := make(map[int64]int)
	for _, assignment := range generated {
		perAnalyst[assignment.AnalystID]++
	}

	for analystID, count := range perAnalyst {
		analyst, err := s.dm.Analyst().GetByID(analystID)
		if err != nil || analyst == nil {
			log.Printf("Failed to resolve analyst %d for schedule notification: %v", analystID, err)
			continue
		}

		if err := s.notifier.Notify(analyst, entity.NotifyScheduleChange,
			"Schedule generated",
			fmt.Sprintf("You have %d new monitoring assignment(s) between %s and %s.",
				count, start.Format(domain.DateLayout), end.Format(domain.DateLayout)),
			"",
		); err != nil {
			log.Printf("Failed to record schedule notification for analyst %d: %v", analystID, err)
		}
	}
}

// createAssignment derives the time window for the date and writes one
// CONFIRMED assignment. Window fields are computed here, never in the store.
func createAssignment(tx contract.DataManager, date time.Time, kind *entity.MonitoringKind, analyst *entity.Analyst) (*entity.Assignment, error) {
	window := kind.WindowFor(date)

	assignment := &entity.Assignment{
		Date:               date,
		KindID:             kind.ID,
		KindCode:           kind.Code,
		AnalystID:          analyst.ID,
		AnalystName:        analyst.DisplayName,
		WindowStart:        window.Start,
		WindowEnd:          window.End,
		DurationHours:      window.DurationHours,
		IsMondayAssignment: window.IsMonday,
		IsExtendedWindow:   window.IsExtended,
		Status:             entity.AssignmentConfirmed,
	}

	if err := tx.Assignment().Create(assignment); err != nil {
		return nil, err
	}

	return assignment, nil
}

func (s *scheduleService) AssignmentsForDate(date time.Time) ([]*entity.Assignment, error) {
	date = domain.Date(date)
	return s.dm.Assignment().GetByDateRange(date, date)
}

func (s *scheduleService) AssignmentsForRange(start, end time.Time) ([]*entity.Assignment, error) {
	return s.dm.Assignment().GetByDateRange(domain.Date(start), domain.Date(end))
}

func (s *scheduleService) ConfirmAssignment(ctx context.Context, assignmentID int64) error {
	return s.transition(ctx, assignmentID, entity.AssignmentScheduled, entity.AssignmentConfirmed)
}

func (s *scheduleService) StartAssignment(ctx context.Context, assignmentID int64) error {
	return s.transition(ctx, assignmentID, entity.AssignmentConfirmed, entity.AssignmentInProgress)
}

func (s *scheduleService) transition(ctx context.Context, assignmentID int64, from, to entity.AssignmentStatus) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		assignment, err := tx.Assignment().GetByID(assignmentID)
		if err != nil {
			return err
		}
		if assignment == nil {
			return domain.NewValidationError("assignment %d not found", assignmentID)
		}
		if assignment.Status != from {
			return domain.NewStateError("assignment %d is %s, expected %s",
				assignmentID, assignment.Status, from)
		}

		assignment.Status = to
		return tx.Assignment().Update(assignment)
	})
}

// SubmitReport records the shift report for an assignment and completes it.
func (s *scheduleService) SubmitReport(ctx context.Context, assignmentID, analystID int64, notes string) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		assignment, err := tx.Assignment().GetByID(assignmentID)
		if err != nil {
			return err
		}
		if assignment == nil {
			return domain.NewValidationError("assignment %d not found", assignmentID)
		}
		if assignment.AnalystID != analystID {
			return domain.NewValidationError("assignment %d does not belong to analyst %d",
				assignmentID, analystID)
		}
		if assignment.Status == entity.AssignmentCancelled {
			return domain.NewStateError("assignment %d is cancelled", assignmentID)
		}
		if assignment.ReportSubmitted {
			return domain.NewStateError("report already submitted for assignment %d", assignmentID)
		}

		now := time.Now().UTC()
		assignment.ReportSubmitted = true
		assignment.ReportSubmittedAt = &now
		assignment.CompletionNotes = notes
		assignment.Status = entity.AssignmentCompleted

		return tx.Assignment().Update(assignment)
	})
}

// VerifyReport marks a submitted report as verified by another analyst.
func (s *scheduleService) VerifyReport(ctx context.Context, assignmentID, verifierID int64) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		assignment, err := tx.Assignment().GetByID(assignmentID)
		if err != nil {
			return err
		}
		if assignment == nil {
			return domain.NewValidationError("assignment %d not found", assignmentID)
		}
		if !assignment.ReportSubmitted {
			return domain.NewStateError("no report submitted for assignment %d", assignmentID)
		}
		if assignment.AnalystID == verifierID {
			return domain.NewValidationError("analysts cannot verify their own reports")
		}

		assignment.ReportVerified = true
		assignment.ReportVerifiedBy = &verifierID

		return tx.Assignment().Update(assignment)
	})
}
