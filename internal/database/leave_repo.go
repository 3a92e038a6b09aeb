package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/socops/soc-schedule/internal/domain"
	"github.com/socops/soc-schedule/internal/domain/contract"
	"github.com/socops/soc-schedule/internal/domain/entity"
)

type leaveRepo struct {
	db dbConn
}

func newLeaveRepo(db dbConn) contract.LeaveRepo {
	return &leaveRepo{db: db}
}

const leaveColumns = `id, analyst_id, start_date, end_date, leave_type, reason, status,
	covered_by_id, coverage_notes, auto_adjust, responded_by_id, requested_at, updated_at`

func (r *leaveRepo) Create(request *entity.LeaveRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}

	query := `
		INSERT INTO leave_requests
			(id, analyst_id, start_date, end_date, leave_type, reason, status, auto_adjust)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		request.ID.String(),
		request.AnalystID,
		request.StartDate.Format(domain.DateLayout),
		request.EndDate.Format(domain.DateLayout),
		request.LeaveType,
		request.Reason,
		request.Status,
		request.AutoAdjust,
	)
	if err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}

	return nil
}

func (r *leaveRepo) GetByID(id uuid.UUID) (*entity.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = ?`

	request, err := r.scanRow(r.db.QueryRow(query, id.String()))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *leaveRepo) GetPending() ([]*entity.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE status = ?
		ORDER BY requested_at DESC
	`

	rows, err := r.db.Query(query, entity.LeavePending)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending leave requests: %w", err)
	}
	defer rows.Close()

	var requests []*entity.LeaveRequest
	for rows.Next() {
		request, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

func (r *leaveRepo) Update(request *entity.LeaveRequest) error {
	query := `
		UPDATE leave_requests SET
			status = ?,
			covered_by_id = ?,
			coverage_notes = ?,
			auto_adjust = ?,
			responded_by_id = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		request.Status,
		request.CoveredByID,
		request.CoverageNotes,
		request.AutoAdjust,
		request.RespondedByID,
		time.Now().UTC(),
		request.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}

	return nil
}

// SetAffectedAssignments replaces the computed affected-assignment set.
func (r *leaveRepo) SetAffectedAssignments(requestID uuid.UUID, assignmentIDs []int64) error {
	if _, err := r.db.Exec(
		`DELETE FROM leave_affected_assignments WHERE leave_request_id = ?`,
		requestID.String(),
	); err != nil {
		return fmt.Errorf("failed to clear affected assignments: %w", err)
	}

	for _, assignmentID := range assignmentIDs {
		if _, err := r.db.Exec(
			`INSERT INTO leave_affected_assignments (leave_request_id, assignment_id) VALUES (?, ?)`,
			requestID.String(), assignmentID,
		); err != nil {
			return fmt.Errorf("failed to add affected assignment: %w", err)
		}
	}

	return nil
}

func (r *leaveRepo) GetAffectedAssignments(requestID uuid.UUID) ([]*entity.Assignment, error) {
	query := `SELECT ` + assignmentColumns + assignmentJoins + `
		JOIN leave_affected_assignments laa ON laa.assignment_id = a.id
		WHERE laa.leave_request_id = ?
		ORDER BY a.date ASC, k.code ASC`

	rows, err := r.db.Query(query, requestID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get affected assignments: %w", err)
	}
	defer rows.Close()

	return (&assignmentRepo{db: r.db}).scanAll(rows)
}

func (r *leaveRepo) scanRow(row rowScanner) (*entity.LeaveRequest, error) {
	request := &entity.LeaveRequest{}
	var id, startDate, endDate string
	err := row.Scan(
		&id,
		&request.AnalystID,
		&startDate,
		&endDate,
		&request.LeaveType,
		&request.Reason,
		&request.Status,
		&request.CoveredByID,
		&request.CoverageNotes,
		&request.AutoAdjust,
		&request.RespondedByID,
		&request.RequestedAt,
		&request.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan leave request: %w", err)
	}

	request.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse leave request id: %w", err)
	}

	request.StartDate, err = time.ParseInLocation(domain.DateLayout, startDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("failed to parse leave start date: %w", err)
	}
	request.EndDate, err = time.ParseInLocation(domain.DateLayout, endDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("failed to parse leave end date: %w", err)
	}

	return request, nil
}
