package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/socops/soc-schedule/internal/domain"
	"github.com/socops/soc-schedule/internal/domain/contract"
	"github.com/socops/soc-schedule/internal/domain/entity"
)

type assignmentRepo struct {
	db dbConn
}

func newAssignmentRepo(db dbConn) contract.AssignmentRepo {
	return &assignmentRepo{db: db}
}

const assignmentColumns = `a.id, a.date, a.kind_id, k.code, a.analyst_id, an.display_name,
	a.window_start, a.window_end, a.duration_hours,
	a.is_monday_assignment, a.is_extended_window,
	a.status, a.notes, a.completion_notes,
	a.report_submitted, a.report_submitted_at, a.report_verified, a.report_verified_by,
	a.created_at, a.updated_at`

const assignmentJoins = `
	FROM assignments a
	JOIN monitoring_kinds k ON k.id = a.kind_id
	JOIN analysts an ON an.id = a.analyst_id`

func (r *assignmentRepo) Create(assignment *entity.Assignment) error {
	query := `
		INSERT INTO assignments
			(date, kind_id, analyst_id, window_start, window_end, duration_hours,
			is_monday_assignment, is_extended_window, status, notes, completion_notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		assignment.Date.Format(domain.DateLayout),
		assignment.KindID,
		assignment.AnalystID,
		assignment.WindowStart,
		assignment.WindowEnd,
		assignment.DurationHours,
		assignment.IsMondayAssignment,
		assignment.IsExtendedWindow,
		assignment.Status,
		assignment.Notes,
		assignment.CompletionNotes,
	)
	if err != nil {
		if conflict := asConflict(err, "an assignment already exists for %s on %s",
			assignment.KindCode, assignment.Date.Format(domain.DateLayout)); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	assignment.ID = id
	return nil
}

func (r *assignmentRepo) GetByID(id int64) (*entity.Assignment, error) {
	query := `SELECT ` + assignmentColumns + assignmentJoins + ` WHERE a.id = ?`

	return r.scanOne(r.db.QueryRow(query, id))
}

func (r *assignmentRepo) GetByDateAndKind(date time.Time, kindCode string) (*entity.Assignment, error) {
	query := `SELECT ` + assignmentColumns + assignmentJoins + `
		WHERE a.date = ? AND k.code = ? AND a.status != ?`

	return r.scanOne(r.db.QueryRow(query,
		date.Format(domain.DateLayout), kindCode, entity.AssignmentCancelled))
}

func (r *assignmentRepo) ExistsForDate(date time.Time) (bool, error) {
	query := `SELECT COUNT(1) FROM assignments WHERE date = ?`

	var count int
	err := r.db.QueryRow(query, date.Format(domain.DateLayout)).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check assignments for date: %w", err)
	}

	return count > 0, nil
}

func (r *assignmentRepo) GetActiveByAnalystAndDate(analystID int64, date time.Time) (*entity.Assignment, error) {
	query := `SELECT ` + assignmentColumns + assignmentJoins + `
		WHERE a.analyst_id = ? AND a.date = ? AND a.status != ?`

	return r.scanOne(r.db.QueryRow(query,
		analystID, date.Format(domain.DateLayout), entity.AssignmentCancelled))
}

func (r *assignmentRepo) GetByDateRange(start, end time.Time) ([]*entity.Assignment, error) {
	query := `SELECT ` + assignmentColumns + assignmentJoins + `
		WHERE a.date BETWEEN ? AND ?
		ORDER BY a.date ASC, k.code ASC`

	rows, err := r.db.Query(query,
		start.Format(domain.DateLayout), end.Format(domain.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments by range: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *assignmentRepo) GetByAnalystAndRange(analystID int64, start, end time.Time, statuses []entity.AssignmentStatus) ([]*entity.Assignment, error) {
	query := `SELECT ` + assignmentColumns + assignmentJoins + `
		WHERE a.analyst_id = ? AND a.date BETWEEN ? AND ?`

	args := []interface{}{
		analystID,
		start.Format(domain.DateLayout),
		end.Format(domain.DateLayout),
	}

	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i, status := range statuses {
			placeholders[i] = "?"
			args = append(args, status)
		}
		query += ` AND a.status IN (` + strings.Join(placeholders, ", ") + `)`
	}

	query += ` ORDER BY a.date ASC, k.code ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments by analyst: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *assignmentRepo) Update(assignment *entity.Assignment) error {
	query := `
		UPDATE assignments SET
			analyst_id = ?,
			status = ?,
			notes = ?,
			completion_notes = ?,
			report_submitted = ?,
			report_submitted_at = ?,
			report_verified = ?,
			report_verified_by = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		assignment.AnalystID,
		assignment.Status,
		assignment.Notes,
		assignment.CompletionNotes,
		assignment.ReportSubmitted,
		assignment.ReportSubmittedAt,
		assignment.ReportVerified,
		assignment.ReportVerifiedBy,
		time.Now().UTC(),
		assignment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}

	return nil
}

func (r *assignmentRepo) scanOne(row *sql.Row) (*entity.Assignment, error) {
	assignment := &entity.Assignment{}
	var date string
	err := row.Scan(
		&assignment.ID,
		&date,
		&assignment.KindID,
		&assignment.KindCode,
		&assignment.AnalystID,
		&assignment.AnalystName,
		&assignment.WindowStart,
		&assignment.WindowEnd,
		&assignment.DurationHours,
		&assignment.IsMondayAssignment,
		&assignment.IsExtendedWindow,
		&assignment.Status,
		&assignment.Notes,
		&assignment.CompletionNotes,
		&assignment.ReportSubmitted,
		&assignment.ReportSubmittedAt,
		&assignment.ReportVerified,
		&assignment.ReportVerifiedBy,
		&assignment.CreatedAt,
		&assignment.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	assignment.Date, err = time.ParseInLocation(domain.DateLayout, date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("failed to parse assignment date: %w", err)
	}

	return assignment, nil
}

func (r *assignmentRepo) scanAll(rows *sql.Rows) ([]*entity.Assignment, error) {
	var assignments []*entity.Assignment
	for rows.Next() {
		assignment := &entity.Assignment{}
		var date string
		err := rows.Scan(
			&assignment.ID,
			&date,
			&assignment.KindID,
			&assignment.KindCode,
			&assignment.AnalystID,
			&assignment.AnalystName,
			&assignment.WindowStart,
			&assignment.WindowEnd,
			&assignment.DurationHours,
			&assignment.IsMondayAssignment,
			&assignment.IsExtendedWindow,
			&assignment.Status,
			&assignment.Notes,
			&assignment.CompletionNotes,
			&assignment.ReportSubmitted,
			&assignment.ReportSubmittedAt,
			&assignment.ReportVerified,
			&assignment.ReportVerifiedBy,
			&assignment.CreatedAt,
			&assignment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}

		assignment.Date, err = time.ParseInLocation(domain.DateLayout, date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("failed to parse assignment date: %w", err)
		}

		assignments = append(assignments, assignment)
	}

	return assignments, nil
}
