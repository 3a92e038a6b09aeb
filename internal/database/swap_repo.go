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

type swapRepo struct {
	db dbConn
}

func newSwapRepo(db dbConn) contract.SwapRepo {
	return &swapRepo{db: db}
}

const swapColumns = `id, original_assignment_id, target_analyst_id, requested_by_id,
	status, reason, notes, reciprocal_assignment_id, responded_by_id,
	requested_at, responded_at`

func (r *swapRepo) Create(request *entity.SwapRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}

	query := `
		INSERT INTO swap_requests
			(id, original_assignment_id, target_analyst_id, requested_by_id, status, reason, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		request.ID.String(),
		request.OriginalAssignmentID,
		request.TargetAnalystID,
		request.RequestedByID,
		request.Status,
		request.Reason,
		request.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create swap request: %w", err)
	}

	return nil
}

func (r *swapRepo) GetByID(id uuid.UUID) (*entity.SwapRequest, error) {
	query := `SELECT ` + swapColumns + ` FROM swap_requests WHERE id = ?`

	return r.scanOne(r.db.QueryRow(query, id.String()))
}

func (r *swapRepo) GetPendingByAssignment(assignmentID int64) (*entity.SwapRequest, error) {
	query := `
		SELECT ` + swapColumns + `
		FROM swap_requests
		WHERE original_assignment_id = ? AND status = ?
	`

	return r.scanOne(r.db.QueryRow(query, assignmentID, entity.SwapPending))
}

func (r *swapRepo) GetPending() ([]*entity.SwapRequest, error) {
	query := `
		SELECT ` + swapColumns + `
		FROM swap_requests
		WHERE status = ?
		ORDER BY requested_at DESC
	`

	rows, err := r.db.Query(query, entity.SwapPending)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending swap requests: %w", err)
	}
	defer rows.Close()

	var requests []*entity.SwapRequest
	for rows.Next() {
		request, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}

func (r *swapRepo) Update(request *entity.SwapRequest) error {
	query := `
		UPDATE swap_requests SET
			status = ?,
			notes = ?,
			reciprocal_assignment_id = ?,
			responded_by_id = ?,
			responded_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		request.Status,
		request.Notes,
		request.ReciprocalAssignmentID,
		request.RespondedByID,
		request.RespondedAt,
		request.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update swap request: %w", err)
	}

	return nil
}

func (r *swapRepo) ExpirePendingBefore(date time.Time) (int64, error) {
	query := `
		UPDATE swap_requests SET status = ?, responded_at = ?
		WHERE status = ? AND original_assignment_id IN (
			SELECT id FROM assignments WHERE date < ?
		)
	`

	result, err := r.db.Exec(query,
		entity.SwapExpired,
		time.Now().UTC(),
		entity.SwapPending,
		date.Format(domain.DateLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to expire swap requests: %w", err)
	}

	expired, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get expired rows: %w", err)
	}

	return expired, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *swapRepo) scanOne(row *sql.Row) (*entity.SwapRequest, error) {
	request, err := r.scanRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (r *swapRepo) scanRow(row rowScanner) (*entity.SwapRequest, error) {
	request := &entity.SwapRequest{}
	var id string
	err := row.Scan(
		&id,
		&request.OriginalAssignmentID,
		&request.TargetAnalystID,
		&request.RequestedByID,
		&request.Status,
		&request.Reason,
		&request.Notes,
		&request.ReciprocalAssignmentID,
		&request.RespondedByID,
		&request.RequestedAt,
		&request.RespondedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan swap request: %w", err)
	}

	request.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse swap request id: %w", err)
	}

	return request, nil
}
