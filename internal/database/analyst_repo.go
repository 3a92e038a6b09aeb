package database

import (
	"database/sql"
	"fmt"

	"github.com/socops/soc-schedule/internal/domain/contract"
	"github.com/socops/soc-schedule/internal/domain/entity"
)

type analystRepo struct {
	db dbConn
}

func newAnalystRepo(db dbConn) contract.AnalystRepo {
	return &analystRepo{db: db}
}

const analystColumns = `id, slack_user_id, display_name, email, phone, slot_position, is_active, joined_at`

func (r *analystRepo) Create(analyst *entity.Analyst) error {
	query := `
		INSERT INTO analysts (slack_user_id, display_name, email, phone, slot_position, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		analyst.SlackUserID,
		analyst.DisplayName,
		analyst.Email,
		analyst.Phone,
		analyst.SlotPosition,
		analyst.IsActive,
	)
	if err != nil {
		if conflict := asConflict(err, "analyst %q already exists", analyst.DisplayName); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to create analyst: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	analyst.ID = id
	return nil
}

func (r *analystRepo) GetByID(id int64) (*entity.Analyst, error) {
	query := `SELECT ` + analystColumns + ` FROM analysts WHERE id = ?`

	return r.scanOne(r.db.QueryRow(query, id))
}

func (r *analystRepo) GetBySlackUserID(slackUserID string) (*entity.Analyst, error) {
	query := `SELECT ` + analystColumns + ` FROM analysts WHERE slack_user_id = ?`

	return r.scanOne(r.db.QueryRow(query, slackUserID))
}

func (r *analystRepo) GetActiveBySlot(slot int) (*entity.Analyst, error) {
	query := `SELECT ` + analystColumns + ` FROM analysts WHERE slot_position = ? AND is_active = 1`

	return r.scanOne(r.db.QueryRow(query, slot))
}

func (r *analystRepo) GetActive() ([]*entity.Analyst, error) {
	query := `
		SELECT ` + analystColumns + `
		FROM analysts
		WHERE is_active = 1
		ORDER BY slot_position ASC, display_name ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active analysts: %w", err)
	}
	defer rows.Close()

	var analysts []*entity.Analyst
	for rows.Next() {
		analyst := &entity.Analyst{}
		err := rows.Scan(
			&analyst.ID,
			&analyst.SlackUserID,
			&analyst.DisplayName,
			&analyst.Email,
			&analyst.Phone,
			&analyst.SlotPosition,
			&analyst.IsActive,
			&analyst.JoinedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analyst: %w", err)
		}
		analysts = append(analysts, analyst)
	}

	return analysts, nil
}

func (r *analystRepo) Update(analyst *entity.Analyst) error {
	query := `
		UPDATE analysts SET
			slack_user_id = ?,
			display_name = ?,
			email = ?,
			phone = ?,
			slot_position = ?,
			is_active = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		analyst.SlackUserID,
		analyst.DisplayName,
		analyst.Email,
		analyst.Phone,
		analyst.SlotPosition,
		analyst.IsActive,
		analyst.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update analyst: %w", err)
	}

	return nil
}

func (r *analystRepo) SetActive(id int64, active bool) error {
	query := `UPDATE analysts SET is_active = ? WHERE id = ?`

	_, err := r.db.Exec(query, active, id)
	if err != nil {
		return fmt.Errorf("failed to update analyst status: %w", err)
	}

	return nil
}

func (r *analystRepo) scanOne(row *sql.Row) (*entity.Analyst, error) {
	analyst := &entity.Analyst{}
	err := row.Scan(
		&analyst.ID,
		&analyst.SlackUserID,
		&analyst.DisplayName,
		&analyst.Email,
		&analyst.Phone,
		&analyst.SlotPosition,
		&analyst.IsActive,
		&analyst.JoinedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analyst: %w", err)
	}

	return analyst, nil
}
