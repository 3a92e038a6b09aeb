package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/socops/soc-schedule/internal/domain"
	"github.com/socops/soc-schedule/internal/domain/contract"
	"github.com/socops/soc-schedule/internal/domain/entity"
)

type patternRepo struct {
	db dbConn
}

func newPatternRepo(db dbConn) contract.PatternRepo {
	return &patternRepo{db: db}
}

func (r *patternRepo) Create(pattern *entity.RotationPattern) error {
	query := `
		INSERT INTO rotation_patterns
			(name, description, reference_date, slots, dm_offset, is_active,
			auto_generate, generate_days_ahead)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		pattern.Name,
		pattern.Description,
		pattern.ReferenceDate.Format(domain.DateLayout),
		pattern.Slots,
		pattern.DMOffset,
		pattern.IsActive,
		pattern.AutoGenerate,
		pattern.GenerateDaysAhead,
	)
	if err != nil {
		return fmt.Errorf("failed to create rotation pattern: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	pattern.ID = id
	return nil
}

func (r *patternRepo) GetActive() (*entity.RotationPattern, error) {
	query := `
		SELECT id, name, description, reference_date, slots, dm_offset, is_active,
			auto_generate, generate_days_ahead, last_generated_at, created_at
		FROM rotation_patterns
		WHERE is_active = 1
		ORDER BY id ASC
		LIMIT 1
	`

	pattern := &entity.RotationPattern{}
	var referenceDate string
	err := r.db.QueryRow(query).Scan(
		&pattern.ID,
		&pattern.Name,
		&pattern.Description,
		&referenceDate,
		&pattern.Slots,
		&pattern.DMOffset,
		&pattern.IsActive,
		&pattern.AutoGenerate,
		&pattern.GenerateDaysAhead,
		&pattern.LastGeneratedAt,
		&pattern.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rotation pattern: %w", err)
	}

	pattern.ReferenceDate, err = time.ParseInLocation(domain.DateLayout, referenceDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reference date: %w", err)
	}

	return pattern, nil
}

func (r *patternRepo) Update(pattern *entity.RotationPattern) error {
	query := `
		UPDATE rotation_patterns SET
			name = ?,
			description = ?,
			reference_date = ?,
			slots = ?,
			dm_offset = ?,
			is_active = ?,
			auto_generate = ?,
			generate_days_ahead = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		pattern.Name,
		pattern.Description,
		pattern.ReferenceDate.Format(domain.DateLayout),
		pattern.Slots,
		pattern.DMOffset,
		pattern.IsActive,
		pattern.AutoGenerate,
		pattern.GenerateDaysAhead,
		pattern.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update rotation pattern: %w", err)
	}

	return nil
}

func (r *patternRepo) SetLastGenerated(id int64, at time.Time) error {
	query := `UPDATE rotation_patterns SET last_generated_at = ? WHERE id = ?`

	_, err := r.db.Exec(query, at, id)
	if err != nil {
		return fmt.Errorf("failed to set last generated: %w", err)
	}

	return nil
}
