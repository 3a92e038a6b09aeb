package database

import (
	"database/sql"
	"fmt"

	"github.com/socops/soc-schedule/internal/domain/contract"
	"github.com/socops/soc-schedule/internal/domain/entity"
)

type monitoringKindRepo struct {
	db dbConn
}

func newMonitoringKindRepo(db dbConn) contract.MonitoringKindRepo {
	return &monitoringKindRepo{db: db}
}

const kindColumns = `id, code, name, description,
	default_start_hour, default_start_minute, default_end_hour, default_end_minute,
	monday_start_extend_hours, monday_end_extend_hours`

func (r *monitoringKindRepo) GetByCode(code string) (*entity.MonitoringKind, error) {
	query := `SELECT ` + kindColumns + ` FROM monitoring_kinds WHERE code = ?`

	kind := &entity.MonitoringKind{}
	err := r.db.QueryRow(query, code).Scan(
		&kind.ID,
		&kind.Code,
		&kind.Name,
		&kind.Description,
		&kind.DefaultStartHour,
		&kind.DefaultStartMinute,
		&kind.DefaultEndHour,
		&kind.DefaultEndMinute,
		&kind.MondayStartExtendHours,
		&kind.MondayEndExtendHours,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get monitoring kind: %w", err)
	}

	return kind, nil
}

func (r *monitoringKindRepo) GetAll() ([]*entity.MonitoringKind, error) {
	query := `SELECT ` + kindColumns + ` FROM monitoring_kinds ORDER BY code ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get monitoring kinds: %w", err)
	}
	defer rows.Close()

	var kinds []*entity.MonitoringKind
	for rows.Next() {
		kind := &entity.MonitoringKind{}
		err := rows.Scan(
			&kind.ID,
			&kind.Code,
			&kind.Name,
			&kind.Description,
			&kind.DefaultStartHour,
			&kind.DefaultStartMinute,
			&kind.DefaultEndHour,
			&kind.DefaultEndMinute,
			&kind.MondayStartExtendHours,
			&kind.MondayEndExtendHours,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monitoring kind: %w", err)
		}
		kinds = append(kinds, kind)
	}

	return kinds, nil
}

func (r *monitoringKindRepo) Update(kind *entity.MonitoringKind) error {
	query := `
		UPDATE monitoring_kinds SET
			name = ?,
			description = ?,
			default_start_hour = ?,
			default_start_minute = ?,
			default_end_hour = ?,
			default_end_minute = ?,
			monday_start_extend_hours = ?,
			monday_end_extend_hours = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		kind.Name,
		kind.Description,
		kind.DefaultStartHour,
		kind.DefaultStartMinute,
		kind.DefaultEndHour,
		kind.DefaultEndMinute,
		kind.MondayStartExtendHours,
		kind.MondayEndExtendHours,
		kind.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update monitoring kind: %w", err)
	}

	return nil
}
