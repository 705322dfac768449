package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo implements the MaintenanceRepository port over PostgreSQL.
// Scope checks run through the record's device district.
type MaintenanceRepo struct {
	db DBTX
}

// NewMaintenanceRepository builds the persistence adapter for maintenance
// records.
func NewMaintenanceRepository(db DBTX) *MaintenanceRepo {
	return &MaintenanceRepo{db: db}
}

const maintenanceColumns = `
	m.id, m.device_id, m.user_id, m.issue_description, m.action_taken, m.status,
	m.maintenance_date, m.remarks, m.created_at, m.updated_at,
	d.device_code, d.name, d.district_id, w.name,
	u.firstname || ' ' || u.lastname`

func (r *MaintenanceRepo) Create(ctx context.Context, m *entity.MaintenanceRecord) (int64, error) {
	const query = `
		INSERT INTO maintenances (device_id, user_id, issue_description, action_taken, status, maintenance_date, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query,
		m.DeviceID, m.UserID, m.IssueDescription, m.ActionTaken,
		m.Status, m.MaintenanceDate, m.Remarks,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert maintenance record: %w", err)
	}
	return id, nil
}

func (r *MaintenanceRepo) GetByID(ctx context.Context, id int64) (*repository.MaintenanceRow, error) {
	query := `
		SELECT ` + maintenanceColumns + `
		FROM maintenances m
		JOIN devices d ON m.device_id = d.id
		JOIN districts w ON d.district_id = w.id
		JOIN users u ON m.user_id = u.id
		WHERE m.id = $1`
	var row repository.MaintenanceRow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.DeviceID, &row.UserID, &row.IssueDescription, &row.ActionTaken,
		&row.Status, &row.MaintenanceDate, &row.Remarks, &row.CreatedAt, &row.UpdatedAt,
		&row.DeviceCode, &row.DeviceName, &row.DistrictID, &row.DistrictName,
		&row.TechnicianName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get maintenance record: %w", err)
	}
	return &row, nil
}

func (r *MaintenanceRepo) Update(ctx context.Context, m *entity.MaintenanceRecord) error {
	const query = `
		UPDATE maintenances
		SET device_id = $2, issue_description = $3, action_taken = $4, status = $5,
		    maintenance_date = $6, remarks = $7, updated_at = now()
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		m.ID, m.DeviceID, m.IssueDescription, m.ActionTaken,
		m.Status, m.MaintenanceDate, m.Remarks,
	)
	if err != nil {
		return fmt.Errorf("update maintenance record: %w", err)
	}
	return nil
}

func (r *MaintenanceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM maintenances WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete maintenance record: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *MaintenanceRepo) List(ctx context.Context, sc scope.Scope) ([]repository.MaintenanceRow, error) {
	if sc.Empty() {
		return nil, nil
	}
	query := `
		SELECT ` + maintenanceColumns + `
		FROM maintenances m
		JOIN devices d ON m.device_id = d.id
		JOIN districts w ON d.district_id = w.id
		JOIN users u ON m.user_id = u.id`
	var args []any
	if !sc.Unbounded() {
		query += ` WHERE d.district_id = ANY($1)`
		args = append(args, sc.IDs())
	}
	query += ` ORDER BY m.maintenance_date DESC, m.id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list maintenance records: %w", err)
	}
	defer rows.Close()
	var list []repository.MaintenanceRow
	for rows.Next() {
		var row repository.MaintenanceRow
		if err := rows.Scan(
			&row.ID, &row.DeviceID, &row.UserID, &row.IssueDescription, &row.ActionTaken,
			&row.Status, &row.MaintenanceDate, &row.Remarks, &row.CreatedAt, &row.UpdatedAt,
			&row.DeviceCode, &row.DeviceName, &row.DistrictID, &row.DistrictName,
			&row.TechnicianName,
		); err != nil {
			return nil, fmt.Errorf("scan maintenance record: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *MaintenanceRepo) CountByDevice(ctx context.Context, deviceID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM maintenances WHERE device_id = $1`, deviceID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count maintenance records: %w", err)
	}
	return count, nil
}
