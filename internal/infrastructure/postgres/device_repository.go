package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

var _ repository.DeviceRepository = (*DeviceRepo)(nil)

// DeviceRepo implements the DeviceRepository port over PostgreSQL.
type DeviceRepo struct {
	db DBTX
}

// NewDeviceRepository builds the persistence adapter for devices.
func NewDeviceRepository(db DBTX) *DeviceRepo {
	return &DeviceRepo{db: db}
}

func (r *DeviceRepo) Create(ctx context.Context, d *entity.Device) (int64, error) {
	const query = `
		INSERT INTO devices (device_code, name, brand, model, serial_number, device_type, description, district_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query,
		d.DeviceCode, d.Name, d.Brand, d.Model, d.SerialNumber,
		d.DeviceType, d.Description, d.DistrictID,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.Conflictf("Device code already exists.")
		}
		return 0, fmt.Errorf("insert device: %w", err)
	}
	return id, nil
}

func (r *DeviceRepo) GetByID(ctx context.Context, id int64) (*entity.Device, error) {
	const query = `
		SELECT id, device_code, name, brand, model, serial_number, device_type,
		       description, district_id, created_at, updated_at
		FROM devices WHERE id = $1`
	var d entity.Device
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.DeviceCode, &d.Name, &d.Brand, &d.Model, &d.SerialNumber,
		&d.DeviceType, &d.Description, &d.DistrictID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get device: %w", err)
	}
	return &d, nil
}

func (r *DeviceRepo) CodeExists(ctx context.Context, code string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM devices WHERE device_code = $1 AND id <> $2)`,
		code, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("device code exists: %w", err)
	}
	return exists, nil
}

func (r *DeviceRepo) Update(ctx context.Context, d *entity.Device) error {
	const query = `
		UPDATE devices
		SET device_code = $2, name = $3, brand = $4, model = $5, serial_number = $6,
		    device_type = $7, description = $8, district_id = $9, updated_at = now()
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		d.ID, d.DeviceCode, d.Name, d.Brand, d.Model, d.SerialNumber,
		d.DeviceType, d.Description, d.DistrictID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflictf("Device code already exists.")
		}
		return fmt.Errorf("update device: %w", err)
	}
	return nil
}

// Delete removes a device and reports whether a row was deleted. The
// maintenance-count guard runs first, but an insert can still race it; the
// foreign-key violation maps to the same blocked-delete conflict.
func (r *DeviceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.Conflictf("Cannot delete device with existing maintenance record(s).")
		}
		return false, fmt.Errorf("delete device: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *DeviceRepo) List(ctx context.Context, sc scope.Scope) ([]repository.DeviceRow, error) {
	if sc.Empty() {
		return nil, nil
	}
	query := `
		SELECT d.id, d.device_code, d.name, d.brand, d.model, d.serial_number,
		       d.device_type, d.description, d.district_id, d.created_at, d.updated_at,
		       w.name
		FROM devices d
		JOIN districts w ON d.district_id = w.id`
	var args []any
	if !sc.Unbounded() {
		query += ` WHERE d.district_id = ANY($1)`
		args = append(args, sc.IDs())
	}
	query += ` ORDER BY d.device_code`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()
	var list []repository.DeviceRow
	for rows.Next() {
		var row repository.DeviceRow
		if err := rows.Scan(
			&row.ID, &row.DeviceCode, &row.Name, &row.Brand, &row.Model, &row.SerialNumber,
			&row.DeviceType, &row.Description, &row.DistrictID, &row.CreatedAt, &row.UpdatedAt,
			&row.DistrictName,
		); err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
