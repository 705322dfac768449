package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

var _ repository.DistrictRepository = (*DistrictRepo)(nil)

// DistrictRepo implements the DistrictRepository port over PostgreSQL.
type DistrictRepo struct {
	db DBTX
}

// NewDistrictRepository builds the persistence adapter for districts.
func NewDistrictRepository(db DBTX) *DistrictRepo {
	return &DistrictRepo{db: db}
}

// Create persists a new district and returns its id.
func (r *DistrictRepo) Create(ctx context.Context, d *entity.District) (int64, error) {
	const query = `
		INSERT INTO districts (name, type, parent_id)
		VALUES ($1, $2, $3)
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query, d.Name, d.Type, d.ParentID).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.Conflictf("District name '%s' already exists.", d.Name)
		}
		return 0, fmt.Errorf("insert district: %w", err)
	}
	return id, nil
}

// GetByID fetches one district. Returns nil when no row matches.
func (r *DistrictRepo) GetByID(ctx context.Context, id int64) (*entity.District, error) {
	const query = `
		SELECT id, name, type, parent_id, created_at, updated_at
		FROM districts WHERE id = $1`
	var d entity.District
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Type, &d.ParentID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get district: %w", err)
	}
	return &d, nil
}

// FindByName looks up a district by case-insensitive name, skipping
// excludeID. Returns nil when the name is free.
func (r *DistrictRepo) FindByName(ctx context.Context, name string, excludeID int64) (*entity.District, error) {
	const query = `
		SELECT id, name, type, parent_id, created_at, updated_at
		FROM districts WHERE LOWER(name) = LOWER($1) AND id <> $2`
	var d entity.District
	err := r.db.QueryRow(ctx, query, name, excludeID).Scan(
		&d.ID, &d.Name, &d.Type, &d.ParentID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find district by name: %w", err)
	}
	return &d, nil
}

// Update replaces the mutable fields of a district.
func (r *DistrictRepo) Update(ctx context.Context, d *entity.District) error {
	const query = `
		UPDATE districts SET name = $2, type = $3, parent_id = $4, updated_at = now()
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, d.ID, d.Name, d.Type, d.ParentID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflictf("District name '%s' already exists.", d.Name)
		}
		return fmt.Errorf("update district: %w", err)
	}
	return nil
}

// Delete removes a district and reports whether a row was deleted. A
// foreign-key violation here means the guard raced a dependent insert; it
// maps to the same blocked-delete conflict.
func (r *DistrictRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM districts WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.Conflictf("Cannot delete this District because it is currently linked to users, training sessions, or is a parent to another Woreda/Zone.")
		}
		return false, fmt.Errorf("delete district: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List returns the whole hierarchy with parent names, Zones before their
// Woredas.
func (r *DistrictRepo) List(ctx context.Context) ([]repository.DistrictRow, error) {
	const query = `
		SELECT d.id, d.name, d.type, d.parent_id, d.created_at, d.updated_at,
		       COALESCE(p.name, '')
		FROM districts d
		LEFT JOIN districts p ON d.parent_id = p.id
		ORDER BY COALESCE(p.name, d.name), d.type, d.name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}
	defer rows.Close()
	var list []repository.DistrictRow
	for rows.Next() {
		var row repository.DistrictRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Type, &row.ParentID,
			&row.CreatedAt, &row.UpdatedAt, &row.ParentName,
		); err != nil {
			return nil, fmt.Errorf("scan district: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListZones returns the Zone rows only.
func (r *DistrictRepo) ListZones(ctx context.Context) ([]*entity.District, error) {
	const query = `
		SELECT id, name, type, parent_id, created_at, updated_at
		FROM districts WHERE type = 'Zone' ORDER BY name`
	return r.scanDistricts(ctx, query)
}

// ListChildren returns the direct children of a district.
func (r *DistrictRepo) ListChildren(ctx context.Context, parentID int64) ([]*entity.District, error) {
	const query = `
		SELECT id, name, type, parent_id, created_at, updated_at
		FROM districts WHERE parent_id = $1 ORDER BY name`
	return r.scanDistricts(ctx, query, parentID)
}

// ChildIDs returns the ids of a district's direct children. This is the
// lookup behind the scope resolver for Zone actors.
func (r *DistrictRepo) ChildIDs(ctx context.Context, parentID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM districts WHERE parent_id = $1`, parentID)
	if err != nil {
		return nil, fmt.Errorf("child district ids: %w", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan district id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *DistrictRepo) scanDistricts(ctx context.Context, query string, args ...any) ([]*entity.District, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query districts: %w", err)
	}
	defer rows.Close()
	var list []*entity.District
	for rows.Next() {
		var d entity.District
		if err := rows.Scan(&d.ID, &d.Name, &d.Type, &d.ParentID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan district: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
