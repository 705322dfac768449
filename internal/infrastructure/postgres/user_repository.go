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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implements the UserRepository port over PostgreSQL.
type UserRepo struct {
	db DBTX
}

// NewUserRepository builds the persistence adapter for users.
func NewUserRepository(db DBTX) *UserRepo {
	return &UserRepo{db: db}
}

// Create persists a new user and returns their id.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) (int64, error) {
	const query = `
		INSERT INTO users (firstname, lastname, email, password, role, sex, district_id, phone, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query,
		u.FirstName, u.LastName, u.Email, u.PasswordHash,
		u.Role, u.Sex, u.DistrictID, u.Phone, u.Position,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.Conflictf("Email already exists")
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// GetByID fetches one user joined with their district name. Returns nil when
// no row matches.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*repository.UserRow, error) {
	const query = `
		SELECT u.id, u.firstname, u.lastname, u.email, u.password, u.role, u.sex,
		       u.district_id, u.phone, u.position, u.created_at, u.updated_at, w.name
		FROM users u
		JOIN districts w ON u.district_id = w.id
		WHERE u.id = $1`
	var row repository.UserRow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.FirstName, &row.LastName, &row.Email, &row.PasswordHash,
		&row.Role, &row.Sex, &row.DistrictID, &row.Phone, &row.Position,
		&row.CreatedAt, &row.UpdatedAt, &row.DistrictName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &row, nil
}

// GetByEmail fetches one user by exact email, for login.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
		SELECT id, firstname, lastname, email, password, role, sex,
		       district_id, phone, position, created_at, updated_at
		FROM users WHERE email = $1`
	var u entity.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.Role, &u.Sex, &u.DistrictID, &u.Phone, &u.Position,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// EmailExists reports whether another user already holds the email.
func (r *UserRepo) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		email, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("email exists: %w", err)
	}
	return exists, nil
}

// Update replaces a user's mutable fields, including the password hash.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	const query = `
		UPDATE users SET firstname = $2, lastname = $3, email = $4, password = $5,
		       role = $6, sex = $7, district_id = $8, phone = $9, position = $10,
		       updated_at = now()
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash,
		u.Role, u.Sex, u.DistrictID, u.Phone, u.Position,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflictf("Email already exists")
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes a user and reports whether a row was deleted. Sessions and
// maintenance records keep RESTRICT references to their user, so a
// foreign-key violation here means the account still owns records.
func (r *UserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.Conflictf("Cannot delete this user. They have created training sessions or maintenance records. Please reassign those records first.")
		}
		return false, fmt.Errorf("delete user: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List returns every user with district names.
func (r *UserRepo) List(ctx context.Context) ([]repository.UserRow, error) {
	const query = `
		SELECT u.id, u.firstname, u.lastname, u.email, u.password, u.role, u.sex,
		       u.district_id, u.phone, u.position, u.created_at, u.updated_at, w.name
		FROM users u
		JOIN districts w ON u.district_id = w.id
		ORDER BY u.firstname, u.lastname`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []repository.UserRow
	for rows.Next() {
		var row repository.UserRow
		if err := rows.Scan(
			&row.ID, &row.FirstName, &row.LastName, &row.Email, &row.PasswordHash,
			&row.Role, &row.Sex, &row.DistrictID, &row.Phone, &row.Position,
			&row.CreatedAt, &row.UpdatedAt, &row.DistrictName,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CountByDistricts counts users assigned to any of the given districts.
func (r *UserRepo) CountByDistricts(ctx context.Context, districtIDs []int64) (int64, error) {
	if len(districtIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE district_id = ANY($1)`, districtIDs,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count users by district: %w", err)
	}
	return count, nil
}
