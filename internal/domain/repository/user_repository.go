package repository

import (
	"context"

	"github.com/bereketw/itadmin-api/internal/domain/entity"
)

// UserRow is a user joined with the name of their assigned district.
type UserRow struct {
	entity.User
	DistrictName string
}

// UserRepository is the persistence port for the identity directory.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*UserRow, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// EmailExists reports whether another user (id != excludeID) already
	// holds the email.
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]UserRow, error)
	// CountByDistricts counts users assigned to any of the given districts.
	// Used by the referential guard before a district delete.
	CountByDistricts(ctx context.Context, districtIDs []int64) (int64, error)
}
