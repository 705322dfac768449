package repository

import (
	"context"

	"github.com/bereketw/itadmin-api/internal/domain/entity"
)

// DistrictRow is a district joined with its parent's name for listings.
type DistrictRow struct {
	entity.District
	ParentName string
}

// DistrictRepository is the persistence port for the geographic hierarchy.
type DistrictRepository interface {
	Create(ctx context.Context, d *entity.District) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.District, error)
	// FindByName looks up a district by case-insensitive name, skipping
	// excludeID (0 to match any row). Returns nil when no district matches.
	FindByName(ctx context.Context, name string, excludeID int64) (*entity.District, error)
	Update(ctx context.Context, d *entity.District) error
	// Delete removes the district and reports whether a row was deleted.
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]DistrictRow, error)
	ListZones(ctx context.Context) ([]*entity.District, error)
	ListChildren(ctx context.Context, parentID int64) ([]*entity.District, error)
	ChildIDs(ctx context.Context, parentID int64) ([]int64, error)
}
