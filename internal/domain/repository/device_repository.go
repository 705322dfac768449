package repository

import (
	"context"

	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
)

// DeviceRow is a device joined with its district name.
type DeviceRow struct {
	entity.Device
	DistrictName string
}

// DeviceRepository is the persistence port for IT assets.
type DeviceRepository interface {
	Create(ctx context.Context, d *entity.Device) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Device, error)
	// CodeExists reports whether another device (id != excludeID) already
	// uses the inventory code.
	CodeExists(ctx context.Context, code string, excludeID int64) (bool, error)
	Update(ctx context.Context, d *entity.Device) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, sc scope.Scope) ([]DeviceRow, error)
}

// MaintenanceRow is a maintenance record joined with device and district
// detail needed for scope checks and listings.
type MaintenanceRow struct {
	entity.MaintenanceRecord
	DeviceCode     string
	DeviceName     string
	DistrictID     int64
	DistrictName   string
	TechnicianName string
}

// MaintenanceRepository is the persistence port for maintenance records.
type MaintenanceRepository interface {
	Create(ctx context.Context, m *entity.MaintenanceRecord) (int64, error)
	GetByID(ctx context.Context, id int64) (*MaintenanceRow, error)
	Update(ctx context.Context, m *entity.MaintenanceRecord) error
	Delete(ctx context.Context, id int64) (bool, error)
	// List filters through the record's device district.
	List(ctx context.Context, sc scope.Scope) ([]MaintenanceRow, error)
	// CountByDevice counts records referencing the device. Used by the
	// referential guard before a device delete.
	CountByDevice(ctx context.Context, deviceID int64) (int64, error)
}
