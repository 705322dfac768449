package usecase

import (
	"context"
	"strings"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/policy"
	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

// DeviceUseCase manages IT assets. Zone actors are read-only: they view child
// Woreda devices but never mutate them.
type DeviceUseCase struct {
	devices  repository.DeviceRepository
	resolver *scope.Resolver
	tx       DeviceTxRunner
}

// NewDeviceUseCase constructs the use case.
func NewDeviceUseCase(devices repository.DeviceRepository, resolver *scope.Resolver, tx DeviceTxRunner) *DeviceUseCase {
	return &DeviceUseCase{devices: devices, resolver: resolver, tx: tx}
}

// Create registers a device. A Woreda actor may only place it in their own
// district; the inventory code must be free.
func (uc *DeviceUseCase) Create(ctx context.Context, actor entity.Actor, in dto.DeviceRequest) (*dto.DeviceResponse, error) {
	if err := authorize(actor, policy.Devices, policy.Create); err != nil {
		return nil, err
	}
	trimDeviceRequest(&in)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if actor.Role == entity.RoleWoreda {
		own, ok := actor.District()
		if !ok || own != in.DistrictID {
			return nil, domain.Forbiddenf("You can only add devices to your assigned district")
		}
	}
	exists, err := uc.devices.CodeExists(ctx, in.DeviceCode, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflictf("Device code already exists.")
	}
	d := deviceFromRequest(in)
	id, err := uc.devices.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	d.ID = id
	return toDeviceResponse(&repository.DeviceRow{Device: *d}), nil
}

// Update replaces a device's fields. A Woreda actor may only touch devices in
// their own district and may never move a device to another district.
func (uc *DeviceUseCase) Update(ctx context.Context, actor entity.Actor, id int64, in dto.DeviceRequest) (*dto.DeviceResponse, error) {
	if err := authorize(actor, policy.Devices, policy.Update); err != nil {
		return nil, err
	}
	trimDeviceRequest(&in)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	existing, err := uc.devices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Role == entity.RoleWoreda {
		own, ok := actor.District()
		if !ok || existing.DistrictID != own {
			return nil, domain.Forbiddenf("You can only edit devices in your assigned district")
		}
		if in.DistrictID != own {
			return nil, domain.Forbiddenf("You cannot change the district of a device")
		}
	}
	exists, err := uc.devices.CodeExists(ctx, in.DeviceCode, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflictf("Device code already exists.")
	}
	d := deviceFromRequest(in)
	d.ID = id
	if err := uc.devices.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDeviceResponse(&repository.DeviceRow{Device: *d}), nil
}

// Delete removes a device unless maintenance records still reference it. The
// dependency count and the delete run in one transaction.
func (uc *DeviceUseCase) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	if err := authorize(actor, policy.Devices, policy.Delete); err != nil {
		return err
	}
	return uc.tx.RunDevice(ctx, func(
		devices repository.DeviceRepository,
		maintenances repository.MaintenanceRepository,
	) error {
		d, err := devices.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return domain.ErrNotFound
		}
		if actor.Role == entity.RoleWoreda {
			own, ok := actor.District()
			if !ok || d.DistrictID != own {
				return domain.Forbiddenf("You can only delete devices in your assigned district")
			}
		}
		count, err := maintenances.CountByDevice(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.Conflictf("Cannot delete device with %d existing maintenance record(s).", count)
		}
		deleted, err := devices.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrNotFound
		}
		return nil
	})
}

// GetByID fetches one device inside the actor's scope.
func (uc *DeviceUseCase) GetByID(ctx context.Context, actor entity.Actor, id int64) (*dto.DeviceResponse, error) {
	if err := authorize(actor, policy.Devices, policy.Read); err != nil {
		return nil, err
	}
	d, err := uc.devices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	sc, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !sc.Contains(d.DistrictID) {
		return nil, domain.ErrNotFound
	}
	return toDeviceResponse(&repository.DeviceRow{Device: *d}), nil
}

// List returns the devices inside the actor's scope.
func (uc *DeviceUseCase) List(ctx context.Context, actor entity.Actor) ([]dto.DeviceResponse, error) {
	if err := authorize(actor, policy.Devices, policy.Read); err != nil {
		return nil, err
	}
	sc, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}
	rows, err := uc.devices.List(ctx, sc)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeviceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toDeviceResponse(&rows[i]))
	}
	return out, nil
}

func trimDeviceRequest(in *dto.DeviceRequest) {
	in.DeviceCode = strings.TrimSpace(in.DeviceCode)
	in.Name = strings.TrimSpace(in.Name)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	in.SerialNumber = strings.TrimSpace(in.SerialNumber)
	in.DeviceType = strings.TrimSpace(in.DeviceType)
	in.Description = strings.TrimSpace(in.Description)
}

func deviceFromRequest(in dto.DeviceRequest) *entity.Device {
	return &entity.Device{
		DeviceCode:   in.DeviceCode,
		Name:         in.Name,
		Brand:        in.Brand,
		Model:        in.Model,
		SerialNumber: in.SerialNumber,
		DeviceType:   in.DeviceType,
		Description:  in.Description,
		DistrictID:   in.DistrictID,
	}
}

func toDeviceResponse(row *repository.DeviceRow) *dto.DeviceResponse {
	return &dto.DeviceResponse{
		ID:           row.ID,
		DeviceCode:   row.DeviceCode,
		Name:         row.Name,
		Brand:        row.Brand,
		Model:        row.Model,
		SerialNumber: row.SerialNumber,
		DeviceType:   row.DeviceType,
		Description:  row.Description,
		DistrictID:   row.DistrictID,
		DistrictName: row.DistrictName,
	}
}
