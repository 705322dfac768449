package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/policy"
	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

// MaintenanceUseCase manages repair records. Writes follow the device rules:
// Zone is read-only, a Woreda actor stays inside their own district. Status
// transitions are unconstrained.
type MaintenanceUseCase struct {
	maintenances repository.MaintenanceRepository
	devices      repository.DeviceRepository
	resolver     *scope.Resolver
}

// NewMaintenanceUseCase constructs the use case.
func NewMaintenanceUseCase(
	maintenances repository.MaintenanceRepository,
	devices repository.DeviceRepository,
	resolver *scope.Resolver,
) *MaintenanceUseCase {
	return &MaintenanceUseCase{maintenances: maintenances, devices: devices, resolver: resolver}
}

// Create logs a maintenance record. The technician is the acting user.
func (uc *MaintenanceUseCase) Create(ctx context.Context, actor entity.Actor, in dto.MaintenanceRequest) (*dto.MaintenanceResponse, error) {
	if err := authorize(actor, policy.Maintenance, policy.Create); err != nil {
		return nil, err
	}
	trimMaintenanceRequest(&in)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if !entity.ValidMaintenanceStatus(in.Status) {
		return nil, domain.Validationf("Please select a valid status.")
	}
	if err := uc.checkDeviceWrite(ctx, actor, in.DeviceID, "add maintenance records for"); err != nil {
		return nil, err
	}
	m, err := maintenanceFromRequest(in)
	if err != nil {
		return nil, err
	}
	m.UserID = actor.UserID
	id, err := uc.maintenances.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return toMaintenanceResponse(&repository.MaintenanceRow{MaintenanceRecord: *m}), nil
}

// Update replaces a record's fields. Both the record's current device and the
// newly submitted one must be writable by the actor.
func (uc *MaintenanceUseCase) Update(ctx context.Context, actor entity.Actor, id int64, in dto.MaintenanceRequest) (*dto.MaintenanceResponse, error) {
	if err := authorize(actor, policy.Maintenance, policy.Update); err != nil {
		return nil, err
	}
	trimMaintenanceRequest(&in)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if !entity.ValidMaintenanceStatus(in.Status) {
		return nil, domain.Validationf("Please select a valid status.")
	}
	row, err := uc.maintenances.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Role == entity.RoleWoreda {
		own, ok := actor.District()
		if !ok || row.DistrictID != own {
			return nil, domain.Forbiddenf("You can only edit maintenance records for devices in your assigned district")
		}
	}
	if err := uc.checkDeviceWrite(ctx, actor, in.DeviceID, "assign maintenance to"); err != nil {
		return nil, err
	}
	m, err := maintenanceFromRequest(in)
	if err != nil {
		return nil, err
	}
	m.ID = id
	m.UserID = row.UserID
	if err := uc.maintenances.Update(ctx, m); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(&repository.MaintenanceRow{MaintenanceRecord: *m}), nil
}

// Delete removes a maintenance record. Nothing depends on one, so there is no
// referential guard here.
func (uc *MaintenanceUseCase) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	if err := authorize(actor, policy.Maintenance, policy.Delete); err != nil {
		return err
	}
	row, err := uc.maintenances.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return domain.ErrNotFound
	}
	if actor.Role == entity.RoleWoreda {
		own, ok := actor.District()
		if !ok || row.DistrictID != own {
			return domain.Forbiddenf("You can only delete maintenance records for devices in your assigned district")
		}
	}
	deleted, err := uc.maintenances.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID fetches one record inside the actor's scope.
func (uc *MaintenanceUseCase) GetByID(ctx context.Context, actor entity.Actor, id int64) (*dto.MaintenanceResponse, error) {
	if err := authorize(actor, policy.Maintenance, policy.Read); err != nil {
		return nil, err
	}
	row, err := uc.maintenances.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	sc, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !sc.Contains(row.DistrictID) {
		return nil, domain.ErrNotFound
	}
	return toMaintenanceResponse(row), nil
}

// List returns the records whose devices fall inside the actor's scope.
func (uc *MaintenanceUseCase) List(ctx context.Context, actor entity.Actor) ([]dto.MaintenanceResponse, error) {
	if err := authorize(actor, policy.Maintenance, policy.Read); err != nil {
		return nil, err
	}
	sc, err := uc.resolver.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}
	rows, err := uc.maintenances.List(ctx, sc)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaintenanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toMaintenanceResponse(&rows[i]))
	}
	return out, nil
}

// checkDeviceWrite verifies the target device exists and, for Woreda actors,
// sits in their own district.
func (uc *MaintenanceUseCase) checkDeviceWrite(ctx context.Context, actor entity.Actor, deviceID int64, verb string) error {
	d, err := uc.devices.GetByID(ctx, deviceID)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.Validationf("Device not found.")
	}
	if actor.Role == entity.RoleWoreda {
		own, ok := actor.District()
		if !ok || d.DistrictID != own {
			return domain.Forbiddenf("You can only %s devices in your assigned district", verb)
		}
	}
	return nil
}

func trimMaintenanceRequest(in *dto.MaintenanceRequest) {
	in.IssueDescription = strings.TrimSpace(in.IssueDescription)
	in.ActionTaken = strings.TrimSpace(in.ActionTaken)
	in.Remarks = strings.TrimSpace(in.Remarks)
}

func maintenanceFromRequest(in dto.MaintenanceRequest) (*entity.MaintenanceRecord, error) {
	date, err := time.Parse(dto.DateLayout, in.MaintenanceDate)
	if err != nil {
		return nil, domain.Validationf("Field 'maintenance_date' must be a date in YYYY-MM-DD format")
	}
	return &entity.MaintenanceRecord{
		DeviceID:         in.DeviceID,
		IssueDescription: in.IssueDescription,
		ActionTaken:      in.ActionTaken,
		Status:           in.Status,
		MaintenanceDate:  date,
		Remarks:          in.Remarks,
	}, nil
}

func toMaintenanceResponse(row *repository.MaintenanceRow) *dto.MaintenanceResponse {
	return &dto.MaintenanceResponse{
		ID:               row.ID,
		DeviceID:         row.DeviceID,
		DeviceCode:       row.DeviceCode,
		DeviceName:       row.DeviceName,
		IssueDescription: row.IssueDescription,
		ActionTaken:      row.ActionTaken,
		Status:           row.Status,
		MaintenanceDate:  row.MaintenanceDate.Format(dto.DateLayout),
		Remarks:          row.Remarks,
		DistrictName:     row.DistrictName,
		TechnicianName:   row.TechnicianName,
	}
}
