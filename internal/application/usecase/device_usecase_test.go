package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/application/usecase"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
)

func buildDeviceFixture() (*usecase.DeviceUseCase, *fakeDeviceRepo, *fakeMaintenanceRepo) {
	districts := newFakeDistrictRepo()
	districts.add(entity.District{ID: 1, Name: "North Zone", Type: entity.DistrictZone})
	districts.add(entity.District{ID: 2, Name: "Alpha Woreda", Type: entity.DistrictWoreda, ParentID: ptr(1)})
	districts.add(entity.District{ID: 3, Name: "Beta Woreda", Type: entity.DistrictWoreda, ParentID: ptr(1)})

	devices := newFakeDeviceRepo()
	maintenances := newFakeMaintenanceRepo(devices)
	resolver := scope.NewResolver(districts)
	uc := usecase.NewDeviceUseCase(devices, resolver,
		&fakeDeviceTx{devices: devices, maintenances: maintenances})
	return uc, devices, maintenances
}

func validDeviceRequest(districtID int64) dto.DeviceRequest {
	return dto.DeviceRequest{
		DeviceCode: "PC-0001",
		Name:       "Desktop Computer",
		Brand:      "Dell",
		Model:      "OptiPlex 7090",
		DeviceType: "Desktop",
		DistrictID: districtID,
	}
}

func TestDeviceCreate_WoredaOwnDistrictOnly(t *testing.T) {
	uc, _, _ := buildDeviceFixture()

	_, err := uc.Create(context.Background(), woredaActor, validDeviceRequest(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, err.Error(), "You can only add devices to your assigned district")

	_, err = uc.Create(context.Background(), woredaActor, validDeviceRequest(2))
	assert.NoError(t, err)
}

func TestDeviceCreate_ZoneIsReadOnly(t *testing.T) {
	uc, _, _ := buildDeviceFixture()

	_, err := uc.Create(context.Background(), zoneActor, validDeviceRequest(2))
	assert.ErrorIs(t, err, domain.ErrForbidden, "zone actors never mutate assets")
}

func TestDeviceCreate_DuplicateCode(t *testing.T) {
	uc, devices, _ := buildDeviceFixture()
	devices.add(entity.Device{DeviceCode: "PC-0001", Name: "Old PC", DistrictID: 3})

	_, err := uc.Create(context.Background(), adminActor, validDeviceRequest(2))
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.EqualError(t, err, "Device code already exists.")
}

func TestDeviceUpdate_WoredaCannotMoveDevice(t *testing.T) {
	uc, devices, _ := buildDeviceFixture()
	stored := devices.add(entity.Device{DeviceCode: "PC-0002", Name: "Laptop", DeviceType: "Laptop", DistrictID: 2})

	in := validDeviceRequest(3)
	in.DeviceCode = "PC-0002"
	_, err := uc.Update(context.Background(), woredaActor, stored.ID, in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "You cannot change the district of a device")

	// Admin may move it.
	_, err = uc.Update(context.Background(), adminActor, stored.ID, in)
	assert.NoError(t, err)
}

func TestDeviceUpdate_WoredaCannotTouchForeignDevice(t *testing.T) {
	uc, devices, _ := buildDeviceFixture()
	stored := devices.add(entity.Device{DeviceCode: "PC-0003", Name: "Printer", DeviceType: "Printer", DistrictID: 3})

	_, err := uc.Update(context.Background(), woredaActor, stored.ID, validDeviceRequest(3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "You can only edit devices in your assigned district")
}

func TestDeviceDelete_BlockedByMaintenanceRecords(t *testing.T) {
	uc, devices, maintenances := buildDeviceFixture()
	stored := devices.add(entity.Device{DeviceCode: "PC-0004", Name: "Server", DeviceType: "Server", DistrictID: 2})
	maintenances.add(entity.MaintenanceRecord{DeviceID: stored.ID, Status: entity.StatusPending, MaintenanceDate: time.Now()})
	maintenances.add(entity.MaintenanceRecord{DeviceID: stored.ID, Status: entity.StatusCompleted, MaintenanceDate: time.Now()})

	err := uc.Delete(context.Background(), adminActor, stored.ID)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.EqualError(t, err, "Cannot delete device with 2 existing maintenance record(s).")
	assert.Contains(t, devices.rows, stored.ID, "the device must survive a blocked delete")
}

func TestDeviceDelete_CleanDeviceSucceeds(t *testing.T) {
	uc, devices, _ := buildDeviceFixture()
	stored := devices.add(entity.Device{DeviceCode: "PC-0005", Name: "Switch", DeviceType: "Network", DistrictID: 2})

	require.NoError(t, uc.Delete(context.Background(), woredaActor, stored.ID))
	assert.NotContains(t, devices.rows, stored.ID)
}

func TestDeviceList_ScopedPerRole(t *testing.T) {
	uc, devices, _ := buildDeviceFixture()
	devices.add(entity.Device{DeviceCode: "A-1", Name: "A", DeviceType: "Desktop", DistrictID: 2})
	devices.add(entity.Device{DeviceCode: "B-1", Name: "B", DeviceType: "Desktop", DistrictID: 3})

	zoneRows, err := uc.List(context.Background(), zoneActor)
	require.NoError(t, err)
	assert.Len(t, zoneRows, 2, "zone reads all child-woreda devices")

	woredaRows, err := uc.List(context.Background(), woredaActor)
	require.NoError(t, err)
	assert.Len(t, woredaRows, 1)
}

func TestDeviceGetByID_OutOfScopeReadsAsNotFound(t *testing.T) {
	uc, devices, _ := buildDeviceFixture()
	stored := devices.add(entity.Device{DeviceCode: "C-1", Name: "C", DeviceType: "Desktop", DistrictID: 3})

	_, err := uc.GetByID(context.Background(), woredaActor, stored.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
