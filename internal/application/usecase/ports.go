package usecase

import (
	"context"

	"github.com/bereketw/itadmin-api/internal/application/policy"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

// Transaction runners. Each delete that consults the referential guard runs
// the guard checks and the delete against repositories bound to one
// transaction, so a dependent row inserted between check and delete cannot
// slip through. Implemented by postgres.TxRunner.

// DistrictTxRunner runs fn with district, user and session repositories bound
// to a single transaction.
type DistrictTxRunner interface {
	RunDistrict(ctx context.Context, fn func(
		districts repository.DistrictRepository,
		users repository.UserRepository,
		sessions repository.TrainingSessionRepository,
	) error) error
}

// SessionTxRunner runs fn with session and trainee repositories bound to a
// single transaction (cascade delete).
type SessionTxRunner interface {
	RunSession(ctx context.Context, fn func(
		sessions repository.TrainingSessionRepository,
		trainees repository.TraineeRepository,
	) error) error
}

// DeviceTxRunner runs fn with device and maintenance repositories bound to a
// single transaction.
type DeviceTxRunner interface {
	RunDevice(ctx context.Context, fn func(
		devices repository.DeviceRepository,
		maintenances repository.MaintenanceRepository,
	) error) error
}

// authorize is the shared gate consulted before any service logic runs.
func authorize(actor entity.Actor, res policy.Resource, act policy.Action) error {
	if !policy.Allows(res, act, actor.Role) {
		return domain.Forbiddenf("insufficient permissions")
	}
	return nil
}
