package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bereketw/itadmin-api/internal/application/usecase"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

// Ensure TxRunner implements the use-case transaction ports.
var _ usecase.DistrictTxRunner = (*TxRunner)(nil)
var _ usecase.SessionTxRunner = (*TxRunner)(nil)
var _ usecase.DeviceTxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction with
// repositories bound to that transaction. The referential-guard deletes run
// through it so the dependency checks and the delete are atomic.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) run(ctx context.Context, fn func(tx DBTX) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunDistrict runs fn with district, user and session repositories bound to
// one transaction.
func (r *TxRunner) RunDistrict(ctx context.Context, fn func(
	districts repository.DistrictRepository,
	users repository.UserRepository,
	sessions repository.TrainingSessionRepository,
) error) error {
	return r.run(ctx, func(tx DBTX) error {
		return fn(NewDistrictRepository(tx), NewUserRepository(tx), NewSessionRepository(tx))
	})
}

// RunSession runs fn with session and trainee repositories bound to one
// transaction.
func (r *TxRunner) RunSession(ctx context.Context, fn func(
	sessions repository.TrainingSessionRepository,
	trainees repository.TraineeRepository,
) error) error {
	return r.run(ctx, func(tx DBTX) error {
		return fn(NewSessionRepository(tx), NewTraineeRepository(tx))
	})
}

// RunDevice runs fn with device and maintenance repositories bound to one
// transaction.
func (r *TxRunner) RunDevice(ctx context.Context, fn func(
	devices repository.DeviceRepository,
	maintenances repository.MaintenanceRepository,
) error) error {
	return r.run(ctx, func(tx DBTX) error {
		return fn(NewDeviceRepository(tx), NewMaintenanceRepository(tx))
	})
}
