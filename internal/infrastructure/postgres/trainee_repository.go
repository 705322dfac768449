package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

var _ repository.TraineeRepository = (*TraineeRepo)(nil)

// TraineeRepo implements the TraineeRepository port over PostgreSQL. Scope
// checks run through the owning session's district.
type TraineeRepo struct {
	db DBTX
}

// NewTraineeRepository builds the persistence adapter for trainees.
func NewTraineeRepository(db DBTX) *TraineeRepo {
	return &TraineeRepo{db: db}
}

func (r *TraineeRepo) Create(ctx context.Context, t *entity.Trainee) (int64, error) {
	const query = `
		INSERT INTO trainees (full_name, gender, phone, organization, session_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query,
		t.FullName, t.Gender, t.Phone, t.Organization, t.SessionID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert trainee: %w", err)
	}
	return id, nil
}

func (r *TraineeRepo) GetByID(ctx context.Context, id int64) (*repository.TraineeRow, error) {
	const query = `
		SELECT t.id, t.full_name, t.gender, t.phone, t.organization, t.session_id,
		       t.created_at, t.updated_at, s.title, s.district_id, w.name
		FROM trainees t
		JOIN training_sessions s ON t.session_id = s.id
		JOIN districts w ON s.district_id = w.id
		WHERE t.id = $1`
	var row repository.TraineeRow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.FullName, &row.Gender, &row.Phone, &row.Organization, &row.SessionID,
		&row.CreatedAt, &row.UpdatedAt, &row.SessionTitle, &row.DistrictID, &row.DistrictName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trainee: %w", err)
	}
	return &row, nil
}

func (r *TraineeRepo) Update(ctx context.Context, t *entity.Trainee) error {
	const query = `
		UPDATE trainees
		SET full_name = $2, gender = $3, phone = $4, organization = $5,
		    session_id = $6, updated_at = now()
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		t.ID, t.FullName, t.Gender, t.Phone, t.Organization, t.SessionID,
	)
	if err != nil {
		return fmt.Errorf("update trainee: %w", err)
	}
	return nil
}

func (r *TraineeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM trainees WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete trainee: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *TraineeRepo) List(ctx context.Context, sc scope.Scope) ([]repository.TraineeRow, error) {
	if sc.Empty() {
		return nil, nil
	}
	query := `
		SELECT t.id, t.full_name, t.gender, t.phone, t.organization, t.session_id,
		       t.created_at, t.updated_at, s.title, s.district_id, w.name
		FROM trainees t
		JOIN training_sessions s ON t.session_id = s.id
		JOIN districts w ON s.district_id = w.id`
	var args []any
	if !sc.Unbounded() {
		query += ` WHERE s.district_id = ANY($1)`
		args = append(args, sc.IDs())
	}
	query += ` ORDER BY t.full_name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trainees: %w", err)
	}
	defer rows.Close()
	var list []repository.TraineeRow
	for rows.Next() {
		var row repository.TraineeRow
		if err := rows.Scan(
			&row.ID, &row.FullName, &row.Gender, &row.Phone, &row.Organization, &row.SessionID,
			&row.CreatedAt, &row.UpdatedAt, &row.SessionTitle, &row.DistrictID, &row.DistrictName,
		); err != nil {
			return nil, fmt.Errorf("scan trainee: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *TraineeRepo) ListBySession(ctx context.Context, sessionID int64) ([]*entity.Trainee, error) {
	const query = `
		SELECT id, full_name, gender, phone, organization, session_id, created_at, updated_at
		FROM trainees WHERE session_id = $1 ORDER BY full_name`
	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list trainees by session: %w", err)
	}
	defer rows.Close()
	var list []*entity.Trainee
	for rows.Next() {
		var t entity.Trainee
		if err := rows.Scan(
			&t.ID, &t.FullName, &t.Gender, &t.Phone, &t.Organization, &t.SessionID,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan trainee: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *TraineeRepo) DeleteBySession(ctx context.Context, sessionID int64) (int64, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM trainees WHERE session_id = $1`, sessionID)
	if err != nil {
		return 0, fmt.Errorf("delete trainees by session: %w", err)
	}
	return cmd.RowsAffected(), nil
}
