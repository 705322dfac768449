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

var _ repository.TrainingSessionRepository = (*SessionRepo)(nil)

// SessionRepo implements the TrainingSessionRepository port over PostgreSQL.
type SessionRepo struct {
	db DBTX
}

// NewSessionRepository builds the persistence adapter for training sessions.
func NewSessionRepository(db DBTX) *SessionRepo {
	return &SessionRepo{db: db}
}

const sessionColumns = `
	s.id, s.title, s.district_id, s.category_id, s.start_date, s.end_date,
	s.budget, s.created_by, s.created_at, s.updated_at,
	w.name, c.name,
	(SELECT COUNT(*) FROM trainees t WHERE t.session_id = s.id)`

func (r *SessionRepo) Create(ctx context.Context, s *entity.TrainingSession) (int64, error) {
	const query = `
		INSERT INTO training_sessions (title, district_id, category_id, start_date, end_date, budget, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query,
		s.Title, s.DistrictID, s.CategoryID, s.StartDate, s.EndDate, s.Budget, s.CreatedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}
	return id, nil
}

func (r *SessionRepo) GetByID(ctx context.Context, id int64) (*repository.SessionRow, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM training_sessions s
		JOIN districts w ON s.district_id = w.id
		JOIN training_categories c ON s.category_id = c.id
		WHERE s.id = $1`
	var row repository.SessionRow
	err := r.db.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Title, &row.DistrictID, &row.CategoryID, &row.StartDate, &row.EndDate,
		&row.Budget, &row.CreatedBy, &row.CreatedAt, &row.UpdatedAt,
		&row.DistrictName, &row.CategoryName, &row.TraineeCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &row, nil
}

func (r *SessionRepo) Update(ctx context.Context, s *entity.TrainingSession) error {
	const query = `
		UPDATE training_sessions
		SET title = $2, district_id = $3, category_id = $4, start_date = $5,
		    end_date = $6, budget = $7, updated_at = now()
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.Title, s.DistrictID, s.CategoryID, s.StartDate, s.EndDate, s.Budget,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func (r *SessionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM training_sessions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *SessionRepo) List(ctx context.Context, sc scope.Scope) ([]repository.SessionRow, error) {
	if sc.Empty() {
		return nil, nil
	}
	query := `
		SELECT ` + sessionColumns + `
		FROM training_sessions s
		JOIN districts w ON s.district_id = w.id
		JOIN training_categories c ON s.category_id = c.id`
	var args []any
	if !sc.Unbounded() {
		query += ` WHERE s.district_id = ANY($1)`
		args = append(args, sc.IDs())
	}
	query += ` ORDER BY s.start_date DESC, s.id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()
	var list []repository.SessionRow
	for rows.Next() {
		var row repository.SessionRow
		if err := rows.Scan(
			&row.ID, &row.Title, &row.DistrictID, &row.CategoryID, &row.StartDate, &row.EndDate,
			&row.Budget, &row.CreatedBy, &row.CreatedAt, &row.UpdatedAt,
			&row.DistrictName, &row.CategoryName, &row.TraineeCount,
		); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *SessionRepo) CountByDistricts(ctx context.Context, districtIDs []int64) (int64, error) {
	if len(districtIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM training_sessions WHERE district_id = ANY($1)`, districtIDs,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sessions by district: %w", err)
	}
	return count, nil
}
