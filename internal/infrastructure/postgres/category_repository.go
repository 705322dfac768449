package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

var _ repository.TrainingCategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implements the TrainingCategoryRepository port over PostgreSQL.
type CategoryRepo struct {
	db DBTX
}

// NewCategoryRepository builds the persistence adapter for training categories.
func NewCategoryRepository(db DBTX) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.TrainingCategory) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO training_categories (name) VALUES ($1) RETURNING id`, c.Name,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.Conflictf("Category '%s' already exists.", c.Name)
		}
		return 0, fmt.Errorf("insert category: %w", err)
	}
	return id, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.TrainingCategory, error) {
	var c entity.TrainingCategory
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM training_categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.TrainingCategory) error {
	_, err := r.db.Exec(ctx,
		`UPDATE training_categories SET name = $2, updated_at = now() WHERE id = $1`,
		c.ID, c.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflictf("Category '%s' already exists.", c.Name)
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes the category. Sessions hold a restricting foreign key, so a
// category still in use surfaces as a conflict instead of a raw 23503.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM training_categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.Conflictf("Cannot delete category. It is used by existing training sessions.")
		}
		return false, fmt.Errorf("delete category: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]*entity.TrainingCategory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM training_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.TrainingCategory
	for rows.Next() {
		var c entity.TrainingCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
