package usecase

import (
	"context"
	"strings"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/policy"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

// CategoryUseCase manages the flat training-category lookup. Zone and Woreda
// actors maintain it; everyone reads it.
type CategoryUseCase struct {
	repo repository.TrainingCategoryRepository
}

// NewCategoryUseCase constructs the use case.
func NewCategoryUseCase(repo repository.TrainingCategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create adds a category.
func (uc *CategoryUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := authorize(actor, policy.Categories, policy.Create); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	c := &entity.TrainingCategory{Name: in.Name}
	id, err := uc.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return toCategoryResponse(c), nil
}

// Update renames a category.
func (uc *CategoryUseCase) Update(ctx context.Context, actor entity.Actor, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := authorize(actor, policy.Categories, policy.Update); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = in.Name
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// Delete removes a category. There is no count pre-check here; a category
// still referenced by sessions surfaces as a foreign-key conflict from the
// store, which the repository maps to a friendly ConflictError.
func (uc *CategoryUseCase) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	if err := authorize(actor, policy.Categories, policy.Delete); err != nil {
		return err
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all categories.
func (uc *CategoryUseCase) List(ctx context.Context, actor entity.Actor) ([]dto.CategoryResponse, error) {
	if err := authorize(actor, policy.Categories, policy.Read); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

func toCategoryResponse(c *entity.TrainingCategory) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}
}
