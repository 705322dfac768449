package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/usecase"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
)

func buildCategoryFixture() (*usecase.CategoryUseCase, *fakeCategoryRepo) {
	repo := newFakeCategoryRepo()
	return usecase.NewCategoryUseCase(repo), repo
}

func TestCategoryCreate_TrimsName(t *testing.T) {
	uc, repo := buildCategoryFixture()

	out, err := uc.Create(context.Background(), zoneActor, dto.CategoryRequest{Name: "  Networking  "})
	require.NoError(t, err)

	assert.Equal(t, "Networking", out.Name)
	assert.Equal(t, "Networking", repo.rows[out.ID].Name)
}

func TestCategoryCreate_RequiresName(t *testing.T) {
	uc, _ := buildCategoryFixture()

	_, err := uc.Create(context.Background(), woredaActor, dto.CategoryRequest{Name: "   "})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "Field 'name' is required")
}

func TestCategoryWrite_AdminDenied(t *testing.T) {
	uc, repo := buildCategoryFixture()
	stored := repo.add(entity.TrainingCategory{Name: "Networking"})

	_, err := uc.Create(context.Background(), adminActor, dto.CategoryRequest{Name: "Hardware"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Update(context.Background(), adminActor, stored.ID, dto.CategoryRequest{Name: "Hardware"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(context.Background(), adminActor, stored.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCategoryUpdate(t *testing.T) {
	uc, repo := buildCategoryFixture()
	stored := repo.add(entity.TrainingCategory{Name: "Networking"})

	out, err := uc.Update(context.Background(), woredaActor, stored.ID, dto.CategoryRequest{Name: "Network Administration"})
	require.NoError(t, err)
	assert.Equal(t, "Network Administration", out.Name)

	_, err = uc.Update(context.Background(), woredaActor, 99, dto.CategoryRequest{Name: "Hardware"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryDelete(t *testing.T) {
	uc, repo := buildCategoryFixture()
	stored := repo.add(entity.TrainingCategory{Name: "Networking"})

	require.NoError(t, uc.Delete(context.Background(), zoneActor, stored.ID))
	assert.NotContains(t, repo.rows, stored.ID)

	err := uc.Delete(context.Background(), zoneActor, stored.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryList_EveryoneReads(t *testing.T) {
	uc, repo := buildCategoryFixture()
	repo.add(entity.TrainingCategory{Name: "Networking"})
	repo.add(entity.TrainingCategory{Name: "Hardware Maintenance"})

	for _, actor := range []entity.Actor{adminActor, zoneActor, woredaActor} {
		list, err := uc.List(context.Background(), actor)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	}
}
