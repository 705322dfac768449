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

// buildDistrictFixture seeds one Zone (id 1) with a child Woreda (id 2).
func buildDistrictFixture() (*usecase.DistrictUseCase, *fakeDistrictRepo, *fakeUserRepo, *fakeSessionRepo) {
	districts := newFakeDistrictRepo()
	districts.add(entity.District{ID: 1, Name: "North Zone", Type: entity.DistrictZone})
	districts.add(entity.District{ID: 2, Name: "Alpha Woreda", Type: entity.DistrictWoreda, ParentID: ptr(1)})
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	uc := usecase.NewDistrictUseCase(districts, &fakeDistrictTx{districts: districts, users: users, sessions: sessions})
	return uc, districts, users, sessions
}

func TestDistrictCreate_ZoneIgnoresParent(t *testing.T) {
	uc, _, _, _ := buildDistrictFixture()

	out, err := uc.Create(context.Background(), zoneActor, dto.CreateDistrictRequest{
		Name:     "South Zone",
		Type:     entity.DistrictZone,
		ParentID: ptr(1), // submitted anyway; must be normalized to null
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DistrictZone, out.Type)
	assert.Nil(t, out.ParentID, "a Zone never carries a parent")
}

func TestDistrictCreate_WoredaRequiresParentZone(t *testing.T) {
	uc, _, _, _ := buildDistrictFixture()

	_, err := uc.Create(context.Background(), zoneActor, dto.CreateDistrictRequest{
		Name: "Orphan Woreda",
		Type: entity.DistrictWoreda,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.EqualError(t, err, "Woredas must be assigned to a Parent Zone.")
}

func TestDistrictCreate_WoredaParentMustBeZone(t *testing.T) {
	uc, _, _, _ := buildDistrictFixture()

	// id 2 is a Woreda, not a Zone.
	_, err := uc.Create(context.Background(), zoneActor, dto.CreateDistrictRequest{
		Name:     "Nested Woreda",
		Type:     entity.DistrictWoreda,
		ParentID: ptr(2),
	})
	require.Error(t, err)
	assert.EqualError(t, err, "Selected parent zone does not exist or is not a valid Zone.")
}

func TestDistrictCreate_DuplicateNameCaseInsensitive(t *testing.T) {
	uc, _, _, _ := buildDistrictFixture()

	_, err := uc.Create(context.Background(), zoneActor, dto.CreateDistrictRequest{
		Name: "north zone",
		Type: entity.DistrictZone,
	})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.EqualError(t, err, "District name 'North Zone' already exists.")
}

func TestDistrictCreate_OnlyZoneRoleMayWrite(t *testing.T) {
	uc, _, _, _ := buildDistrictFixture()

	for _, actor := range []entity.Actor{adminActor, woredaActor} {
		_, err := uc.Create(context.Background(), actor, dto.CreateDistrictRequest{
			Name: "New Zone",
			Type: entity.DistrictZone,
		})
		assert.ErrorIs(t, err, domain.ErrForbidden, "role %s must not create districts", actor.Role)
	}
}

func TestDistrictDelete_BlockedByChildren(t *testing.T) {
	uc, _, _, _ := buildDistrictFixture()

	err := uc.Delete(context.Background(), zoneActor, 1)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.EqualError(t, err, "Cannot delete Zone 'North Zone'. It is a parent to 1 Woreda(s). Please reassign or delete the child districts first.")
}

func TestDistrictDelete_WoredaBlockedByUsers(t *testing.T) {
	uc, districts, users, _ := buildDistrictFixture()

	districts.add(entity.District{ID: 3, Name: "Gamma Woreda", Type: entity.DistrictWoreda, ParentID: ptr(1)})
	users.add(entity.User{ID: 10, Email: "w@example.com", Role: entity.RoleWoreda, DistrictID: 3})

	err := uc.Delete(context.Background(), zoneActor, 3)
	require.Error(t, err)
	assert.EqualError(t, err, "Cannot delete Woreda 'Gamma Woreda'. It has 1 user(s) assigned to it. Please reassign the users first.")
}

func TestDistrictDelete_WoredaBlockedBySessions(t *testing.T) {
	uc, _, _, sessions := buildDistrictFixture()
	sessions.add(sessionRowInDistrict(2))
	sessions.add(sessionRowInDistrict(2))

	err := uc.Delete(context.Background(), zoneActor, 2)
	require.Error(t, err)
	assert.EqualError(t, err, "Cannot delete Woreda 'Alpha Woreda'. It has 2 training session(s) assigned to it. Please reassign the training sessions first.")
}

func TestDistrictDelete_LeafSucceeds(t *testing.T) {
	uc, districts, _, _ := buildDistrictFixture()

	require.NoError(t, uc.Delete(context.Background(), zoneActor, 2))
	d, err := districts.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, d, "the Woreda row must be gone")
}

func TestDistrictDelete_NotFound(t *testing.T) {
	uc, _, _, _ := buildDistrictFixture()
	err := uc.Delete(context.Background(), zoneActor, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDistrictUpdate_ExcludesSelfFromNameCheck(t *testing.T) {
	uc, _, _, _ := buildDistrictFixture()

	// Re-saving under its own name is not a duplicate.
	out, err := uc.Update(context.Background(), zoneActor, 1, dto.UpdateDistrictRequest{
		Name: "North Zone",
		Type: entity.DistrictZone,
	})
	require.NoError(t, err)
	assert.Equal(t, "North Zone", out.Name)
}

func TestDistrictList_VisibleToEveryRole(t *testing.T) {
	uc, _, _, _ := buildDistrictFixture()

	for _, actor := range []entity.Actor{adminActor, zoneActor, woredaActor} {
		rows, err := uc.List(context.Background(), actor)
		require.NoError(t, err)
		assert.Len(t, rows, 2, "districts are reference data for role %s", actor.Role)
	}
}

func TestDistrictList_IncludesParentName(t *testing.T) {
	uc, _, _, _ := buildDistrictFixture()

	rows, err := uc.List(context.Background(), adminActor)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "North Zone", rows[1].ParentName)
}
