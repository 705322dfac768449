package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/scope"
	"github.com/bereketw/itadmin-api/internal/application/usecase"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
)

// buildSessionFixture seeds: Zone 1 with child Woredas 2 and 3, a second
// Zone 4 with child Woreda 5, and one category.
func buildSessionFixture() (*usecase.SessionUseCase, *fakeSessionRepo, *fakeTraineeRepo) {
	districts := newFakeDistrictRepo()
	districts.add(entity.District{ID: 1, Name: "North Zone", Type: entity.DistrictZone})
	districts.add(entity.District{ID: 2, Name: "Alpha Woreda", Type: entity.DistrictWoreda, ParentID: ptr(1)})
	districts.add(entity.District{ID: 3, Name: "Beta Woreda", Type: entity.DistrictWoreda, ParentID: ptr(1)})
	districts.add(entity.District{ID: 4, Name: "South Zone", Type: entity.DistrictZone})
	districts.add(entity.District{ID: 5, Name: "Delta Woreda", Type: entity.DistrictWoreda, ParentID: ptr(4)})

	categories := newFakeCategoryRepo()
	categories.add(entity.TrainingCategory{ID: 1, Name: "Networking"})

	sessions := newFakeSessionRepo()
	trainees := newFakeTraineeRepo(sessions)
	resolver := scope.NewResolver(districts)
	uc := usecase.NewSessionUseCase(sessions, categories, resolver,
		&fakeSessionTx{sessions: sessions, trainees: trainees})
	return uc, sessions, trainees
}

func validSessionRequest(districtID int64) dto.SessionRequest {
	return dto.SessionRequest{
		Title:      "Router Configuration",
		DistrictID: districtID,
		CategoryID: 1,
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-12",
		Budget:     "15000.50",
	}
}

func TestSessionCreate_CreatorIsActor(t *testing.T) {
	uc, sessions, _ := buildSessionFixture()

	out, err := uc.Create(context.Background(), woredaActor, validSessionRequest(2))
	require.NoError(t, err)
	assert.Equal(t, woredaActor.UserID, out.CreatedBy, "created_by must come from the token, not the body")
	assert.Equal(t, "15000.5", out.Budget)
	assert.Contains(t, sessions.rows, out.ID)
}

func TestSessionCreate_WoredaOnlyOwnDistrict(t *testing.T) {
	uc, _, _ := buildSessionFixture()

	_, err := uc.Create(context.Background(), woredaActor, validSessionRequest(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, err.Error(), "Woreda users can only manage sessions in their assigned district")
}

func TestSessionUpdate_WoredaDenialMessageFitsAction(t *testing.T) {
	uc, _, _ := buildSessionFixture()
	out, err := uc.Create(context.Background(), woredaActor, validSessionRequest(2))
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), woredaActor, out.ID, validSessionRequest(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.NotContains(t, err.Error(), "only create", "an update denial must not claim the actor tried to create")
	assert.Contains(t, err.Error(), "Woreda users can only manage sessions in their assigned district")
}

func TestSessionCreate_ZoneOnlyChildWoredas(t *testing.T) {
	uc, _, _ := buildSessionFixture()

	// District 5 hangs under the other zone.
	_, err := uc.Create(context.Background(), zoneActor, validSessionRequest(5))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, err.Error(), "You can only assign sessions to districts under your zone")

	// The zone's own row is not a session district either.
	_, err = uc.Create(context.Background(), zoneActor, validSessionRequest(1))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Child woreda is fine.
	_, err = uc.Create(context.Background(), zoneActor, validSessionRequest(3))
	assert.NoError(t, err)
}

func TestSessionCreate_EndBeforeStart(t *testing.T) {
	uc, _, _ := buildSessionFixture()

	in := validSessionRequest(2)
	in.StartDate = "2025-03-12"
	in.EndDate = "2025-03-10"
	_, err := uc.Create(context.Background(), woredaActor, in)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.EqualError(t, err, "End date cannot be earlier than start date.")
}

func TestSessionCreate_UnknownCategory(t *testing.T) {
	uc, _, _ := buildSessionFixture()

	in := validSessionRequest(2)
	in.CategoryID = 9
	_, err := uc.Create(context.Background(), woredaActor, in)
	require.Error(t, err)
	assert.EqualError(t, err, "Selected category does not exist.")
}

func TestSessionCreate_BadBudget(t *testing.T) {
	uc, _, _ := buildSessionFixture()

	in := validSessionRequest(2)
	in.Budget = "lots"
	_, err := uc.Create(context.Background(), woredaActor, in)
	require.Error(t, err)
	assert.EqualError(t, err, "Field 'budget' must be a valid amount")
}

func TestSessionDelete_CascadesTrainees(t *testing.T) {
	uc, sessions, trainees := buildSessionFixture()
	stored := sessions.add(sessionRowInDistrict(2))
	trainees.add(entity.Trainee{FullName: "A", Gender: "F", SessionID: stored.ID})
	trainees.add(entity.Trainee{FullName: "B", Gender: "M", SessionID: stored.ID})

	require.NoError(t, uc.Delete(context.Background(), adminActor, stored.ID))
	assert.Empty(t, trainees.rows, "trainees must go with the session")
	assert.NotContains(t, sessions.rows, stored.ID)
}

func TestSessionDelete_WoredaOutsideDistrictForbidden(t *testing.T) {
	uc, sessions, _ := buildSessionFixture()
	stored := sessions.add(sessionRowInDistrict(3))

	err := uc.Delete(context.Background(), woredaActor, stored.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSessionGetByID_OutOfScopeReadsAsNotFound(t *testing.T) {
	uc, sessions, _ := buildSessionFixture()
	stored := sessions.add(sessionRowInDistrict(5))

	// Scope misses are indistinguishable from missing rows.
	_, err := uc.GetByID(context.Background(), woredaActor, stored.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByID(context.Background(), adminActor, stored.ID)
	assert.NoError(t, err)
}

func TestSessionList_ScopedPerRole(t *testing.T) {
	uc, sessions, _ := buildSessionFixture()
	sessions.add(sessionRowInDistrict(2))
	sessions.add(sessionRowInDistrict(3))
	sessions.add(sessionRowInDistrict(5))

	adminRows, err := uc.List(context.Background(), adminActor)
	require.NoError(t, err)
	assert.Len(t, adminRows, 3)

	zoneRows, err := uc.List(context.Background(), zoneActor)
	require.NoError(t, err)
	assert.Len(t, zoneRows, 2, "zone sees only child-woreda sessions")

	woredaRows, err := uc.List(context.Background(), woredaActor)
	require.NoError(t, err)
	assert.Len(t, woredaRows, 1)
}

func TestSessionList_NoDistrictResolvesEmpty(t *testing.T) {
	uc, sessions, _ := buildSessionFixture()
	sessions.add(sessionRowInDistrict(2))

	unassigned := entity.Actor{UserID: 9, Role: entity.RoleZone} // no district claim
	rows, err := uc.List(context.Background(), unassigned)
	require.NoError(t, err)
	assert.Empty(t, rows, "an unassigned actor is denied by default, not errored")
}

func TestSessionUpdate_KeepsOriginalCreator(t *testing.T) {
	uc, sessions, _ := buildSessionFixture()
	stored := sessions.add(sessionRowInDistrict(2))
	originalCreator := stored.CreatedBy

	out, err := uc.Update(context.Background(), adminActor, stored.ID, validSessionRequest(2))
	require.NoError(t, err)
	assert.Equal(t, originalCreator, out.CreatedBy)
}
