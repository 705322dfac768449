package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/usecase"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
)

func buildUserFixture() (*usecase.UserUseCase, *fakeUserRepo) {
	districts := newFakeDistrictRepo()
	districts.add(entity.District{ID: 1, Name: "North Zone", Type: entity.DistrictZone})
	districts.add(entity.District{ID: 2, Name: "Alpha Woreda", Type: entity.DistrictWoreda, ParentID: ptr(1)})
	users := newFakeUserRepo()
	users.add(entity.User{ID: 1, Email: "admin@example.com", Role: entity.RoleAdmin, DistrictID: 1})
	return usecase.NewUserUseCase(users, districts), users
}

func validCreateUser() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		FirstName:  "Abebe",
		LastName:   "Kebede",
		Email:      "abebe@example.com",
		Password:   "s3cret-pass",
		Role:       "Woreda",
		Sex:        "M",
		DistrictID: 2,
	}
}

func TestUserCreate_HashesPassword(t *testing.T) {
	uc, users := buildUserFixture()

	out, err := uc.Create(context.Background(), adminActor, validCreateUser())
	require.NoError(t, err)

	stored := users.rows[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash, "the password must never be stored in plain text")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	uc, _ := buildUserFixture()

	in := validCreateUser()
	in.Email = "admin@example.com"
	_, err := uc.Create(context.Background(), adminActor, in)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.EqualError(t, err, "Email already exists")
}

func TestUserCreate_UnknownDistrict(t *testing.T) {
	uc, _ := buildUserFixture()

	in := validCreateUser()
	in.DistrictID = 42
	_, err := uc.Create(context.Background(), adminActor, in)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.EqualError(t, err, "Selected district does not exist.")
}

func TestUserCreate_AdminOnly(t *testing.T) {
	uc, _ := buildUserFixture()

	for _, actor := range []entity.Actor{zoneActor, woredaActor} {
		_, err := uc.Create(context.Background(), actor, validCreateUser())
		assert.ErrorIs(t, err, domain.ErrForbidden, "role %s must not manage users", actor.Role)
	}
}

func TestUserCreate_MissingPassword(t *testing.T) {
	uc, _ := buildUserFixture()

	in := validCreateUser()
	in.Password = ""
	_, err := uc.Create(context.Background(), adminActor, in)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.EqualError(t, err, "Field 'password' is required")
}

func TestUserUpdate_EmptyPasswordKeepsHash(t *testing.T) {
	uc, users := buildUserFixture()
	out, err := uc.Create(context.Background(), adminActor, validCreateUser())
	require.NoError(t, err)
	oldHash := users.rows[out.ID].PasswordHash

	_, err = uc.Update(context.Background(), adminActor, out.ID, dto.UpdateUserRequest{
		FirstName:  "Abebe",
		LastName:   "Kebede",
		Email:      "abebe@example.com",
		Role:       "Woreda",
		Sex:        "M",
		DistrictID: 2,
		Phone:      "0911000000",
	})
	require.NoError(t, err)
	assert.Equal(t, oldHash, users.rows[out.ID].PasswordHash, "an empty password must not rehash")
}

func TestUserUpdate_NewPasswordRehashes(t *testing.T) {
	uc, users := buildUserFixture()
	out, err := uc.Create(context.Background(), adminActor, validCreateUser())
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), adminActor, out.ID, dto.UpdateUserRequest{
		FirstName:  "Abebe",
		LastName:   "Kebede",
		Email:      "abebe@example.com",
		Password:   "brand-new-pass",
		Role:       "Woreda",
		Sex:        "M",
		DistrictID: 2,
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(users.rows[out.ID].PasswordHash), []byte("brand-new-pass")))
}

func TestUserDelete_SelfDeleteForbidden(t *testing.T) {
	uc, _ := buildUserFixture()

	err := uc.Delete(context.Background(), adminActor, adminActor.UserID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, err.Error(), "You cannot delete your own account")
}

func TestUserDelete_OtherUserSucceeds(t *testing.T) {
	uc, users := buildUserFixture()
	out, err := uc.Create(context.Background(), adminActor, validCreateUser())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), adminActor, out.ID))
	assert.NotContains(t, users.rows, out.ID)
}

func TestUserDelete_BlockedByOwnedRecords(t *testing.T) {
	uc, users := buildUserFixture()
	out, err := uc.Create(context.Background(), adminActor, validCreateUser())
	require.NoError(t, err)
	users.deleteErr = domain.Conflictf("Cannot delete this user. They have created training sessions or maintenance records. Please reassign those records first.")

	err = uc.Delete(context.Background(), adminActor, out.ID)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err), "a blocked delete must surface as a conflict, not a server error")
	assert.Contains(t, err.Error(), "Cannot delete this user")
}

func TestUserGetByID_NeverExposesHash(t *testing.T) {
	uc, _ := buildUserFixture()

	out, err := uc.GetByID(context.Background(), adminActor, 1)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", out.Email)

	payload, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "password")
}
