package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/application/policy"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/entity"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
)

// UserUseCase manages directory accounts. Admin only, end to end.
type UserUseCase struct {
	users     repository.UserRepository
	districts repository.DistrictRepository
}

// NewUserUseCase constructs the use case.
func NewUserUseCase(users repository.UserRepository, districts repository.DistrictRepository) *UserUseCase {
	return &UserUseCase{users: users, districts: districts}
}

// Create adds a user with a bcrypt-hashed password. The email must be free
// and the assigned district must exist.
func (uc *UserUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := authorize(actor, policy.Users, policy.Create); err != nil {
		return nil, err
	}
	trimUserRequestFields(&in.FirstName, &in.LastName, &in.Email, &in.Phone, &in.Position)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	exists, err := uc.users.EmailExists(ctx, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflictf("Email already exists")
	}
	if err := uc.requireDistrict(ctx, in.DistrictID); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.Role(in.Role),
		Sex:          in.Sex,
		DistrictID:   in.DistrictID,
		Phone:        in.Phone,
		Position:     in.Position,
	}
	id, err := uc.users.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	return toUserResponse(u, ""), nil
}

// Update replaces a user's mutable fields. The password is re-hashed only
// when a new one is supplied.
func (uc *UserUseCase) Update(ctx context.Context, actor entity.Actor, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := authorize(actor, policy.Users, policy.Update); err != nil {
		return nil, err
	}
	trimUserRequestFields(&in.FirstName, &in.LastName, &in.Email, &in.Phone, &in.Position)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	row, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	exists, err := uc.users.EmailExists(ctx, in.Email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflictf("Email already exists")
	}
	if err := uc.requireDistrict(ctx, in.DistrictID); err != nil {
		return nil, err
	}
	u := row.User
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.Email = in.Email
	u.Role = entity.Role(in.Role)
	u.Sex = in.Sex
	u.DistrictID = in.DistrictID
	u.Phone = in.Phone
	u.Position = in.Position
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := uc.users.Update(ctx, &u); err != nil {
		return nil, err
	}
	return toUserResponse(&u, ""), nil
}

// Delete removes a user. Actors can never delete their own account.
func (uc *UserUseCase) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	if err := authorize(actor, policy.Users, policy.Delete); err != nil {
		return err
	}
	if actor.UserID == id {
		return domain.Forbiddenf("You cannot delete your own account")
	}
	deleted, err := uc.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID fetches one user with their district name.
func (uc *UserUseCase) GetByID(ctx context.Context, actor entity.Actor, id int64) (*dto.UserResponse, error) {
	if err := authorize(actor, policy.Users, policy.Read); err != nil {
		return nil, err
	}
	row, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(&row.User, row.DistrictName), nil
}

// List returns every user with district names.
func (uc *UserUseCase) List(ctx context.Context, actor entity.Actor) ([]dto.UserResponse, error) {
	if err := authorize(actor, policy.Users, policy.Read); err != nil {
		return nil, err
	}
	rows, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toUserResponse(&rows[i].User, rows[i].DistrictName))
	}
	return out, nil
}

func (uc *UserUseCase) requireDistrict(ctx context.Context, id int64) error {
	d, err := uc.districts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.Validationf("Selected district does not exist.")
	}
	return nil
}

func trimUserRequestFields(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func toUserResponse(u *entity.User, districtName string) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Role:         string(u.Role),
		Sex:          u.Sex,
		DistrictID:   u.DistrictID,
		DistrictName: districtName,
		Phone:        u.Phone,
		Position:     u.Position,
	}
}
