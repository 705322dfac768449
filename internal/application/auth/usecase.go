// Package auth implements login: credential verification and token issuance.
// Session establishment ends here; every other use case only consumes the
// Actor the middleware extracts from the token.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/bereketw/itadmin-api/internal/application/dto"
	"github.com/bereketw/itadmin-api/internal/domain"
	"github.com/bereketw/itadmin-api/internal/domain/repository"
	"github.com/bereketw/itadmin-api/pkg/jwt"
)

// JWTConfig carries token-issuance settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase verifies credentials and issues tokens.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase constructs the auth use case.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Login checks email and password and returns a signed token plus the user.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	districtID := user.DistrictID
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Claims{
		UserID:     user.ID,
		Role:       string(user.Role),
		DistrictID: &districtID,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:         user.ID,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Email:      user.Email,
			Role:       string(user.Role),
			Sex:        user.Sex,
			DistrictID: user.DistrictID,
			Phone:      user.Phone,
			Position:   user.Position,
		},
	}, nil
}
