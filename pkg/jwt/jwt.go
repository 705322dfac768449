package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the application claims carried alongside the registered set.
// Role and district ride in the token so the RBAC middleware and the scope
// resolver can build the Actor without a directory lookup per request.
type Claims struct {
	UserID     int64  `json:"user_id"`
	Role       string `json:"role"` // "Admin" | "Zone" | "Woreda"
	DistrictID *int64 `json:"district_id,omitempty"`
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Claims
}

// Generate signs an HS256 token with the given claims.
func Generate(secret string, claims Claims, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	tc := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", claims.UserID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Claims: claims,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tc)
	return token.SignedString([]byte(secret))
}

// Parse validates the token and returns the application claims. It fails on
// expiry, bad signatures and signing methods other than HMAC.
func Parse(secret, tokenString string) (Claims, error) {
	if secret == "" {
		return Claims{}, fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Claims{}, err
	}
	tc, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return Claims{}, fmt.Errorf("jwt: invalid claims")
	}
	return tc.Claims, nil
}
