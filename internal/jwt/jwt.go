package jwt

import (
	goerrors "errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	internal_errors "github.com/sanfusis123/solo-leveling-backend/internal/errors"
	"github.com/sanfusis123/solo-leveling-backend/internal/logger"
)

// Service issues and verifies stateless bearer tokens. The subject claim
// carries the account ID; nothing is persisted server-side, so a token
// stays formally valid until expiry and deactivation is enforced by the
// account lookup downstream.
type Service interface {
	Issue(userID string) (string, error)
	Verify(tokenString string) (string, error)
}

type Claims struct {
	jwt.RegisteredClaims
}

type Jwt struct {
	secretKey []byte
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey: []byte(secretKey), ttl: ttl}
}

func (j *Jwt) Issue(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", err
	}

	return tokenString, nil
}

func (j *Jwt) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return j.secretKey, nil
	})
	if err != nil {
		if goerrors.Is(err, jwt.ErrTokenExpired) {
			return "", internal_errors.TokenExpired()
		}
		return "", internal_errors.TokenInvalid()
	}

	if !token.Valid || claims.Subject == "" {
		return "", internal_errors.TokenInvalid()
	}

	return claims.Subject, nil
}
