package config

import (
	"errors"
	"strconv"
	"time"

	customerrors "backend/customErrors"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

type Token interface {
	GenerateJWT(userID int64) (string, error)
	ValidateJWT(tokenString string) (*Claims, error)
}

type JWT struct {
	secret []byte
	ttl    time.Duration
}

func NewJWT(cfg *Config) *JWT {
	return &JWT{secret: []byte(cfg.JwtSecret), ttl: cfg.TokenDuration}
}

func (j *JWT) GenerateJWT(userID int64) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// ValidateJWT classifies failures so callers can surface distinct 401
// messages for an expired token, a token signed with the wrong key, and
// anything that does not parse at all.
func (j *JWT) ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, customerrors.ErrTokenExpired
	case errors.Is(err, jwt.ErrSignatureInvalid), errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, customerrors.ErrTokenBadSignature
	case err != nil, !token.Valid:
		return nil, customerrors.ErrTokenMalformed
	}

	return claims, nil
}
