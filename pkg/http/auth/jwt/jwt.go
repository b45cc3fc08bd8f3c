package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

/**
 * @file: jwt.go
 * @description: access token generation and validation
 */

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserId string `json:"userId"`
	jwt.RegisteredClaims
}

// GenToken issues an access token and a refresh token for a user.
func GenToken(userId string, secretKey []byte, accessExpire, refreshExpire time.Duration) (string, string, error) {
	accessClaims := Claims{
		UserId: userId,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessExpire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "fieldset",
		},
	}
	aToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(secretKey)
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(refreshExpire)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    "fieldset",
	}
	rToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(secretKey)
	if err != nil {
		return "", "", err
	}

	return aToken, rToken, nil
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenStr string, secretKey []byte) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
