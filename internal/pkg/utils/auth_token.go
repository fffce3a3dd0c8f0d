package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ougirez/tender-normalizer/internal/pkg/constants"
	"github.com/spf13/viper"
)

type AuthTokenWrapper struct {
	jwt.StandardClaims
	Secret   string `json:"secret,omitempty"`
	Operator string `json:"operator,omitempty"`
}

// GenerateAuthToken подписывает токен ключом api.secret_key.
func GenerateAuthToken(wrapper *AuthTokenWrapper, ttl time.Duration) (string, error) {
	if ttl > 0 {
		wrapper.ExpiresAt = time.Now().Add(ttl).Unix()
	}
	wrapper.IssuedAt = time.Now().Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	signed, err := token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
	if err != nil {
		return "", fmt.Errorf("SignedString: %w", err)
	}

	return signed, nil
}

func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	claims := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return claims, nil
}
