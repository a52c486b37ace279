package utils

import (
	"fmt"
	"time"

	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"
)

const authTokenTTL = 24 * time.Hour

// AuthTokenWrapper is the claim set carried by the auth cookie.
type AuthTokenWrapper struct {
	UserID string `json:"user_id"`
	IsHOD  bool   `json:"is_hod"`
	Secret string `json:"secret,omitempty"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	wrapper.ExpiresAt = time.Now().Add(authTokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	signed, err := token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}

	return signed, nil
}

func ParseAuthToken(tokenStr string) (*AuthTokenWrapper, error) {
	wrapper := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(tokenStr, wrapper, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrInvalidAuthToken
	}

	return wrapper, nil
}
