package auth

import (
	"context"
	"testing"

	"github.com/facultyboard/server/internal/domain/dto"
	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/facultyboard/server/internal/pkg/store/storetest"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func setupSecret(t *testing.T) {
	t.Helper()
	viper.Set(constants.ViperSecretKey, "test-secret")
}

func TestSignupAndLogin(t *testing.T) {
	setupSecret(t)
	fake := storetest.New()
	svc := NewAuthService(fake)

	dept := "CS"
	signup, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email:      "rao@example.edu",
		Password:   "correct horse",
		FullName:   "Dr. Rao",
		Department: &dept,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, signup.AuthToken)
	assert.Equal(t, "Dr. Rao", signup.Profile.DisplayName())

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "rao@example.edu",
		Password: "correct horse",
	})

	assert.NoError(t, err)
	assert.Equal(t, signup.Profile.ID, login.Profile.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	setupSecret(t)
	fake := storetest.New()
	svc := NewAuthService(fake)

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email: "rao@example.edu", Password: "correct horse", FullName: "Dr. Rao",
	})
	assert.NoError(t, err)

	_, err = svc.Signup(context.Background(), &dto.SignupRequest{
		Email: "rao@example.edu", Password: "other", FullName: "Impostor",
	})
	assert.ErrorIs(t, err, constants.ErrEmailAlreadyTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	setupSecret(t)
	fake := storetest.New()
	svc := NewAuthService(fake)

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email: "rao@example.edu", Password: "correct horse", FullName: "Dr. Rao",
	})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "rao@example.edu", Password: "wrong"})
	assert.ErrorIs(t, err, constants.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.edu", Password: "x"})
	assert.ErrorIs(t, err, constants.ErrInvalidCredentials)
}
