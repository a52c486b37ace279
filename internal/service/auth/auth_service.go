package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/facultyboard/server/internal/domain"
	"github.com/facultyboard/server/internal/domain/dto"
	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/facultyboard/server/internal/pkg/store"
	"github.com/facultyboard/server/internal/pkg/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	store store.Store
}

func NewAuthService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) Signup(ctx context.Context, request *dto.SignupRequest) (*dto.AuthResponse, error) {
	if _, err := svc.store.GetUserByEmail(ctx, request.Email); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, constants.ErrEmailAlreadyTaken
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        request.Email,
		PasswordHash: string(hash),
	}
	if err := svc.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("store.CreateUser: %w", err)
	}

	profile, err := svc.store.UpsertFacultyProfile(ctx, &domain.FacultyProfile{
		ID:          user.ID,
		Email:       &request.Email,
		FullName:    &request.FullName,
		Department:  request.Department,
		Designation: request.Designation,
	})
	if err != nil {
		return nil, fmt.Errorf("store.UpsertFacultyProfile: %w", err)
	}

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID, IsHOD: user.IsHOD})
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Profile: profile, AuthToken: authToken, IsHOD: user.IsHOD}, nil
}

func (svc *Service) Login(ctx context.Context, request *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := svc.store.GetUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return nil, constants.ErrInvalidCredentials
	}

	profile, err := svc.store.GetFacultyByID(ctx, user.ID)
	if err != nil && !errors.Is(err, constants.ErrDBNotFound) {
		return nil, err
	}
	if profile == nil {
		// Credentials without a profile row happen for accounts created
		// before profile setup; the caller gets a bare identity.
		profile = &domain.FacultyProfile{ID: user.ID, Email: &user.Email}
	}

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID, IsHOD: user.IsHOD})
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{Profile: profile, AuthToken: authToken, IsHOD: user.IsHOD}, nil
}
