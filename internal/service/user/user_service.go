package user

import (
	"context"
	"fmt"

	"github.com/facultyboard/server/internal/domain"
	"github.com/facultyboard/server/internal/domain/dto"
	"github.com/facultyboard/server/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewUserService(store store.Store) *Service {
	return &Service{store}
}

func (svc *Service) GetProfile(ctx context.Context, userID string) (*domain.FacultyProfile, error) {
	return svc.store.GetFacultyByID(ctx, userID)
}

func (svc *Service) UpdateProfile(ctx context.Context, userID string, request *dto.UpdateProfileRequest) (*domain.FacultyProfile, error) {
	profile, err := svc.store.GetFacultyByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("store.GetFacultyByID: %w", err)
	}

	if request.FullName != nil {
		profile.FullName = request.FullName
	}
	if request.Department != nil {
		profile.Department = request.Department
	}
	if request.Designation != nil {
		profile.Designation = request.Designation
	}

	return svc.store.UpsertFacultyProfile(ctx, profile)
}

func (svc *Service) ListFaculties(ctx context.Context) ([]*domain.FacultyProfile, error) {
	return svc.store.ListFaculties(ctx)
}

func (svc *Service) ListDepartments(ctx context.Context) ([]string, error) {
	return svc.store.ListDepartments(ctx)
}
