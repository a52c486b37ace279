package store

import (
	"context"

	"github.com/facultyboard/server/internal/domain"
	"github.com/facultyboard/server/internal/domain/category"
	"github.com/facultyboard/server/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)

	ListFaculties(ctx context.Context) ([]*domain.FacultyProfile, error)
	GetFacultyByID(ctx context.Context, id string) (*domain.FacultyProfile, error)
	GetFacultiesByIDs(ctx context.Context, ids []string) ([]*domain.FacultyProfile, error)
	UpsertFacultyProfile(ctx context.Context, profile *domain.FacultyProfile) (*domain.FacultyProfile, error)
	ListDepartments(ctx context.Context) ([]string, error)

	InsertActivity(ctx context.Context, spec category.Spec, activity *domain.Activity) error
	ListActivities(ctx context.Context, spec category.Spec) ([]*domain.Activity, error)
	ListActivitiesByUser(ctx context.Context, spec category.Spec, userID string) ([]*domain.Activity, error)
	ListRecentActivities(ctx context.Context, spec category.Spec, limit uint64) ([]*domain.Activity, error)
	DeleteActivity(ctx context.Context, spec category.Spec, id, userID string) error
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
