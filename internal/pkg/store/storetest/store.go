// Package storetest provides an in-memory Store for tests.
package storetest

import (
	"context"
	"sort"

	"github.com/facultyboard/server/internal/domain"
	"github.com/facultyboard/server/internal/domain/category"
	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/facultyboard/server/internal/pkg/store"
)

// Fake implements store.Store over in-memory maps. Error fields, when set,
// force the matching method to fail.
type Fake struct {
	Users      map[string]*domain.User // keyed by email
	Faculties  []*domain.FacultyProfile
	Activities map[string][]*domain.Activity // keyed by category name
	Inserted   []*domain.Activity

	FacultiesErr  error
	ActivitiesErr error
	RecentErrs    map[string]error // keyed by category name
}

var _ store.Store = (*Fake)(nil)

func New() *Fake {
	return &Fake{
		Users:      make(map[string]*domain.User),
		Activities: make(map[string][]*domain.Activity),
		RecentErrs: make(map[string]error),
	}
}

func (f *Fake) CreateUser(_ context.Context, user *domain.User) error {
	f.Users[user.Email] = user
	return nil
}

func (f *Fake) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.Users[email]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return user, nil
}

func (f *Fake) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range f.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (f *Fake) ListFaculties(_ context.Context) ([]*domain.FacultyProfile, error) {
	if f.FacultiesErr != nil {
		return nil, f.FacultiesErr
	}
	return f.Faculties, nil
}

func (f *Fake) GetFacultyByID(_ context.Context, id string) (*domain.FacultyProfile, error) {
	for _, faculty := range f.Faculties {
		if faculty.ID == id {
			return faculty, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (f *Fake) GetFacultiesByIDs(_ context.Context, ids []string) ([]*domain.FacultyProfile, error) {
	if f.FacultiesErr != nil {
		return nil, f.FacultiesErr
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var out []*domain.FacultyProfile
	for _, faculty := range f.Faculties {
		if _, ok := wanted[faculty.ID]; ok {
			out = append(out, faculty)
		}
	}
	return out, nil
}

func (f *Fake) UpsertFacultyProfile(_ context.Context, profile *domain.FacultyProfile) (*domain.FacultyProfile, error) {
	for i, existing := range f.Faculties {
		if existing.ID == profile.ID {
			f.Faculties[i] = profile
			return profile, nil
		}
	}
	f.Faculties = append(f.Faculties, profile)
	return profile, nil
}

func (f *Fake) ListDepartments(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, faculty := range f.Faculties {
		if faculty.Department == nil {
			continue
		}
		if _, ok := seen[*faculty.Department]; ok {
			continue
		}
		seen[*faculty.Department] = struct{}{}
		out = append(out, *faculty.Department)
	}
	sort.Strings(out)
	return out, nil
}

func (f *Fake) InsertActivity(_ context.Context, spec category.Spec, activity *domain.Activity) error {
	f.Activities[spec.Name] = append(f.Activities[spec.Name], activity)
	f.Inserted = append(f.Inserted, activity)
	return nil
}

func (f *Fake) ListActivities(_ context.Context, spec category.Spec) ([]*domain.Activity, error) {
	if f.ActivitiesErr != nil {
		return nil, f.ActivitiesErr
	}
	return f.Activities[spec.Name], nil
}

func (f *Fake) ListActivitiesByUser(_ context.Context, spec category.Spec, userID string) ([]*domain.Activity, error) {
	var out []*domain.Activity
	for _, activity := range f.Activities[spec.Name] {
		if activity.UserID == userID {
			out = append(out, activity)
		}
	}
	return out, nil
}

func (f *Fake) ListRecentActivities(_ context.Context, spec category.Spec, limit uint64) ([]*domain.Activity, error) {
	if err := f.RecentErrs[spec.Name]; err != nil {
		return nil, err
	}
	recent := make([]*domain.Activity, len(f.Activities[spec.Name]))
	copy(recent, f.Activities[spec.Name])
	sort.Slice(recent, func(i, j int) bool { return recent[i].OccurredAt.After(recent[j].OccurredAt) })
	if uint64(len(recent)) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

func (f *Fake) DeleteActivity(_ context.Context, spec category.Spec, id, userID string) error {
	activities := f.Activities[spec.Name]
	for i, activity := range activities {
		if activity.ID == id && activity.UserID == userID {
			f.Activities[spec.Name] = append(activities[:i], activities[i+1:]...)
			return nil
		}
	}
	return constants.ErrDBNotFound
}
