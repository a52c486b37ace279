package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/facultyboard/server/internal/domain"
	"github.com/facultyboard/server/internal/pkg/store/xpgx"
)

var facultyColumns = []string{"id", "email", "full_name", "department", "designation", "created_at", "updated_at"}

func (s *store) ListFaculties(ctx context.Context) ([]*domain.FacultyProfile, error) {
	query := builder().Select(facultyColumns...).
		From(tableFacultyProfiles).
		OrderBy("full_name, email")

	faculties, err := xpgx.Selectx[domain.FacultyProfile](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return faculties, nil
}

func (s *store) GetFacultyByID(ctx context.Context, id string) (*domain.FacultyProfile, error) {
	query := builder().Select(facultyColumns...).
		From(tableFacultyProfiles).
		Where(sq.Eq{"id": id})

	faculty, err := xpgx.Getx[domain.FacultyProfile](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return faculty, nil
}

// GetFacultiesByIDs is the batched lookup the report composer uses to
// resolve author names in one round trip.
func (s *store) GetFacultiesByIDs(ctx context.Context, ids []string) ([]*domain.FacultyProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := builder().Select(facultyColumns...).
		From(tableFacultyProfiles).
		Where(sq.Eq{"id": ids})

	faculties, err := xpgx.Selectx[domain.FacultyProfile](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return faculties, nil
}

func (s *store) UpsertFacultyProfile(ctx context.Context, profile *domain.FacultyProfile) (*domain.FacultyProfile, error) {
	query := builder().Insert(tableFacultyProfiles).
		Columns("id", "email", "full_name", "department", "designation").
		Values(profile.ID, profile.Email, profile.FullName, profile.Department, profile.Designation).
		Suffix(`on conflict (id) do update set
	email = excluded.email,
	full_name = excluded.full_name,
	department = excluded.department,
	designation = excluded.designation,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return nil, wrapErr(err)
	}

	selectQuery := builder().Select(facultyColumns...).
		From(tableFacultyProfiles).
		Where(sq.Eq{"id": profile.ID})

	selected, err := xpgx.Getx[domain.FacultyProfile](ctx, s.pool, selectQuery)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// ListDepartments feeds the filter dropdown. It reads the complete faculty
// list so the options never shrink when a filter is applied.
func (s *store) ListDepartments(ctx context.Context) ([]string, error) {
	type row struct {
		Department string `db:"department"`
	}

	query := builder().Select("distinct department").
		From(tableFacultyProfiles).
		Where("department is not null").
		OrderBy("department")

	rows, err := xpgx.Selectx[row](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	departments := make([]string, 0, len(rows))
	for _, r := range rows {
		departments = append(departments, r.Department)
	}

	return departments, nil
}
