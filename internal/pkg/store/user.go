package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/facultyboard/server/internal/domain"
	"github.com/facultyboard/server/internal/pkg/store/xpgx"
)

var userColumns = []string{"id", "email", "password_hash", "is_hod", "created_at"}

func (s *store) CreateUser(ctx context.Context, user *domain.User) error {
	query := builder().Insert(tableUsers).
		Columns(userColumns[:4]...).
		Values(user.ID, user.Email, user.PasswordHash, user.IsHOD)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"email": email})

	user, err := xpgx.Getx[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return user, nil
}

func (s *store) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"id": id})

	user, err := xpgx.Getx[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return user, nil
}
