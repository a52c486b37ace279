package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/facultyboard/server/internal/domain"
	"github.com/facultyboard/server/internal/domain/category"
	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/facultyboard/server/internal/pkg/store/xpgx"
)

// activityRow is the normalized scan target for every category table. The
// select aliases the category's own columns onto it, so one row type and one
// set of queries serve all ten tables.
type activityRow struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Title       *string   `db:"title"`
	OccurredAt  time.Time `db:"occurred_at"`
	Dimension1  *string   `db:"dimension_1"`
	Dimension2  *string   `db:"dimension_2"`
	ArtifactURL *string   `db:"artifact_url"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r *activityRow) toActivity(spec category.Spec) *domain.Activity {
	activity := &domain.Activity{
		ID:          r.ID,
		UserID:      r.UserID,
		Category:    spec.Name,
		Title:       r.Title,
		OccurredAt:  r.OccurredAt,
		ArtifactURL: r.ArtifactURL,
		CreatedAt:   r.CreatedAt,
	}

	dims := []*string{r.Dimension1, r.Dimension2}
	activity.Dimensions = make(map[string]*string, len(spec.DimensionColumns))
	for i, column := range spec.DimensionColumns {
		if i >= len(dims) {
			break
		}
		activity.Dimensions[column] = dims[i]
	}

	return activity
}

// activitySelect builds the aliased select for one category.
func activitySelect(spec category.Spec) sq.SelectBuilder {
	columns := []string{
		"id",
		"user_id",
		fmt.Sprintf("%s AS title", spec.TitleColumn),
		fmt.Sprintf("%s AS occurred_at", spec.DateColumn),
		"created_at",
	}
	for i, dim := range spec.DimensionColumns {
		columns = append(columns, fmt.Sprintf("%s AS dimension_%d", dim, i+1))
	}
	if spec.ArtifactColumn != "" {
		columns = append(columns, fmt.Sprintf("%s AS artifact_url", spec.ArtifactColumn))
	}

	return builder().Select(columns...).From(spec.Table)
}

func (s *store) selectActivities(ctx context.Context, spec category.Spec, query sq.SelectBuilder) ([]*domain.Activity, error) {
	rows, err := xpgx.Selectx[activityRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	activities := make([]*domain.Activity, 0, len(rows))
	for _, r := range rows {
		activities = append(activities, r.toActivity(spec))
	}

	return activities, nil
}

func (s *store) ListActivities(ctx context.Context, spec category.Spec) ([]*domain.Activity, error) {
	return s.selectActivities(ctx, spec, activitySelect(spec).OrderBy("created_at"))
}

func (s *store) ListActivitiesByUser(ctx context.Context, spec category.Spec, userID string) ([]*domain.Activity, error) {
	query := activitySelect(spec).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	return s.selectActivities(ctx, spec, query)
}

func (s *store) ListRecentActivities(ctx context.Context, spec category.Spec, limit uint64) ([]*domain.Activity, error) {
	query := activitySelect(spec).
		OrderBy(fmt.Sprintf("%s DESC", spec.DateColumn)).
		Limit(limit)

	return s.selectActivities(ctx, spec, query)
}

func (s *store) InsertActivity(ctx context.Context, spec category.Spec, activity *domain.Activity) error {
	columns := []string{"id", "user_id", spec.TitleColumn}
	values := []interface{}{activity.ID, activity.UserID, activity.Title}

	// created_at-dated categories take the insert timestamp; the rest
	// carry their own date column.
	if spec.DateColumn != "created_at" {
		columns = append(columns, spec.DateColumn)
		values = append(values, activity.OccurredAt)
	}

	for _, column := range spec.DimensionColumns {
		columns = append(columns, column)
		values = append(values, activity.Dimensions[column])
	}

	if spec.ArtifactColumn != "" {
		columns = append(columns, spec.ArtifactColumn)
		values = append(values, activity.ArtifactURL)
	}

	query := builder().Insert(spec.Table).
		Columns(columns...).
		Values(values...)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

// DeleteActivity removes a record owned by userID. Deleting someone else's
// record (or a missing one) reports not found.
func (s *store) DeleteActivity(ctx context.Context, spec category.Spec, id, userID string) error {
	query := builder().Delete(spec.Table).
		Where(sq.And{
			sq.Eq{"id": id},
			sq.Eq{"user_id": userID},
		})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete %s %s: %w", spec.Name, id, constants.ErrDBNotFound)
	}

	return nil
}
