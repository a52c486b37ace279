package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/facultyboard/server/internal/analytics"
	"github.com/facultyboard/server/internal/domain"
	"github.com/facultyboard/server/internal/domain/category"
	"github.com/facultyboard/server/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

// Service is the fetch boundary in front of the pure aggregation engine:
// it loads the two collections and hands them over as immutable snapshots.
// A failed fetch surfaces as an error instead of masquerading as "no data".
type Service struct {
	store store.Store
}

func NewAnalyticsService(store store.Store) *Service {
	return &Service{store: store}
}

// CategoryAnalytics fetches faculties and the category's activities
// concurrently, then aggregates. department is either "all" (or empty,
// treated the same) or an exact department value.
func (svc *Service) CategoryAnalytics(ctx context.Context, categoryName, department string) (*domain.AnalyticsResult, error) {
	spec, err := category.Lookup(categoryName)
	if err != nil {
		return nil, err
	}

	if department == "" {
		department = analytics.DepartmentAll
	}

	var (
		faculties  []*domain.FacultyProfile
		activities []*domain.Activity
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var fetchErr error
		faculties, fetchErr = svc.store.ListFaculties(egCtx)
		if fetchErr != nil {
			return fmt.Errorf("store.ListFaculties: %w", fetchErr)
		}
		return nil
	})
	eg.Go(func() error {
		var fetchErr error
		activities, fetchErr = svc.store.ListActivities(egCtx, spec)
		if fetchErr != nil {
			return fmt.Errorf("store.ListActivities %s: %w", spec.Name, fetchErr)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return analytics.Aggregate(faculties, activities, department, spec, time.Now()), nil
}
