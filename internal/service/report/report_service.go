package report

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/facultyboard/server/internal/domain"
	"github.com/facultyboard/server/internal/domain/category"
	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/facultyboard/server/internal/pkg/logger"
	"github.com/facultyboard/server/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

const (
	// recentPerCategory is how many newest records each category
	// contributes to the merge.
	recentPerCategory = 2

	// feedSize is the length of the combined feed.
	feedSize = 5

	fetchRetries  = 3
	retryInterval = 50 * time.Millisecond
)

type Service struct {
	store store.Store
}

func NewReportService(store store.Store) *Service {
	return &Service{store: store}
}

// RecentFeed merges the newest records of every category into one feed.
// Categories are fetched concurrently; a category whose fetch keeps failing
// after retries contributes zero entries instead of aborting the feed.
// Author names are resolved with a single batched faculty lookup.
func (svc *Service) RecentFeed(ctx context.Context) ([]*domain.RecentActivity, error) {
	merged := make([]*domain.Activity, 0, recentPerCategory*len(category.All()))
	mergedMx := sync.Mutex{}

	eg, egCtx := errgroup.WithContext(ctx)
	for _, spec := range category.All() {
		spec := spec
		eg.Go(func() error {
			var recent []*domain.Activity
			err := backoff.Retry(
				func() error {
					var fetchErr error
					recent, fetchErr = svc.store.ListRecentActivities(egCtx, spec, recentPerCategory)
					return fetchErr
				},
				backoff.WithContext(
					backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), fetchRetries),
					egCtx,
				),
			)
			if err != nil {
				logger.Warnf(egCtx, "recent %s fetch failed: %s", spec.Name, err.Error())
				return nil
			}

			mergedMx.Lock()
			defer mergedMx.Unlock()
			merged = append(merged, recent...)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].OccurredAt.Equal(merged[j].OccurredAt) {
			return merged[i].OccurredAt.After(merged[j].OccurredAt)
		}
		return merged[i].ID < merged[j].ID
	})
	if len(merged) > feedSize {
		merged = merged[:feedSize]
	}

	names := svc.resolveNames(ctx, merged)

	feed := make([]*domain.RecentActivity, 0, len(merged))
	for _, a := range merged {
		name, ok := names[a.UserID]
		if !ok {
			name = constants.UnknownFacultyLabel
		}
		feed = append(feed, &domain.RecentActivity{
			Category:    a.Category,
			Title:       a.DisplayTitle(),
			UserID:      a.UserID,
			FacultyName: name,
			OccurredAt:  a.OccurredAt,
		})
	}

	return feed, nil
}

func (svc *Service) resolveNames(ctx context.Context, activities []*domain.Activity) map[string]string {
	seen := make(map[string]struct{}, len(activities))
	ids := make([]string, 0, len(activities))
	for _, a := range activities {
		if _, ok := seen[a.UserID]; ok {
			continue
		}
		seen[a.UserID] = struct{}{}
		ids = append(ids, a.UserID)
	}

	names := make(map[string]string, len(ids))
	faculties, err := svc.store.GetFacultiesByIDs(ctx, ids)
	if err != nil {
		// Every entry falls back to the placeholder name.
		logger.Warnf(ctx, "faculty name lookup failed: %s", err.Error())
		return names
	}
	for _, f := range faculties {
		names[f.ID] = f.DisplayName()
	}

	return names
}
