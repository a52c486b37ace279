package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/facultyboard/server/internal/domain"
	"github.com/facultyboard/server/internal/pkg/store/storetest"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func feedActivity(id, userID, categoryName string, daysAgo int) *domain.Activity {
	return &domain.Activity{
		ID:         id,
		UserID:     userID,
		Category:   categoryName,
		Title:      strPtr("title " + id),
		OccurredAt: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo),
	}
}

func TestRecentFeedMergesAndTruncates(t *testing.T) {
	fake := storetest.New()
	fake.Faculties = []*domain.FacultyProfile{
		{ID: "f1", FullName: strPtr("Dr. Rao")},
		{ID: "f2", FullName: strPtr("Dr. Iyer")},
	}
	fake.Activities["publications"] = []*domain.Activity{
		feedActivity("p1", "f1", "publications", 1),
		feedActivity("p2", "f1", "publications", 10),
		feedActivity("p3", "f1", "publications", 20), // beyond per-category limit
	}
	fake.Activities["awards"] = []*domain.Activity{
		feedActivity("w1", "f2", "awards", 2),
		feedActivity("w2", "f2", "awards", 3),
	}
	fake.Activities["patents"] = []*domain.Activity{
		feedActivity("t1", "f2", "patents", 4),
	}
	fake.Activities["memberships"] = []*domain.Activity{
		feedActivity("m1", "f1", "memberships", 5),
	}

	feed, err := NewReportService(fake).RecentFeed(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, feed, 5) {
		assert.Equal(t, "publications", feed[0].Category)
		assert.Equal(t, "Dr. Rao", feed[0].FacultyName)
		assert.Equal(t, "awards", feed[1].Category)
		assert.Equal(t, "awards", feed[2].Category)
		assert.Equal(t, "patents", feed[3].Category)
		assert.Equal(t, "memberships", feed[4].Category)

		// Sorted newest first throughout.
		for i := 1; i < len(feed); i++ {
			assert.False(t, feed[i].OccurredAt.After(feed[i-1].OccurredAt))
		}
	}
}

func TestRecentFeedToleratesCategoryFailure(t *testing.T) {
	fake := storetest.New()
	fake.Faculties = []*domain.FacultyProfile{{ID: "f1", FullName: strPtr("Dr. Rao")}}
	fake.Activities["publications"] = []*domain.Activity{
		feedActivity("p1", "f1", "publications", 1),
	}
	fake.RecentErrs["awards"] = errors.New("connection reset")

	feed, err := NewReportService(fake).RecentFeed(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, feed, 1) {
		assert.Equal(t, "publications", feed[0].Category)
	}
}

func TestRecentFeedUnknownFacultyFallback(t *testing.T) {
	fake := storetest.New()
	fake.Activities["publications"] = []*domain.Activity{
		feedActivity("p1", "deleted-user", "publications", 1),
	}

	feed, err := NewReportService(fake).RecentFeed(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, feed, 1) {
		assert.Equal(t, "Unknown Faculty", feed[0].FacultyName)
	}
}
