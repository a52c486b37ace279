package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/facultyboard/server/internal/domain"
	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/facultyboard/server/internal/pkg/store/storetest"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCategoryAnalytics(t *testing.T) {
	fake := storetest.New()
	fake.Faculties = []*domain.FacultyProfile{
		{ID: "f1", FullName: strPtr("Dr. Rao"), Department: strPtr("CS")},
	}
	fake.Activities["publications"] = []*domain.Activity{
		{ID: "p1", UserID: "f1", Category: "publications", OccurredAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	result, err := NewAnalyticsService(fake).CategoryAnalytics(context.Background(), "publications", "")

	assert.NoError(t, err)
	assert.Equal(t, 1, result.TotalActivities)
	assert.Equal(t, 1, result.TotalFaculty)
	assert.Equal(t, "1.0", result.AvgActivitiesPerFaculty)
}

func TestCategoryAnalyticsUnknownCategory(t *testing.T) {
	_, err := NewAnalyticsService(storetest.New()).CategoryAnalytics(context.Background(), "hackathons", "")

	assert.ErrorIs(t, err, constants.ErrUnknownCategory)
}

// A failed fetch is an error, not an empty dashboard.
func TestCategoryAnalyticsFetchFailure(t *testing.T) {
	fake := storetest.New()
	fake.ActivitiesErr = errors.New("connection refused")

	_, err := NewAnalyticsService(fake).CategoryAnalytics(context.Background(), "publications", "all")

	assert.Error(t, err)
}
