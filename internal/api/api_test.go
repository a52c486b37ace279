package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/facultyboard/server/internal/domain"
	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/facultyboard/server/internal/pkg/store/storetest"
	"github.com/facultyboard/server/internal/pkg/utils"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func setup(t *testing.T) (*APIService, *storetest.Fake) {
	t.Helper()
	viper.Set(constants.ViperSecretKey, "test-secret")

	fake := storetest.New()
	fake.Faculties = []*domain.FacultyProfile{
		{ID: "f1", FullName: strPtr("Dr. Rao"), Department: strPtr("CS"), Designation: strPtr("Professor")},
	}
	fake.Activities["publications"] = []*domain.Activity{
		{ID: "p1", UserID: "f1", Category: "publications", OccurredAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	svc, err := NewAPIService(fake)
	if err != nil {
		t.Fatalf("NewAPIService: %v", err)
	}
	return svc, fake
}

func authCookie(t *testing.T, userID string, isHOD bool) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: userID, IsHOD: isHOD})
	if err != nil {
		t.Fatalf("GenerateAuthToken: %v", err)
	}
	return &http.Cookie{Name: constants.CookieKeyAuthToken, Value: token}
}

func do(svc *APIService, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)
	return rec
}

func TestListCategoriesIsPublic(t *testing.T) {
	svc, _ := setup(t)

	rec := do(svc, httptest.NewRequest(http.MethodGet, "/api/v1/categories/list", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var categories []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Len(t, categories, 10)
}

func TestAnalyticsRequiresAuth(t *testing.T) {
	svc, _ := setup(t)

	rec := do(svc, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/publications", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAnalyticsForbiddenForNonHOD(t *testing.T) {
	svc, _ := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/publications", nil)
	req.AddCookie(authCookie(t, "f1", false))
	rec := do(svc, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAnalyticsForHOD(t *testing.T) {
	svc, _ := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/publications?department=CS", nil)
	req.AddCookie(authCookie(t, "hod", true))
	rec := do(svc, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.AnalyticsResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.TotalActivities)
	assert.Equal(t, 1, result.TotalFaculty)
	assert.Equal(t, "publications", result.Category)
}

func TestAnalyticsUnknownCategoryIsBadRequest(t *testing.T) {
	svc, _ := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/hackathons", nil)
	req.AddCookie(authCookie(t, "hod", true))
	rec := do(svc, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateActivity(t *testing.T) {
	svc, fake := setup(t)

	body := `{"title":"NPTEL Certification","dimensions":{"organizer":"NPTEL"},"occurred_at":"2024-02-12T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/activities/fdp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(authCookie(t, "f1", false))
	rec := do(svc, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, fake.Inserted, 1)
}

func TestCreateActivityValidation(t *testing.T) {
	svc, _ := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/activities/fdp", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(authCookie(t, "f1", false))
	rec := do(svc, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecentFeed(t *testing.T) {
	svc, _ := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/recent", nil)
	req.AddCookie(authCookie(t, "hod", true))
	rec := do(svc, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var feed []domain.RecentActivity
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	if assert.Len(t, feed, 1) {
		assert.Equal(t, "Dr. Rao", feed[0].FacultyName)
	}
}
