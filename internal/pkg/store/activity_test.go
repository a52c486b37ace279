package store

import (
	"testing"
	"time"

	"github.com/facultyboard/server/internal/domain/category"
	"github.com/stretchr/testify/assert"
)

func TestActivitySelectAliasesCategoryColumns(t *testing.T) {
	spec, err := category.Lookup("publications")
	assert.NoError(t, err)

	sql, _, err := activitySelect(spec).ToSql()
	assert.NoError(t, err)
	assert.Equal(t,
		"SELECT id, user_id, paper_title AS title, created_at AS occurred_at, created_at, "+
			"journal_name AS dimension_1, index_type AS dimension_2, publication_url AS artifact_url "+
			"FROM publications",
		sql,
	)
}

func TestActivitySelectSingleDimension(t *testing.T) {
	spec, err := category.Lookup("workshops")
	assert.NoError(t, err)

	sql, _, err := activitySelect(spec).ToSql()
	assert.NoError(t, err)
	assert.Equal(t,
		"SELECT id, user_id, event_name AS title, duration_from AS occurred_at, created_at, "+
			"organizer AS dimension_1, certificate_url AS artifact_url "+
			"FROM workshops",
		sql,
	)
}

func TestActivityRowToActivity(t *testing.T) {
	spec, err := category.Lookup("funded_projects")
	assert.NoError(t, err)

	agency := "DST"
	url := "https://example.edu/sanction.pdf"
	row := &activityRow{
		ID:          "a1",
		UserID:      "f1",
		OccurredAt:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Dimension1:  &agency,
		ArtifactURL: &url,
	}

	activity := row.toActivity(spec)

	assert.Equal(t, "funded_projects", activity.Category)
	assert.Equal(t, "DST", activity.Dimension("funding_agency"))
	assert.Equal(t, "", activity.Dimension("status")) // dimension_2 was null
	assert.True(t, activity.HasArtifact())
}
