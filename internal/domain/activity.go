package domain

import "time"

// Activity is the normalized shape of one achievement record, whatever its
// category. The store aliases each category's columns into this shape so the
// aggregation code never reads per-category field names.
type Activity struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	Category    string             `json:"category"`
	Title       *string            `json:"title,omitempty"`
	OccurredAt  time.Time          `json:"occurred_at"`
	Dimensions  map[string]*string `json:"dimensions,omitempty"`
	ArtifactURL *string            `json:"artifact_url,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

func (a *Activity) DisplayTitle() string {
	if a.Title != nil && *a.Title != "" {
		return *a.Title
	}
	return "Untitled"
}

// Dimension returns the value of one classification column, or "" when the
// record has no value for it. Missing values are kept as their literal empty
// value in breakdowns, not normalized to a placeholder.
func (a *Activity) Dimension(column string) string {
	if v, ok := a.Dimensions[column]; ok && v != nil {
		return *v
	}
	return ""
}

// HasArtifact reports whether the record carries an evidentiary URL.
func (a *Activity) HasArtifact() bool {
	return a.ArtifactURL != nil && *a.ArtifactURL != ""
}

// RecentActivity is one entry of the unified recent-activity feed.
type RecentActivity struct {
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	UserID      string    `json:"user_id"`
	FacultyName string    `json:"faculty_name"`
	OccurredAt  time.Time `json:"occurred_at"`
}
