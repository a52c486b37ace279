package domain

import "time"

// Derived analytics entities. All of them are recomputed from scratch on
// every request; none is persisted.

type DepartmentRollup struct {
	Department    string `json:"department"`
	ActivityCount int    `json:"activity_count"`
	FacultyCount  int    `json:"faculty_count"`
	AvgPerFaculty string `json:"avg_per_faculty"`
}

type DesignationRollup struct {
	Designation   string `json:"designation"`
	ActivityCount int    `json:"activity_count"`
	FacultyCount  int    `json:"faculty_count"`
}

type TimeBucket struct {
	PeriodKey   string `json:"period_key"`
	PeriodLabel string `json:"period_label"`
	Count       int    `json:"count"`
}

type DimensionCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type LeaderboardEntry struct {
	FacultyID        string     `json:"faculty_id"`
	DisplayName      string     `json:"display_name"`
	Department       string     `json:"department"`
	Designation      string     `json:"designation"`
	ActivityCount    int        `json:"activity_count"`
	RecentCount      int        `json:"recent_count"`
	ArtifactCount    int        `json:"artifact_count"`
	LatestActivityAt *time.Time `json:"latest_activity_at,omitempty"`
}

// AnalyticsResult bundles everything a category dashboard renders.
type AnalyticsResult struct {
	Category                string                      `json:"category"`
	TotalActivities         int                         `json:"total_activities"`
	TotalFaculty            int                         `json:"total_faculty"`
	AvgActivitiesPerFaculty string                      `json:"avg_activities_per_faculty"`
	ActiveFacultyCount      int                         `json:"active_faculty_count"`
	DepartmentRollups       []DepartmentRollup          `json:"department_rollups"`
	DesignationRollups      []DesignationRollup         `json:"designation_rollups"`
	MonthlyBuckets          []TimeBucket                `json:"monthly_buckets"`
	YearlyBuckets           []TimeBucket                `json:"yearly_buckets"`
	Breakdowns              map[string][]DimensionCount `json:"breakdowns"`
	Leaderboard             []LeaderboardEntry          `json:"leaderboard"`
}
