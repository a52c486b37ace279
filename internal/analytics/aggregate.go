// Package analytics is the pure aggregation engine. It takes already-fetched
// faculty and activity collections and computes every derived entity a
// dashboard needs: department/designation rollups, time buckets, dimension
// breakdowns, the per-faculty leaderboard and the summary scalars. It
// performs no I/O, mutates nothing and is deterministic for a given input.
package analytics

import (
	"sort"
	"strconv"
	"time"

	"github.com/facultyboard/server/internal/domain"
	"github.com/facultyboard/server/internal/domain/category"
	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/shopspring/decimal"
)

const (
	// DepartmentAll disables department filtering.
	DepartmentAll = "all"

	// maxMonthlyBuckets caps the monthly series to the newest populated
	// months, relative to the data's own max month rather than to now.
	maxMonthlyBuckets = 24

	// maxBreakdownValues caps each dimension breakdown for display.
	maxBreakdownValues = 10

	monthKeyLayout   = "2006-01"
	monthLabelLayout = "Jan 2006"
)

// Aggregate computes the full analytics result for one category.
//
// Two join semantics coexist on purpose: totals and buckets are computed over
// activities joined to the department-filtered faculty subset, while each
// faculty's own leaderboard counters are computed against the global activity
// set (a faculty's record set is department-invariant). Rollup membership is
// always driven by the complete faculty list so group labels stay stable
// across filter changes. Activities whose user_id matches no faculty are
// silently excluded everywhere.
//
// now anchors the "recent" window (current plus previous calendar year).
func Aggregate(
	faculties []*domain.FacultyProfile,
	activities []*domain.Activity,
	selectedDepartment string,
	spec category.Spec,
	now time.Time,
) *domain.AnalyticsResult {
	result := emptyResult(spec)
	if len(faculties) == 0 {
		return result
	}

	filteredFaculties := faculties
	if selectedDepartment != DepartmentAll {
		filteredFaculties = make([]*domain.FacultyProfile, 0, len(faculties))
		for _, f := range faculties {
			if f.Department != nil && *f.Department == selectedDepartment {
				filteredFaculties = append(filteredFaculties, f)
			}
		}
	}

	filteredIDs := make(map[string]struct{}, len(filteredFaculties))
	for _, f := range filteredFaculties {
		filteredIDs[f.ID] = struct{}{}
	}

	filteredActivities := make([]*domain.Activity, 0, len(activities))
	for _, a := range activities {
		if _, ok := filteredIDs[a.UserID]; ok {
			filteredActivities = append(filteredActivities, a)
		}
	}

	countsByFaculty := countByFaculty(faculties, activities)

	result.TotalActivities = len(filteredActivities)
	result.TotalFaculty = len(filteredFaculties)
	result.AvgActivitiesPerFaculty = fixedAvg(len(filteredActivities), len(filteredFaculties))
	for _, f := range filteredFaculties {
		if countsByFaculty[f.ID] > 0 {
			result.ActiveFacultyCount++
		}
	}

	result.DepartmentRollups = departmentRollups(faculties, countsByFaculty)
	result.DesignationRollups = designationRollups(faculties, countsByFaculty)
	result.MonthlyBuckets, result.YearlyBuckets = timeBuckets(filteredActivities)
	result.Breakdowns = breakdowns(filteredActivities, spec)
	result.Leaderboard = leaderboard(filteredFaculties, activities, now)

	return result
}

func emptyResult(spec category.Spec) *domain.AnalyticsResult {
	return &domain.AnalyticsResult{
		Category:                spec.Name,
		AvgActivitiesPerFaculty: "0",
		DepartmentRollups:       []domain.DepartmentRollup{},
		DesignationRollups:      []domain.DesignationRollup{},
		MonthlyBuckets:          []domain.TimeBucket{},
		YearlyBuckets:           []domain.TimeBucket{},
		Breakdowns:              map[string][]domain.DimensionCount{},
		Leaderboard:             []domain.LeaderboardEntry{},
	}
}

// countByFaculty counts every faculty's activities in the global set.
// Orphan records match no key and drop out here.
func countByFaculty(faculties []*domain.FacultyProfile, activities []*domain.Activity) map[string]int {
	counts := make(map[string]int, len(faculties))
	known := make(map[string]struct{}, len(faculties))
	for _, f := range faculties {
		known[f.ID] = struct{}{}
	}
	for _, a := range activities {
		if _, ok := known[a.UserID]; ok {
			counts[a.UserID]++
		}
	}
	return counts
}

func groupLabel(v *string) string {
	if v == nil || *v == "" {
		return constants.UnknownLabel
	}
	return *v
}

// fixedAvg renders activities/faculty with one decimal, "0" when there is
// nobody to divide by.
func fixedAvg(activityCount, facultyCount int) string {
	if facultyCount == 0 {
		return "0"
	}
	return decimal.NewFromInt(int64(activityCount)).
		Div(decimal.NewFromInt(int64(facultyCount))).
		StringFixed(1)
}

func departmentRollups(faculties []*domain.FacultyProfile, countsByFaculty map[string]int) []domain.DepartmentRollup {
	type group struct {
		facultyCount  int
		activityCount int
	}
	groups := make(map[string]*group)
	for _, f := range faculties {
		label := groupLabel(f.Department)
		g, ok := groups[label]
		if !ok {
			g = &group{}
			groups[label] = g
		}
		g.facultyCount++
		g.activityCount += countsByFaculty[f.ID]
	}

	rollups := make([]domain.DepartmentRollup, 0, len(groups))
	for label, g := range groups {
		rollups = append(rollups, domain.DepartmentRollup{
			Department:    label,
			ActivityCount: g.activityCount,
			FacultyCount:  g.facultyCount,
			AvgPerFaculty: fixedAvg(g.activityCount, g.facultyCount),
		})
	}
	sort.Slice(rollups, func(i, j int) bool {
		return rollups[i].Department < rollups[j].Department
	})
	return rollups
}

func designationRollups(faculties []*domain.FacultyProfile, countsByFaculty map[string]int) []domain.DesignationRollup {
	type group struct {
		facultyCount  int
		activityCount int
	}
	groups := make(map[string]*group)
	for _, f := range faculties {
		label := groupLabel(f.Designation)
		g, ok := groups[label]
		if !ok {
			g = &group{}
			groups[label] = g
		}
		g.facultyCount++
		g.activityCount += countsByFaculty[f.ID]
	}

	rollups := make([]domain.DesignationRollup, 0, len(groups))
	for label, g := range groups {
		rollups = append(rollups, domain.DesignationRollup{
			Designation:   label,
			ActivityCount: g.activityCount,
			FacultyCount:  g.facultyCount,
		})
	}
	sort.Slice(rollups, func(i, j int) bool {
		return rollups[i].Designation < rollups[j].Designation
	})
	return rollups
}

func timeBuckets(activities []*domain.Activity) (monthly, yearly []domain.TimeBucket) {
	monthCounts := make(map[string]int)
	monthLabels := make(map[string]string)
	yearCounts := make(map[string]int)

	for _, a := range activities {
		mk := a.OccurredAt.Format(monthKeyLayout)
		monthCounts[mk]++
		monthLabels[mk] = a.OccurredAt.Format(monthLabelLayout)
		yk := strconv.Itoa(a.OccurredAt.Year())
		yearCounts[yk]++
	}

	monthly = make([]domain.TimeBucket, 0, len(monthCounts))
	for key, count := range monthCounts {
		monthly = append(monthly, domain.TimeBucket{
			PeriodKey:   key,
			PeriodLabel: monthLabels[key],
			Count:       count,
		})
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].PeriodKey < monthly[j].PeriodKey })
	if len(monthly) > maxMonthlyBuckets {
		monthly = monthly[len(monthly)-maxMonthlyBuckets:]
	}

	yearly = make([]domain.TimeBucket, 0, len(yearCounts))
	for key, count := range yearCounts {
		yearly = append(yearly, domain.TimeBucket{
			PeriodKey:   key,
			PeriodLabel: key,
			Count:       count,
		})
	}
	sort.Slice(yearly, func(i, j int) bool { return yearly[i].PeriodKey < yearly[j].PeriodKey })

	return monthly, yearly
}

func breakdowns(activities []*domain.Activity, spec category.Spec) map[string][]domain.DimensionCount {
	out := make(map[string][]domain.DimensionCount, len(spec.DimensionColumns))
	for _, column := range spec.DimensionColumns {
		counts := make(map[string]int)
		for _, a := range activities {
			counts[a.Dimension(column)]++
		}

		values := make([]domain.DimensionCount, 0, len(counts))
		for value, count := range counts {
			values = append(values, domain.DimensionCount{Value: value, Count: count})
		}
		sort.Slice(values, func(i, j int) bool {
			if values[i].Count != values[j].Count {
				return values[i].Count > values[j].Count
			}
			return values[i].Value < values[j].Value
		})
		if len(values) > maxBreakdownValues {
			values = values[:maxBreakdownValues]
		}
		out[column] = values
	}
	return out
}

// leaderboard ranks the filtered faculties by their global activity count.
// Ties are broken by faculty id so the order never depends on input order.
func leaderboard(filteredFaculties []*domain.FacultyProfile, activities []*domain.Activity, now time.Time) []domain.LeaderboardEntry {
	byFaculty := make(map[string][]*domain.Activity, len(filteredFaculties))
	ids := make(map[string]struct{}, len(filteredFaculties))
	for _, f := range filteredFaculties {
		ids[f.ID] = struct{}{}
	}
	for _, a := range activities {
		if _, ok := ids[a.UserID]; ok {
			byFaculty[a.UserID] = append(byFaculty[a.UserID], a)
		}
	}

	currentYear := now.Year()
	entries := make([]domain.LeaderboardEntry, 0, len(filteredFaculties))
	for _, f := range filteredFaculties {
		entry := domain.LeaderboardEntry{
			FacultyID:   f.ID,
			DisplayName: f.DisplayName(),
			Department:  groupLabel(f.Department),
			Designation: groupLabel(f.Designation),
		}
		for _, a := range byFaculty[f.ID] {
			entry.ActivityCount++
			if year := a.OccurredAt.Year(); year == currentYear || year == currentYear-1 {
				entry.RecentCount++
			}
			if a.HasArtifact() {
				entry.ArtifactCount++
			}
			if entry.LatestActivityAt == nil || a.OccurredAt.After(*entry.LatestActivityAt) {
				ts := a.OccurredAt
				entry.LatestActivityAt = &ts
			}
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ActivityCount != entries[j].ActivityCount {
			return entries[i].ActivityCount > entries[j].ActivityCount
		}
		return entries[i].FacultyID < entries[j].FacultyID
	})
	return entries
}
