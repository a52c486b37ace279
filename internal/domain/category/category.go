// Package category is the declarative registry of activity categories. It is
// the single source of truth for which table, title, date, classification and
// artifact columns each category has; both the store's aliased selects and
// the aggregation breakdowns are driven by it.
package category

import "github.com/facultyboard/server/internal/pkg/constants"

type Spec struct {
	// Name is the wire identifier used in routes (matches Table).
	Name  string `json:"name"`
	Table string `json:"-"`
	// TitleColumn holds the record's human-readable title.
	TitleColumn string `json:"title_column"`
	// DateColumn is the timestamp used for time bucketing. For most
	// categories this is created_at; event-like categories use the
	// event's own start date instead.
	DateColumn string `json:"date_column"`
	// DimensionColumns are the secondary classification columns the
	// dashboards break activity counts down by.
	DimensionColumns []string `json:"dimension_columns"`
	// ArtifactColumn is the optional evidentiary URL column.
	ArtifactColumn string `json:"artifact_column,omitempty"`
}

var registry = []Spec{
	{
		Name:             "publications",
		Table:            "publications",
		TitleColumn:      "paper_title",
		DateColumn:       "created_at",
		DimensionColumns: []string{"journal_name", "index_type"},
		ArtifactColumn:   "publication_url",
	},
	{
		Name:             "patents",
		Table:            "patents",
		TitleColumn:      "patent_title",
		DateColumn:       "created_at",
		DimensionColumns: []string{"issuing_body", "status"},
		ArtifactColumn:   "document_url",
	},
	{
		Name:             "awards",
		Table:            "awards",
		TitleColumn:      "award_title",
		DateColumn:       "created_at",
		DimensionColumns: []string{"issuing_body"},
		ArtifactColumn:   "certificate_url",
	},
	{
		Name:             "workshops",
		Table:            "workshops",
		TitleColumn:      "event_name",
		DateColumn:       "duration_from",
		DimensionColumns: []string{"organizer"},
		ArtifactColumn:   "certificate_url",
	},
	{
		Name:             "fdp",
		Table:            "fdp_certifications",
		TitleColumn:      "program_name",
		DateColumn:       "duration_from",
		DimensionColumns: []string{"organizer"},
		ArtifactColumn:   "certificate_url",
	},
	{
		Name:             "memberships",
		Table:            "memberships",
		TitleColumn:      "society_name",
		DateColumn:       "created_at",
		DimensionColumns: []string{"membership_type"},
		ArtifactColumn:   "certificate_url",
	},
	{
		Name:             "teaching_materials",
		Table:            "teaching_materials",
		TitleColumn:      "material_title",
		DateColumn:       "created_at",
		DimensionColumns: []string{"material_type"},
		ArtifactColumn:   "file_url",
	},
	{
		Name:             "student_projects",
		Table:            "student_projects",
		TitleColumn:      "project_title",
		DateColumn:       "created_at",
		DimensionColumns: []string{"project_type", "status"},
		ArtifactColumn:   "document_url",
	},
	{
		Name:             "funded_projects",
		Table:            "funded_projects",
		TitleColumn:      "project_title",
		DateColumn:       "created_at",
		DimensionColumns: []string{"funding_agency", "status"},
		ArtifactColumn:   "sanction_letter_url",
	},
	{
		Name:             "timetables",
		Table:            "timetables",
		TitleColumn:      "timetable_title",
		DateColumn:       "created_at",
		DimensionColumns: []string{"semester"},
		ArtifactColumn:   "file_url",
	},
}

// All returns every registered category in registration order.
func All() []Spec {
	out := make([]Spec, len(registry))
	copy(out, registry)
	return out
}

// Lookup resolves a category by its wire name.
func Lookup(name string) (Spec, error) {
	for _, spec := range registry {
		if spec.Name == name {
			return spec, nil
		}
	}
	return Spec{}, constants.ErrUnknownCategory
}

// HasDimension reports whether column is one of the spec's classification
// columns; the submission path rejects anything else.
func (s Spec) HasDimension(column string) bool {
	for _, dim := range s.DimensionColumns {
		if dim == column {
			return true
		}
	}
	return false
}
