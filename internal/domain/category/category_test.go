package category

import (
	"testing"

	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
)

func TestRegistryComplete(t *testing.T) {
	all := All()
	assert.Len(t, all, 10)

	seen := make(map[string]struct{})
	for _, spec := range all {
		assert.NotEmpty(t, spec.Name)
		assert.NotEmpty(t, spec.Table)
		assert.NotEmpty(t, spec.TitleColumn)
		assert.NotEmpty(t, spec.DateColumn)
		assert.NotEmpty(t, spec.DimensionColumns, spec.Name)

		_, dup := seen[spec.Name]
		assert.False(t, dup, "duplicate category %s", spec.Name)
		seen[spec.Name] = struct{}{}
	}
}

func TestLookup(t *testing.T) {
	spec, err := Lookup("workshops")
	assert.NoError(t, err)
	assert.Equal(t, "duration_from", spec.DateColumn)
	assert.True(t, spec.HasDimension("organizer"))
	assert.False(t, spec.HasDimension("issuing_body"))

	_, err = Lookup("hackathons")
	assert.ErrorIs(t, err, constants.ErrUnknownCategory)
}
