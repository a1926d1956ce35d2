package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionSetsHaveUniqueValues(t *testing.T) {
	sets := map[string][]Option{
		"titles":              Titles,
		"genders":             Genders,
		"maritalStatuses":     MaritalStatuses,
		"countries":           Countries,
		"nationalities":       Nationalities,
		"immigrationStatuses": ImmigrationStatuses,
		"tenancyTypes":        TenancyTypes,
	}
	for name, opts := range sets {
		seen := make(map[string]struct{})
		for _, o := range opts {
			assert.NotEmpty(t, o.Value, "%s: empty value", name)
			assert.NotEmpty(t, o.Label, "%s: empty label for %q", name, o.Value)
			_, dup := seen[o.Value]
			assert.False(t, dup, "%s: duplicate value %q", name, o.Value)
			seen[o.Value] = struct{}{}
		}
	}
}

func TestValuesPreservesOrder(t *testing.T) {
	values := Values(Titles)
	assert.Equal(t, []string{"mr", "mrs", "miss", "ms", "dr", "other"}, values)
}

func TestValueSet(t *testing.T) {
	set := ValueSet(Genders)
	assert.Contains(t, set, "non-binary")
	assert.NotContains(t, set, "unknown")
	assert.Len(t, set, len(Genders))
}

func TestBirthPlaceDefaultIsListed(t *testing.T) {
	// The wizard pre-selects united-kingdom; it must stay a valid choice.
	assert.Contains(t, ValueSet(Countries), "united-kingdom")
}
