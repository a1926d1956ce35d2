// Package catalog holds the permitted values for every categorical field of
// the onboarding record. The option lists are the single source of truth:
// they render the choices shown to the user and derive the membership sets
// the validator enforces.
package catalog

// Option pairs a stored value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var Titles = []Option{
	{Value: "mr", Label: "Mr"},
	{Value: "mrs", Label: "Mrs"},
	{Value: "miss", Label: "Miss"},
	{Value: "ms", Label: "Ms"},
	{Value: "dr", Label: "Dr"},
	{Value: "other", Label: "Other"},
}

var Genders = []Option{
	{Value: "male", Label: "Male"},
	{Value: "female", Label: "Female"},
	{Value: "non-binary", Label: "Non-binary"},
	{Value: "prefer-not-to-say", Label: "Prefer not to say"},
}

var MaritalStatuses = []Option{
	{Value: "single", Label: "Single"},
	{Value: "married", Label: "Married"},
	{Value: "civil-partnership", Label: "Civil partnership"},
	{Value: "divorced", Label: "Divorced"},
	{Value: "widowed", Label: "Widowed"},
	{Value: "separated", Label: "Separated"},
}

// Countries backs the birth place selector. The United Kingdom leads the
// list because it is also the per-field default.
var Countries = []Option{
	{Value: "united-kingdom", Label: "United Kingdom"},
	{Value: "ireland", Label: "Ireland"},
	{Value: "france", Label: "France"},
	{Value: "germany", Label: "Germany"},
	{Value: "spain", Label: "Spain"},
	{Value: "portugal", Label: "Portugal"},
	{Value: "italy", Label: "Italy"},
	{Value: "poland", Label: "Poland"},
	{Value: "romania", Label: "Romania"},
	{Value: "india", Label: "India"},
	{Value: "pakistan", Label: "Pakistan"},
	{Value: "bangladesh", Label: "Bangladesh"},
	{Value: "nigeria", Label: "Nigeria"},
	{Value: "ghana", Label: "Ghana"},
	{Value: "somalia", Label: "Somalia"},
	{Value: "eritrea", Label: "Eritrea"},
	{Value: "afghanistan", Label: "Afghanistan"},
	{Value: "iran", Label: "Iran"},
	{Value: "iraq", Label: "Iraq"},
	{Value: "syria", Label: "Syria"},
	{Value: "ukraine", Label: "Ukraine"},
	{Value: "china", Label: "China"},
	{Value: "hong-kong", Label: "Hong Kong"},
	{Value: "other", Label: "Other"},
}

var Nationalities = []Option{
	{Value: "british", Label: "British"},
	{Value: "irish", Label: "Irish"},
	{Value: "french", Label: "French"},
	{Value: "german", Label: "German"},
	{Value: "spanish", Label: "Spanish"},
	{Value: "portuguese", Label: "Portuguese"},
	{Value: "italian", Label: "Italian"},
	{Value: "polish", Label: "Polish"},
	{Value: "romanian", Label: "Romanian"},
	{Value: "indian", Label: "Indian"},
	{Value: "pakistani", Label: "Pakistani"},
	{Value: "bangladeshi", Label: "Bangladeshi"},
	{Value: "nigerian", Label: "Nigerian"},
	{Value: "ghanaian", Label: "Ghanaian"},
	{Value: "somali", Label: "Somali"},
	{Value: "eritrean", Label: "Eritrean"},
	{Value: "afghan", Label: "Afghan"},
	{Value: "iranian", Label: "Iranian"},
	{Value: "iraqi", Label: "Iraqi"},
	{Value: "syrian", Label: "Syrian"},
	{Value: "ukrainian", Label: "Ukrainian"},
	{Value: "chinese", Label: "Chinese"},
	{Value: "other", Label: "Other"},
}

var ImmigrationStatuses = []Option{
	{Value: "british-citizen", Label: "British citizen"},
	{Value: "settled", Label: "Settled status (indefinite leave)"},
	{Value: "pre-settled", Label: "Pre-settled status"},
	{Value: "visa-holder", Label: "Visa holder"},
	{Value: "asylum-seeker", Label: "Asylum seeker"},
	{Value: "refugee", Label: "Refugee"},
	{Value: "other", Label: "Other"},
}

var TenancyTypes = []Option{
	{Value: "private-rented", Label: "Private rented"},
	{Value: "social-housing", Label: "Social housing"},
	{Value: "owner-occupier", Label: "Owner occupier"},
	{Value: "living-with-family", Label: "Living with family or friends"},
	{Value: "temporary-accommodation", Label: "Temporary accommodation"},
	{Value: "homeless", Label: "Homeless"},
	{Value: "other", Label: "Other"},
}

// Values returns the ordered value list of an option set.
func Values(opts []Option) []string {
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		values = append(values, o.Value)
	}
	return values
}

// ValueSet returns the membership set of an option set, used by the
// validator so catalog and schema cannot drift apart.
func ValueSet(opts []Option) map[string]struct{} {
	set := make(map[string]struct{}, len(opts))
	for _, o := range opts {
		set[o.Value] = struct{}{}
	}
	return set
}
