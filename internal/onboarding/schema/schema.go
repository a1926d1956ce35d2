// Package schema defines the per-field rules of the onboarding record and
// validates raw draft state against them. Validation never coerces: a value
// of the wrong JSON type is a field error, not a fault.
package schema

import (
	"regexp"
	"strings"

	"onboard-gateway/internal/onboarding/catalog"
	"onboard-gateway/pkg/domainerrors"
)

// FieldError is the per-field violation reported to clients.
type FieldError = domainerrors.FieldError

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// UK postcode: 1-2 letters, digit, optional letter or digit, optional
	// space, digit, two letters.
	postcodePattern = regexp.MustCompile(`(?i)^[A-Z]{1,2}\d[A-Z\d]? ?\d[A-Z]{2}$`)

	// NINO structure without the reserved-prefix rule; RE2 has no lookahead
	// so reserved prefixes are rejected separately in validNINO.
	ninoPattern = regexp.MustCompile(`(?i)^[A-CEGHJ-PR-TW-Z][A-CEGHJ-NPR-TW-Z](?:\s?\d){6}\s?[A-D]$`)

	ninoReservedPrefixes = map[string]struct{}{
		"BG": {}, "GB": {}, "NK": {}, "KN": {}, "TN": {}, "NT": {}, "ZZ": {},
	}
)

func validNINO(s string) bool {
	if !ninoPattern.MatchString(s) {
		return false
	}
	prefix := strings.ToUpper(s[:2])
	_, reserved := ninoReservedPrefixes[prefix]
	return !reserved
}

// rule validates one field's raw value. ok=false means the field's message
// should be reported; an empty message on the rule means the returned
// message is rule-specific.
type rule struct {
	message  string
	validate func(v any) bool
	optional bool
}

func minLen(n int) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && len(s) >= n
	}
}

func nonEmpty(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

func oneOf(opts []catalog.Option) func(any) bool {
	set := catalog.ValueSet(opts)
	return func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		_, member := set[s]
		return member
	}
}

func matching(fn func(string) bool) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && fn(s)
	}
}

// rules is the immutable validation table, derived from the catalog at
// package init so the two can never disagree.
var rules = map[string]rule{
	FieldFirstName: {message: "First name must be at least 2 characters", validate: minLen(2)},
	FieldSurname:   {message: "Surname must be at least 2 characters", validate: minLen(2)},
	FieldTitle:     {message: "Please select a title", validate: oneOf(catalog.Titles)},
	FieldEmail:     {message: "Please enter a valid email address", validate: matching(emailPattern.MatchString)},
	FieldPhone:     {message: "Phone number must be at least 10 digits", validate: minLen(10)},
	FieldBirthDate: {message: "Date of birth is required", validate: nonEmpty},
	FieldGender:    {message: "Please select a gender", validate: oneOf(catalog.Genders)},
	FieldNINO:      {message: "Invalid National Insurance Number", validate: matching(validNINO)},
	FieldBirthPlace: {
		message:  "Please select a birth place",
		validate: oneOf(catalog.Countries),
	},
	FieldAddressLine1: {message: "Address line 1 is required", validate: nonEmpty},
	FieldAddressLine2: {optional: true},
	FieldAddressLine3: {optional: true},
	FieldPostTown:     {message: "Post town is required", validate: nonEmpty},
	FieldPostcode:     {message: "Please enter a valid UK postcode", validate: matching(postcodePattern.MatchString)},
	FieldCountry:      {message: "Country is required", validate: nonEmpty},
	FieldMaritalStatus: {
		message:  "Please select a marital status",
		validate: oneOf(catalog.MaritalStatuses),
	},
	FieldNationality: {
		message:  "Please select a nationality",
		validate: oneOf(catalog.Nationalities),
	},
	FieldEnteredUK: {message: "Please enter a valid date", validate: nonEmpty},
	FieldImmigrationStatus: {
		message:  "Please select an immigration status",
		validate: oneOf(catalog.ImmigrationStatuses),
	},
	FieldTenancyType: {
		message:  "Please select a tenancy type",
		validate: oneOf(catalog.TenancyTypes),
	},
	FieldCurrentSituation: {message: "Please select a current situation", validate: nonEmpty},
	FieldTermsAndConditions: {
		message: "You must accept the terms and conditions",
		validate: func(v any) bool {
			b, ok := v.(bool)
			return ok && b
		},
	},
}

// Required reports whether the field must be present for the record to be
// complete. Unknown field names are not required.
func Required(field string) bool {
	r, ok := rules[field]
	return ok && !r.optional
}

// Validate checks the given raw state against the per-field rules. When a
// field subset is supplied only those fields are validated (per-step
// validation); otherwise every record field is validated (final submission).
// All violated fields are reported, ordered canonically; the typed record is
// only meaningful when the error list is empty.
func Validate(state map[string]any, fields ...string) (Record, []FieldError) {
	subset := fields
	if len(subset) == 0 {
		subset = FieldOrder
	}
	requested := make(map[string]struct{}, len(subset))
	for _, f := range subset {
		requested[f] = struct{}{}
	}

	var errs []FieldError
	var rec Record
	targets := rec.stringTargets()

	// Walk the canonical order so multiple violations come back in a stable,
	// screen-matching sequence.
	for _, field := range FieldOrder {
		if _, ok := requested[field]; !ok {
			continue
		}
		r := rules[field]
		v, present := state[field]

		if r.optional {
			if s, ok := v.(string); ok {
				*targets[field] = s
			}
			continue
		}

		if !present || !r.validate(v) {
			errs = append(errs, FieldError{Field: field, Message: r.message})
			continue
		}

		if field == FieldTermsAndConditions {
			rec.TermsAndConditions = v.(bool)
			continue
		}
		*targets[field] = v.(string)
	}

	if len(errs) > 0 {
		return Record{}, errs
	}
	return rec, nil
}
