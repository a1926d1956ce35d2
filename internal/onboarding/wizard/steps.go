package wizard

import (
	"onboard-gateway/internal/onboarding/schema"
	dErrors "onboard-gateway/pkg/domainerrors"
)

// Step identifies one screen of the wizard. Submitted is terminal; the only
// way out of it is an explicit reset.
type Step string

const (
	StepPersonal   Step = "personal"
	StepAdditional Step = "additional"
	StepConsent    Step = "consent"
	StepSubmitted  Step = "submitted"
)

// formSteps is the forward order of the data-collecting screens.
var formSteps = []Step{StepPersonal, StepAdditional, StepConsent}

// ParseStep resolves a step name from the URL. Submitted is not a form step
// and is rejected here; the completion signal has its own entry point.
func ParseStep(s string) (Step, error) {
	switch Step(s) {
	case StepPersonal, StepAdditional, StepConsent:
		return Step(s), nil
	default:
		return "", dErrors.New(dErrors.CodeNotFound, "unknown onboarding step")
	}
}

// stepFields maps each form step to the disjoint subset of record fields it
// owns. The union over all steps is the full record.
var stepFields = map[Step][]string{
	StepPersonal: {
		schema.FieldFirstName,
		schema.FieldSurname,
		schema.FieldTitle,
		schema.FieldEmail,
		schema.FieldPhone,
		schema.FieldBirthDate,
		schema.FieldGender,
		schema.FieldNINO,
		schema.FieldBirthPlace,
		schema.FieldAddressLine1,
		schema.FieldAddressLine2,
		schema.FieldAddressLine3,
		schema.FieldPostTown,
		schema.FieldPostcode,
		schema.FieldCountry,
		schema.FieldMaritalStatus,
	},
	StepAdditional: {
		schema.FieldNationality,
		schema.FieldEnteredUK,
		schema.FieldImmigrationStatus,
		schema.FieldTenancyType,
		schema.FieldCurrentSituation,
	},
	StepConsent: {
		schema.FieldTermsAndConditions,
	},
}

// StepFields returns the fields owned by a form step.
func StepFields(step Step) []string {
	return stepFields[step]
}

// fieldDefaults are the pre-population values for fields the draft has not
// set yet. Everything else defaults to the empty string.
var fieldDefaults = map[string]any{
	schema.FieldBirthPlace:         "united-kingdom",
	schema.FieldTermsAndConditions: false,
}

func defaultFor(field string) any {
	if v, ok := fieldDefaults[field]; ok {
		return v
	}
	return ""
}

// next returns the step after a successful advance from the given form step.
func next(step Step) Step {
	switch step {
	case StepPersonal:
		return StepAdditional
	case StepAdditional:
		return StepConsent
	default:
		return StepSubmitted
	}
}

// requiredBefore lists the required fields of every group preceding step.
// For StepSubmitted that is the whole record, consent flag included.
func requiredBefore(step Step) []string {
	var fields []string
	for _, prior := range formSteps {
		if prior == step && step != StepSubmitted {
			break
		}
		for _, f := range stepFields[prior] {
			if schema.Required(f) {
				fields = append(fields, f)
			}
		}
	}
	return fields
}
