package schema

// Field names of the aggregate onboarding record. The order of FieldOrder is
// the canonical order used for error reporting and step layouts.
const (
	FieldFirstName          = "firstName"
	FieldSurname            = "surname"
	FieldTitle              = "title"
	FieldEmail              = "email"
	FieldPhone              = "phone"
	FieldBirthDate          = "birthDate"
	FieldGender             = "gender"
	FieldNINO               = "nino"
	FieldBirthPlace         = "birthPlace"
	FieldAddressLine1       = "addressLine1"
	FieldAddressLine2       = "addressLine2"
	FieldAddressLine3       = "addressLine3"
	FieldPostTown           = "postTown"
	FieldPostcode           = "postcode"
	FieldCountry            = "country"
	FieldMaritalStatus      = "maritalStatus"
	FieldNationality        = "nationality"
	FieldEnteredUK          = "enteredUK"
	FieldImmigrationStatus  = "immigrationStatus"
	FieldTenancyType        = "tenancyType"
	FieldCurrentSituation   = "currentSituation"
	FieldTermsAndConditions = "termsAndConditions"
)

// FieldOrder lists every record field in canonical order.
var FieldOrder = []string{
	FieldFirstName,
	FieldSurname,
	FieldTitle,
	FieldEmail,
	FieldPhone,
	FieldBirthDate,
	FieldGender,
	FieldNINO,
	FieldBirthPlace,
	FieldAddressLine1,
	FieldAddressLine2,
	FieldAddressLine3,
	FieldPostTown,
	FieldPostcode,
	FieldCountry,
	FieldMaritalStatus,
	FieldNationality,
	FieldEnteredUK,
	FieldImmigrationStatus,
	FieldTenancyType,
	FieldCurrentSituation,
	FieldTermsAndConditions,
}

// Record is the fully validated aggregate onboarding record. JSON tags match
// the wire field names used by the draft store and the forms store.
type Record struct {
	FirstName          string `json:"firstName"`
	Surname            string `json:"surname"`
	Title              string `json:"title"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	BirthDate          string `json:"birthDate"`
	Gender             string `json:"gender"`
	NINO               string `json:"nino"`
	BirthPlace         string `json:"birthPlace"`
	AddressLine1       string `json:"addressLine1"`
	AddressLine2       string `json:"addressLine2,omitempty"`
	AddressLine3       string `json:"addressLine3,omitempty"`
	PostTown           string `json:"postTown"`
	Postcode           string `json:"postcode"`
	Country            string `json:"country"`
	MaritalStatus      string `json:"maritalStatus"`
	Nationality        string `json:"nationality"`
	EnteredUK          string `json:"enteredUK"`
	ImmigrationStatus  string `json:"immigrationStatus"`
	TenancyType        string `json:"tenancyType"`
	CurrentSituation   string `json:"currentSituation"`
	TermsAndConditions bool   `json:"termsAndConditions"`
}

// stringTargets maps each string field name to its destination in a Record.
func (r *Record) stringTargets() map[string]*string {
	return map[string]*string{
		FieldFirstName:         &r.FirstName,
		FieldSurname:           &r.Surname,
		FieldTitle:             &r.Title,
		FieldEmail:             &r.Email,
		FieldPhone:             &r.Phone,
		FieldBirthDate:         &r.BirthDate,
		FieldGender:            &r.Gender,
		FieldNINO:              &r.NINO,
		FieldBirthPlace:        &r.BirthPlace,
		FieldAddressLine1:      &r.AddressLine1,
		FieldAddressLine2:      &r.AddressLine2,
		FieldAddressLine3:      &r.AddressLine3,
		FieldPostTown:          &r.PostTown,
		FieldPostcode:          &r.Postcode,
		FieldCountry:           &r.Country,
		FieldMaritalStatus:     &r.MaritalStatus,
		FieldNationality:       &r.Nationality,
		FieldEnteredUK:         &r.EnteredUK,
		FieldImmigrationStatus: &r.ImmigrationStatus,
		FieldTenancyType:       &r.TenancyType,
		FieldCurrentSituation:  &r.CurrentSituation,
	}
}
