package models

import (
	"encoding/json"
	"time"
)

// Wizard step indexes.
const (
	StepAccount = iota
	StepPersonal
	StepProfessional
	StepOffice
	StepSchedule
	StepCount
)

// RegistrationDraft is the mutable in-progress doctor record a user fills out
// across the wizard. Numeric-looking fields stay strings until submission,
// when they are parsed into the platform payload.
type RegistrationDraft struct {
	// Account.
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`

	// Personal.
	FirstName       string `json:"first_name"`
	PaternalSurname string `json:"paternal_surname"`
	MaternalSurname string `json:"maternal_surname"`
	CURP            string `json:"curp"`
	Gender          string `json:"gender"`
	BirthDate       string `json:"birth_date"`
	Phone           string `json:"phone"`

	// Professional.
	Title               string `json:"title"`
	Specialty           string `json:"specialty"`
	University          string `json:"university"`
	GraduationYear      string `json:"graduation_year"`
	ProfessionalLicense string `json:"professional_license"`

	// Office.
	OfficeName          string `json:"office_name"`
	OfficeAddress       string `json:"office_address"`
	OfficeCountry       string `json:"office_country"`
	OfficeStateID       string `json:"office_state_id"`
	OfficeCity          string `json:"office_city"`
	OfficePhone         string `json:"office_phone"`
	AppointmentDuration string `json:"appointment_duration"`

	Schedule WeeklySchedule `json:"schedule"`
}

// NewRegistrationDraft returns an empty draft with all seven schedule days present.
func NewRegistrationDraft() RegistrationDraft {
	return RegistrationDraft{Schedule: NewWeeklySchedule()}
}

// RegistrationSession holds all transient wizard state while a doctor works
// through the registration flow: the draft, the step cursor, the set of
// visited steps (progress indicator only, never a validity record), and the
// field errors from the latest validation pass.
type RegistrationSession struct {
	ID            string            `json:"id"`
	Draft         RegistrationDraft `json:"draft"`
	ActiveStep    int               `json:"active_step"`
	VisitedSteps  []int             `json:"visited_steps"`
	FieldErrors   map[string]string `json:"field_errors,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	LastUpdatedAt time.Time         `json:"last_updated_at"`
}

// MarkVisited records a step in the visited set. The set only ever grows.
func (s *RegistrationSession) MarkVisited(step int) {
	for _, v := range s.VisitedSteps {
		if v == step {
			return
		}
	}
	s.VisitedSteps = append(s.VisitedSteps, step)
}

// HasVisited reports whether a step has been shown to the user.
func (s *RegistrationSession) HasVisited(step int) bool {
	for _, v := range s.VisitedSteps {
		if v == step {
			return true
		}
	}
	return false
}

// PasswordValidation holds the five independent password criteria. It is
// derived from the current password on every change, never stored.
type PasswordValidation struct {
	MinLength    bool `json:"min_length"`
	HasUppercase bool `json:"has_uppercase"`
	HasLowercase bool `json:"has_lowercase"`
	HasDigit     bool `json:"has_digit"`
	HasSpecial   bool `json:"has_special"`
}

// Strength counts the satisfied criteria (0-5).
func (v PasswordValidation) Strength() int {
	n := 0
	for _, ok := range []bool{v.MinLength, v.HasUppercase, v.HasLowercase, v.HasDigit, v.HasSpecial} {
		if ok {
			n++
		}
	}
	return n
}

// Acceptable applies the 4-of-5 policy: a single missing criterion does not
// block registration when the rest are satisfied.
func (v PasswordValidation) Acceptable() bool {
	return v.Strength() >= 4
}

// DoctorRegistrationPayload is the shape the platform registration endpoint
// expects. Numeric-looking draft strings are parsed here, with nil standing
// in for anything that does not parse.
type DoctorRegistrationPayload struct {
	Email               string        `json:"email"`
	Password            string        `json:"password"`
	FirstName           string        `json:"first_name"`
	PaternalSurname     string        `json:"paternal_surname"`
	MaternalSurname     string        `json:"maternal_surname,omitempty"`
	CURP                string        `json:"curp"`
	Gender              string        `json:"gender"`
	BirthDate           string        `json:"birth_date"`
	Phone               string        `json:"phone"`
	Title               string        `json:"title"`
	SpecialtyID         *int          `json:"specialty_id"`
	University          string        `json:"university"`
	GraduationYear      string        `json:"graduation_year"`
	ProfessionalLicense string        `json:"professional_license"`
	OfficeName          string        `json:"office_name"`
	OfficeAddress       string        `json:"office_address"`
	OfficeCountry       string        `json:"office_country,omitempty"`
	OfficeStateID       *int          `json:"office_state_id"`
	OfficeCity          string        `json:"office_city"`
	OfficePhone         string        `json:"office_phone,omitempty"`
	AppointmentDuration *int          `json:"appointment_duration"`
	CreatedBy           string        `json:"created_by"`
	Schedule            []DaySchedule `json:"schedule"`
}

// DoctorAuthResponse is returned by the platform when registration succeeds.
// The endpoint creates the account and authenticates it atomically, so the
// bearer token arrives in the same response.
type DoctorAuthResponse struct {
	Success     bool            `json:"success"`
	AccessToken string          `json:"access_token"`
	User        json.RawMessage `json:"user"`
}
