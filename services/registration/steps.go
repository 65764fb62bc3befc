package registration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"medagenda/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Graduation years before this are rejected outright.
const minGraduationYear = 1950

// StepResult is the outcome of validating one wizard step. Errors maps field
// names to messages and fully replaces the session's previous map; First
// holds the field that failed earliest in rule order, for the consolidated
// message the view surfaces.
type StepResult struct {
	Valid  bool
	Errors map[string]string
	First  string
}

// Message returns the single consolidated error string, or "" when valid.
func (r StepResult) Message() string {
	if r.Valid || r.First == "" {
		return ""
	}
	return r.Errors[r.First]
}

type stepRule struct {
	field   string
	check   func(d *models.RegistrationDraft) bool
	message string
}

func (r StepResult) fail(field, message string) StepResult {
	if _, exists := r.Errors[field]; !exists {
		r.Errors[field] = message
	}
	if r.First == "" {
		r.First = field
	}
	r.Valid = false
	return r
}

func runRules(draft *models.RegistrationDraft, rules []stepRule) StepResult {
	result := StepResult{Valid: true, Errors: map[string]string{}}
	for _, rule := range rules {
		// First failing rule wins per field; later rules for a field that
		// already failed never overwrite its message.
		if _, failed := result.Errors[rule.field]; failed {
			continue
		}
		if !rule.check(draft) {
			result = result.fail(rule.field, rule.message)
		}
	}
	return result
}

func required(get func(d *models.RegistrationDraft) string) func(*models.RegistrationDraft) bool {
	return func(d *models.RegistrationDraft) bool { return get(d) != "" }
}

// ValidateStep applies the rule ladder for one wizard step against the draft.
// Steps outside 0..4 are reported invalid with a step-level error.
func ValidateStep(step int, draft *models.RegistrationDraft) StepResult {
	switch step {
	case models.StepAccount:
		return validateAccountStep(draft)
	case models.StepPersonal:
		return validatePersonalStep(draft)
	case models.StepProfessional:
		return validateProfessionalStep(draft)
	case models.StepOffice:
		return validateOfficeStep(draft)
	case models.StepSchedule:
		return validateScheduleStep(draft)
	default:
		return StepResult{
			Valid:  false,
			Errors: map[string]string{"step": fmt.Sprintf("unknown step %d", step)},
			First:  "step",
		}
	}
}

func validateAccountStep(d *models.RegistrationDraft) StepResult {
	return runRules(d, []stepRule{
		{"email", required(func(d *models.RegistrationDraft) string { return d.Email }),
			"Email is required"},
		{"password", required(func(d *models.RegistrationDraft) string { return d.Password }),
			"Password is required"},
		{"confirm_password", required(func(d *models.RegistrationDraft) string { return d.ConfirmPassword }),
			"Password confirmation is required"},
		{"email", func(d *models.RegistrationDraft) bool { return emailPattern.MatchString(d.Email) },
			"Email address is not valid"},
		{"password", func(d *models.RegistrationDraft) bool { return ValidatePassword(d.Password).Acceptable() },
			"Password must satisfy at least 4 of the 5 strength criteria"},
		{"confirm_password", func(d *models.RegistrationDraft) bool { return d.Password == d.ConfirmPassword },
			"Passwords do not match"},
	})
}

func validatePersonalStep(d *models.RegistrationDraft) StepResult {
	return runRules(d, []stepRule{
		{"first_name", required(func(d *models.RegistrationDraft) string { return d.FirstName }),
			"First name is required"},
		{"paternal_surname", required(func(d *models.RegistrationDraft) string { return d.PaternalSurname }),
			"Paternal surname is required"},
		{"curp", required(func(d *models.RegistrationDraft) string { return d.CURP }),
			"CURP is required"},
		{"gender", required(func(d *models.RegistrationDraft) string { return d.Gender }),
			"Gender is required"},
		{"birth_date", required(func(d *models.RegistrationDraft) string { return d.BirthDate }),
			"Birth date is required"},
		{"phone", required(func(d *models.RegistrationDraft) string { return d.Phone }),
			"Phone is required"},
		// Only the length is checked; internal CURP structure is the platform's concern.
		{"curp", func(d *models.RegistrationDraft) bool { return len(d.CURP) == 18 },
			"CURP must be exactly 18 characters"},
	})
}

func validateProfessionalStep(d *models.RegistrationDraft) StepResult {
	return runRules(d, []stepRule{
		{"title", required(func(d *models.RegistrationDraft) string { return d.Title }),
			"Title is required"},
		{"specialty", required(func(d *models.RegistrationDraft) string { return d.Specialty }),
			"Specialty is required"},
		{"university", required(func(d *models.RegistrationDraft) string { return d.University }),
			"University is required"},
		{"graduation_year", required(func(d *models.RegistrationDraft) string { return d.GraduationYear }),
			"Graduation year is required"},
		{"professional_license", required(func(d *models.RegistrationDraft) string { return d.ProfessionalLicense }),
			"Professional license is required"},
		{"graduation_year", func(d *models.RegistrationDraft) bool {
			year, err := strconv.Atoi(d.GraduationYear)
			return err == nil && year >= minGraduationYear && year <= time.Now().Year()
		}, fmt.Sprintf("Graduation year must be between %d and the current year", minGraduationYear)},
	})
}

func validateOfficeStep(d *models.RegistrationDraft) StepResult {
	return runRules(d, []stepRule{
		{"office_name", required(func(d *models.RegistrationDraft) string { return d.OfficeName }),
			"Office name is required"},
		{"office_address", required(func(d *models.RegistrationDraft) string { return d.OfficeAddress }),
			"Office address is required"},
		{"office_city", required(func(d *models.RegistrationDraft) string { return d.OfficeCity }),
			"Office city is required"},
		{"office_state_id", required(func(d *models.RegistrationDraft) string { return d.OfficeStateID }),
			"Office state is required"},
		{"appointment_duration", required(func(d *models.RegistrationDraft) string { return d.AppointmentDuration }),
			"Appointment duration is required"},
		{"appointment_duration", func(d *models.RegistrationDraft) bool {
			minutes, err := strconv.Atoi(d.AppointmentDuration)
			return err == nil && minutes >= 5 && minutes <= 300
		}, "Appointment duration must be between 5 and 300 minutes"},
	})
}

func validateScheduleStep(d *models.RegistrationDraft) StepResult {
	return runRules(d, []stepRule{
		{"schedule", func(d *models.RegistrationDraft) bool { return d.Schedule.HasActiveDay() },
			"At least one day of the week must be active"},
		{"schedule", func(d *models.RegistrationDraft) bool {
			for _, ds := range d.Schedule.ActiveDays() {
				if len(ds.TimeBlocks) == 0 {
					return false
				}
			}
			return true
		}, "Every active day needs at least one time block"},
	})
}
