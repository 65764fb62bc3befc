package registration

import (
	"fmt"

	"medagenda/models"
)

// applyField overwrites one scalar draft field addressed by its JSON name.
// The uniform handler behind every text input and selector in the wizard.
func applyField(d *models.RegistrationDraft, field, value string) error {
	switch field {
	case "email":
		d.Email = value
	case "password":
		d.Password = value
	case "confirm_password":
		d.ConfirmPassword = value
	case "first_name":
		d.FirstName = value
	case "paternal_surname":
		d.PaternalSurname = value
	case "maternal_surname":
		d.MaternalSurname = value
	case "curp":
		d.CURP = value
	case "gender":
		d.Gender = value
	case "birth_date":
		d.BirthDate = value
	case "phone":
		d.Phone = value
	case "title":
		d.Title = value
	case "specialty":
		d.Specialty = value
	case "university":
		d.University = value
	case "graduation_year":
		d.GraduationYear = value
	case "professional_license":
		d.ProfessionalLicense = value
	case "office_name":
		d.OfficeName = value
	case "office_address":
		d.OfficeAddress = value
	case "office_country":
		d.OfficeCountry = value
	case "office_state_id":
		d.OfficeStateID = value
	case "office_city":
		d.OfficeCity = value
	case "office_phone":
		d.OfficePhone = value
	case "appointment_duration":
		d.AppointmentDuration = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}
