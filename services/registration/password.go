package registration

import (
	"regexp"

	"medagenda/models"
)

// ValidatePassword evaluates the five password criteria independently so the
// caller can render every pass/fail mark at once. Pure and deterministic.
func ValidatePassword(pw string) models.PasswordValidation {
	return models.PasswordValidation{
		MinLength:    len(pw) >= 8,
		HasUppercase: regexp.MustCompile(`[A-Z]`).MatchString(pw),
		HasLowercase: regexp.MustCompile(`[a-z]`).MatchString(pw),
		HasDigit:     regexp.MustCompile(`[0-9]`).MatchString(pw),
		HasSpecial:   regexp.MustCompile(`[\W_]`).MatchString(pw),
	}
}
