package registration

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"medagenda/models"

	"go.uber.org/zap"
)

// Submit is the terminal action of the wizard. Every step is re-validated
// here regardless of how the user navigated: free jumping via the step
// indicator must never let an unvalidated step reach the platform. The
// platform call creates the account and authenticates it in one shot; on
// success the credentials are persisted and the session discarded, on any
// failure the session is left intact for another attempt. No retries.
func (s *DefaultWizardService) Submit(ctx context.Context, sessionID string) (*SubmitResult, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for step := 0; step < models.StepCount; step++ {
		result := ValidateStep(step, &session.Draft)
		if !result.Valid {
			session.ActiveStep = step
			session.MarkVisited(step)
			session.FieldErrors = result.Errors
			if saveErr := s.Sessions.Save(ctx, session); saveErr != nil {
				s.Logger.Error("Failed to save session after submit validation",
					zap.String("sessionID", sessionID), zap.Error(saveErr))
			}
			return nil, &StepValidationError{Step: step, Result: result}
		}
	}

	payload := BuildRegistrationPayload(&session.Draft)
	auth, err := s.Platform.RegisterDoctor(ctx, payload)
	if err != nil {
		return nil, err
	}

	ownerID := userID(auth.User)
	if ownerID == "" {
		ownerID = session.ID
	}
	if err := s.Tokens.Persist(ctx, ownerID, auth.AccessToken, auth.User); err != nil {
		return nil, err
	}

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		// The account exists and the credentials are stored; an expiring
		// leftover session is not worth failing the registration over.
		s.Logger.Warn("Failed to delete session after successful registration",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	s.Logger.Info("Doctor registration completed",
		zap.String("sessionID", sessionID), zap.String("ownerID", ownerID))
	return &SubmitResult{Token: auth.AccessToken, User: auth.User}, nil
}

// BuildRegistrationPayload transforms the draft into the platform's expected
// shape. Numeric-looking strings become *int, nil when they do not parse;
// created_by is the display string composed from title and names; only
// active schedule days travel.
func BuildRegistrationPayload(d *models.RegistrationDraft) models.DoctorRegistrationPayload {
	return models.DoctorRegistrationPayload{
		Email:               d.Email,
		Password:            d.Password,
		FirstName:           d.FirstName,
		PaternalSurname:     d.PaternalSurname,
		MaternalSurname:     d.MaternalSurname,
		CURP:                d.CURP,
		Gender:              d.Gender,
		BirthDate:           d.BirthDate,
		Phone:               d.Phone,
		Title:               d.Title,
		SpecialtyID:         parseIntOrNil(d.Specialty),
		University:          d.University,
		GraduationYear:      d.GraduationYear,
		ProfessionalLicense: d.ProfessionalLicense,
		OfficeName:          d.OfficeName,
		OfficeAddress:       d.OfficeAddress,
		OfficeCountry:       d.OfficeCountry,
		OfficeStateID:       parseIntOrNil(d.OfficeStateID),
		OfficeCity:          d.OfficeCity,
		OfficePhone:         d.OfficePhone,
		AppointmentDuration: parseIntOrNil(d.AppointmentDuration),
		CreatedBy:           composeCreatedBy(d.Title, d.FirstName, d.PaternalSurname),
		Schedule:            d.Schedule.ActiveDays(),
	}
}

func parseIntOrNil(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

func composeCreatedBy(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// userID pulls the account identifier out of the opaque user payload. The
// platform has used both numeric and uuid ids, so both are tolerated.
func userID(user json.RawMessage) string {
	var probe struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(user, &probe); err != nil {
		return ""
	}
	switch v := probe.ID.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}
