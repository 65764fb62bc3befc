package registration

import (
	"context"
	"encoding/json"

	"medagenda/models"
)

// WizardService defines the business logic interface for the stepped
// registration flow.
type WizardService interface {
	// StartSession creates an empty draft with a fresh session ID.
	StartSession(ctx context.Context) (*models.RegistrationSession, error)
	// GetSession returns the current wizard state.
	GetSession(ctx context.Context, sessionID string) (*models.RegistrationSession, error)
	// SetField overwrites one scalar draft field and clears its error entry.
	SetField(ctx context.Context, sessionID, field, value string) (*models.RegistrationSession, error)
	// Advance validates the current step; on success the cursor moves forward,
	// on failure the session stays put and the result carries the errors.
	Advance(ctx context.Context, sessionID string) (*models.RegistrationSession, StepResult, error)
	// Back moves the cursor one step back unconditionally.
	Back(ctx context.Context, sessionID string) (*models.RegistrationSession, error)
	// JumpTo moves the cursor to any step unconditionally. Free navigation is
	// deliberate; the submit gate re-validates everything regardless.
	JumpTo(ctx context.Context, sessionID string, step int) (*models.RegistrationSession, error)

	// Weekly schedule sub-editor.
	SetDayActive(ctx context.Context, sessionID, day string, active bool) (*models.RegistrationSession, error)
	AddTimeBlock(ctx context.Context, sessionID, day string) (*models.RegistrationSession, error)
	RemoveTimeBlock(ctx context.Context, sessionID, day string, index int) (*models.RegistrationSession, error)
	UpdateTimeBlock(ctx context.Context, sessionID, day string, index int, field, value string) (*models.RegistrationSession, error)

	// Submit re-validates every step, relays the payload to the platform and
	// persists the returned credentials.
	Submit(ctx context.Context, sessionID string) (*SubmitResult, error)
}

// TokenStore persists the credentials a successful registration returns.
type TokenStore interface {
	Persist(ctx context.Context, ownerID, token string, user json.RawMessage) error
}

// SubmitResult is handed back to the HTTP layer after a successful submission.
type SubmitResult struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}
