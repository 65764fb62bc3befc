package registration

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"medagenda/models"
	"medagenda/services/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubPlatform records the payload it received and answers with a canned
// response or error.
type stubPlatform struct {
	payload  *models.DoctorRegistrationPayload
	response *models.DoctorAuthResponse
	err      error
}

func (s *stubPlatform) RegisterDoctor(_ context.Context, payload models.DoctorRegistrationPayload) (*models.DoctorAuthResponse, error) {
	s.payload = &payload
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func (s *stubPlatform) FetchSpecialties(context.Context) ([]models.Specialty, error) { return nil, nil }
func (s *stubPlatform) FetchCountries(context.Context) ([]models.Country, error)     { return nil, nil }
func (s *stubPlatform) FetchStates(context.Context, string) ([]models.State, error)  { return nil, nil }
func (s *stubPlatform) Ping(context.Context) error                                   { return nil }

type memoryTokenStore struct {
	ownerID string
	token   string
	user    json.RawMessage
}

func (m *memoryTokenStore) Persist(_ context.Context, ownerID, token string, user json.RawMessage) error {
	m.ownerID = ownerID
	m.token = token
	m.user = user
	return nil
}

func newSubmitFixture(t *testing.T, api platform.API) (*DefaultWizardService, *memorySessionStore, *memoryTokenStore, string) {
	t.Helper()
	store := newMemorySessionStore()
	tokens := &memoryTokenStore{}
	svc := NewWizardService(store, api, tokens, zap.NewNop())

	session, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	return svc, store, tokens, session.ID
}

func saveDraft(t *testing.T, store *memorySessionStore, sessionID string, draft models.RegistrationDraft) {
	t.Helper()
	session, err := store.Get(context.Background(), sessionID)
	require.NoError(t, err)
	session.Draft = draft
	require.NoError(t, store.Save(context.Background(), session))
}

func TestSubmitTransformsPayload(t *testing.T) {
	api := &stubPlatform{response: &models.DoctorAuthResponse{
		Success:     true,
		AccessToken: "tok-123",
		User:        json.RawMessage(`{"id": 42, "email": "doc@example.com"}`),
	}}
	svc, store, tokens, sessionID := newSubmitFixture(t, api)

	draft := validDraft()
	draft.AppointmentDuration = "30"
	// Present (passes the required rule) but not numeric, so it must travel
	// as null.
	draft.Specialty = "cardiology"
	saveDraft(t, store, sessionID, draft)

	result, err := svc.Submit(context.Background(), sessionID)
	require.NoError(t, err)
	require.NotNil(t, api.payload)

	// Numeric strings parsed; non-numeric falls back to null.
	require.NotNil(t, api.payload.AppointmentDuration)
	assert.Equal(t, 30, *api.payload.AppointmentDuration)
	require.NotNil(t, api.payload.OfficeStateID)
	assert.Equal(t, 9, *api.payload.OfficeStateID)
	assert.Nil(t, api.payload.SpecialtyID)

	// created_by composed from title + first name + paternal surname.
	assert.Equal(t, "Dra. Ana García", api.payload.CreatedBy)

	// Only active days travel.
	require.Len(t, api.payload.Schedule, 1)
	assert.Equal(t, 0, api.payload.Schedule[0].DayOfWeek)

	// Credentials persisted under the platform's user id, session discarded.
	assert.Equal(t, "tok-123", result.Token)
	assert.Equal(t, "42", tokens.ownerID)
	assert.Equal(t, "tok-123", tokens.token)
	assert.False(t, store.has(sessionID))
}

func TestSubmitRevalidatesEveryStep(t *testing.T) {
	api := &stubPlatform{response: &models.DoctorAuthResponse{AccessToken: "tok"}}
	svc, store, _, sessionID := newSubmitFixture(t, api)

	// A draft that is valid except for step 1, reached by free navigation.
	draft := validDraft()
	draft.CURP = "SHORT"
	saveDraft(t, store, sessionID, draft)
	_, err := svc.JumpTo(context.Background(), sessionID, 4)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), sessionID)
	var stepErr *StepValidationError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, models.StepPersonal, stepErr.Step)
	assert.Contains(t, stepErr.Result.Errors, "curp")

	// The platform was never reached and the session survives for correction,
	// parked on the failing step with its errors surfaced.
	assert.Nil(t, api.payload)
	session, err := store.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepPersonal, session.ActiveStep)
	assert.Contains(t, session.FieldErrors, "curp")
}

func TestSubmitPlatformRejection(t *testing.T) {
	api := &stubPlatform{err: &platform.APIError{Status: 400, Detail: "email already registered"}}
	svc, store, tokens, sessionID := newSubmitFixture(t, api)
	saveDraft(t, store, sessionID, validDraft())

	_, err := svc.Submit(context.Background(), sessionID)
	var apiErr *platform.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "email already registered", apiErr.UserMessage())

	// No credentials stored, session kept for another attempt. No retry.
	assert.Empty(t, tokens.token)
	assert.True(t, store.has(sessionID))
}

func TestSubmitFallsBackToSessionOwner(t *testing.T) {
	// Platform user payload without an id: credentials are keyed by session.
	api := &stubPlatform{response: &models.DoctorAuthResponse{
		AccessToken: "tok-xyz",
		User:        json.RawMessage(`{"email": "doc@example.com"}`),
	}}
	svc, store, tokens, sessionID := newSubmitFixture(t, api)
	saveDraft(t, store, sessionID, validDraft())

	_, err := svc.Submit(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, sessionID, tokens.ownerID)
}

func TestBuildRegistrationPayloadParsing(t *testing.T) {
	draft := validDraft()
	draft.Specialty = "3"
	draft.OfficeStateID = "oaxaca" // not numeric
	draft.AppointmentDuration = " 45 "

	payload := BuildRegistrationPayload(&draft)
	require.NotNil(t, payload.SpecialtyID)
	assert.Equal(t, 3, *payload.SpecialtyID)
	assert.Nil(t, payload.OfficeStateID)
	require.NotNil(t, payload.AppointmentDuration)
	assert.Equal(t, 45, *payload.AppointmentDuration)

	// Empty numeric-looking fields become null too.
	draft.Specialty = ""
	payload = BuildRegistrationPayload(&draft)
	assert.Nil(t, payload.SpecialtyID)
}

func TestSubmitSessionNotFound(t *testing.T) {
	svc := NewWizardService(newMemorySessionStore(), &stubPlatform{}, &memoryTokenStore{}, zap.NewNop())
	_, err := svc.Submit(context.Background(), "gone")
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}
