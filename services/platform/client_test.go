package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medagenda/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, zap.NewNop())
}

func TestRegisterDoctorSuccess(t *testing.T) {
	var received models.DoctorRegistrationPayload
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/doctors/register", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"access_token": "tok-abc",
			"user":         map[string]any{"id": 7},
		})
	})

	duration := 30
	auth, err := client.RegisterDoctor(context.Background(), models.DoctorRegistrationPayload{
		Email:               "doc@example.com",
		AppointmentDuration: &duration,
	})
	require.NoError(t, err)
	assert.True(t, auth.Success)
	assert.Equal(t, "tok-abc", auth.AccessToken)
	assert.Equal(t, "doc@example.com", received.Email)
	require.NotNil(t, received.AppointmentDuration)
	assert.Equal(t, 30, *received.AppointmentDuration)
}

func TestRegisterDoctorErrorDetailChain(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			"structured detail",
			400, `{"detail": "email already registered"}`,
			"email already registered",
		},
		{
			"nested data detail",
			400, `{"data": {"detail": "CURP is already in use"}}`,
			"CURP is already in use",
		},
		{
			"bad request without detail",
			400, `{}`,
			"Please review the submitted information and try again.",
		},
		{
			"server error without detail",
			500, `boom`,
			"The registration service is temporarily unavailable. Please try again later.",
		},
		{
			"unexpected status without detail",
			418, ``,
			"Registration could not be completed. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.RegisterDoctor(context.Background(), models.DoctorRegistrationPayload{})
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.UserMessage())
		})
	}
}

func TestFetchSpecialties(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/catalogs/specialties", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Specialty{
			{ID: 1, Name: "Cardiología"},
			{ID: 2, Name: "Pediatría"},
		})
	})

	specialties, err := client.FetchSpecialties(context.Background())
	require.NoError(t, err)
	require.Len(t, specialties, 2)
	assert.Equal(t, "Cardiología", specialties[0].Name)
}

func TestFetchStatesPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/catalogs/countries/MX/states", r.URL.Path)
		json.NewEncoder(w).Encode([]models.State{{ID: 9, Name: "Ciudad de México"}})
	})

	states, err := client.FetchStates(context.Background(), "MX")
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, 9, states[0].ID)
}

func TestFetchStatesEscapesCountryCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// A slash in the code must stay a single path segment, not reshape
		// the request path.
		require.Equal(t, "/catalogs/countries/MX%2Fadmin/states", r.URL.EscapedPath())
		json.NewEncoder(w).Encode([]models.State{})
	})

	_, err := client.FetchStates(context.Background(), "MX/admin")
	require.NoError(t, err)
}

func TestPing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	assert.NoError(t, client.Ping(context.Background()))

	down := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.Error(t, down.Ping(context.Background()))
}
