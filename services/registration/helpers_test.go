package registration

import (
	"context"
	"encoding/json"
	"sync"

	"medagenda/models"
)

// validDraft returns a draft that passes every step's validation.
func validDraft() models.RegistrationDraft {
	d := models.NewRegistrationDraft()
	d.Email = "doc@example.com"
	d.Password = "Abcdef1!"
	d.ConfirmPassword = "Abcdef1!"
	d.FirstName = "Ana"
	d.PaternalSurname = "García"
	d.MaternalSurname = "Pérez"
	d.CURP = "GAPA900101MDFRRN08"
	d.Gender = "F"
	d.BirthDate = "1990-01-01"
	d.Phone = "5551234567"
	d.Title = "Dra."
	d.Specialty = "3"
	d.University = "UNAM"
	d.GraduationYear = "2015"
	d.ProfessionalLicense = "1234567"
	d.OfficeName = "Consultorio Centro"
	d.OfficeAddress = "Av. Reforma 100"
	d.OfficeCountry = "MX"
	d.OfficeStateID = "9"
	d.OfficeCity = "Ciudad de México"
	d.OfficePhone = "5559876543"
	d.AppointmentDuration = "30"
	_ = SetDayActive(d.Schedule, "monday", true)
	return d
}

// memorySessionStore is an in-memory SessionStore. It round-trips sessions
// through JSON like the Redis store does, so mutations on a returned session
// never leak back without an explicit Save.
type memorySessionStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{data: map[string][]byte{}}
}

func (m *memorySessionStore) Save(_ context.Context, session *models.RegistrationSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	m.data[session.ID] = data
	return nil
}

func (m *memorySessionStore) Get(_ context.Context, sessionID string) (*models.RegistrationSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var session models.RegistrationSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (m *memorySessionStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, sessionID)
	return nil
}

func (m *memorySessionStore) has(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[sessionID]
	return ok
}
