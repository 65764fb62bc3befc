package registration

import (
	"context"
	"fmt"
	"time"

	"medagenda/models"
	"medagenda/services/platform"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultWizardService is the production implementation.
type DefaultWizardService struct {
	Sessions SessionStore
	Platform platform.API
	Tokens   TokenStore
	Logger   *zap.Logger
}

// NewWizardService wires the wizard over its collaborators.
func NewWizardService(sessions SessionStore, api platform.API, tokens TokenStore, logger *zap.Logger) *DefaultWizardService {
	return &DefaultWizardService{Sessions: sessions, Platform: api, Tokens: tokens, Logger: logger}
}

// StartSession creates a fresh session with an empty draft on step 0.
func (s *DefaultWizardService) StartSession(ctx context.Context) (*models.RegistrationSession, error) {
	session := &models.RegistrationSession{
		ID:          uuid.New().String(),
		Draft:       models.NewRegistrationDraft(),
		ActiveStep:  models.StepAccount,
		FieldErrors: map[string]string{},
		CreatedAt:   time.Now(),
	}
	session.MarkVisited(models.StepAccount)
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("Started registration session", zap.String("sessionID", session.ID))
	return session, nil
}

// GetSession returns the current wizard state.
func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.RegistrationSession, error) {
	return s.Sessions.Get(ctx, sessionID)
}

// SetField overwrites the named draft field and optimistically clears its
// error entry; errors reappear only on the next explicit validation pass.
func (s *DefaultWizardService) SetField(ctx context.Context, sessionID, field, value string) (*models.RegistrationSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := applyField(&session.Draft, field, value); err != nil {
		return nil, err
	}
	delete(session.FieldErrors, field)
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance validates the current step. On success the cursor moves forward and
// the new step joins the visited set; on failure the cursor stays and the
// session's field errors are replaced with the fresh validation output.
func (s *DefaultWizardService) Advance(ctx context.Context, sessionID string) (*models.RegistrationSession, StepResult, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, StepResult{}, err
	}
	if session.ActiveStep >= models.StepSchedule {
		return nil, StepResult{}, fmt.Errorf("%w: cannot advance past the last step", ErrInvalidStep)
	}

	result := ValidateStep(session.ActiveStep, &session.Draft)
	session.FieldErrors = result.Errors
	if result.Valid {
		session.ActiveStep++
		session.MarkVisited(session.ActiveStep)
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, StepResult{}, err
	}
	return session, result, nil
}

// Back moves one step back. Never validates, never blocked.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.RegistrationSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.ActiveStep > 0 {
		session.ActiveStep--
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// JumpTo moves the cursor straight to any step via the step indicator.
func (s *DefaultWizardService) JumpTo(ctx context.Context, sessionID string, step int) (*models.RegistrationSession, error) {
	if step < 0 || step >= models.StepCount {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.ActiveStep = step
	session.MarkVisited(step)
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetDayActive toggles one weekday of the draft's schedule.
func (s *DefaultWizardService) SetDayActive(ctx context.Context, sessionID, day string, active bool) (*models.RegistrationSession, error) {
	return s.editSchedule(ctx, sessionID, func(ws models.WeeklySchedule) error {
		return SetDayActive(ws, day, active)
	})
}

// AddTimeBlock appends a default block to one weekday.
func (s *DefaultWizardService) AddTimeBlock(ctx context.Context, sessionID, day string) (*models.RegistrationSession, error) {
	return s.editSchedule(ctx, sessionID, func(ws models.WeeklySchedule) error {
		return AddTimeBlock(ws, day)
	})
}

// RemoveTimeBlock drops one block by position; the day's last block is kept.
func (s *DefaultWizardService) RemoveTimeBlock(ctx context.Context, sessionID, day string, index int) (*models.RegistrationSession, error) {
	return s.editSchedule(ctx, sessionID, func(ws models.WeeklySchedule) error {
		return RemoveTimeBlock(ws, day, index)
	})
}

// UpdateTimeBlock replaces the start or end string of one block.
func (s *DefaultWizardService) UpdateTimeBlock(ctx context.Context, sessionID, day string, index int, field, value string) (*models.RegistrationSession, error) {
	return s.editSchedule(ctx, sessionID, func(ws models.WeeklySchedule) error {
		return UpdateTimeBlock(ws, day, index, field, value)
	})
}

func (s *DefaultWizardService) editSchedule(ctx context.Context, sessionID string, edit func(models.WeeklySchedule) error) (*models.RegistrationSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Draft.Schedule == nil {
		session.Draft.Schedule = models.NewWeeklySchedule()
	}
	if err := edit(session.Draft.Schedule); err != nil {
		return nil, err
	}
	delete(session.FieldErrors, "schedule")
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
