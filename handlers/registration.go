package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"medagenda/config"
	"medagenda/middleware"
	"medagenda/services/platform"
	"medagenda/services/registration"
	"medagenda/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegistrationHandler exposes the stepped registration wizard over HTTP.
type RegistrationHandler struct {
	Svc    registration.WizardService
	Logger *zap.Logger
}

// NewRegistrationHandler builds the wizard handler.
func NewRegistrationHandler(svc registration.WizardService, logger *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{Svc: svc, Logger: logger}
}

func sessionID(c *gin.Context) string {
	return c.GetString(middleware.SessionIDKey)
}

// respondServiceError maps wizard errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	logger := getLogger(c)

	var stepErr *registration.StepValidationError
	if errors.As(err, &stepErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":        stepErr.Result.Message(),
			"step":         stepErr.Step,
			"field_errors": stepErr.Result.Errors,
		})
		return
	}

	var apiErr *platform.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": apiErr.UserMessage()})
		return
	}

	switch {
	case errors.Is(err, registration.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration session not found or expired"})
	case errors.Is(err, registration.ErrLastTimeBlock):
		c.JSON(http.StatusConflict, gin.H{"error": "An active day must keep at least one time block"})
	case errors.Is(err, registration.ErrUnknownField),
		errors.Is(err, registration.ErrUnknownDay),
		errors.Is(err, registration.ErrBlockIndexOutOfRange),
		errors.Is(err, registration.ErrInvalidStep):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Registration service error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// StartSessionHandler handles POST /api/registration/session.
func (h *RegistrationHandler) StartSessionHandler(c *gin.Context) {
	session, err := h.Svc.StartSession(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := utils.GenerateSessionToken(session.ID, config.SessionTTL())
	if err != nil {
		h.Logger.Error("Failed to sign session token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": session, "session_token": token})
}

// GetSessionHandler handles GET /api/registration/session.
func (h *RegistrationHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Svc.GetSession(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetFieldHandler handles PATCH /api/registration/session/field.
func (h *RegistrationHandler) SetFieldHandler(c *gin.Context) {
	var body struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Svc.SetField(c.Request.Context(), sessionID(c), body.Field, body.Value)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AdvanceHandler handles POST /api/registration/session/advance. A failed
// gate answers 422 with the consolidated message plus the typed field map.
func (h *RegistrationHandler) AdvanceHandler(c *gin.Context) {
	session, result, err := h.Svc.Advance(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":        result.Message(),
			"field_errors": result.Errors,
			"session":      session,
		})
		return
	}
	c.JSON(http.StatusOK, session)
}

// BackHandler handles POST /api/registration/session/back.
func (h *RegistrationHandler) BackHandler(c *gin.Context) {
	session, err := h.Svc.Back(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// JumpHandler handles POST /api/registration/session/jump.
func (h *RegistrationHandler) JumpHandler(c *gin.Context) {
	var body struct {
		Step *int `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Svc.JumpTo(c.Request.Context(), sessionID(c), *body.Step)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetDayActiveHandler handles PUT /api/registration/session/schedule/:day.
func (h *RegistrationHandler) SetDayActiveHandler(c *gin.Context) {
	var body struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Svc.SetDayActive(c.Request.Context(), sessionID(c), c.Param("day"), *body.IsActive)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AddTimeBlockHandler handles POST /api/registration/session/schedule/:day/blocks.
func (h *RegistrationHandler) AddTimeBlockHandler(c *gin.Context) {
	session, err := h.Svc.AddTimeBlock(c.Request.Context(), sessionID(c), c.Param("day"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RemoveTimeBlockHandler handles DELETE /api/registration/session/schedule/:day/blocks/:index.
func (h *RegistrationHandler) RemoveTimeBlockHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Block index must be an integer"})
		return
	}

	session, err := h.Svc.RemoveTimeBlock(c.Request.Context(), sessionID(c), c.Param("day"), index)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateTimeBlockHandler handles PATCH /api/registration/session/schedule/:day/blocks/:index.
func (h *RegistrationHandler) UpdateTimeBlockHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Block index must be an integer"})
		return
	}

	var body struct {
		Field string `json:"field" binding:"required"`
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Svc.UpdateTimeBlock(c.Request.Context(), sessionID(c), c.Param("day"), index, body.Field, body.Value)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitHandler handles POST /api/registration/session/submit.
func (h *RegistrationHandler) SubmitHandler(c *gin.Context) {
	result, err := h.Svc.Submit(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// PasswordCheckHandler handles POST /api/registration/password-check. It
// returns the five criteria individually so the client can render live
// pass/fail marks while the user types.
func (h *RegistrationHandler) PasswordCheckHandler(c *gin.Context) {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	validation := registration.ValidatePassword(body.Password)
	c.JSON(http.StatusOK, gin.H{
		"criteria":   validation,
		"strength":   validation.Strength(),
		"acceptable": validation.Acceptable(),
	})
}
