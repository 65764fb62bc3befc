package platform

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx answer from the platform, reduced to the single
// user-facing string the wizard surfaces.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("platform returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("platform returned %d", e.Status)
}

// UserMessage resolves the message shown to the user. The fallback chain is:
// structured detail, nested response detail, status-code text, generic text.
func (e *APIError) UserMessage() string {
	if e.Detail != "" {
		return e.Detail
	}
	switch {
	case e.Status == 400:
		return "Please review the submitted information and try again."
	case e.Status >= 500:
		return "The registration service is temporarily unavailable. Please try again later."
	default:
		return "Registration could not be completed. Please try again."
	}
}

type errorBody struct {
	Detail string `json:"detail"`
	Data   struct {
		Detail string `json:"detail"`
	} `json:"data"`
}

// newAPIError extracts the best available detail string from an error body.
func newAPIError(status int, body []byte) *APIError {
	var parsed errorBody
	_ = json.Unmarshal(body, &parsed)

	detail := parsed.Detail
	if detail == "" {
		detail = parsed.Data.Detail
	}
	return &APIError{Status: status, Detail: detail}
}
