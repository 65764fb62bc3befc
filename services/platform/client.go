// Package platform is the thin consumer of the practice-platform REST API.
// The gateway never owns accounts or catalogs; it relays the finalized
// registration payload and reads the catalogs this wizard renders.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"medagenda/models"

	"go.uber.org/zap"
)

// API is the platform surface the rest of the gateway depends on.
type API interface {
	// RegisterDoctor performs account creation AND authentication atomically;
	// there is no separate login call in this flow.
	RegisterDoctor(ctx context.Context, payload models.DoctorRegistrationPayload) (*models.DoctorAuthResponse, error)
	FetchSpecialties(ctx context.Context) ([]models.Specialty, error)
	FetchCountries(ctx context.Context) ([]models.Country, error)
	FetchStates(ctx context.Context, countryCode string) ([]models.State, error)
	Ping(ctx context.Context) error
}

// Client is the production implementation over plain HTTP.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *zap.Logger
}

// NewClient builds a platform client with the given base URL and timeout.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

// RegisterDoctor posts the transformed draft to the registration endpoint.
func (c *Client) RegisterDoctor(ctx context.Context, payload models.DoctorRegistrationPayload) (*models.DoctorAuthResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode registration payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/doctors/register", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build registration request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registration request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read registration response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, data)
		c.Logger.Warn("Platform rejected registration",
			zap.Int("status", resp.StatusCode),
			zap.String("detail", apiErr.Detail))
		return nil, apiErr
	}

	var auth models.DoctorAuthResponse
	if err := json.Unmarshal(data, &auth); err != nil {
		return nil, fmt.Errorf("failed to decode registration response: %w", err)
	}
	return &auth, nil
}

// FetchSpecialties retrieves the medical specialties catalog.
func (c *Client) FetchSpecialties(ctx context.Context) ([]models.Specialty, error) {
	var out []models.Specialty
	if err := c.getJSON(ctx, "/catalogs/specialties", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchCountries retrieves the countries catalog.
func (c *Client) FetchCountries(ctx context.Context) ([]models.Country, error) {
	var out []models.Country
	if err := c.getJSON(ctx, "/catalogs/countries", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchStates retrieves the states catalog filtered by country.
func (c *Client) FetchStates(ctx context.Context, countryCode string) ([]models.State, error) {
	var out []models.State
	if err := c.getJSON(ctx, "/catalogs/countries/"+url.PathEscape(countryCode)+"/states", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping checks platform reachability for the health monitor.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("platform unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
