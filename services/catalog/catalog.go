// Package catalog serves the reference lists the wizard renders: medical
// specialties for the professional step, countries and states for the office
// step. Everything comes from the platform and is cached in Redis; a failed
// fetch degrades to an empty list instead of blocking the flow.
package catalog

import (
	"context"
	"encoding/json"
	"time"

	"medagenda/models"
	"medagenda/services/platform"
	"medagenda/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Service is the catalog read surface.
type Service interface {
	Specialties(ctx context.Context) []models.Specialty
	Countries(ctx context.Context) []models.Country
	States(ctx context.Context, countryCode string) []models.State
	// Refresh re-warms the specialty and country caches; the worker calls it
	// on a schedule.
	Refresh(ctx context.Context) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Platform platform.API
	Cache    *redis.Client
	TTL      time.Duration
	Logger   *zap.Logger
}

// NewCatalogService wires the catalog over the platform client and cache.
func NewCatalogService(api platform.API, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *DefaultCatalogService {
	return &DefaultCatalogService{Platform: api, Cache: cache, TTL: ttl, Logger: logger}
}

// Specialties returns the specialties catalog, empty on any failure.
func (s *DefaultCatalogService) Specialties(ctx context.Context) []models.Specialty {
	var out []models.Specialty
	if s.cached(ctx, utils.CatalogSpecialtiesKey, &out) {
		return out
	}
	out, err := s.Platform.FetchSpecialties(ctx)
	if err != nil {
		s.Logger.Warn("Failed to fetch specialties catalog", zap.Error(err))
		return []models.Specialty{}
	}
	s.store(ctx, utils.CatalogSpecialtiesKey, out)
	return out
}

// Countries returns the countries catalog, empty on any failure.
func (s *DefaultCatalogService) Countries(ctx context.Context) []models.Country {
	var out []models.Country
	if s.cached(ctx, utils.CatalogCountriesKey, &out) {
		return out
	}
	out, err := s.Platform.FetchCountries(ctx)
	if err != nil {
		s.Logger.Warn("Failed to fetch countries catalog", zap.Error(err))
		return []models.Country{}
	}
	s.store(ctx, utils.CatalogCountriesKey, out)
	return out
}

// States returns the states of one country, empty on any failure.
func (s *DefaultCatalogService) States(ctx context.Context, countryCode string) []models.State {
	key := utils.CatalogStatesPrefix + countryCode
	var out []models.State
	if s.cached(ctx, key, &out) {
		return out
	}
	out, err := s.Platform.FetchStates(ctx, countryCode)
	if err != nil {
		s.Logger.Warn("Failed to fetch states catalog",
			zap.String("country", countryCode), zap.Error(err))
		return []models.State{}
	}
	s.store(ctx, key, out)
	return out
}

// Refresh force-fetches the shared catalogs and rewrites their cache entries.
func (s *DefaultCatalogService) Refresh(ctx context.Context) error {
	specialties, err := s.Platform.FetchSpecialties(ctx)
	if err != nil {
		return err
	}
	s.store(ctx, utils.CatalogSpecialtiesKey, specialties)

	countries, err := s.Platform.FetchCountries(ctx)
	if err != nil {
		return err
	}
	s.store(ctx, utils.CatalogCountriesKey, countries)

	s.Logger.Info("Refreshed catalog caches",
		zap.Int("specialties", len(specialties)), zap.Int("countries", len(countries)))
	return nil
}

func (s *DefaultCatalogService) cached(ctx context.Context, key string, out any) bool {
	if s.Cache == nil {
		return false
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), out) == nil
}

func (s *DefaultCatalogService) store(ctx context.Context, key string, value any) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, s.TTL).Err(); err != nil {
		s.Logger.Warn("Failed to cache catalog", zap.String("key", key), zap.Error(err))
	}
}
