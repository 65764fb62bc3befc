package handlers

import (
	"net/http"

	"medagenda/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the reference lists the wizard renders. The catalog
// service already degrades to empty lists on upstream failure, so these
// endpoints never fail loudly.
type CatalogHandler struct {
	Svc    catalog.Service
	Logger *zap.Logger
}

// NewCatalogHandler builds the catalog handler.
func NewCatalogHandler(svc catalog.Service, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// SpecialtiesHandler handles GET /api/catalogs/specialties.
func (h *CatalogHandler) SpecialtiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"specialties": h.Svc.Specialties(c.Request.Context())})
}

// CountriesHandler handles GET /api/catalogs/countries.
func (h *CatalogHandler) CountriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"countries": h.Svc.Countries(c.Request.Context())})
}

// StatesHandler handles GET /api/catalogs/countries/:code/states.
func (h *CatalogHandler) StatesHandler(c *gin.Context) {
	code := c.Param("code")
	c.JSON(http.StatusOK, gin.H{"states": h.Svc.States(c.Request.Context(), code)})
}
