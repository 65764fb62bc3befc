package routes

import (
	"net/http"
	"time"

	"medagenda/handlers"
	"medagenda/middleware"
	"medagenda/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware opens the API to the browser front-end.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}

// RegisterRegistrationRoutes registers the wizard endpoints.
func RegisterRegistrationRoutes(r *gin.Engine, rh *handlers.RegistrationHandler) {
	api := r.Group("/api/registration")
	{
		// Public: session creation and the live password meter.
		api.POST("/session", rh.StartSessionHandler)
		api.POST("/password-check", rh.PasswordCheckHandler)

		// Everything touching an existing draft requires the session token.
		session := api.Group("/session")
		session.Use(middleware.SessionAuthMiddleware())
		session.GET("", rh.GetSessionHandler)
		session.PATCH("/field", rh.SetFieldHandler)
		session.POST("/advance", rh.AdvanceHandler)
		session.POST("/back", rh.BackHandler)
		session.POST("/jump", rh.JumpHandler)
		session.PUT("/schedule/:day", rh.SetDayActiveHandler)
		session.POST("/schedule/:day/blocks", rh.AddTimeBlockHandler)
		session.PATCH("/schedule/:day/blocks/:index", rh.UpdateTimeBlockHandler)
		session.DELETE("/schedule/:day/blocks/:index", rh.RemoveTimeBlockHandler)
		session.POST("/submit", rh.SubmitHandler)
	}
}

// RegisterCatalogRoutes registers the shared catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, ch *handlers.CatalogHandler) {
	api := r.Group("/api/catalogs")
	{
		api.GET("/specialties", ch.SpecialtiesHandler)
		api.GET("/countries", ch.CountriesHandler)
		api.GET("/countries/:code/states", ch.StatesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": utils.GetHealthStatus()})
	})
}
