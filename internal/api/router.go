package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the questionnaire API. When staticDir is non-empty the
// single-page front end is served from it at the root.
func SetupRouter(h *Handlers, staticDir string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), NoStore(), CORS())

	api := router.Group("/api")
	{
		api.GET("/health", h.HealthCheck)

		api.GET("/questionnaires", h.ListQuestionnaires)
		api.POST("/questionnaires", h.SaveQuestionnaire)
		api.GET("/questionnaires/:id", h.GetQuestionnaire)
		api.DELETE("/questionnaires/:id", h.DeleteQuestionnaire)
		api.POST("/questionnaires/:id/answers", h.SubmitAnswers)
	}

	// Registered as the fallback so the file server cannot shadow /api.
	if staticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(staticDir))))
	}

	return router
}
