package api

import (
	"net/http"

	"github.com/Ayash-Bera/jd-roadmap/backend/internal/api/handlers"
	"github.com/Ayash-Bera/jd-roadmap/backend/internal/middleware"
	"github.com/Ayash-Bera/jd-roadmap/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterConfig struct {
	AllowedOrigins []string
}

// NewRouter wires the relay endpoints and middleware onto a gin engine.
func NewRouter(cfg RouterConfig, relay *handlers.RelayHandler, health *handlers.HealthHandler, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithField("panic", recovered).Error("Recovered from panic")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeaders())

	router.GET("/health", health.HandleHealth)

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/analyze", relay.HandleAnalyze)
		apiGroup.POST("/search", relay.HandleSearch)
		apiGroup.POST("/explain", relay.HandleExplain)
	}

	return router
}
