package handlers

import (
	"net/http"
	"time"

	"github.com/Ayash-Bera/jd-roadmap/backend/internal/health"
	"github.com/Ayash-Bera/jd-roadmap/backend/internal/models"
	"github.com/Ayash-Bera/jd-roadmap/backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

const serviceName = "jd-roadmap-relay"

type HealthHandler struct {
	checker *health.HealthChecker
}

func NewHealthHandler(checker *health.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// HandleHealth always answers 200; a degraded status means some endpoints
// will fail with a configuration error.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	overall := h.checker.CheckAll()

	services := make(map[string]string, len(overall.Services))
	for _, s := range overall.Services {
		services[s.Name] = s.Status
	}

	utils.SuccessResponse(c, http.StatusOK, models.HealthResponse{
		Status:    overall.Status,
		Service:   serviceName,
		Timestamp: time.Now().Format(time.RFC3339),
		Services:  services,
	})
}
