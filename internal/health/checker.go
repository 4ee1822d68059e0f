package health

import (
	"time"

	"github.com/Ayash-Bera/jd-roadmap/backend/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	StatusHealthy    = "healthy"
	StatusDegraded   = "degraded"
	StatusMissing    = "missing"
	StatusConfigured = "configured"
)

// HealthChecker reports whether each upstream can be called. It never
// contacts the upstreams, so probing /health costs no API quota.
type HealthChecker struct {
	cfg       *config.Config
	logger    *logrus.Logger
	startTime time.Time
}

func NewHealthChecker(cfg *config.Config, logger *logrus.Logger) *HealthChecker {
	return &HealthChecker{
		cfg:       cfg,
		logger:    logger,
		startTime: time.Now(),
	}
}

// ServiceHealth represents the readiness of one upstream
type ServiceHealth struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
	LastChecked string `json:"last_checked"`
}

// OverallHealth represents the overall relay health
type OverallHealth struct {
	Status   string          `json:"status"`
	Services []ServiceHealth `json:"services"`
	Uptime   string          `json:"uptime"`
}

func (h *HealthChecker) CheckGemini() ServiceHealth {
	return h.check("gemini", h.cfg.ValidateGemini())
}

func (h *HealthChecker) CheckExa() ServiceHealth {
	return h.check("exa", h.cfg.ValidateExa())
}

func (h *HealthChecker) check(name string, err error) ServiceHealth {
	status := StatusConfigured
	errorMsg := ""
	if err != nil {
		status = StatusMissing
		errorMsg = err.Error()
		h.logger.WithField("service", name).Warn("Upstream credential missing")
	}

	return ServiceHealth{
		Name:        name,
		Status:      status,
		Error:       errorMsg,
		LastChecked: time.Now().Format(time.RFC3339),
	}
}

// CheckAll is degraded as soon as one upstream is not callable; the
// endpoints that do not need it keep working.
func (h *HealthChecker) CheckAll() OverallHealth {
	services := []ServiceHealth{
		h.CheckGemini(),
		h.CheckExa(),
	}

	overallStatus := StatusHealthy
	for _, service := range services {
		if service.Status != StatusConfigured {
			overallStatus = StatusDegraded
			break
		}
	}

	return OverallHealth{
		Status:   overallStatus,
		Services: services,
		Uptime:   time.Since(h.startTime).Round(time.Second).String(),
	}
}
