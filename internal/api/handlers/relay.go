// backend/internal/api/handlers/relay.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Ayash-Bera/jd-roadmap/backend/internal/models"
	"github.com/Ayash-Bera/jd-roadmap/backend/internal/services"
	"github.com/Ayash-Bera/jd-roadmap/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Orchestrator interface {
	Analyze(ctx context.Context, req models.AnalyzeRequest) (json.RawMessage, error)
	Search(ctx context.Context, req models.SearchRequest) (json.RawMessage, error)
	Explain(ctx context.Context, req models.ExplainRequest) (*models.ExplainResponse, error)
}

type RelayHandler struct {
	orchestrator Orchestrator
	logger       *logrus.Logger
}

func NewRelayHandler(orchestrator Orchestrator, logger *logrus.Logger) *RelayHandler {
	return &RelayHandler{
		orchestrator: orchestrator,
		logger:       logger,
	}
}

// HandleAnalyze relays a job description to Gemini
func (h *RelayHandler) HandleAnalyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if !h.bind(c, &req) {
		return
	}

	body, err := h.orchestrator.Analyze(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "analyze", err)
		return
	}

	utils.RawJSONResponse(c, http.StatusOK, body)
}

// HandleSearch finds learning resources for a skill
func (h *RelayHandler) HandleSearch(c *gin.Context) {
	var req models.SearchRequest
	if !h.bind(c, &req) {
		return
	}

	body, err := h.orchestrator.Search(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "search", err)
		return
	}

	utils.RawJSONResponse(c, http.StatusOK, body)
}

// HandleExplain returns a one-paragraph beginner explanation of a skill
func (h *RelayHandler) HandleExplain(c *gin.Context) {
	startTime := time.Now()

	var req models.ExplainRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.orchestrator.Explain(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "explain", err)
		return
	}

	h.requestLogger(c).WithFields(logrus.Fields{
		"skill":         req.Skill,
		"response_time": time.Since(startTime).Milliseconds(),
	}).Info("Explanation generated")

	utils.SuccessResponse(c, http.StatusOK, resp)
}

func (h *RelayHandler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.requestLogger(c).WithError(err).Warn("Invalid request body")
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}

// fail logs the real cause and sends only the caller-safe message.
func (h *RelayHandler) fail(c *gin.Context, operation string, err error) {
	message := "Internal server error"
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}

	h.requestLogger(c).WithError(err).WithFields(logrus.Fields{
		"operation":  operation,
		"error_kind": services.KindOf(err).String(),
	}).Error("Relay request failed")

	utils.ErrorResponse(c, http.StatusInternalServerError, message)
}

func (h *RelayHandler) requestLogger(c *gin.Context) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"path":       c.FullPath(),
	})
}
