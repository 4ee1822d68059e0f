package services

import (
	"context"
	"encoding/json"

	"github.com/Ayash-Bera/jd-roadmap/backend/internal/config"
	"github.com/Ayash-Bera/jd-roadmap/backend/internal/exa"
	"github.com/Ayash-Bera/jd-roadmap/backend/internal/gemini"
	"github.com/Ayash-Bera/jd-roadmap/backend/internal/models"
	"github.com/sirupsen/logrus"
)

type TextGenerator interface {
	GenerateContent(ctx context.Context, req gemini.GenerateContentRequest) (*gemini.GenerateContentResponse, error)
}

type WebSearcher interface {
	Search(ctx context.Context, req exa.SearchRequest) (*exa.SearchResponse, error)
	Contents(ctx context.Context, req exa.ContentsRequest) (*exa.ContentsResponse, error)
}

const (
	analyzeTemperature = 0.2
	searchNumResults   = 2
	explainNumResults  = 3
	contentMaxChars    = 2000
	contentSeparator   = "\n\n---\n\n"
)

// Orchestrator relays analyze, search and explain requests to Gemini and Exa.
// It holds no per-request state.
type Orchestrator struct {
	cfg       *config.Config
	generator TextGenerator
	searcher  WebSearcher
	logger    *logrus.Logger
}

func NewOrchestrator(cfg *config.Config, generator TextGenerator, searcher WebSearcher, logger *logrus.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		generator: generator,
		searcher:  searcher,
		logger:    logger,
	}
}

// Analyze forwards the job description to Gemini as a JSON-mode prompt
// and returns the upstream body unmodified.
func (o *Orchestrator) Analyze(ctx context.Context, req models.AnalyzeRequest) (json.RawMessage, error) {
	if err := o.cfg.ValidateGemini(); err != nil {
		return nil, configError(msgGeminiNotConfigured, err)
	}

	temperature := analyzeTemperature
	genReq := gemini.NewTextRequest(req.JDText, req.SystemPrompt)
	genReq.GenerationConfig = &gemini.GenerationConfig{
		ResponseMimeType: "application/json",
		Temperature:      &temperature,
	}

	o.logger.WithFields(logrus.Fields{
		"jd_length":     len(req.JDText),
		"prompt_length": len(req.SystemPrompt),
	}).Info("Analyzing job description")

	resp, err := o.generator.GenerateContent(ctx, genReq)
	if err != nil {
		return nil, upstreamError(msgGeminiFailed, err)
	}
	if resp == nil || resp.Raw == nil {
		return nil, upstreamError(msgGeminiFailed, gemini.ErrNoCandidateText)
	}

	return resp.Raw, nil
}

// Search runs a neural search for the skill and falls back to a keyword
// search only when the neural search succeeds with no results.
func (o *Orchestrator) Search(ctx context.Context, req models.SearchRequest) (json.RawMessage, error) {
	if err := o.cfg.ValidateExa(); err != nil {
		return nil, configError(msgExaNotConfigured, err)
	}

	searchType := NormalizeSearchType(req.SearchType)
	queries := BuildQueries(req.Skill, searchType)

	logger := o.logger.WithFields(logrus.Fields{
		"skill":       req.Skill,
		"search_type": searchType,
	})
	logger.WithField("query", queries.Neural).Info("Searching resources")

	policy := EmptyResultFallback{
		Primary: exa.SearchRequest{
			Query:         queries.Neural,
			NumResults:    searchNumResults,
			Type:          exa.SearchTypeNeural,
			UseAutoprompt: true,
		},
		Fallback: exa.SearchRequest{
			Query:      queries.Keyword,
			NumResults: searchNumResults,
			Type:       exa.SearchTypeKeyword,
		},
	}

	outcome, err := policy.Run(ctx, o.searcher, logger)
	if err != nil {
		return nil, upstreamError(msgExaFailed, err)
	}

	logger.WithFields(logrus.Fields{
		"results":       len(outcome.Response.Results),
		"used_fallback": outcome.UsedFallback,
	}).Info("Search completed")

	return outcome.Response.Raw, nil
}
