package services

import (
	"context"
	"fmt"

	"github.com/Ayash-Bera/jd-roadmap/backend/internal/exa"
	"github.com/sirupsen/logrus"
)

// EmptyResultFallback runs Primary and, only when it succeeds with zero
// results, runs Fallback exactly once. An error from either attempt is
// returned as-is and never triggers the other attempt.
type EmptyResultFallback struct {
	Primary  exa.SearchRequest
	Fallback exa.SearchRequest
}

// FallbackOutcome reports which attempt produced the response.
type FallbackOutcome struct {
	Response     *exa.SearchResponse
	UsedFallback bool
}

func (p EmptyResultFallback) Run(ctx context.Context, searcher WebSearcher, logger *logrus.Entry) (*FallbackOutcome, error) {
	resp, err := searcher.Search(ctx, p.Primary)
	if err != nil {
		return nil, fmt.Errorf("%s search failed: %w", p.Primary.Type, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%s search returned no response", p.Primary.Type)
	}

	if len(resp.Results) > 0 {
		logger.WithFields(logrus.Fields{
			"type":    p.Primary.Type,
			"results": len(resp.Results),
		}).Debug("Primary search returned results")
		return &FallbackOutcome{Response: resp}, nil
	}

	logger.WithFields(logrus.Fields{
		"primary_type":  p.Primary.Type,
		"fallback_type": p.Fallback.Type,
		"query":         p.Fallback.Query,
	}).Info("Primary search returned no results, trying fallback")

	resp, err = searcher.Search(ctx, p.Fallback)
	if err != nil {
		return nil, fmt.Errorf("%s search failed: %w", p.Fallback.Type, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%s search returned no response", p.Fallback.Type)
	}

	return &FallbackOutcome{Response: resp, UsedFallback: true}, nil
}
