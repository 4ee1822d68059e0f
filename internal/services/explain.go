package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Ayash-Bera/jd-roadmap/backend/internal/exa"
	"github.com/Ayash-Bera/jd-roadmap/backend/internal/gemini"
	"github.com/Ayash-Bera/jd-roadmap/backend/internal/models"
	"github.com/sirupsen/logrus"
)

const synthesisInstruction = `You are a helpful teaching assistant. Based *only* on the provided text, synthesize a single, clear, one-paragraph explanation of "what is %s" suitable for a beginner. Do not use any knowledge outside of the text. Do not start with "Based on the text...". Just provide the explanation.`

var errNoContentResults = errors.New("no content returned from Exa")

// explainPipeline runs discover, fetch and synthesize in order. Each stage
// returns a *Error that stops the pipeline.
type explainPipeline struct {
	skill     string
	generator TextGenerator
	searcher  WebSearcher
	logger    *logrus.Entry
}

// Explain searches for beginner explanations of a skill, fetches their
// text and asks Gemini to condense it into one paragraph.
func (o *Orchestrator) Explain(ctx context.Context, req models.ExplainRequest) (*models.ExplainResponse, error) {
	if err := errors.Join(o.cfg.ValidateExa(), o.cfg.ValidateGemini()); err != nil {
		return nil, configError(msgKeysNotConfigured, err)
	}

	p := &explainPipeline{
		skill:     req.Skill,
		generator: o.generator,
		searcher:  o.searcher,
		logger:    o.logger.WithField("skill", req.Skill),
	}

	discovered, err := p.discover(ctx)
	if err != nil {
		return nil, err
	}

	combined, err := p.fetch(ctx, discovered)
	if err != nil {
		return nil, err
	}

	explanation, err := p.synthesize(ctx, combined)
	if err != nil {
		return nil, err
	}

	return &models.ExplainResponse{Explanation: explanation}, nil
}

func (p *explainPipeline) discover(ctx context.Context) (*exa.SearchResponse, error) {
	query := explainQuery(p.skill)
	p.logger.WithField("query", query).Info("[Explain] Searching for explanations")

	policy := EmptyResultFallback{
		Primary:  exa.SearchRequest{Query: query, NumResults: explainNumResults, Type: exa.SearchTypeNeural},
		Fallback: exa.SearchRequest{Query: query, NumResults: explainNumResults, Type: exa.SearchTypeKeyword},
	}

	outcome, err := policy.Run(ctx, p.searcher, p.logger)
	if err != nil {
		return nil, upstreamError(msgDiscoverFailed, err)
	}
	if len(outcome.Response.Results) == 0 {
		return nil, notFoundError(msgNoSearchResults)
	}

	return outcome.Response, nil
}

func (p *explainPipeline) fetch(ctx context.Context, discovered *exa.SearchResponse) (string, error) {
	ids := discovered.IDs()
	p.logger.WithField("articles", len(ids)).Info("[Explain] Fetching contents")

	resp, err := p.searcher.Contents(ctx, exa.ContentsRequest{
		IDs: ids,
		Text: &exa.TextOptions{
			MaxCharacters:   contentMaxChars,
			IncludeHTMLTags: false,
		},
	})
	if err != nil {
		return "", upstreamError(msgFetchFailed, err)
	}
	if resp == nil || resp.Results == nil {
		return "", upstreamError(msgFetchFailed, errNoContentResults)
	}

	return combineContents(ids, resp.Results), nil
}

func (p *explainPipeline) synthesize(ctx context.Context, combined string) (string, error) {
	p.logger.WithField("chars", len(combined)).Info("[Explain] Synthesizing answer")

	resp, err := p.generator.GenerateContent(ctx, gemini.NewTextRequest(combined, fmt.Sprintf(synthesisInstruction, p.skill)))
	if err != nil {
		return "", upstreamError(msgSynthesizeFailed, err)
	}

	explanation, err := resp.FirstText()
	if err != nil {
		return "", upstreamError(msgSynthesizeFailed, err)
	}

	return explanation, nil
}

// combineContents joins content texts in the order their ids were
// discovered. Records with unknown ids keep their relative order at the end.
func combineContents(ids []string, contents []exa.ContentResult) string {
	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, seen := rank[id]; !seen {
			rank[id] = i
		}
	}

	ordered := make([]exa.ContentResult, len(contents))
	copy(ordered, contents)
	sort.SliceStable(ordered, func(i, j int) bool {
		return rankOf(rank, ordered[i].ID) < rankOf(rank, ordered[j].ID)
	})

	texts := make([]string, 0, len(ordered))
	for _, c := range ordered {
		texts = append(texts, c.Text)
	}
	return strings.Join(texts, contentSeparator)
}

func rankOf(rank map[string]int, id string) int {
	if r, ok := rank[id]; ok {
		return r
	}
	return math.MaxInt
}
