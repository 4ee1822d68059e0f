package gemini

import (
	"encoding/json"
	"errors"
)

// Request models
type GenerateContentRequest struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GenerationConfig struct {
	ResponseMimeType string   `json:"responseMimeType,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
}

// NewTextRequest builds a single-turn request with an optional system instruction.
func NewTextRequest(prompt, systemInstruction string) GenerateContentRequest {
	req := GenerateContentRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
	}
	if systemInstruction != "" {
		req.SystemInstruction = &Content{Parts: []Part{{Text: systemInstruction}}}
	}
	return req
}

// Response models
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`

	// Raw is the upstream body exactly as received.
	Raw json.RawMessage `json:"-"`
}

type Candidate struct {
	Content      *Content `json:"content"`
	FinishReason string   `json:"finishReason,omitempty"`
}

var ErrNoCandidateText = errors.New("response has no candidate text")

// FirstText returns the text of the first part of the first candidate.
func (r *GenerateContentResponse) FirstText() (string, error) {
	if r == nil || len(r.Candidates) == 0 {
		return "", ErrNoCandidateText
	}
	content := r.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", ErrNoCandidateText
	}
	return content.Parts[0].Text, nil
}
