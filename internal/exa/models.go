package exa

import "encoding/json"

const (
	SearchTypeNeural  = "neural"
	SearchTypeKeyword = "keyword"
)

// Request models
type SearchRequest struct {
	Query         string `json:"query"`
	NumResults    int    `json:"numResults"`
	Type          string `json:"type"`
	UseAutoprompt bool   `json:"useAutoprompt,omitempty"`
}

type ContentsRequest struct {
	IDs  []string     `json:"ids"`
	Text *TextOptions `json:"text,omitempty"`
}

type TextOptions struct {
	MaxCharacters   int  `json:"maxCharacters"`
	IncludeHTMLTags bool `json:"includeHtmlTags"`
}

// Response models
type SearchResponse struct {
	Results []Result `json:"results"`

	// Raw is the upstream body exactly as received.
	Raw json.RawMessage `json:"-"`
}

type Result struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	PublishedDate string   `json:"publishedDate,omitempty"`
	Author        string   `json:"author,omitempty"`
	Score         *float64 `json:"score,omitempty"`
}

// IDs returns the result ids in response order.
func (r *SearchResponse) IDs() []string {
	ids := make([]string, 0, len(r.Results))
	for _, result := range r.Results {
		ids = append(ids, result.ID)
	}
	return ids
}

type ContentsResponse struct {
	Results []ContentResult `json:"results"`
}

type ContentResult struct {
	ID    string `json:"id"`
	URL   string `json:"url,omitempty"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}
