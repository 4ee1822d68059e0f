package models

type AnalyzeRequest struct {
	JDText       string `json:"jdText" binding:"required"`
	SystemPrompt string `json:"systemPrompt" binding:"required"`
}

type SearchRequest struct {
	Skill      string `json:"skill" binding:"required"`
	SearchType string `json:"searchType"`
}

type ExplainRequest struct {
	Skill string `json:"skill" binding:"required"`
}

type ExplainResponse struct {
	Explanation string `json:"explanation"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}
