package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQueries(t *testing.T) {
	tests := []struct {
		searchType string
		neural     string
		keyword    string
	}{
		{"project", "practical project ideas for beginners using Docker", "Docker project ideas"},
		{"insight", "expert insights and analysis on Docker", "Docker expert blog post"},
		{"interview", "common technical interview questions for Docker", "Docker interview questions"},
		{"tutorial", "best guides and tutorials for learning Docker", "learn Docker tutorial"},
		{"", "best guides and tutorials for learning Docker", "learn Docker tutorial"},
		{"podcast", "best guides and tutorials for learning Docker", "learn Docker tutorial"},
	}

	for _, tt := range tests {
		t.Run(tt.searchType, func(t *testing.T) {
			q := BuildQueries("Docker", NormalizeSearchType(tt.searchType))
			assert.Equal(t, tt.neural, q.Neural)
			assert.Equal(t, tt.keyword, q.Keyword)
		})
	}
}

func TestExplainQuery(t *testing.T) {
	assert.Equal(t, "what is Kubernetes simple explanation for beginners", explainQuery("Kubernetes"))
}
