package services

import "fmt"

type SearchType string

const (
	SearchTypeProject   SearchType = "project"
	SearchTypeInsight   SearchType = "insight"
	SearchTypeInterview SearchType = "interview"
	SearchTypeTutorial  SearchType = "tutorial"
)

// QueryPair holds the two phrasings of one search: a natural-language
// query for neural search and a terse one for keyword search.
type QueryPair struct {
	Neural  string
	Keyword string
}

var queryTemplates = map[SearchType]struct{ neural, keyword string }{
	SearchTypeProject:   {"practical project ideas for beginners using %s", "%s project ideas"},
	SearchTypeInsight:   {"expert insights and analysis on %s", "%s expert blog post"},
	SearchTypeInterview: {"common technical interview questions for %s", "%s interview questions"},
	SearchTypeTutorial:  {"best guides and tutorials for learning %s", "learn %s tutorial"},
}

// NormalizeSearchType maps empty or unknown values to tutorial.
func NormalizeSearchType(raw string) SearchType {
	st := SearchType(raw)
	if _, ok := queryTemplates[st]; ok {
		return st
	}
	return SearchTypeTutorial
}

func BuildQueries(skill string, searchType SearchType) QueryPair {
	tmpl, ok := queryTemplates[searchType]
	if !ok {
		tmpl = queryTemplates[SearchTypeTutorial]
	}
	return QueryPair{
		Neural:  fmt.Sprintf(tmpl.neural, skill),
		Keyword: fmt.Sprintf(tmpl.keyword, skill),
	}
}

func explainQuery(skill string) string {
	return fmt.Sprintf("what is %s simple explanation for beginners", skill)
}
