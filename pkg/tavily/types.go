package tavily

import (
	"net/http"
	"time"
)

const (
	DefaultBaseURL     = "https://api.tavily.com"
	DefaultMaxResults  = 5
	DefaultSearchDepth = "basic"
	DefaultTimeout     = 15 * time.Second

	// MaxSnippetRunes caps each result snippet.
	MaxSnippetRunes = 300
)

// Config holds Tavily client configuration.
type Config struct {
	APIKey      string
	BaseURL     string
	MaxResults  int
	SearchDepth string // "basic" or "advanced"
	HTTPClient  *http.Client
}

// SearchResponse is a trimmed Tavily search response.
type SearchResponse struct {
	Answer  string   `json:"answer"`
	Query   string   `json:"query"`
	Results []Result `json:"results"`
}

// Result is a single search hit.
type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

type searchRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	SearchDepth   string `json:"search_depth"`
	MaxResults    int    `json:"max_results"`
	IncludeAnswer bool   `json:"include_answer"`
}
