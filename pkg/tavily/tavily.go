package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrMissingAPIKey    = errors.New("tavily: api key is required")
	ErrUnexpectedStatus = errors.New("tavily: unexpected status")
	ErrEmptyQuery       = errors.New("tavily: query is empty")
)

// ISearcher is the web-search provider used by the web strategy.
type ISearcher interface {
	Search(ctx context.Context, query string) (*SearchResponse, error)
}

// Client calls the Tavily search API.
type Client struct {
	apiKey      string
	baseURL     string
	maxResults  int
	searchDepth string
	httpClient  *http.Client
}

var _ ISearcher = (*Client)(nil)

// New creates a new Tavily client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.SearchDepth != "advanced" {
		cfg.SearchDepth = DefaultSearchDepth
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		maxResults:  cfg.MaxResults,
		searchDepth: cfg.SearchDepth,
		httpClient:  cfg.HTTPClient,
	}, nil
}

// Search runs a web search with an LLM-generated answer and truncated snippets.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	body, err := json.Marshal(searchRequest{
		APIKey:        c.apiKey,
		Query:         query,
		SearchDepth:   c.searchDepth,
		MaxResults:    c.maxResults,
		IncludeAnswer: true,
	})
	if err != nil {
		return nil, fmt.Errorf("tavily: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("tavily: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(raw))
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("tavily: failed to decode response: %w", err)
	}

	for i := range out.Results {
		out.Results[i].Content = truncateRunes(out.Results[i].Content, MaxSnippetRunes)
	}
	return &out, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
