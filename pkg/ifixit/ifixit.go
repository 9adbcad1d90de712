package ifixit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrUnexpectedStatus is wrapped for non-2xx, non-404 responses.
var ErrUnexpectedStatus = errors.New("ifixit: unexpected status")

var errNotFound = errors.New("ifixit: not found")

// Client talks to the iFixit API v2.0.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ IIFixit = (*Client)(nil)

// New creates a new iFixit client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
	}
}

// SearchDevice uses the suggest endpoint and prefers a device wiki match.
func (c *Client) SearchDevice(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", nil
	}

	var resp suggestResponse
	endpoint := fmt.Sprintf("%s/suggest/%s?doctypes=device,category", c.baseURL, url.PathEscape(query))
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		if errors.Is(err, errNotFound) {
			return "", nil
		}
		return "", err
	}

	for _, r := range resp.Results {
		if r.DataType == dataTypeWiki && r.Title != "" {
			return r.Title, nil
		}
	}
	return "", nil
}

// ListGuides returns the guides listed on a device category wiki.
func (c *Client) ListGuides(ctx context.Context, deviceTitle string) ([]GuideSummary, error) {
	if strings.TrimSpace(deviceTitle) == "" {
		return nil, nil
	}

	var resp categoryResponse
	endpoint := fmt.Sprintf("%s/wikis/CATEGORY/%s", c.baseURL, url.PathEscape(deviceTitle))
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return resp.Guides, nil
}

// GetGuideDetails fetches a guide and normalizes its steps.
func (c *Client) GetGuideDetails(ctx context.Context, guideID int) (*GuideDetails, error) {
	var resp guideResponse
	endpoint := fmt.Sprintf("%s/guides/%s", c.baseURL, strconv.Itoa(guideID))
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if len(resp.Steps) == 0 {
		return nil, nil
	}

	steps := make([]Step, 0, len(resp.Steps))
	for _, s := range resp.Steps {
		steps = append(steps, Step{
			Text:   stepText(s),
			Images: mediaURLs(s.Media),
		})
	}

	return &GuideDetails{
		GuideID: resp.GuideID,
		Title:   resp.Title,
		Steps:   steps,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("ifixit: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ifixit: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ifixit: failed to decode response: %w", err)
	}
	return nil
}

// stepText prefers the flat text field and falls back to the rendered lines.
func stepText(s guideStep) string {
	if s.Text != "" {
		return StripHTML(s.Text)
	}
	parts := make([]string, 0, len(s.Lines))
	for _, l := range s.Lines {
		text := l.TextRendered
		if text == "" {
			text = l.TextRaw
		}
		if text = StripHTML(text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// mediaURLs accepts a list of {url}, a single {url}, or the {type, data:[...]} envelope.
func mediaURLs(raw json.RawMessage) []string {
	images := []string{}
	if len(raw) == 0 || string(raw) == "null" {
		return images
	}

	var list []mediaItem
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, m := range list {
			if u := m.pick(); u != "" {
				images = append(images, u)
			}
		}
		return images
	}

	var env mediaEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return images
	}
	if env.URL != "" {
		return append(images, env.URL)
	}
	for _, m := range env.Data {
		if u := m.pick(); u != "" {
			images = append(images, u)
		}
	}
	return images
}

func (m mediaItem) pick() string {
	switch {
	case m.URL != "":
		return m.URL
	case m.Standard != "":
		return m.Standard
	default:
		return m.Original
	}
}

// StripHTML returns the text content of an HTML fragment.
func StripHTML(html string) string {
	if !strings.ContainsAny(html, "<&") {
		return strings.TrimSpace(html)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.TrimSpace(doc.Text())
}
