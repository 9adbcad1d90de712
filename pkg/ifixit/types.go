package ifixit

import (
	"encoding/json"
	"net/http"
)

// Config holds iFixit client configuration.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// GuideSummary is a guide entry listed on a device category page.
type GuideSummary struct {
	GuideID  int      `json:"guideid"`
	Title    string   `json:"title"`
	Type     string   `json:"type"`
	Subject  string   `json:"subject"`
	URL      string   `json:"url"`
	Flags    []string `json:"flags"`
	Category string   `json:"category"`
}

// Starred reports whether the guide is flagged as curated.
func (g GuideSummary) Starred() bool {
	for _, f := range g.Flags {
		if f == FlagStarred {
			return true
		}
	}
	return false
}

// GuideDetails is a fully fetched guide with cleaned steps.
type GuideDetails struct {
	GuideID int    `json:"guideid"`
	Title   string `json:"title"`
	Steps   []Step `json:"steps"`
}

// Step is a single guide step with plain text and image URLs.
type Step struct {
	Text   string   `json:"text"`
	Images []string `json:"images"`
}

// --- wire types ---

type suggestResponse struct {
	Results []suggestResult `json:"results"`
}

type suggestResult struct {
	Title    string `json:"title"`
	DataType string `json:"dataType"`
	URL      string `json:"url"`
}

type categoryResponse struct {
	Title  string         `json:"title"`
	Guides []GuideSummary `json:"guides"`
}

type guideResponse struct {
	GuideID int         `json:"guideid"`
	Title   string      `json:"title"`
	Steps   []guideStep `json:"steps"`
}

type guideStep struct {
	Text  string          `json:"text"`
	Lines []guideLine     `json:"lines"`
	Media json.RawMessage `json:"media"`
}

type guideLine struct {
	TextRaw      string `json:"text_raw"`
	TextRendered string `json:"text_rendered"`
}

type mediaItem struct {
	URL      string `json:"url"`
	Standard string `json:"standard"`
	Original string `json:"original"`
}

type mediaEnvelope struct {
	URL  string      `json:"url"`
	Type string      `json:"type"`
	Data []mediaItem `json:"data"`
}
