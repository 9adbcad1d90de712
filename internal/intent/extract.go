package intent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"repair-assistant/internal/repair"
)

var errNoJSONObject = errors.New("no JSON object in response")

// Extract asks the generator for a structured intent.
func (e *LLMExtractor) Extract(ctx context.Context, userQuery string) *repair.Intent {
	raw, err := e.llm.Generate(ctx, fmt.Sprintf(PromptExtract, userQuery))
	if err != nil {
		e.l.Warnf(ctx, "%s: %s: %v", LogPrefixExtract, ErrMsgLLMCallFailed, err)
		return degraded(userQuery)
	}
	if strings.TrimSpace(raw) == "" {
		e.l.Warnf(ctx, "%s: %s", LogPrefixExtract, ErrMsgEmptyResponse)
		return degraded(userQuery)
	}

	intent, err := parseIntent(raw)
	if err != nil {
		e.l.Warnf(ctx, "%s: %s: %v", LogPrefixExtract, ErrMsgJSONParseFailed, err)
		return degraded(userQuery)
	}
	intent.RawQuery = userQuery

	e.l.Infof(ctx, "%s: device=%q component=%q type=%q confidence=%.2f",
		LogPrefixExtract, intent.SearchText(), intent.Component(), intent.IssueType(), intent.Confidence)
	return intent
}

func degraded(userQuery string) *repair.Intent {
	return &repair.Intent{
		RawQuery:   userQuery,
		Confidence: DegradedConfidence,
	}
}

type intentPayload struct {
	Device     *repair.Device `json:"device"`
	Issue      *issuePayload  `json:"issue"`
	Confidence *float64       `json:"confidence"`
}

type issuePayload struct {
	Type      string `json:"type"`
	Component string `json:"component"`
	Symptom   string `json:"symptom"`
}

// parseIntent strips fences and prose around the outermost JSON object.
func parseIntent(raw string) (*repair.Intent, error) {
	body, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var p intentPayload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, err
	}
	if p.Confidence == nil {
		return nil, errors.New("confidence is missing")
	}

	intent := &repair.Intent{
		Confidence: clamp(*p.Confidence),
		Device:     cleanDevice(p.Device),
	}
	if p.Issue != nil {
		issue := &repair.Issue{
			Type:      repair.ParseIssueType(p.Issue.Type),
			Component: strings.TrimSpace(p.Issue.Component),
			Symptom:   strings.TrimSpace(p.Issue.Symptom),
		}
		if *issue != (repair.Issue{}) {
			intent.Issue = issue
		}
	}
	return intent, nil
}

func extractJSONObject(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", errNoJSONObject
	}
	return s[start : end+1], nil
}

func cleanDevice(d *repair.Device) *repair.Device {
	if d == nil {
		return nil
	}
	out := repair.Device{
		Brand:     strings.TrimSpace(d.Brand),
		Family:    strings.TrimSpace(d.Family),
		Model:     strings.TrimSpace(d.Model),
		Accessory: strings.TrimSpace(d.Accessory),
		Category:  strings.TrimSpace(d.Category),
	}
	if out == (repair.Device{}) {
		return nil
	}
	return &out
}

func clamp(c float64) float64 {
	switch {
	case c < 0:
		return 0
	case c > 1:
		return 1
	default:
		return c
	}
}
