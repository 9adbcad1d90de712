package repair

import "strings"

// --- Intent ---

// IssueType classifies what the user wants to do with the device.
type IssueType string

const (
	IssueRepair          IssueType = "repair"
	IssueReplacement     IssueType = "replacement"
	IssueTroubleshooting IssueType = "troubleshooting"
	IssueTeardown        IssueType = "teardown"
)

// ParseIssueType lower-cases s and returns "" for unknown types.
func ParseIssueType(s string) IssueType {
	switch t := IssueType(strings.ToLower(strings.TrimSpace(s))); t {
	case IssueRepair, IssueReplacement, IssueTroubleshooting, IssueTeardown:
		return t
	default:
		return ""
	}
}

// Device describes the device the user is asking about. Empty fields are unknown.
type Device struct {
	Brand     string `json:"brand,omitempty"`
	Family    string `json:"family,omitempty"`
	Model     string `json:"model,omitempty"`
	Accessory string `json:"accessory,omitempty"`
	Category  string `json:"category,omitempty"`
}

// Issue describes the problem. Empty fields are unknown.
type Issue struct {
	Type      IssueType `json:"type,omitempty"`
	Component string    `json:"component,omitempty"`
	Symptom   string    `json:"symptom,omitempty"`
}

// Intent is the structured interpretation of a user query.
// Confidence is fixed at extraction time and never recomputed.
type Intent struct {
	Device     *Device `json:"device,omitempty"`
	Issue      *Issue  `json:"issue,omitempty"`
	Confidence float64 `json:"confidence"`
	RawQuery   string  `json:"rawQuery"`
}

// SearchText is the text used to resolve the device: model, else brand+family.
func (i *Intent) SearchText() string {
	if i == nil || i.Device == nil {
		return ""
	}
	if m := strings.TrimSpace(i.Device.Model); m != "" {
		return m
	}
	return strings.TrimSpace(strings.TrimSpace(i.Device.Brand) + " " + strings.TrimSpace(i.Device.Family))
}

// Component returns the issue component or "".
func (i *Intent) Component() string {
	if i == nil || i.Issue == nil {
		return ""
	}
	return i.Issue.Component
}

// IssueType returns the issue type or "".
func (i *Intent) IssueType() IssueType {
	if i == nil || i.Issue == nil {
		return ""
	}
	return i.Issue.Type
}

// --- Resolution results ---

// GuideResult is the output of the guide strategy.
type GuideResult struct {
	Device string  `json:"device"`
	Guides []Guide `json:"guides"`
}

// Empty reports whether the result carries no guides.
func (r *GuideResult) Empty() bool {
	return r == nil || len(r.Guides) == 0
}

type Guide struct {
	Title string `json:"title"`
	Steps []Step `json:"steps"`
}

type Step struct {
	Text   string   `json:"text"`
	Images []string `json:"images"`
}

// WebResult is the output of the web strategy.
type WebResult struct {
	Answer  string   `json:"answer,omitempty"`
	Sources []Source `json:"sources"`
}

// Empty reports whether the result has neither an answer nor sources.
func (r *WebResult) Empty() bool {
	return r == nil || (strings.TrimSpace(r.Answer) == "" && len(r.Sources) == 0)
}

type Source struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// --- Final answer ---

// Provenance names where the final answer came from.
type Provenance string

const (
	SourceIFixit Provenance = "ifixit"
	SourceWeb    Provenance = "web"
	SourceAgent  Provenance = "agent"
	SourceNone   Provenance = "none"
)

type FinalAnswer struct {
	Source  Provenance `json:"source"`
	Content string     `json:"content"`
}

// --- Pipeline state ---

// PipelineState is threaded through the pipeline stages of one request.
type PipelineState struct {
	UserQuery   string
	Intent      *Intent
	GuideResult *GuideResult
	WebResult   *WebResult
	FinalAnswer *FinalAnswer
	Source      Provenance
}

// Merge returns a copy of s with every non-empty field of delta applied.
// Fields are never cleared.
func (s PipelineState) Merge(delta PipelineState) PipelineState {
	out := s
	if delta.UserQuery != "" {
		out.UserQuery = delta.UserQuery
	}
	if delta.Intent != nil {
		out.Intent = delta.Intent
	}
	if delta.GuideResult != nil {
		out.GuideResult = delta.GuideResult
	}
	if delta.WebResult != nil {
		out.WebResult = delta.WebResult
	}
	if delta.FinalAnswer != nil {
		out.FinalAnswer = delta.FinalAnswer
	}
	if delta.Source != "" {
		out.Source = delta.Source
	}
	return out
}
