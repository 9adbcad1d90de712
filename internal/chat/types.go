package chat

// --- Stream events ---

// EventType discriminates SSE payloads.
type EventType string

const (
	EventDiagnostic EventType = "diagnostic"
	EventToken      EventType = "token"
	EventStepEnd    EventType = "step_end"
	EventFinal      EventType = "final"
	EventError      EventType = "error"
	EventEnd        EventType = "end"
)

// Event is one message on the wire: data: {"type": ...}.
type Event struct {
	Type       EventType `json:"type"`
	Content    string    `json:"content,omitempty"`
	Message    string    `json:"message,omitempty"`
	Stage      string    `json:"stage,omitempty"`
	TokensUsed int64     `json:"tokensUsed,omitempty"`
	Source     string    `json:"source,omitempty"`
}

func DiagnosticEvent(msg string) Event { return Event{Type: EventDiagnostic, Message: msg} }
func TokenEvent(chunk string) Event { return Event{Type: EventToken, Content: chunk} }
func StepEndEvent(stage string) Event { return Event{Type: EventStepEnd, Stage: stage} }
func ErrorEvent(msg string) Event { return Event{Type: EventError, Message: msg} }
func EndEvent() Event { return Event{Type: EventEnd} }

func FinalEvent(tokensUsed int64, source string) Event {
	return Event{Type: EventFinal, TokensUsed: tokensUsed, Source: source}
}

// --- UseCase Inputs ---

type StreamInput struct {
	UserID   string
	ThreadID string
	Message  string
	Refresh  bool // skip cached lookups and replace them on success
}

// --- UseCase Outputs ---

type UsageOutput struct {
	UserID     string
	TokensUsed int64
	TokenLimit int64
}
