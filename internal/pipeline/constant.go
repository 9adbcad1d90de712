package pipeline

// Routing thresholds. Boundaries route upward.
const (
	ClarifyBelow = 0.4
	GuideAtLeast = 0.6
)

// Log prefixes
const (
	LogPrefixRun = "internal.pipeline.Run"
)

// ClarifyMessage is the fixed reply for low-confidence intents.
const ClarifyMessage = "I'm not sure I understood your device or problem. Could you clarify which device you have and what is wrong with it?"

// Diagnostic notices
const (
	DiagSearchingGuides = "Searching official iFixit repair guides..."
	DiagGuideFallback   = "No official iFixit guide found. Searching community solutions..."
	DiagSearchingWeb    = "Searching community repair sources..."
)
