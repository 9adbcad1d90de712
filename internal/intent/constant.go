package intent

// Log prefixes
const (
	LogPrefixExtract   = "internal.intent.Extract"
	LogPrefixNormalize = "internal.intent.NormalizeDevice"
)

// Prompts
const (
	PromptExtract = `You extract structured repair intent for querying iFixit.

Return ONLY valid JSON matching this schema:

{
  "device": {
    "brand": string | null,
    "family": string | null,
    "model": string | null,
    "accessory": string | null,
    "category": string | null
  },
  "issue": {
    "type": "repair" | "replacement" | "troubleshooting" | "teardown",
    "component": string | null,
    "symptom": string | null
  },
  "confidence": number between 0 and 1
}

User query:
%q`

	PromptNormalizeDevice = `Extract the device name from the following sentence.
Return ONLY the official device name.
If unsure, return the original input.

Sentence: %q`
)

// DegradedConfidence is assigned when extraction fails.
const DegradedConfidence = 0.2

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed, using degraded intent"
	ErrMsgEmptyResponse   = "Empty LLM response, using degraded intent"
	ErrMsgJSONParseFailed = "Failed to parse intent JSON, using degraded intent"
)
