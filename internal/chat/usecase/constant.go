package usecase

// Log prefixes
const (
	LogPrefixStream   = "internal.chat.usecase.Stream"
	LogPrefixGetUsage = "internal.chat.usecase.GetUsage"
)

// ErrMsgGenerateFailed is the only failure text a client ever sees.
const ErrMsgGenerateFailed = "Failed to generate an answer. Please try again."

const (
	defaultChunkSize = 1
	charsPerToken    = 4
)
