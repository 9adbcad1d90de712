package intent

import (
	"context"
	"fmt"
	"strings"
)

// NormalizeDevice asks the generator for the official device name.
func (e *LLMExtractor) NormalizeDevice(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}

	out, err := e.llm.Generate(ctx, fmt.Sprintf(PromptNormalizeDevice, text))
	if err != nil {
		e.l.Warnf(ctx, "%s: %v", LogPrefixNormalize, err)
		return text
	}

	name := strings.Trim(strings.TrimSpace(out), `"'`)
	if name == "" || strings.Contains(name, "\n") {
		return text
	}
	return name
}
