package usecase

import (
	"context"
	"time"
	"unicode/utf8"
)

// CountTokens estimates tokens as ceil(runes/4).
func CountTokens(content string) int64 {
	n := int64(utf8.RuneCountInString(content))
	return (n + charsPerToken - 1) / charsPerToken
}

// Chunks splits s into pieces of at most size runes without breaking a rune.
func Chunks(s string, size int) []string {
	if s == "" {
		return nil
	}
	if size <= 0 {
		size = defaultChunkSize
	}

	out := make([]string, 0, utf8.RuneCountInString(s)/size+1)
	start, count := 0, 0
	for i := range s {
		if count == size {
			out = append(out, s[start:i])
			start, count = i, 0
		}
		count++
	}
	return append(out, s[start:])
}

// pace waits d or until ctx is done.
func pace(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
