package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountTokens(t *testing.T) {
	tests := []struct {
		content string
		want    int64
	}{
		{"", 0},
		{"a", 1},
		{"abcd", 1},
		{"abcde", 2},
		{strings.Repeat("x", 8), 2},
		{"héllo", 2},
		{"日本語テキスト", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountTokens(tt.content), "content=%q", tt.content)
	}
}

func TestChunks(t *testing.T) {
	tests := []struct {
		name string
		s    string
		size int
		want []string
	}{
		{"empty", "", 3, nil},
		{"per rune", "abc", 1, []string{"a", "b", "c"}},
		{"uneven", "abcde", 2, []string{"ab", "cd", "e"}},
		{"multibyte safe", "héllo wörld", 3, []string{"hél", "lo ", "wör", "ld"}},
		{"bigger than input", "hi", 10, []string{"hi"}},
		{"zero size defaults", "ab", 0, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chunks(tt.s, tt.size)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.s, strings.Join(got, ""))
		})
	}
}

func TestPace(t *testing.T) {
	assert.NoError(t, pace(context.Background(), 0))
	assert.NoError(t, pace(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, pace(ctx, time.Hour), context.Canceled)
}
