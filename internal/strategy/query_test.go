package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  iPhone 12   Battery\tReplacement \n", "iphone 12 battery replacement"},
		{"PS5", "ps5"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeQuery(tt.in))
	}
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "ifixit:iphone 12 battery", CacheKey(NameGuide, "iphone 12 battery"))
	assert.Equal(t, "web:ps5 fan noise", CacheKey(NameWeb, "ps5 fan noise"))
}
