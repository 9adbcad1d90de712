package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": {"message": "invalid api key", "type": "auth"}}`))
			return
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Messages[len(req.Messages)-1].Content == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("upstream exploded"))
			return
		}

		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"model": "` + req.Model + `",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "use a pentalobe driver"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer ts.Close()

	client, err := New(Config{APIKey: "test-key", BaseURL: ts.URL})
	require.NoError(t, err)

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Content: "how do I open an iPhone"}},
		})
		require.NoError(t, err)
		require.Len(t, resp.Choices, 1)
		assert.Equal(t, "use a pentalobe driver", resp.Choices[0].Message.Content)
		assert.Equal(t, DefaultModel, resp.Model)
		assert.Equal(t, 15, resp.Usage.TotalTokens)
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Content: "cause_500"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upstream exploded")
	})

	t.Run("Auth Error Message", func(t *testing.T) {
		bad, err := New(Config{APIKey: "wrong", BaseURL: ts.URL})
		require.NoError(t, err)

		_, err = bad.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Content: "hi"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid api key")
	})
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
