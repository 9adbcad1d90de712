package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repair-assistant/pkg/response"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"foo": "bar"})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.Equal(t, 0, resp.ErrorCode)
		assert.Equal(t, map[string]any{"foo": "bar"}, resp.Data)
	})

	t.Run("Error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("query is required"), map[string]any{"field": "query"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w)
		assert.Equal(t, response.BadRequestCode, resp.ErrorCode)
		assert.Equal(t, "query is required", resp.Message)
		assert.True(t, c.IsAborted())
	})

	t.Run("Error nil data", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Error(c, errors.New("bad"), nil)
		assert.NotNil(t, decode(t, w).Data)
	})

	t.Run("InternalError hides cause", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c, errors.New("redis down"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, response.DefaultErrorMessage, decode(t, w).Message)
		require.Len(t, c.Errors, 1)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Unauthorized(c)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("TooManyRequests", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.TooManyRequests(c, errors.New("token quota exceeded"))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "token quota exceeded", decode(t, w).Message)
	})
}
