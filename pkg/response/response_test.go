package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("request_id", "rid-1")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	c, w := newContext()
	Success(c, http.StatusCreated, "done", gin.H{"token": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "done", body["message"])
	assert.Equal(t, "abc", body["token"])
	assert.Equal(t, "rid-1", body["request_id"])
}

func TestSuccess_NoMessage(t *testing.T) {
	c, w := newContext()
	Success(c, 0, "", gin.H{"user": "x"})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	_, has := body["message"]
	assert.False(t, has)
}

func TestError(t *testing.T) {
	c, w := newContext()
	Error(c, http.StatusUnauthorized, "Invalid credentials", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
	body := decode(t, w)
	assert.Equal(t, map[string]any{"message": "Invalid credentials", "request_id": "rid-1"}, body)
}

func TestError_Details(t *testing.T) {
	c, w := newContext()
	Error(c, 0, "bad", map[string]string{"email": "must be a valid email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, map[string]any{"email": "must be a valid email"}, body["error"])
}
