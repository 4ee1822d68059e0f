package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newEngine(handlers ...gin.HandlerFunc) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)

	hits := 0
	handler := func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id")})
	}
	r.GET("/ping", handler)
	r.POST("/ping", handler)
	return r, &hits
}

func TestRequestID_Generated(t *testing.T) {
	r, _ := newEngine(RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
	assert.Contains(t, w.Body.String(), w.Header().Get("X-Request-ID"))
}

func TestRequestID_Propagated(t *testing.T) {
	r, _ := newEngine(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc123", w.Header().Get("X-Request-ID"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	r, hits := newEngine(CORS([]string{"*"}))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5500")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Zero(t, *hits)
}

func TestCORS_AllowList(t *testing.T) {
	r, _ := newEngine(CORS([]string{"http://app.test"}))

	req := httptest.NewRequest(http.MethodPost, "/ping", nil)
	req.Header.Set("Origin", "http://app.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://app.test", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodPost, "/ping", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	r, _ := newEngine(SecurityHeaders())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestRequestLogger(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	r, hits := newEngine(RequestID(), RequestLogger(logger))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, *hits)
}
