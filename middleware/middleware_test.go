package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(token string) *gin.Engine {
	r := gin.New()
	SetupMiddleware(r, []string{"https://review.example"})
	r.GET("/internal/x", InternalAuthMiddleware(token), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"requestID": c.GetString("requestID")})
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInternalAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		want       int
	}{
		{"matching token", "s3cret", "s3cret", http.StatusOK},
		{"wrong token", "s3cret", "nope", http.StatusForbidden},
		{"missing header", "s3cret", "", http.StatusForbidden},
		{"disabled when unset", "", "", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/internal/x", nil)
			if tt.header != "" {
				req.Header.Set("X-Internal-Auth", tt.header)
			}
			assert.Equal(t, tt.want, do(newEngine(tt.configured), req).Code)
		})
	}
}

func TestRequestLoggerPropagatesRequestID(t *testing.T) {
	const id = "6f1c2a9e-3b7d-4e8a-9c0f-2d4b6a8e1f35"
	req := httptest.NewRequest(http.MethodGet, "/internal/x", nil)
	req.Header.Set("X-Internal-Auth", "t")
	req.Header.Set("X-Request-ID", id)

	w := do(newEngine("t"), req)
	assert.Equal(t, id, w.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"requestID":"`+id+`"}`, w.Body.String())
}

func TestRequestLoggerReplacesUntrustedRequestID(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not a uuid", "req-123"},
		{"oversized", strings.Repeat("a", 4096)},
		{"log injection", "abc\nlevel=error msg=forged"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/internal/x", nil)
			req.Header.Set("X-Internal-Auth", "t")
			if tt.header != "" {
				req.Header.Set("X-Request-ID", tt.header)
			}

			got := do(newEngine("t"), req).Header().Get("X-Request-ID")
			assert.NotEqual(t, tt.header, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestRecoveryReturnsGenericError(t *testing.T) {
	w := do(newEngine("t"), httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Something went wrong"}`, w.Body.String())
}

func TestCORSAllowedOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/internal/x", nil)
	req.Header.Set("Origin", "https://review.example")
	req.Header.Set("Access-Control-Request-Method", "GET")

	w := do(newEngine("t"), req)
	assert.Equal(t, "https://review.example", w.Header().Get("Access-Control-Allow-Origin"))
}
