package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"dojoroll/config"
)

func TestRateLimitMiddleware(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "60")
	config.Reset()
	t.Cleanup(config.Reset)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	// Burst is half the per-minute rate; the bucket drains after that.
	allowed, denied := 0, 0
	for i := 0; i < 40; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		switch w.Code {
		case http.StatusOK:
			allowed++
		case http.StatusTooManyRequests:
			denied++
		}
	}

	assert.GreaterOrEqual(t, allowed, 30)
	assert.Greater(t, denied, 0)
}
