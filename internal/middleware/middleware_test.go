package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"editorial-platform/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(config.Limit{Enabled: true, Requests: 1, Burst: 2, SkipPaths: []string{"/health"}}))
	r.GET("/api/products", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, perform(r, "/api/products").Code)
	assert.Equal(t, http.StatusOK, perform(r, "/api/products").Code)
	assert.Equal(t, http.StatusTooManyRequests, perform(r, "/api/products").Code)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, perform(r, "/health").Code, "skip paths bypass the limiter")
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(config.Limit{Enabled: false, Requests: 1, Burst: 1}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, perform(r, "/").Code)
	}
}

func TestGinZapRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := gin.New()
	r.Use(GinZapRecovery(zap.New(core), false))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := perform(r, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("请求处理发生 panic").Len())
}

func TestGinZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(GinZapLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	perform(r, "/ok?x=1")
	perform(r, "/fail")

	ok := logs.FilterMessage("请求完成").All()
	if assert.Len(t, ok, 1) {
		assert.Equal(t, "/ok", ok[0].ContextMap()["path"])
		assert.Equal(t, "x=1", ok[0].ContextMap()["query"])
		assert.EqualValues(t, http.StatusOK, ok[0].ContextMap()["status"])
	}
	assert.Equal(t, 1, logs.FilterMessage("请求处理失败").Len())
}
