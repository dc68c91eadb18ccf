package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quote-service/internal/domain/model"
)

func TestRequestLogger_PersistsAttachedEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &captureLoggingService{}
	InitAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, WriteTimeout: time.Second})
	defer StopAsyncLogger()

	router := gin.New()
	router.Use(RequestID(), RequestLogger(svc))
	router.POST("/api/price", func(c *gin.Context) {
		AttachCalculationLog(c, &model.CalculationLog{
			Kind:        "price",
			PricingMode: "per_km",
			DistanceKm:  120,
			Total:       25,
		})
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/price", nil)
	req.Header.Set(RequestIDHeader, "req-log-1")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// Stop drains the worker pool so the write is observable.
	StopAsyncLogger()

	entries := svc.captured()
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "price", entry.Kind)
	assert.Equal(t, "req-log-1", entry.RequestID)
	assert.Equal(t, 25.0, entry.Total)
	assert.NotEmpty(t, entry.IP)
	assert.GreaterOrEqual(t, entry.DurationMs, int64(0))
}

func TestRequestLogger_NoEntryAttached(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &captureLoggingService{}
	InitAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, WriteTimeout: time.Second})
	defer StopAsyncLogger()

	router := gin.New()
	router.Use(RequestID(), RequestLogger(svc))
	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	StopAsyncLogger()
	assert.Empty(t, svc.captured())
}

func TestRequestLogger_NilServiceSkipsPersistence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID(), RequestLogger(nil))
	router.GET("/test", func(c *gin.Context) {
		AttachCalculationLog(c, &model.CalculationLog{Kind: "pack"})
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
