package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/logger"
	"github.com/guttosm/quote-service/internal/service"
)

// calculationLogKey is the gin context key under which handlers attach the
// calculation log entry for the current request.
const calculationLogKey = "calculation_log"

// AttachCalculationLog stores a calculation log entry on the gin context.
// The request logger middleware picks it up after the handler returns,
// fills in request-scoped fields and persists it asynchronously.
func AttachCalculationLog(c *gin.Context, entry *model.CalculationLog) {
	c.Set(calculationLogKey, entry)
}

// RequestLogger returns a middleware that logs HTTP request details in JSON format.
// It logs: request ID, method, path, status code, latency, IP, and user agent.
// Calculation log entries attached by handlers are persisted through the async
// logger worker pool when available, falling back to goroutine-per-request.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path
		ip := c.ClientIP()
		userAgent := c.Request.UserAgent()

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", ip).
			Str("user_agent", userAgent).
			Logger()

		// Log level based on status code
		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if loggingService == nil {
			return
		}

		entry := calculationLogFromContext(c)
		if entry == nil {
			return
		}

		entry.RequestID = requestID
		entry.DurationMs = latency.Milliseconds()
		entry.IP = ip
		if entry.Error == "" && len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}

		if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
			asyncLogger.Log(entry)
		} else {
			// Fallback to goroutine-per-request (legacy behavior)
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = loggingService.CreateLog(ctx, entry)
			}()
		}
	}
}

// calculationLogFromContext extracts the attached log entry, if any.
func calculationLogFromContext(c *gin.Context) *model.CalculationLog {
	v, exists := c.Get(calculationLogKey)
	if !exists {
		return nil
	}
	entry, ok := v.(*model.CalculationLog)
	if !ok {
		return nil
	}
	return entry
}
