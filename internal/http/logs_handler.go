package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/service"
)

// LogsHandler exposes stored calculation logs for auditing.
type LogsHandler struct {
	loggingService service.LoggingService
}

// NewLogsHandler creates a new LogsHandler.
func NewLogsHandler(loggingService service.LoggingService) *LogsHandler {
	return &LogsHandler{loggingService: loggingService}
}

// QueryLogs handles GET /api/logs requests.
//
// @Summary      Query calculation logs
// @Description  Returns persisted calculation log entries, newest first, with optional filters. Entries expire automatically via the storage TTL.
// @Tags         Operations
// @Produce      json
// @Param        kind query string false "Filter by kind (price, quotes, pack)"
// @Param        pricing_mode query string false "Filter by pricing mode"
// @Param        request_id query string false "Filter by request ID"
// @Param        start query string false "RFC3339 start of the time range"
// @Param        end query string false "RFC3339 end of the time range"
// @Param        limit query int false "Maximum number of entries" default(50)
// @Param        skip query int false "Number of entries to skip"
// @Success      200 {object} dto.SuccessResponse "Matching log entries"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid filter"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/logs [get]
func (h *LogsHandler) QueryLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	opts := model.LogQueryOptions{
		RequestID:   c.Query("request_id"),
		Kind:        c.Query("kind"),
		PricingMode: c.Query("pricing_mode"),
		Limit:       50,
	}

	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			builder.Error(http.StatusBadRequest, "limit must be a positive integer", err)
			return
		}
		opts.Limit = parsed
	}
	if raw := c.Query("skip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			builder.Error(http.StatusBadRequest, "skip must not be negative", err)
			return
		}
		opts.Skip = parsed
	}
	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			builder.Error(http.StatusBadRequest, "start must be an RFC3339 timestamp", err)
			return
		}
		opts.StartTime = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			builder.Error(http.StatusBadRequest, "end must be an RFC3339 timestamp", err)
			return
		}
		opts.EndTime = &t
	}

	entries, err := h.loggingService.QueryLogs(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to query calculation logs", err)
		return
	}

	total, err := h.loggingService.CountLogs(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to count calculation logs", err)
		return
	}

	builder.SuccessOK(gin.H{
		"logs":  entries,
		"count": len(entries),
		"total": total,
	})
}
