package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quote-service/internal/domain/dto"
	"github.com/guttosm/quote-service/internal/middleware"
	"github.com/guttosm/quote-service/internal/service"
)

// BoxTypesHandler handles box catalog management endpoints.
type BoxTypesHandler struct {
	boxTypesService service.BoxTypesService
	handler         *Handler
}

// NewBoxTypesHandler creates a new BoxTypesHandler.
// The main handler is used to invalidate its box catalog cache on updates.
func NewBoxTypesHandler(boxTypesService service.BoxTypesService, handler *Handler) *BoxTypesHandler {
	return &BoxTypesHandler{
		boxTypesService: boxTypesService,
		handler:         handler,
	}
}

// GetActiveBoxTypes handles GET /api/box-types requests.
//
// @Summary      Get active box catalog
// @Description  Returns the currently active box catalog configuration. Falls back to the configured default catalog when none is stored.
// @Tags         BoxTypes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active catalog"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/box-types [get]
func (h *BoxTypesHandler) GetActiveBoxTypes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	config, err := h.boxTypesService.GetActive(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.SuccessOK(gin.H{
				"boxes":   h.handler.fallbackBoxes,
				"version": 0,
				"source":  "defaults",
			})
			return
		}
		builder.Error(http.StatusInternalServerError, "Failed to load box catalog", err)
		return
	}

	if config == nil {
		builder.SuccessOK(gin.H{
			"boxes":   h.handler.fallbackBoxes,
			"version": 0,
			"source":  "defaults",
		})
		return
	}

	builder.SuccessOK(gin.H{
		"id":         config.ID.Hex(),
		"boxes":      config.ModelBoxes(),
		"version":    config.Version,
		"created_at": config.CreatedAt,
		"created_by": config.CreatedBy,
		"source":     "database",
	})
}

// UpdateBoxTypes handles PUT /api/box-types requests.
//
// @Summary      Replace the box catalog
// @Description  Stores a new active box catalog configuration. The previous configuration is deactivated and kept for history. Caches depending on the catalog are invalidated.
// @Tags         BoxTypes
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateBoxTypesRequest true "New catalog"
// @Success      201 {object} dto.SuccessResponse "Catalog stored"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - storage not configured"
// @Security     BearerAuth
// @Router       /api/box-types [put]
func (h *BoxTypesHandler) UpdateBoxTypes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateBoxTypesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = middleware.GetClientID(c)
	}

	config, err := h.boxTypesService.Create(c.Request.Context(), dto.ToModelBoxes(req.Boxes), createdBy)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, "Box catalog storage is not configured", err)
			return
		}
		builder.Error(http.StatusInternalServerError, "Failed to store box catalog", err)
		return
	}

	// New catalog affects packed billable weights, so drop derived caches.
	if h.handler != nil {
		h.handler.InvalidateBoxCatalogCache()
		if h.handler.estimator != nil {
			h.handler.estimator.InvalidateCache()
		}
	}

	builder.SuccessCreated(gin.H{
		"id":         config.ID.Hex(),
		"boxes":      config.ModelBoxes(),
		"version":    config.Version,
		"created_by": config.CreatedBy,
	})
}

// ListBoxTypes handles GET /api/box-types/history requests.
//
// @Summary      List box catalog history
// @Description  Returns stored box catalog configurations, newest first.
// @Tags         BoxTypes
// @Produce      json
// @Param        limit query int false "Maximum number of configurations to return" default(10)
// @Success      200 {object} dto.SuccessResponse "Catalog history"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - storage not configured"
// @Security     BearerAuth
// @Router       /api/box-types/history [get]
func (h *BoxTypesHandler) ListBoxTypes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			builder.Error(http.StatusBadRequest, "limit must be a positive integer", err)
			return
		}
		limit = parsed
	}

	configs, err := h.boxTypesService.List(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, "Box catalog storage is not configured", err)
			return
		}
		builder.Error(http.StatusInternalServerError, "Failed to list box catalogs", err)
		return
	}

	builder.SuccessOK(gin.H{
		"configs": configs,
		"count":   len(configs),
	})
}
