package http

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quote-service/internal/domain/dto"
	"github.com/guttosm/quote-service/internal/domain/model"
	"github.com/guttosm/quote-service/internal/middleware"
	"github.com/guttosm/quote-service/internal/service"
)

// boxCatalogCache provides thread-safe caching of the active box catalog.
type boxCatalogCache struct {
	boxes     atomic.Value // holds []model.BoxType
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newBoxCatalogCache creates a new box catalog cache with the given TTL.
func newBoxCatalogCache(ttl time.Duration) *boxCatalogCache {
	c := &boxCatalogCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached catalog if valid, or nil if expired/empty.
func (c *boxCatalogCache) get() []model.BoxType {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if boxes := c.boxes.Load(); boxes != nil {
				if b, ok := boxes.([]model.BoxType); ok {
					return b
				}
			}
		}
	}
	return nil
}

// set stores the catalog in the cache with TTL.
func (c *boxCatalogCache) set(boxes []model.BoxType) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return
		}
	}

	c.boxes.Store(boxes)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *boxCatalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// Handler provides HTTP handlers for the pricing, quote and packing routes.
type Handler struct {
	estimator       service.Estimator
	quoter          service.Quoter
	packer          service.Packer
	boxTypesService service.BoxTypesService

	pricingCfg    model.PricingConfig
	fallbackBoxes []model.BoxType

	boxCatalogCache *boxCatalogCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithBoxCatalogCacheTTL sets the TTL for box catalog caching.
func WithBoxCatalogCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.boxCatalogCache = newBoxCatalogCache(ttl)
	}
}

// WithFallbackBoxes sets the box catalog used when no stored catalog exists.
func WithFallbackBoxes(boxes []model.BoxType) HandlerOption {
	return func(h *Handler) {
		h.fallbackBoxes = boxes
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(
	estimator service.Estimator,
	quoter service.Quoter,
	packer service.Packer,
	boxTypesService service.BoxTypesService,
	pricingCfg model.PricingConfig,
	opts ...HandlerOption,
) *Handler {
	h := &Handler{
		estimator:       estimator,
		quoter:          quoter,
		packer:          packer,
		boxTypesService: boxTypesService,
		pricingCfg:      pricingCfg,
		boxCatalogCache: newBoxCatalogCache(30 * time.Second), // Default 30s cache
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// getBoxCatalog retrieves the active box catalog from cache or database.
func (h *Handler) getBoxCatalog(ctx context.Context) []model.BoxType {
	if boxes := h.boxCatalogCache.get(); boxes != nil {
		return boxes
	}

	if h.boxTypesService == nil {
		return h.fallbackBoxes
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	boxes, err := h.boxTypesService.ActiveBoxes(ctx, h.fallbackBoxes)
	if err != nil || len(boxes) == 0 {
		return h.fallbackBoxes
	}

	h.boxCatalogCache.set(boxes)
	return boxes
}

// InvalidateBoxCatalogCache invalidates the box catalog cache.
// Call this when the catalog is updated.
func (h *Handler) InvalidateBoxCatalogCache() {
	h.boxCatalogCache.invalidate()
}

// requestConfig returns the pricing config snapshot for one request,
// applying the per-request mode override.
func (h *Handler) requestConfig(mode string) model.PricingConfig {
	cfg := h.pricingCfg
	if mode != "" {
		cfg.PricingMode = mode
	}
	return cfg
}

// EstimatePrice handles POST /api/price requests.
//
// @Summary      Calculate price estimate
// @Description  Calculates a shipping price estimate with a per-stage breakdown. Distance and duration arrive pre-resolved. When packages are supplied, their packed billable weight replaces the declared weight if heavier.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        request body dto.PriceEstimateRequest true "Estimate input"
// @Success      200 {object} dto.SuccessResponse "Successful estimate"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/price [post]
func (h *Handler) EstimatePrice(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.PriceEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	cfg := h.requestConfig(req.PricingMode)

	input := service.EstimateInput{
		DistanceKm:      req.DistanceKm,
		DurationMinutes: req.DurationMinutes,
		WeightKg:        req.WeightKg,
		Fragile:         req.Fragile,
		Options:         req.Options(),
	}
	if len(req.Packages) > 0 {
		input.Packages = dto.ToModelPackages(req.Packages)
		input.Boxes = h.getBoxCatalog(c.Request.Context())
	}

	result := h.estimator.Estimate(input, cfg)

	middleware.AttachCalculationLog(c, &model.CalculationLog{
		Kind:        "price",
		PricingMode: cfg.PricingMode,
		DistanceKm:  req.DistanceKm,
		DurationMin: req.DurationMinutes,
		WeightKg:    req.WeightKg,
		Fragile:     req.Fragile,
		Priority:    req.Priority,
		Total:       result.Cost,
	})

	builder.SuccessOK(result)
}

// AggregateQuotes handles POST /api/quotes requests.
//
// @Summary      Aggregate carrier quotes
// @Description  Collects quotes from all enabled carrier providers concurrently, applies the pricing rule pipeline and returns the adjusted quotes cheapest first. Provider failures degrade the result instead of failing the request.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Shipment information"
// @Success      200 {object} dto.SuccessResponse "Aggregated quotes"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - quote aggregation disabled"
// @Security     BearerAuth
// @Router       /api/quotes [post]
func (h *Handler) AggregateQuotes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.quoter == nil {
		builder.Error(http.StatusServiceUnavailable, "Quote aggregation is not configured", nil)
		return
	}

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	shipment := req.ToShipment()
	cfg := h.requestConfig("")

	quotes := h.quoter.Quotes(c.Request.Context(), shipment, cfg)

	entry := &model.CalculationLog{
		Kind:       "quotes",
		DistanceKm: req.DistanceKm,
		WeightKg:   req.WeightKg,
		Fragile:    req.Fragile,
		Priority:   req.Priority,
		QuoteCount: len(quotes),
	}
	if len(quotes) > 0 {
		entry.Total = quotes[0].Amount
	}
	middleware.AttachCalculationLog(c, entry)

	builder.SuccessOK(gin.H{
		"quotes": quotes,
		"count":  len(quotes),
	})
}

// PackItems handles POST /api/pack requests.
//
// @Summary      Pack items into boxes
// @Description  Packs the given items into the configured box catalog using a First-Fit-Decreasing heuristic. Oversize items fall back to the largest box with a warning instead of failing.
// @Tags         Packing
// @Accept       json
// @Produce      json
// @Param        request body dto.PackRequest true "Items to pack"
// @Success      200 {object} dto.SuccessResponse "Packing result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pack [post]
func (h *Handler) PackItems(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.PackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	boxes := dto.ToModelBoxes(req.Boxes)
	if len(boxes) == 0 {
		boxes = h.getBoxCatalog(c.Request.Context())
	}

	result := h.packer.Pack(dto.ToModelPackages(req.Items), boxes)

	middleware.AttachCalculationLog(c, &model.CalculationLog{
		Kind: "pack",
		Fields: map[string]interface{}{
			"item_count": len(req.Items),
			"box_count":  len(result.Boxes),
			"warnings":   len(result.Warnings),
		},
	})

	builder.SuccessOK(result)
}

// InvalidateCaches handles DELETE /api/cache requests.
//
// @Summary      Invalidate caches
// @Description  Clears the price estimate result cache and the box catalog cache. Use after changing pricing configuration out of band.
// @Tags         Operations
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Caches invalidated"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Security     BearerAuth
// @Router       /api/cache [delete]
func (h *Handler) InvalidateCaches(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.estimator != nil {
		h.estimator.InvalidateCache()
	}
	h.InvalidateBoxCatalogCache()

	builder.SuccessOK(gin.H{"invalidated": true})
}
