package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sales_api/internal/sales"
)

// salesHandler holds the sales service and implements HTTP handlers for sales operations.
type salesHandler struct {
	salesService *sales.Service
	logger       *zap.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(salesService *sales.Service, logger *zap.Logger) *salesHandler {
	return &salesHandler{
		salesService: salesService,
		logger:       logger,
	}
}

// handleCreateSale handles the POST /sales endpoint.
func (h *salesHandler) handleCreateSale(ctx *gin.Context) {
	var req sales.SaleInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	sale, err := h.salesService.CreateSale(req)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.Header("Location", "/sales/"+sale.ID)
	ctx.JSON(http.StatusCreated, sale)
}

// handleListSales handles GET /sales.
func (h *salesHandler) handleListSales(ctx *gin.Context) {
	filter, ok := h.bindFilter(ctx)
	if !ok {
		return
	}

	results, err := h.salesService.ListSales(filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// handleSummary handles GET /sales/summary.
func (h *salesHandler) handleSummary(ctx *gin.Context) {
	filter, ok := h.bindFilter(ctx)
	if !ok {
		return
	}

	metadata, err := h.salesService.Summarize(filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, metadata)
}

func (h *salesHandler) handleGetSale(ctx *gin.Context) {
	sale, err := h.salesService.GetSale(ctx.Param("id"))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sale)
}

func (h *salesHandler) handleUpdateSale(ctx *gin.Context) {
	var req sales.SaleInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	sale, err := h.salesService.UpdateSale(ctx.Param("id"), req)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sale)
}

// handleCancelSale handles DELETE /sales/:id. The sale is cancelled, not removed.
func (h *salesHandler) handleCancelSale(ctx *gin.Context) {
	if err := h.salesService.CancelSale(ctx.Param("id")); err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *salesHandler) bindFilter(ctx *gin.Context) (sales.ListFilter, bool) {
	filter := sales.ListFilter{
		Customer: ctx.Query("customer"),
		Branch:   ctx.Query("branch"),
	}
	if raw := ctx.Query("cancelled"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid cancelled filter"})
			return filter, false
		}
		filter.Cancelled = &v
	}
	return filter, true
}

// respondError maps service errors to HTTP responses. Domain rule failures
// surface as a generic 500; the detail only goes to the log.
func (h *salesHandler) respondError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)

	var verr *sales.ValidationError
	var ruleErr *sales.DomainRuleError
	switch {
	case errors.As(err, &verr):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":      "validation failed",
			"violations": verr.Violations,
		})
	case errors.Is(err, sales.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
	case errors.As(err, &ruleErr):
		h.logger.Error("sale rejected by business rules",
			zap.String("request_id", ctx.GetString(requestIDKey)),
			zap.String("item", ruleErr.Item),
			zap.String("reason", ruleErr.Reason),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process sale"})
	default:
		h.logger.Error("unexpected error", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
