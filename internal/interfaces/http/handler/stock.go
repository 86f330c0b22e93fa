package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	stockapp "github.com/poultry/backend/internal/application/stock"
)

// StockHandler handles store intake and stock position API endpoints
type StockHandler struct {
	BaseHandler
	stockService *stockapp.Service
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *stockapp.Service) *StockHandler {
	return &StockHandler{
		stockService: stockService,
	}
}

// RecordChickIntake records a chick delivery into the store
// POST /stock/chicks
func (h *StockHandler) RecordChickIntake(c *gin.Context) {
	var req stockapp.RecordChickIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	batch, err := h.stockService.RecordChickIntake(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, batch)
}

// RecordFeedIntake records a feed delivery into the store
// POST /stock/feeds
func (h *StockHandler) RecordFeedIntake(c *gin.Context) {
	var req stockapp.RecordFeedIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	batch, err := h.stockService.RecordFeedIntake(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, batch)
}

// GetBatch retrieves a stock batch by ID
// GET /stock/batches/:id
func (h *StockHandler) GetBatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID")
		return
	}

	batch, err := h.stockService.GetBatch(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, batch)
}

// ListBatches returns stock batches matching the filter, paginated
// GET /stock/batches
func (h *StockHandler) ListBatches(c *gin.Context) {
	var filter stockapp.BatchListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.stockService.ListBatches(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Summary returns the store-wide stock position grouped by type
// GET /stock/summary
func (h *StockHandler) Summary(c *gin.Context) {
	summary, err := h.stockService.Summary(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}
