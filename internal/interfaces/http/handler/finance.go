package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	financeapp "github.com/poultry/backend/internal/application/finance"
)

// FinanceHandler handles payment and receivables API endpoints
type FinanceHandler struct {
	BaseHandler
	financeService *financeapp.Service
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(financeService *financeapp.Service) *FinanceHandler {
	return &FinanceHandler{
		financeService: financeService,
	}
}

// RecordPayment records money received from a farmer
// POST /finance/payments
func (h *FinanceHandler) RecordPayment(c *gin.Context) {
	var req financeapp.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.financeService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, payment)
}

// GetFarmerBalance returns one farmer's feed debt position
// GET /farmers/:id/balance
func (h *FinanceHandler) GetFarmerBalance(c *gin.Context) {
	farmerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid farmer ID")
		return
	}

	balance, err := h.financeService.GetFarmerBalance(c.Request.Context(), farmerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, balance)
}

// Receivables returns program-wide totals and the largest debtors
// GET /finance/receivables
func (h *FinanceHandler) Receivables(c *gin.Context) {
	topN := 10
	if v := c.Query("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			h.BadRequest(c, "Invalid top parameter")
			return
		}
		topN = n
	}

	report, err := h.financeService.Receivables(c.Request.Context(), topN)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}

// DueSoon returns initial distributions whose payment falls due shortly
// GET /finance/due-soon
func (h *FinanceHandler) DueSoon(c *gin.Context) {
	lookaheadDays := 7
	if v := c.Query("days"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days < 1 {
			h.BadRequest(c, "Invalid days parameter")
			return
		}
		lookaheadDays = days
	}

	result, err := h.financeService.DueSoon(c.Request.Context(), lookaheadDays)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// ListFarmerPayments returns a farmer's payment history, oldest first
// GET /farmers/:id/payments
func (h *FinanceHandler) ListFarmerPayments(c *gin.Context) {
	farmerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid farmer ID")
		return
	}

	payments, err := h.financeService.ListFarmerPayments(c.Request.Context(), farmerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payments)
}

// ListFarmerDistributions returns a farmer's feed distribution history
// GET /farmers/:id/distributions
func (h *FinanceHandler) ListFarmerDistributions(c *gin.Context) {
	farmerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid farmer ID")
		return
	}

	distributions, err := h.financeService.ListFarmerDistributions(c.Request.Context(), farmerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, distributions)
}
