package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	requestapp "github.com/poultry/backend/internal/application/request"
)

// RequestHandler handles the chick and feed request lifecycle API endpoints
type RequestHandler struct {
	BaseHandler
	requestService *requestapp.Service
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(requestService *requestapp.Service) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// SubmitChickRequest submits a farmer's application for chicks
// POST /requests/chicks
func (h *RequestHandler) SubmitChickRequest(c *gin.Context) {
	var req requestapp.SubmitChickRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	r, err := h.requestService.SubmitChickRequest(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, r)
}

// SubmitFeedRequest submits a farmer's application to buy extra feed
// POST /requests/feeds
func (h *RequestHandler) SubmitFeedRequest(c *gin.Context) {
	var req requestapp.SubmitFeedRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	r, err := h.requestService.SubmitFeedRequest(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, r)
}

// Approve approves a pending request and reserves stock for it
// POST /requests/:id/approve
func (h *RequestHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	var req requestapp.ApproveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	r, err := h.requestService.Approve(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, r)
}

// Reject rejects a pending request
// POST /requests/:id/reject
func (h *RequestHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	var req requestapp.RejectRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	r, err := h.requestService.Reject(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, r)
}

// MarkPicked records a farmer collecting an approved request
// POST /requests/:id/pickup
func (h *RequestHandler) MarkPicked(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	var req requestapp.PickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.requestService.MarkPicked(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByID retrieves a request by ID
// GET /requests/:id
func (h *RequestHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid request ID")
		return
	}

	r, err := h.requestService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, r)
}

// List returns requests matching the filter, paginated
// GET /requests
func (h *RequestHandler) List(c *gin.Context) {
	var filter requestapp.RequestListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	requests, total, err := h.requestService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize == 0 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, requests, total, page, pageSize)
}

// ListByFarmer returns a farmer's request history, newest first
// GET /farmers/:id/requests
func (h *RequestHandler) ListByFarmer(c *gin.Context) {
	farmerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid farmer ID")
		return
	}

	requests, err := h.requestService.ListByFarmer(c.Request.Context(), farmerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, requests)
}

// ListAwaitingPickup returns approved requests not yet collected
// GET /requests/awaiting-pickup
func (h *RequestHandler) ListAwaitingPickup(c *gin.Context) {
	var filter requestapp.RequestListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	requests, err := h.requestService.ListAwaitingPickup(c.Request.Context(), c.Query("kind"), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, requests)
}
