package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	farmerapp "github.com/poultry/backend/internal/application/farmer"
)

// FarmerHandler handles farmer registry API endpoints
type FarmerHandler struct {
	BaseHandler
	farmerService *farmerapp.Service
}

// NewFarmerHandler creates a new FarmerHandler
func NewFarmerHandler(farmerService *farmerapp.Service) *FarmerHandler {
	return &FarmerHandler{
		farmerService: farmerService,
	}
}

// Register enrolls a new farmer in the program
// POST /farmers
func (h *FarmerHandler) Register(c *gin.Context) {
	var req farmerapp.RegisterFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.RegisteredBy = getOfficerID(c)

	f, err := h.farmerService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, f)
}

// GetByID retrieves a farmer by ID
// GET /farmers/:id
func (h *FarmerHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid farmer ID")
		return
	}

	f, err := h.farmerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, f)
}

// GetByNIN retrieves a farmer by national identification number
// GET /farmers/nin/:nin
func (h *FarmerHandler) GetByNIN(c *gin.Context) {
	nin := c.Param("nin")
	if nin == "" {
		h.BadRequest(c, "NIN is required")
		return
	}

	f, err := h.farmerService.GetByNIN(c.Request.Context(), nin)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, f)
}

// List returns farmers matching the filter, paginated
// GET /farmers
func (h *FarmerHandler) List(c *gin.Context) {
	var filter farmerapp.FarmerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	farmers, total, err := h.farmerService.List(c.Request.Context(), filter)
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
	h.SuccessWithMeta(c, farmers, total, page, pageSize)
}

// Update changes a farmer's contact and location details
// PUT /farmers/:id
func (h *FarmerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid farmer ID")
		return
	}

	var req farmerapp.UpdateFarmerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	f, err := h.farmerService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, f)
}

// Deactivate removes a farmer from the active roll
// POST /farmers/:id/deactivate
func (h *FarmerHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid farmer ID")
		return
	}

	if err := h.farmerService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
