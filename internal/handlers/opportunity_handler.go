package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"volunteer-connect/internal/models"
	"volunteer-connect/internal/repository"
	"volunteer-connect/internal/services"
)

type OpportunityHandler struct {
	oppService *services.OpportunityService
}

func NewOpportunityHandler(oppService *services.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{oppService: oppService}
}

// GetOpportunities returns opportunities, optionally filtered by ?organization_id=
// GET /opportunities
func (h *OpportunityHandler) GetOpportunities(c *gin.Context) {
	orgID, err := queryID(c, "organization_id")
	if err != nil {
		respondError(c, err)
		return
	}

	opps, err := h.oppService.ListOpportunities(c.Request.Context(), repository.OpportunityFilter{OrganizationID: orgID})
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]models.OpportunityResponse, len(opps))
	for i := range opps {
		resp[i] = opps[i].ToResponse()
	}
	c.JSON(http.StatusOK, resp)
}

// GetOpportunityByID returns one opportunity
// GET /opportunities/:id
func (h *OpportunityHandler) GetOpportunityByID(c *gin.Context) {
	oppID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	opp, err := h.oppService.GetOpportunity(c.Request.Context(), oppID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, opp.ToResponse())
}

// CreateOpportunity posts a new opportunity under an organization
// POST /opportunities
func (h *OpportunityHandler) CreateOpportunity(c *gin.Context) {
	var req services.CreateOpportunityInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	opp, err := h.oppService.CreateOpportunity(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, opp.ToResponse())
}

// UpdateOpportunity applies a partial update and refreshes updated_at
// PATCH /opportunities/:id
func (h *OpportunityHandler) UpdateOpportunity(c *gin.Context) {
	oppID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req services.UpdateOpportunityInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	opp, err := h.oppService.UpdateOpportunity(c.Request.Context(), oppID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, opp.ToResponse())
}

// DeleteOpportunity removes an opportunity with its applications and payments
// DELETE /opportunities/:id
func (h *OpportunityHandler) DeleteOpportunity(c *gin.Context) {
	oppID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.oppService.DeleteOpportunity(c.Request.Context(), oppID); err != nil {
		respondError(c, err)
		return
	}

	deleted(c, "Opportunity")
}
