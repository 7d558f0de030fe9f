package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"volunteer-connect/internal/models"
	"volunteer-connect/internal/services"
)

type OrganizationHandler struct {
	orgService *services.OrganizationService
}

func NewOrganizationHandler(orgService *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// GetOrganizations returns all organizations
// GET /organizations
func (h *OrganizationHandler) GetOrganizations(c *gin.Context) {
	orgs, err := h.orgService.ListOrganizations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]models.OrganizationResponse, len(orgs))
	for i := range orgs {
		resp[i] = orgs[i].ToResponse()
	}
	c.JSON(http.StatusOK, resp)
}

// GetOrganizationByID returns an organization with its opportunities
// GET /organizations/:id
func (h *OrganizationHandler) GetOrganizationByID(c *gin.Context) {
	orgID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	org, err := h.orgService.GetOrganization(c.Request.Context(), orgID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org.ToDetailResponse())
}

// CreateOrganization creates an organization owned by an existing user
// POST /organizations
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req services.CreateOrganizationInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	org, err := h.orgService.CreateOrganization(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, org.ToResponse())
}

// UpdateOrganization applies a partial update
// PATCH /organizations/:id
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	orgID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req services.UpdateOrganizationInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	org, err := h.orgService.UpdateOrganization(c.Request.Context(), orgID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org.ToResponse())
}

// DeleteOrganization removes an organization and its opportunities
// DELETE /organizations/:id
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	orgID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.orgService.DeleteOrganization(c.Request.Context(), orgID); err != nil {
		respondError(c, err)
		return
	}

	deleted(c, "Organization")
}
