package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"volunteer-connect/internal/models"
	"volunteer-connect/internal/repository"
	"volunteer-connect/internal/services"
)

type ApplicationHandler struct {
	appService *services.ApplicationService
}

func NewApplicationHandler(appService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

// GetApplications returns applications, filtered by ?user_id= and ?opportunity_id=
// GET /applications
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	var filter repository.ApplicationFilter
	var err error
	if filter.UserID, err = queryID(c, "user_id"); err != nil {
		respondError(c, err)
		return
	}
	if filter.OpportunityID, err = queryID(c, "opportunity_id"); err != nil {
		respondError(c, err)
		return
	}

	apps, err := h.appService.ListApplications(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]models.ApplicationResponse, len(apps))
	for i := range apps {
		resp[i] = apps[i].ToResponse()
	}
	c.JSON(http.StatusOK, resp)
}

// GetApplicationByID returns one application
// GET /applications/:id
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	appID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	app, err := h.appService.GetApplication(c.Request.Context(), appID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, app.ToResponse())
}

// CreateApplication submits a volunteer's application
// POST /applications
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req services.CreateApplicationInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	app, err := h.appService.CreateApplication(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app.ToResponse())
}

// UpdateApplication changes status and/or motivation_message
// PATCH /applications/:id
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	appID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req services.UpdateApplicationInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	app, err := h.appService.UpdateApplication(c.Request.Context(), appID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, app.ToResponse())
}

// DeleteApplication removes an application
// DELETE /applications/:id
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	appID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.appService.DeleteApplication(c.Request.Context(), appID); err != nil {
		respondError(c, err)
		return
	}

	deleted(c, "Application")
}
