package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/response"
	"github.com/talentbuzz/marketplace-go/services"
	"github.com/talentbuzz/marketplace-go/utils"
)

type ApplicationHandler struct {
	svc *services.ApplicationService
}

func NewApplicationHandler(svc *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// ApplyToGig godoc
// @Summary Apply to a gig
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateGigApplicationInput true "Target gig"
// @Success 201 {object} models.GigApplication
// @Failure 400 {object} response.ErrorResponse "No freelancer profile"
// @Failure 404 {object} response.ErrorResponse "Gig not found"
// @Failure 409 {object} response.ErrorResponse "Already applied"
// @Router /gig-applications [post]
func (h *ApplicationHandler) ApplyToGig(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.CreateGigApplicationInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	app, err := h.svc.ApplyToGig(userID, input.GigID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// GetGigApplications godoc
// @Summary List gig applications visible to the caller
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.GigApplication
// @Failure 500 {object} response.ErrorResponse
// @Router /gig-applications [get]
func (h *ApplicationHandler) GetGigApplications(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	apps, err := h.svc.ListGigApplications(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// GetGigApplicationByID godoc
// @Summary Get gig application by ID
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Application ID"
// @Success 200 {object} models.GigApplication
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Application not found"
// @Router /gig-applications/{id} [get]
func (h *ApplicationHandler) GetGigApplicationByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid application id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	app, err := h.svc.GetGigApplication(id, claims.UserID, claims.IsStaff)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// AcceptGigApplication godoc
// @Summary Accept a pending gig application
// @Description Fails with 409 when the gig headcount is already filled or the application was decided.
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Application ID"
// @Success 200 {object} models.GigApplication
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Application not found"
// @Failure 409 {object} response.ErrorResponse "Gig full or already decided"
// @Router /gig-applications/{id}/accept [post]
func (h *ApplicationHandler) AcceptGigApplication(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid application id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	app, err := h.svc.AcceptGigApplication(id, claims.UserID, claims.IsStaff)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// RejectGigApplication godoc
// @Summary Reject a pending gig application
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Application ID"
// @Success 200 {object} models.GigApplication
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Application not found"
// @Failure 409 {object} response.ErrorResponse "Already decided"
// @Router /gig-applications/{id}/reject [post]
func (h *ApplicationHandler) RejectGigApplication(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid application id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	app, err := h.svc.RejectGigApplication(id, claims.UserID, claims.IsStaff)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// ApplyToProject godoc
// @Summary Apply to a project
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateProjectApplicationInput true "Target project"
// @Success 201 {object} models.ProjectApplication
// @Failure 400 {object} response.ErrorResponse "No freelancer profile"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Failure 409 {object} response.ErrorResponse "Already applied"
// @Router /project-applications [post]
func (h *ApplicationHandler) ApplyToProject(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.CreateProjectApplicationInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	app, err := h.svc.ApplyToProject(userID, input.ProjectID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// GetProjectApplications godoc
// @Summary List project applications visible to the caller
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ProjectApplication
// @Failure 500 {object} response.ErrorResponse
// @Router /project-applications [get]
func (h *ApplicationHandler) GetProjectApplications(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	apps, err := h.svc.ListProjectApplications(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// GetProjectApplicationByID godoc
// @Summary Get project application by ID
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Application ID"
// @Success 200 {object} models.ProjectApplication
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Application not found"
// @Router /project-applications/{id} [get]
func (h *ApplicationHandler) GetProjectApplicationByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid application id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	app, err := h.svc.GetProjectApplication(id, claims.UserID, claims.IsStaff)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// AcceptProjectApplication godoc
// @Summary Accept a pending project application
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Application ID"
// @Success 200 {object} models.ProjectApplication
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Application not found"
// @Failure 409 {object} response.ErrorResponse "Already decided"
// @Router /project-applications/{id}/accept [post]
func (h *ApplicationHandler) AcceptProjectApplication(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid application id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	app, err := h.svc.AcceptProjectApplication(id, claims.UserID, claims.IsStaff)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// RejectProjectApplication godoc
// @Summary Reject a pending project application
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Application ID"
// @Success 200 {object} models.ProjectApplication
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Application not found"
// @Failure 409 {object} response.ErrorResponse "Already decided"
// @Router /project-applications/{id}/reject [post]
func (h *ApplicationHandler) RejectProjectApplication(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid application id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	app, err := h.svc.RejectProjectApplication(id, claims.UserID, claims.IsStaff)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
