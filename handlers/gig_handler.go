package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/response"
	"github.com/talentbuzz/marketplace-go/services"
	"github.com/talentbuzz/marketplace-go/utils"
)

type GigHandler struct {
	svc *services.GigService
}

func NewGigHandler(svc *services.GigService) *GigHandler {
	return &GigHandler{svc: svc}
}

// GetGigs godoc
// @Summary List gigs, optionally scoped to one project
// @Tags gigs
// @Security BearerAuth
// @Produce json
// @Param project_id query uint false "Only gigs under this project"
// @Success 200 {array} models.Gig
// @Failure 400 {object} response.ErrorResponse "Invalid project id"
// @Failure 500 {object} response.ErrorResponse
// @Router /gigs [get]
func (h *GigHandler) GetGigs(c *gin.Context) {
	projectID, err := utils.ParseQueryUintParam(c, "project_id")
	if err != nil && !errors.Is(err, utils.ErrEmptyParameter) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	var gigs []models.Gig
	if err == nil {
		gigs, err = h.svc.ListGigsByProject(projectID)
	} else {
		gigs, err = h.svc.ListGigs()
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gigs)
}

// GetAvailableGigs godoc
// @Summary List gigs with open headcount the caller has not applied to
// @Tags gigs
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Gig
// @Failure 500 {object} response.ErrorResponse
// @Router /gigs/available [get]
func (h *GigHandler) GetAvailableGigs(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	gigs, err := h.svc.AvailableGigs(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gigs)
}

// GetAcceptedGigs godoc
// @Summary List gigs the caller was accepted onto
// @Tags gigs
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Gig
// @Failure 500 {object} response.ErrorResponse
// @Router /gigs/accepted [get]
func (h *GigHandler) GetAcceptedGigs(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	gigs, err := h.svc.AcceptedGigs(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gigs)
}

// GetPendingGigs godoc
// @Summary List gigs the caller has a pending application on
// @Tags gigs
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Gig
// @Failure 500 {object} response.ErrorResponse
// @Router /gigs/pending [get]
func (h *GigHandler) GetPendingGigs(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	gigs, err := h.svc.PendingGigs(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gigs)
}

// GetGigByID godoc
// @Summary Get gig by ID
// @Tags gigs
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Gig ID"
// @Success 200 {object} models.Gig
// @Failure 400 {object} response.ErrorResponse "Invalid gig id"
// @Failure 404 {object} response.ErrorResponse "Gig not found"
// @Router /gigs/{id} [get]
func (h *GigHandler) GetGigByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid gig id"})
		return
	}
	gig, err := h.svc.GetGig(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gig)
}

// CreateGig godoc
// @Summary Create a gig under a project the caller owns
// @Tags gigs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateGigInput true "Gig payload"
// @Success 201 {object} models.Gig
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /gigs [post]
func (h *GigHandler) CreateGig(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.CreateGigInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	gig, err := h.svc.CreateGig(claims.UserID, claims.IsStaff, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gig)
}

// UpdateGig godoc
// @Summary Update gig by ID
// @Tags gigs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Gig ID"
// @Param input body dto.UpdateGigInput true "Fields to update"
// @Success 200 {object} models.Gig
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Gig not found"
// @Router /gigs/{id} [put]
func (h *GigHandler) UpdateGig(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid gig id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.UpdateGigInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	gig, err := h.svc.UpdateGig(id, claims.UserID, claims.IsStaff, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gig)
}

// DeleteGig godoc
// @Summary Delete gig by ID
// @Tags gigs
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Gig ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Gig not found"
// @Router /gigs/{id} [delete]
func (h *GigHandler) DeleteGig(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid gig id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.RemoveGig(id, claims.UserID, claims.IsStaff); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "gig deleted"})
}
