package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/response"
	"github.com/talentbuzz/marketplace-go/services"
	"github.com/talentbuzz/marketplace-go/utils"
)

type FreelancerHandler struct {
	svc *services.FreelancerService
}

func NewFreelancerHandler(svc *services.FreelancerService) *FreelancerHandler {
	return &FreelancerHandler{svc: svc}
}

// GetFreelancers godoc
// @Summary List all freelancer profiles
// @Tags freelancers
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Freelancer
// @Failure 500 {object} response.ErrorResponse
// @Router /freelancers [get]
func (h *FreelancerHandler) GetFreelancers(c *gin.Context) {
	freelancers, err := h.svc.ListFreelancers()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, freelancers)
}

// GetFreelancerByID godoc
// @Summary Get freelancer profile by ID
// @Tags freelancers
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Freelancer ID"
// @Success 200 {object} models.Freelancer
// @Failure 400 {object} response.ErrorResponse "Invalid freelancer id"
// @Failure 404 {object} response.ErrorResponse "Freelancer not found"
// @Router /freelancers/{id} [get]
func (h *FreelancerHandler) GetFreelancerByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid freelancer id"})
		return
	}
	freelancer, err := h.svc.GetFreelancer(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, freelancer)
}

// GetMyFreelancer godoc
// @Summary Get the caller's freelancer profile
// @Tags freelancers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Freelancer
// @Failure 404 {object} response.ErrorResponse "No profile yet"
// @Router /freelancers/me [get]
func (h *FreelancerHandler) GetMyFreelancer(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	freelancer, err := h.svc.GetFreelancerByUser(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, freelancer)
}

// CreateFreelancer godoc
// @Summary Create a freelancer profile for the caller
// @Tags freelancers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateFreelancerInput true "Profile payload"
// @Success 201 {object} models.Freelancer
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Profile already exists"
// @Router /freelancers [post]
func (h *FreelancerHandler) CreateFreelancer(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.CreateFreelancerInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	freelancer, err := h.svc.CreateFreelancer(userID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, freelancer)
}

// UpdateFreelancer godoc
// @Summary Update freelancer profile by ID
// @Tags freelancers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Freelancer ID"
// @Param input body dto.UpdateFreelancerInput true "Fields to update"
// @Success 200 {object} models.Freelancer
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Freelancer not found"
// @Router /freelancers/{id} [put]
func (h *FreelancerHandler) UpdateFreelancer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid freelancer id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	freelancer, err := h.svc.GetFreelancer(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if freelancer.UserID != claims.UserID && !claims.IsStaff {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: services.ErrPermissionDenied.Error()})
		return
	}

	var input dto.UpdateFreelancerInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	freelancer, err = h.svc.UpdateFreelancer(id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, freelancer)
}

// DeleteFreelancer godoc
// @Summary Delete freelancer profile by ID
// @Tags freelancers
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Freelancer ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Freelancer not found"
// @Router /freelancers/{id} [delete]
func (h *FreelancerHandler) DeleteFreelancer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid freelancer id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	freelancer, err := h.svc.GetFreelancer(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if freelancer.UserID != claims.UserID && !claims.IsStaff {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: services.ErrPermissionDenied.Error()})
		return
	}

	if err := h.svc.RemoveFreelancer(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "freelancer deleted"})
}
