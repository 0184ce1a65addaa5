package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/models"
	"github.com/talentbuzz/marketplace-go/response"
	"github.com/talentbuzz/marketplace-go/services"
	"github.com/talentbuzz/marketplace-go/utils"
)

type ReportHandler struct {
	svc *services.ReportService
}

func NewReportHandler(svc *services.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// approveResponse bundles the decided report with the invoice it raised.
type approveResponse struct {
	Report  models.GigReport `json:"report"`
	Invoice models.Invoice   `json:"invoice"`
}

// CreateGigReport godoc
// @Summary Submit a work report for a gig
// @Tags reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateGigReportInput true "Report payload"
// @Success 201 {object} models.GigReport
// @Failure 400 {object} response.ErrorResponse "No freelancer profile"
// @Failure 404 {object} response.ErrorResponse "Gig not found"
// @Router /gig-reports [post]
func (h *ReportHandler) CreateGigReport(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.CreateGigReportInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.svc.SubmitGigReport(userID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// GetGigReports godoc
// @Summary List gig reports visible to the caller
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.GigReport
// @Failure 500 {object} response.ErrorResponse
// @Router /gig-reports [get]
func (h *ReportHandler) GetGigReports(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	reports, err := h.svc.ListGigReports(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetGigReportByID godoc
// @Summary Get gig report by ID
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Report ID"
// @Success 200 {object} models.GigReport
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Report not found"
// @Router /gig-reports/{id} [get]
func (h *ReportHandler) GetGigReportByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid report id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.svc.GetGigReport(id, claims.UserID, claims.IsStaff)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdateGigReport godoc
// @Summary Amend an undecided gig report
// @Tags reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Report ID"
// @Param input body dto.UpdateGigReportInput true "Fields to update"
// @Success 200 {object} models.GigReport
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Report not found"
// @Failure 409 {object} response.ErrorResponse "Already decided"
// @Router /gig-reports/{id} [put]
func (h *ReportHandler) UpdateGigReport(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid report id"})
		return
	}
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.UpdateGigReportInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.svc.UpdateGigReport(id, userID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeleteGigReport godoc
// @Summary Delete an undecided gig report
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Report ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Report not found"
// @Failure 409 {object} response.ErrorResponse "Already decided"
// @Router /gig-reports/{id} [delete]
func (h *ReportHandler) DeleteGigReport(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid report id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.RemoveGigReport(id, claims.UserID, claims.IsStaff); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "report deleted"})
}

// ApproveGigReport godoc
// @Summary Approve a gig report and raise its invoice
// @Description Approving bills the reported hours at the project's hourly rate. Re-approving returns the invoice already raised.
// @Tags reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Report ID"
// @Param input body dto.ReviewInput false "Optional review"
// @Success 200 {object} approveResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Report not found"
// @Failure 409 {object} response.ErrorResponse "Report was rejected"
// @Failure 500 {object} response.ErrorResponse "No billable company"
// @Router /gig-reports/{id}/approve [post]
func (h *ReportHandler) ApproveGigReport(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid report id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.ReviewInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	report, invoice, err := h.svc.ApproveGigReport(id, claims.UserID, claims.IsStaff, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, approveResponse{Report: report, Invoice: invoice})
}

// RejectGigReport godoc
// @Summary Reject a gig report
// @Tags reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Report ID"
// @Param input body dto.ReviewInput false "Optional review"
// @Success 200 {object} models.GigReport
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Report not found"
// @Failure 409 {object} response.ErrorResponse "Already decided"
// @Router /gig-reports/{id}/reject [post]
func (h *ReportHandler) RejectGigReport(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid report id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.ReviewInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.svc.RejectGigReport(id, claims.UserID, claims.IsStaff, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// CreateProjectReport godoc
// @Summary Submit a report against a project
// @Tags reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateProjectReportInput true "Report payload"
// @Success 201 {object} models.ProjectReport
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /project-reports [post]
func (h *ReportHandler) CreateProjectReport(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.CreateProjectReportInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := h.svc.SubmitProjectReport(userID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// GetProjectReportByID godoc
// @Summary Get project report by ID
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Report ID"
// @Success 200 {object} models.ProjectReport
// @Failure 404 {object} response.ErrorResponse "Report not found"
// @Router /project-reports/{id} [get]
func (h *ReportHandler) GetProjectReportByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid report id"})
		return
	}
	report, err := h.svc.GetProjectReport(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetProjectReports godoc
// @Summary List reports filed against a project
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} models.ProjectReport
// @Failure 400 {object} response.ErrorResponse "Invalid project id"
// @Failure 500 {object} response.ErrorResponse
// @Router /projects/{id}/reports [get]
func (h *ReportHandler) GetProjectReports(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	reports, err := h.svc.ListProjectReports(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// DeleteProjectReport godoc
// @Summary Delete project report by ID
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Report ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Report not found"
// @Router /project-reports/{id} [delete]
func (h *ReportHandler) DeleteProjectReport(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid report id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.RemoveProjectReport(id, claims.UserID, claims.IsStaff); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "report deleted"})
}
