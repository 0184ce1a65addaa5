package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/response"
	"github.com/talentbuzz/marketplace-go/services"
	"github.com/talentbuzz/marketplace-go/utils"
)

type CompanyHandler struct {
	svc *services.CompanyService
}

func NewCompanyHandler(svc *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

// GetCompanies godoc
// @Summary List all companies
// @Tags companies
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Company
// @Failure 500 {object} response.ErrorResponse
// @Router /companies [get]
func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	companies, err := h.svc.ListCompanies()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetCompanyByID godoc
// @Summary Get company by ID
// @Tags companies
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Company ID"
// @Success 200 {object} models.Company
// @Failure 400 {object} response.ErrorResponse "Invalid company id"
// @Failure 404 {object} response.ErrorResponse "Company not found"
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompanyByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid company id"})
		return
	}
	company, err := h.svc.GetCompany(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// CreateCompany godoc
// @Summary Create a company owned by the caller
// @Tags companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateCompanyInput true "Company payload"
// @Success 201 {object} models.Company
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Company already exists"
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.CreateCompanyInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	company, err := h.svc.CreateCompany(userID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

// UpdateCompany godoc
// @Summary Update company by ID
// @Tags companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Company ID"
// @Param input body dto.UpdateCompanyInput true "Fields to update"
// @Success 200 {object} models.Company
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Company not found"
// @Router /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid company id"})
		return
	}
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.UpdateCompanyInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	company, err := h.svc.UpdateCompany(id, userID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// DeleteCompany godoc
// @Summary Delete company by ID
// @Tags companies
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Company ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Company not found"
// @Router /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid company id"})
		return
	}
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.RemoveCompany(id, userID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "company deleted"})
}
