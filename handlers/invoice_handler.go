package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentbuzz/marketplace-go/dto"
	"github.com/talentbuzz/marketplace-go/response"
	"github.com/talentbuzz/marketplace-go/services"
	"github.com/talentbuzz/marketplace-go/utils"
)

type InvoiceHandler struct {
	svc *services.InvoiceService
}

func NewInvoiceHandler(svc *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

// GetInvoices godoc
// @Summary List invoices the caller is a party to
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Invoice
// @Failure 500 {object} response.ErrorResponse
// @Router /invoices [get]
func (h *InvoiceHandler) GetInvoices(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	invoices, err := h.svc.ListInvoices(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoiceByID godoc
// @Summary Get invoice by ID
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Invoice ID"
// @Success 200 {object} models.Invoice
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Invoice not found"
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid invoice id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	invoice, err := h.svc.GetInvoice(id, claims.UserID, claims.IsStaff)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice godoc
// @Summary Record payment state on an invoice
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Invoice ID"
// @Param input body dto.UpdateInvoiceInput true "Payment fields"
// @Success 200 {object} models.Invoice
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Invoice not found"
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid invoice id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input dto.UpdateInvoiceInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	invoice, err := h.svc.UpdateInvoice(id, claims.UserID, claims.IsStaff, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}
