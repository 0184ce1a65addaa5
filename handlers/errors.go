package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentbuzz/marketplace-go/repositories"
	"github.com/talentbuzz/marketplace-go/response"
	"github.com/talentbuzz/marketplace-go/services"
)

// writeError maps service errors onto HTTP statuses. Anything not
// recognised is a 500.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrFreelancerNotFound),
		errors.Is(err, services.ErrCompanyNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrGigNotFound),
		errors.Is(err, services.ErrApplicationNotFound),
		errors.Is(err, services.ErrReportNotFound),
		errors.Is(err, services.ErrInvoiceNotFound),
		errors.Is(err, services.ErrDocumentNotFound),
		errors.Is(err, services.ErrEmailNotFound):
		status = http.StatusNotFound

	case errors.Is(err, services.ErrPermissionDenied):
		status = http.StatusForbidden

	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrAccountNotActive):
		status = http.StatusUnauthorized

	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrFreelancerExists),
		errors.Is(err, services.ErrCompanyExists),
		errors.Is(err, services.ErrAlreadyApplied),
		errors.Is(err, services.ErrReportAlreadyDecided),
		errors.Is(err, repositories.ErrGigFull),
		errors.Is(err, repositories.ErrApplicationDecided):
		status = http.StatusConflict

	case errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrNotFreelancer),
		errors.Is(err, services.ErrIncorrectPassword),
		errors.Is(err, services.ErrMissingOldPassword):
		status = http.StatusBadRequest
	}

	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}
