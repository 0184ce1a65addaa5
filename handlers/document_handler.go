package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentbuzz/marketplace-go/response"
	"github.com/talentbuzz/marketplace-go/services"
	"github.com/talentbuzz/marketplace-go/utils"
)

type DocumentHandler struct {
	svc *services.DocumentService
}

func NewDocumentHandler(svc *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// UploadDocument godoc
// @Summary Upload a document
// @Tags documents
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} models.Document
// @Failure 400 {object} response.ErrorResponse "Missing file"
// @Failure 500 {object} response.ErrorResponse
// @Router /documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	doc, err := h.svc.UploadDocument(c.Request.Context(), userID, fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// GetDocuments godoc
// @Summary List documents uploaded by the caller
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Document
// @Failure 500 {object} response.ErrorResponse
// @Router /documents [get]
func (h *DocumentHandler) GetDocuments(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	docs, err := h.svc.ListDocuments(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GetDocumentByID godoc
// @Summary Get document metadata by ID
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Document ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} response.ErrorResponse "Document not found"
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocumentByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document id"})
		return
	}
	doc, err := h.svc.GetDocument(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetDocumentURL godoc
// @Summary Get a short-lived download link for a document
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Document ID"
// @Success 200 {object} response.DocumentURLResponse
// @Failure 404 {object} response.ErrorResponse "Document not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /documents/{id}/url [get]
func (h *DocumentHandler) GetDocumentURL(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document id"})
		return
	}
	url, err := h.svc.DocumentURL(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DocumentURLResponse{URL: url})
}

// DeleteDocument godoc
// @Summary Delete document by ID
// @Tags documents
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Document ID"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Document not found"
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.RemoveDocument(c.Request.Context(), id, claims.UserID, claims.IsStaff); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "document deleted"})
}
