package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentbuzz/marketplace-go/response"
	"github.com/talentbuzz/marketplace-go/utils"
	"github.com/talentbuzz/marketplace-go/websocket"
)

type NotificationHandler struct {
	hub *websocket.Hub
}

func NewNotificationHandler(hub *websocket.Hub) *NotificationHandler {
	return &NotificationHandler{hub: hub}
}

// Subscribe godoc
// @Summary Open a websocket for workflow notifications
// @Description Pushes application decisions, report decisions and invoice creation events to the caller.
// @Tags notifications
// @Security BearerAuth
// @Router /ws/notifications [get]
func (h *NotificationHandler) Subscribe(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.hub.Subscribe(c.Writer, c.Request, userID); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
