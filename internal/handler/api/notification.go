package api

import (
	"net/http"

	reqdto "talent-notify/internal/handler/dto/request"
	resdto "talent-notify/internal/handler/dto/response"
	"talent-notify/internal/infra"
	"talent-notify/internal/usecase/commands"
	"talent-notify/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notificationQueries  queries.NotificationQueries
	notificationCommands commands.NotificationCommands
}

func NewNotificationHandler(notificationQueries queries.NotificationQueries, notificationCommands commands.NotificationCommands) *NotificationHandler {
	return &NotificationHandler{
		notificationQueries:  notificationQueries,
		notificationCommands: notificationCommands,
	}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	var req reqdto.ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.notificationQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.NotificationResponse, len(views))
	for i, rm := range views {
		response[i] = resdto.FromNotificationView(rm)
	}

	c.JSON(http.StatusOK, response)
}

func (h *NotificationHandler) GetNotification(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	view, err := h.notificationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Notification not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationView(view))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.notificationCommands.MarkRead(c.Request.Context(), id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Notification not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) MarkDismissed(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.notificationCommands.MarkDismissed(c.Request.Context(), id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Notification not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid notification ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}
