package handlers

import (
	"net/http"

	"buildboard/internal/middleware"
	"buildboard/internal/models"
	"buildboard/internal/services"
	"buildboard/internal/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

func (h *NotificationHandler) List(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	limit := utils.StringToInt(c.Query("limit"))
	notifications, err := services.ListNotifications(user.ID, limit)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  services.UnreadCount(user.ID),
	})
}

func (h *NotificationHandler) ReadAll(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	if err := services.MarkAllRead(user.ID); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
