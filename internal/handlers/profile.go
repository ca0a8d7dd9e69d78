package handlers

import (
	"net/http"

	"buildboard/internal/db"
	"buildboard/internal/middleware"
	"buildboard/internal/models"
	"buildboard/internal/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var full models.User
	if err := db.DB.Preload("Projects").First(&full, user.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":           full,
		"projects":       full.Projects,
		"fully_verified": full.FullyVerified(),
	})
}

type profileRequest struct {
	Username      string `json:"username" binding:"required"`
	TwitterHandle string `json:"twitter_handle"`
	TwitterID     string `json:"twitter_id"`
	DiscordHandle string `json:"discord_handle"`
	DiscordID     string `json:"discord_id"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	updated, err := services.UpdateProfile(user, services.ProfileInput{
		Username:      req.Username,
		TwitterHandle: req.TwitterHandle,
		TwitterID:     req.TwitterID,
		DiscordHandle: req.DiscordHandle,
		DiscordID:     req.DiscordID,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
