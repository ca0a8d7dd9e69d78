package handlers

import (
	"net/http"

	"buildboard/internal/services"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct{}

func NewFeedbackHandler() *FeedbackHandler {
	return &FeedbackHandler{}
}

func (h *FeedbackHandler) Tree(c *gin.Context) {
	tree, err := services.FeedbackTree(c.Param("pid"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, tree)
}

type createFeedbackRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

func (h *FeedbackHandler) Create(c *gin.Context) {
	var req createFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	feedback, err := services.PostComment(currentUser(c), c.Param("pid"), req.Content, req.ParentID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, feedback)
}
