package handlers

import (
	"net/http"

	"buildboard/internal/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

// Toggle casts or retracts the acting user's vote on a project. The engine
// absorbs duplicate-submission races, so double clicking never errors.
func (h *VoteHandler) Toggle(c *gin.Context) {
	voted, err := services.ToggleVote(currentUser(c), c.Param("pid"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"voted": voted})
}
