package handlers

import (
	"net/http"

	"buildboard/internal/services"

	"github.com/gin-gonic/gin"
)

type BuilderHandler struct{}

func NewBuilderHandler() *BuilderHandler {
	return &BuilderHandler{}
}

// Top ranks builders over the requested window, at most 50 entries.
func (h *BuilderHandler) Top(c *gin.Context) {
	window, err := services.ParseWindow(c.Query("window"))
	if err != nil {
		fail(c, err)
		return
	}

	builders, err := services.TopBuilders(window)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, builders)
}
