package handlers

import (
	"log"
	"net/http"

	"buildboard/internal/apperr"
	"buildboard/internal/middleware"
	"buildboard/internal/models"

	"github.com/gin-gonic/gin"
)

// currentUser returns the session user, or nil for anonymous requests.
func currentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

// fail maps an engine error onto its HTTP status. Untyped errors become an
// opaque 500; the detail goes to the log, not the client.
func fail(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
