package handlers

import (
	"net/http"

	"buildboard/internal/models"
	"buildboard/internal/services"
	"buildboard/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct{}

func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{}
}

type createProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Category    string `json:"category" binding:"required"`
	IsEvent     bool   `json:"is_event"`
	EventPid    string `json:"event_pid"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and category are required"})
		return
	}

	project, err := services.CreateProject(currentUser(c), services.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Link:        req.Link,
		Category:    req.Category,
		IsEvent:     req.IsEvent,
		EventPid:    req.EventPid,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) List(c *gin.Context) {
	filter := services.ProjectFilter{
		Category: c.Query("category"),
		OwnerID:  uint(utils.StringToInt(c.Query("owner_id"))),
		TopOnly:  c.Query("top") == "true",
		EventPid: c.Query("event"),
	}

	projects, err := services.TopProjects(filter)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Detail(c *gin.Context) {
	project, err := services.GetProject(c.Param("pid"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project":          project,
		"description_html": utils.RenderMarkdown(project.Description),
	})
}

type updateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
	Category    *string `json:"category"`
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := services.UpdateProject(currentUser(c), c.Param("pid"), services.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		Link:        req.Link,
		Category:    req.Category,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := services.DeleteProject(currentUser(c), c.Param("pid")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type flagRequest struct {
	Value *bool `json:"value"`
}

// Pin sets the editorial pin. Without a body the flag flips, matching the
// admin UI's single toggle button.
func (h *ProjectHandler) Pin(c *gin.Context) {
	h.setFlag(c, services.SetPinned, func(p *models.Project) bool { return p.IsPinned })
}

// Top sets the editorial curation flag, same toggle semantics as Pin.
func (h *ProjectHandler) Top(c *gin.Context) {
	h.setFlag(c, services.SetTop, func(p *models.Project) bool { return p.IsTop })
}

func (h *ProjectHandler) setFlag(
	c *gin.Context,
	set func(user *models.User, pid string, value bool) (*models.Project, error),
	current func(p *models.Project) bool,
) {
	pid := c.Param("pid")

	var req flagRequest
	_ = c.ShouldBindJSON(&req)

	value := false
	if req.Value != nil {
		value = *req.Value
	} else {
		project, err := services.GetProject(pid)
		if err != nil {
			fail(c, err)
			return
		}
		value = !current(project)
	}

	project, err := set(currentUser(c), pid, value)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}
