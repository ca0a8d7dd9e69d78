package services

import (
	"fmt"
	"strings"

	"buildboard/internal/apperr"
	"buildboard/internal/db"
	"buildboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectInput struct {
	Name        string
	Description string
	Link        string
	Category    string
	IsEvent     bool
	EventPid    string // parent event container, optional
}

// CreateProject submits a new project. Non-admins hold at most one
// standalone project per category; event containers and event
// sub-submissions are exempt.
func CreateProject(user *models.User, in ProjectInput) (*models.Project, error) {
	if err := RequireHandle(user); err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" {
		return nil, apperr.Validation("name is required")
	}
	if in.Category == "" {
		return nil, apperr.Validation("category is required")
	}
	if in.IsEvent && !user.IsAdmin() {
		return nil, apperr.Forbidden("admin only")
	}

	var eventID *uint
	if in.EventPid != "" {
		var event models.Project
		if err := db.DB.Where("pid = ? AND is_event = ?", in.EventPid, true).First(&event).Error; err != nil {
			return nil, apperr.Validation("event not found")
		}
		eventID = &event.ID
	}

	if !user.IsAdmin() && !in.IsEvent && eventID == nil {
		var count int64
		db.DB.Model(&models.Project{}).
			Where("user_id = ? AND category = ? AND is_event = ? AND event_id IS NULL", user.ID, in.Category, false).
			Count(&count)
		if count > 0 {
			return nil, apperr.Conflict(fmt.Sprintf("you already have a project in the %s category", in.Category))
		}
	}

	project := models.Project{
		Pid:         uuid.NewString(),
		UserID:      user.ID,
		Name:        in.Name,
		Description: in.Description,
		Link:        in.Link,
		Category:    in.Category,
		IsEvent:     in.IsEvent,
		EventID:     eventID,
	}
	if err := db.DB.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProject loads a project with its owner and engagement counts.
func GetProject(pid string) (*models.Project, error) {
	var project models.Project
	if err := db.DB.Preload("User").Where("pid = ?", pid).First(&project).Error; err != nil {
		return nil, apperr.NotFound("project not found")
	}

	page := []models.Project{project}
	fillEngagementCounts(page)
	return &page[0], nil
}

type ProjectUpdate struct {
	Name        *string
	Description *string
	Link        *string
	Category    *string
}

// UpdateProject lets the owner or an admin edit engagement-relevant fields.
func UpdateProject(user *models.User, pid string, in ProjectUpdate) (*models.Project, error) {
	project, err := ownedProject(user, pid)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, apperr.Validation("name is required")
		}
		project.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Link != nil {
		project.Link = *in.Link
	}
	if in.Category != nil && strings.TrimSpace(*in.Category) != "" {
		project.Category = strings.TrimSpace(*in.Category)
	}

	if err := db.DB.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project together with its votes, feedback and
// notifications in one transaction.
func DeleteProject(user *models.User, pid string) error {
	project, err := ownedProject(user, pid)
	if err != nil {
		return err
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Feedback{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(project).Error
	})
	if err != nil {
		return err
	}

	InvalidateLeaderboards()
	return nil
}

// SetPinned flips the admin pin override.
func SetPinned(user *models.User, pid string, pinned bool) (*models.Project, error) {
	return setEditorialFlag(user, pid, "is_pinned", pinned)
}

// SetTop flips the admin curation flag.
func SetTop(user *models.User, pid string, top bool) (*models.Project, error) {
	return setEditorialFlag(user, pid, "is_top", top)
}

func setEditorialFlag(user *models.User, pid string, column string, value bool) (*models.Project, error) {
	if err := RequireAdmin(user); err != nil {
		return nil, err
	}

	var project models.Project
	if err := db.DB.Where("pid = ?", pid).First(&project).Error; err != nil {
		return nil, apperr.NotFound("project not found")
	}

	if err := db.DB.Model(&project).UpdateColumn(column, value).Error; err != nil {
		return nil, err
	}
	db.DB.First(&project, project.ID)
	return &project, nil
}

func ownedProject(user *models.User, pid string) (*models.Project, error) {
	if user == nil {
		return nil, apperr.Unauthenticated("login required")
	}

	var project models.Project
	if err := db.DB.Where("pid = ?", pid).First(&project).Error; err != nil {
		return nil, apperr.NotFound("project not found")
	}
	if project.UserID != user.ID && !user.IsAdmin() {
		return nil, apperr.Forbidden("not your project")
	}
	return &project, nil
}
