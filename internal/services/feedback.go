package services

import (
	"sort"
	"strings"

	"buildboard/internal/apperr"
	"buildboard/internal/db"
	"buildboard/internal/metrics"
	"buildboard/internal/models"
)

// FeedbackNode is one comment with its reply subtree.
type FeedbackNode struct {
	models.Feedback
	Replies []*FeedbackNode `json:"replies"`
}

// PostComment stores a comment or reply and fans out exactly one
// notification: to the parent comment's author for a reply, to the project
// owner for a top-level comment.
func PostComment(user *models.User, pid string, content string, parentID *uint) (*models.Feedback, error) {
	if err := RequireEngagement(user); err != nil {
		return nil, err
	}

	var project models.Project
	if err := db.DB.Where("pid = ?", pid).First(&project).Error; err != nil {
		return nil, apperr.NotFound("project not found")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.Validation("content is required")
	}

	var parent models.Feedback
	if parentID != nil {
		if err := db.DB.First(&parent, *parentID).Error; err != nil {
			return nil, apperr.Validation("parent comment not found")
		}
		if parent.ProjectID != project.ID {
			return nil, apperr.Validation("parent comment belongs to a different project")
		}
	}

	feedback := models.Feedback{
		ProjectID: project.ID,
		UserID:    user.ID,
		ParentID:  parentID,
		Content:   content,
	}
	if err := db.DB.Create(&feedback).Error; err != nil {
		return nil, err
	}
	metrics.FeedbackCreated.Inc()

	if parentID != nil {
		Notify(parent.UserID, user.ID, project.ID, models.NotificationTypeReply)
	} else {
		Notify(project.UserID, user.ID, project.ID, models.NotificationTypeComment)
	}

	db.DB.Preload("User").First(&feedback, feedback.ID)
	return &feedback, nil
}

// FeedbackTree reconstructs the project's comment forest from one read.
// Top-level comments come back newest first; replies under each node stay
// in chronological order so a thread reads as a conversation.
func FeedbackTree(pid string) ([]*FeedbackNode, error) {
	var project models.Project
	if err := db.DB.Where("pid = ?", pid).First(&project).Error; err != nil {
		return nil, apperr.NotFound("project not found")
	}
	return buildTree(project.ID)
}

func buildTree(projectID uint) ([]*FeedbackNode, error) {
	var rows []models.Feedback
	if err := db.DB.Preload("User").
		Where("project_id = ?", projectID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	nodes := make(map[uint]*FeedbackNode, len(rows))
	for i := range rows {
		nodes[rows[i].ID] = &FeedbackNode{Feedback: rows[i], Replies: []*FeedbackNode{}}
	}

	roots := make([]*FeedbackNode, 0)
	for i := range rows {
		node := nodes[rows[i].ID]
		if rows[i].ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*rows[i].ParentID]
		if !ok {
			// Orphaned reply (parent removed); surface it rather than drop it.
			roots = append(roots, node)
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}

	// Rows were fetched oldest first, which already gives replies their
	// conversational order. Roots flip to newest first.
	sort.SliceStable(roots, func(i, j int) bool {
		if roots[i].CreatedAt.Equal(roots[j].CreatedAt) {
			return roots[i].Feedback.ID > roots[j].Feedback.ID
		}
		return roots[i].CreatedAt.After(roots[j].CreatedAt)
	})

	return roots, nil
}
