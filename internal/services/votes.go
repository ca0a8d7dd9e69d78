package services

import (
	"errors"

	"buildboard/internal/apperr"
	"buildboard/internal/db"
	"buildboard/internal/metrics"
	"buildboard/internal/models"

	"gorm.io/gorm"
)

// ToggleVote flips the acting user's vote on a project and reports the
// resulting state. At most one Vote row ever exists per (user, project);
// the composite unique index resolves concurrent double-submissions, so
// both sides of a race observe the same final state and neither sees an
// error.
func ToggleVote(user *models.User, pid string) (bool, error) {
	if err := RequireEngagement(user); err != nil {
		return false, err
	}

	var project models.Project
	if err := db.DB.Where("pid = ?", pid).First(&project).Error; err != nil {
		return false, apperr.NotFound("project not found")
	}

	var existing models.Vote
	err := db.DB.Where("user_id = ? AND project_id = ?", user.ID, project.ID).First(&existing).Error
	if err == nil {
		// Toggle off. A concurrent deleter may have won the race and
		// removed the row already; zero rows affected is still success.
		if err := db.DB.Delete(&models.Vote{}, existing.ID).Error; err != nil {
			return false, err
		}
		metrics.VotesRetracted.Inc()
		InvalidateLeaderboards()
		// Un-voting does not retract the earlier notification.
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	vote := models.Vote{UserID: user.ID, ProjectID: project.ID}
	if err := db.DB.Create(&vote).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the insert race to a duplicate submission. The vote
			// exists, which is exactly what the caller asked for.
			return true, nil
		}
		return false, err
	}

	metrics.VotesCast.Inc()
	InvalidateLeaderboards()

	// Best effort: a failed notification never fails the vote.
	Notify(project.UserID, user.ID, project.ID, models.NotificationTypeVote)

	return true, nil
}

// CountVotes returns the surviving vote rows for a project. There is no
// stored counter to drift out of sync.
func CountVotes(projectID uint) int64 {
	var n int64
	db.DB.Model(&models.Vote{}).Where("project_id = ?", projectID).Count(&n)
	return n
}
