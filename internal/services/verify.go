package services

import (
	"buildboard/internal/apperr"
	"buildboard/internal/config"
	"buildboard/internal/models"
)

// RequireHandle gates actions that only need a chosen username, like
// submitting a project.
func RequireHandle(user *models.User) error {
	if user == nil {
		return apperr.Unauthenticated("login required")
	}
	if !user.HasHandle() {
		return apperr.Forbidden("profile setup required")
	}
	return nil
}

// RequireEngagement gates votes and comments. Under the strict policy the
// user must also have both social accounts linked.
func RequireEngagement(user *models.User) error {
	if err := RequireHandle(user); err != nil {
		return err
	}
	if config.Get().StrictEngagement && !user.FullyVerified() {
		return apperr.Forbidden("verification required: link your Twitter and Discord accounts")
	}
	return nil
}

// RequireAdmin gates editorial operations.
func RequireAdmin(user *models.User) error {
	if user == nil {
		return apperr.Unauthenticated("login required")
	}
	if !user.IsAdmin() {
		return apperr.Forbidden("admin only")
	}
	return nil
}
