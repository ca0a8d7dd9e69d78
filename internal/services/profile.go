package services

import (
	"errors"
	"regexp"
	"strings"

	"buildboard/internal/apperr"
	"buildboard/internal/db"
	"buildboard/internal/models"

	"gorm.io/gorm"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

type ProfileInput struct {
	Username      string
	TwitterHandle string
	TwitterID     string
	DiscordHandle string
	DiscordID     string
}

// UpdateProfile sets the handle and social account links. Uniqueness
// conflicts here are user-visible by design: the caller needs to know
// which identifier is taken so they can pick another. The pre-checks give
// a named message; the unique indexes make sure concurrent attach
// attempts cannot both succeed.
func UpdateProfile(user *models.User, in ProfileInput) (*models.User, error) {
	if user == nil {
		return nil, apperr.Unauthenticated("login required")
	}

	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		return nil, apperr.Validation("username is required")
	}
	if !usernameRe.MatchString(in.Username) {
		return nil, apperr.Validation("username can only contain letters, numbers, and underscores")
	}

	var taken int64
	db.DB.Model(&models.User{}).
		Where("username = ? AND id <> ?", in.Username, user.ID).
		Count(&taken)
	if taken > 0 {
		return nil, apperr.Conflict("username already taken")
	}

	if in.TwitterID != "" {
		db.DB.Model(&models.User{}).
			Where("twitter_id = ? AND id <> ?", in.TwitterID, user.ID).
			Count(&taken)
		if taken > 0 {
			return nil, apperr.Conflict("this Twitter account is already linked to another profile")
		}
	}
	if in.DiscordID != "" {
		db.DB.Model(&models.User{}).
			Where("discord_id = ? AND id <> ?", in.DiscordID, user.ID).
			Count(&taken)
		if taken > 0 {
			return nil, apperr.Conflict("this Discord account is already linked to another profile")
		}
	}

	user.Username = &in.Username
	user.TwitterHandle = in.TwitterHandle
	user.DiscordHandle = in.DiscordHandle
	user.TwitterID = nilIfEmpty(in.TwitterID)
	user.DiscordID = nilIfEmpty(in.DiscordID)

	if err := db.DB.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Raced another profile past the pre-checks; the unique index
			// decided, surface it instead of absorbing it.
			return nil, apperr.Conflict("username or social account already linked to another profile")
		}
		return nil, err
	}
	return user, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
