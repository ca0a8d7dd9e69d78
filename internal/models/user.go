package models

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // Hash

	// Username stays NULL until the user finishes profile setup.
	Username *string `gorm:"uniqueIndex" json:"username"`

	// Linked social accounts. The IDs are globally unique across users;
	// the unique indexes are what resolve concurrent link attempts.
	TwitterHandle string  `gorm:"size:100" json:"twitter_handle"`
	TwitterID     *string `gorm:"uniqueIndex" json:"twitter_id"`
	DiscordHandle string  `gorm:"size:100" json:"discord_handle"`
	DiscordID     *string `gorm:"uniqueIndex" json:"discord_id"`

	Role      string    `gorm:"size:20;default:'user';not null" json:"role"` // user, admin
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Projects []Project `gorm:"foreignKey:UserID" json:"-"`
}

// HasHandle reports whether the user finished choosing a username.
func (u *User) HasHandle() bool {
	return u.Username != nil && *u.Username != ""
}

// FullyVerified = handle chosen AND both social accounts linked.
func (u *User) FullyVerified() bool {
	return u.HasHandle() &&
		u.TwitterID != nil && *u.TwitterID != "" &&
		u.DiscordID != nil && *u.DiscordID != ""
}

func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// Handle returns the username or "" when profile setup is incomplete.
func (u *User) Handle() string {
	if u.Username == nil {
		return ""
	}
	return *u.Username
}
