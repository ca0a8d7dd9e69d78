package models

import (
	"time"
)

// Vote rows are created on vote and deleted on un-vote, never updated.
// The composite unique index is the whole correctness story: at most one
// row may exist per (user, project), and concurrent double-submissions are
// resolved by the constraint instead of a lock.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_votes_user_project" json:"user_id"`
	ProjectID uint      `gorm:"not null;uniqueIndex:idx_votes_user_project;index" json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
}
