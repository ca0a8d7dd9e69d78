package models

import (
	"time"
)

type Project struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Pid         string `gorm:"uniqueIndex;size:36;not null" json:"pid"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	User        User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"` // Markdown, rendered on read
	Link        string `json:"link"`
	Category    string `gorm:"size:50;index" json:"category"` // e.g. "builder", "sharktank"

	// Editorial flags, admin only.
	IsPinned bool `gorm:"default:false" json:"is_pinned"`
	IsTop    bool `gorm:"default:false" json:"is_top"`

	// Event projects act as containers; sub-submissions point back via EventID.
	IsEvent bool  `gorm:"default:false" json:"is_event"`
	EventID *uint `gorm:"index" json:"event_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 非数据库字段，用于查询时填充
	VoteCount     int `gorm:"-" json:"vote_count"`
	FeedbackCount int `gorm:"-" json:"feedback_count"`
}
