package services

import (
	"log"

	"buildboard/internal/db"
	"buildboard/internal/metrics"
	"buildboard/internal/models"
)

const DefaultNotificationLimit = 20

// Notify records an engagement notification for the affected party.
// Self-notifications are skipped. Failures are logged and swallowed:
// the triggering vote or comment must never fail because the side
// channel did.
func Notify(recipientID, actorID, projectID uint, typ models.NotificationType) {
	if recipientID == actorID {
		return
	}

	n := models.Notification{
		UserID:    recipientID,
		ActorID:   actorID,
		ProjectID: projectID,
		Type:      typ,
	}
	if err := db.DB.Create(&n).Error; err != nil {
		metrics.NotificationsFailed.Inc()
		log.Printf("notification create failed (recipient=%d actor=%d type=%s): %v", recipientID, actorID, typ, err)
		return
	}
	metrics.NotificationsCreated.Inc()
}

// ListNotifications returns the recipient's most recent notifications,
// newest first, with actor and project preloaded for display.
func ListNotifications(userID uint, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultNotificationLimit
	}

	var notifications []models.Notification
	err := db.DB.Preload("Actor").Preload("Project").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

// MarkAllRead flips every unread notification for the user in one bulk
// update.
func MarkAllRead(userID uint) error {
	return db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// UnreadCount is shown in the navbar badge.
func UnreadCount(userID uint) int64 {
	var count int64
	db.DB.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&count)
	return count
}
