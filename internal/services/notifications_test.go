package services

import (
	"testing"
	"time"

	"buildboard/internal/db"
	"buildboard/internal/models"
)

func TestNotifySelfIsNoop(t *testing.T) {
	setup(t)
	user := newVerifiedUser(t, "solo")
	project := newProject(t, user, "Widget", "builder")

	Notify(user.ID, user.ID, project.ID, models.NotificationTypeVote)

	if n := notificationCount(t, user.ID); n != 0 {
		t.Errorf("self notification must be a no-op, got %d rows", n)
	}
}

func TestListNotifications(t *testing.T) {
	setup(t)
	recipient := newVerifiedUser(t, "recipient")
	actor := newVerifiedUser(t, "actor")
	project := newProject(t, actor, "Widget", "builder")

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		n := models.Notification{
			UserID:    recipient.ID,
			ActorID:   actor.ID,
			ProjectID: project.ID,
			Type:      models.NotificationTypeVote,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.DB.Create(&n).Error; err != nil {
			t.Fatalf("create notification %d: %v", i, err)
		}
	}

	// Default limit caps the feed at the 20 most recent.
	list, err := ListNotifications(recipient.ID, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != DefaultNotificationLimit {
		t.Fatalf("expected %d notifications, got %d", DefaultNotificationLimit, len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].CreatedAt.After(list[i-1].CreatedAt) {
			t.Fatal("notifications not in newest-first order")
		}
	}

	// Denormalized display fields ride along.
	if list[0].Actor.Handle() != "actor" {
		t.Errorf("expected actor handle, got %q", list[0].Actor.Handle())
	}
	if list[0].Project.Name != "Widget" {
		t.Errorf("expected project name, got %q", list[0].Project.Name)
	}
}

func TestMarkAllRead(t *testing.T) {
	setup(t)
	recipient := newVerifiedUser(t, "recipient")
	other := newVerifiedUser(t, "other")
	actor := newVerifiedUser(t, "actor")
	project := newProject(t, actor, "Widget", "builder")

	for i := 0; i < 3; i++ {
		Notify(recipient.ID, actor.ID, project.ID, models.NotificationTypeComment)
	}
	Notify(other.ID, actor.ID, project.ID, models.NotificationTypeComment)

	if n := UnreadCount(recipient.ID); n != 3 {
		t.Fatalf("expected 3 unread, got %d", n)
	}

	if err := MarkAllRead(recipient.ID); err != nil {
		t.Fatalf("mark all read: %v", err)
	}

	if n := UnreadCount(recipient.ID); n != 0 {
		t.Errorf("expected 0 unread after bulk read, got %d", n)
	}
	// Other users' feeds are untouched.
	if n := UnreadCount(other.ID); n != 1 {
		t.Errorf("bulk read leaked to another user, unread=%d", n)
	}
}

func TestNotifyFanOutTypes(t *testing.T) {
	setup(t)
	recipient := newVerifiedUser(t, "recipient")
	actor := newVerifiedUser(t, "actor")
	project := newProject(t, recipient, "Widget", "builder")

	for i, typ := range []models.NotificationType{
		models.NotificationTypeVote,
		models.NotificationTypeComment,
		models.NotificationTypeReply,
	} {
		Notify(recipient.ID, actor.ID, project.ID, typ)
		var n models.Notification
		if err := db.DB.Where("user_id = ? AND type = ?", recipient.ID, typ).First(&n).Error; err != nil {
			t.Fatalf("notification %d (%s) missing: %v", i, typ, err)
		}
		if n.IsRead {
			t.Errorf("%s notification should start unread", typ)
		}
	}

	if got, want := notificationCount(t, recipient.ID), int64(3); got != want {
		t.Errorf("expected %d notifications, got %d", want, got)
	}
}
