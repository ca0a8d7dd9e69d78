package services

import (
	"errors"
	"testing"

	"buildboard/internal/apperr"
	"buildboard/internal/db"
	"buildboard/internal/models"

	"gorm.io/gorm"
)

func TestToggleVote(t *testing.T) {
	setup(t)
	owner := newVerifiedUser(t, "owner")
	voter := newVerifiedUser(t, "voter")
	project := newProject(t, owner, "Widget", "builder")

	voted, err := ToggleVote(voter, project.Pid)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !voted {
		t.Error("first toggle should report voted=true")
	}
	if n := CountVotes(project.ID); n != 1 {
		t.Errorf("expected 1 vote row, got %d", n)
	}

	// Owner gets exactly one vote notification.
	if n := notificationCount(t, owner.ID); n != 1 {
		t.Errorf("expected 1 notification for owner, got %d", n)
	}
	var notif models.Notification
	db.DB.Where("user_id = ?", owner.ID).First(&notif)
	if notif.Type != models.NotificationTypeVote {
		t.Errorf("expected vote notification, got %s", notif.Type)
	}
	if notif.ActorID != voter.ID {
		t.Errorf("expected actor %d, got %d", voter.ID, notif.ActorID)
	}

	// Toggle off: row gone, no new notification.
	voted, err = ToggleVote(voter, project.Pid)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if voted {
		t.Error("second toggle should report voted=false")
	}
	if n := CountVotes(project.ID); n != 0 {
		t.Errorf("expected 0 vote rows after un-vote, got %d", n)
	}
	if n := notificationCount(t, owner.ID); n != 1 {
		t.Errorf("un-vote must not create or retract notifications, got %d", n)
	}
}

func TestToggleVoteAlternates(t *testing.T) {
	setup(t)
	owner := newVerifiedUser(t, "owner")
	voter := newVerifiedUser(t, "voter")
	project := newProject(t, owner, "Widget", "builder")

	// An odd number of toggles leaves exactly one row, an even number none.
	for i := 1; i <= 7; i++ {
		voted, err := ToggleVote(voter, project.Pid)
		if err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		wantVoted := i%2 == 1
		if voted != wantVoted {
			t.Errorf("toggle %d: voted=%v, want %v", i, voted, wantVoted)
		}
		wantRows := int64(0)
		if wantVoted {
			wantRows = 1
		}
		if n := CountVotes(project.ID); n != wantRows {
			t.Errorf("toggle %d: %d vote rows, want %d", i, n, wantRows)
		}
	}
}

func TestVoteUniqueConstraint(t *testing.T) {
	setup(t)
	owner := newVerifiedUser(t, "owner")
	voter := newVerifiedUser(t, "voter")
	project := newProject(t, owner, "Widget", "builder")

	first := models.Vote{UserID: voter.ID, ProjectID: project.ID}
	if err := db.DB.Create(&first).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}

	// The composite key must reject a second row and the error must be
	// classifiable without driver-specific code matching.
	dup := models.Vote{UserID: voter.ID, ProjectID: project.ID}
	err := db.DB.Create(&dup).Error
	if err == nil {
		t.Fatal("duplicate vote insert should fail")
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("expected gorm.ErrDuplicatedKey, got %v", err)
	}

	// The toggle sitting on top of that constraint still succeeds.
	voted, err := ToggleVote(voter, project.Pid)
	if err != nil {
		t.Fatalf("toggle on existing vote: %v", err)
	}
	if voted {
		t.Error("toggle on existing vote should remove it")
	}
}

func TestToggleVoteSelfNoNotification(t *testing.T) {
	setup(t)
	owner := newVerifiedUser(t, "owner")
	project := newProject(t, owner, "Widget", "builder")

	voted, err := ToggleVote(owner, project.Pid)
	if err != nil {
		t.Fatalf("self vote: %v", err)
	}
	if !voted {
		t.Error("self vote should count")
	}
	if n := notificationCount(t, owner.ID); n != 0 {
		t.Errorf("voting on your own project must not notify, got %d", n)
	}
}

func TestToggleVoteVerificationPolicy(t *testing.T) {
	setup(t)
	owner := newVerifiedUser(t, "owner")
	project := newProject(t, owner, "Widget", "builder")

	partial := newHandleOnlyUser(t, "partial")
	if _, err := ToggleVote(partial, project.Pid); !apperr.Is(err, apperr.CodeForbidden) {
		t.Errorf("handle-only user under strict policy: want Forbidden, got %v", err)
	}

	if _, err := ToggleVote(nil, project.Pid); !apperr.Is(err, apperr.CodeUnauthenticated) {
		t.Errorf("anonymous vote: want Unauthenticated, got %v", err)
	}

	verified := newVerifiedUser(t, "verified")
	if _, err := ToggleVote(verified, "no-such-pid"); !apperr.Is(err, apperr.CodeNotFound) {
		t.Errorf("unknown project: want NotFound, got %v", err)
	}
}

func TestToggleVoteRelaxedPolicy(t *testing.T) {
	setup(t)
	setStrictEngagement(t, false)

	owner := newVerifiedUser(t, "owner")
	project := newProject(t, owner, "Widget", "builder")

	partial := newHandleOnlyUser(t, "partial")
	voted, err := ToggleVote(partial, project.Pid)
	if err != nil {
		t.Fatalf("handle-only user under relaxed policy: %v", err)
	}
	if !voted {
		t.Error("expected vote to land")
	}
}
