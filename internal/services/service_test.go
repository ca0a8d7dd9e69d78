package services

import (
	"fmt"
	"testing"
	"time"

	"buildboard/internal/config"
	"buildboard/internal/db"
	"buildboard/internal/models"
	"buildboard/internal/utils"

	"github.com/google/uuid"
)

func setup(t *testing.T) {
	t.Helper()
	db.InitTest(t)
	utils.GetCache().Purge()
}

// setStrictEngagement overrides the engagement policy for one test.
func setStrictEngagement(t *testing.T, strict bool) {
	t.Helper()
	cfg := config.Get()
	old := cfg.StrictEngagement
	cfg.StrictEngagement = strict
	t.Cleanup(func() { cfg.StrictEngagement = old })
}

// newVerifiedUser creates a user with a handle and both social accounts
// linked, which passes the strict engagement policy.
func newVerifiedUser(t *testing.T, handle string) *models.User {
	t.Helper()
	twitterID := "tw_" + handle
	discordID := "dc_" + handle
	user := models.User{
		Email:     handle + "@example.com",
		Password:  "x",
		Username:  &handle,
		TwitterID: &twitterID,
		DiscordID: &discordID,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", handle, err)
	}
	return &user
}

// newHandleOnlyUser has a username but no linked social accounts.
func newHandleOnlyUser(t *testing.T, handle string) *models.User {
	t.Helper()
	user := models.User{
		Email:    handle + "@example.com",
		Password: "x",
		Username: &handle,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", handle, err)
	}
	return &user
}

func newProject(t *testing.T, owner *models.User, name, category string) *models.Project {
	t.Helper()
	project := models.Project{
		Pid:      uuid.NewString(),
		UserID:   owner.ID,
		Name:     name,
		Category: category,
	}
	if err := db.DB.Create(&project).Error; err != nil {
		t.Fatalf("create project %s: %v", name, err)
	}
	return &project
}

// castVote inserts a vote row directly with a fixed timestamp, for
// leaderboard window tests.
func castVote(t *testing.T, voter *models.User, project *models.Project, at time.Time) {
	t.Helper()
	vote := models.Vote{UserID: voter.ID, ProjectID: project.ID, CreatedAt: at}
	if err := db.DB.Create(&vote).Error; err != nil {
		t.Fatalf("cast vote: %v", err)
	}
}

// voters returns n distinct verified users for fanning out votes.
func voters(t *testing.T, n int) []*models.User {
	t.Helper()
	users := make([]*models.User, n)
	for i := range users {
		users[i] = newVerifiedUser(t, fmt.Sprintf("voter_%d_%d", time.Now().UnixNano()%1e6, i))
	}
	return users
}

func notificationCount(t *testing.T, recipientID uint) int64 {
	t.Helper()
	var n int64
	db.DB.Model(&models.Notification{}).Where("user_id = ?", recipientID).Count(&n)
	return n
}
