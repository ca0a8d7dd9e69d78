package services

import (
	"sort"
	"time"

	"buildboard/internal/apperr"
	"buildboard/internal/db"
	"buildboard/internal/models"
	"buildboard/internal/utils"
)

// Window scopes leaderboard aggregation to a trailing time range.
type Window string

const (
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowAll   Window = "all"
)

const topBuildersLimit = 50

// ParseWindow validates a window name from the boundary. Empty defaults to
// week, matching the original weekly ranking.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case "":
		return WindowWeek, nil
	case WindowDay, WindowWeek, WindowMonth, WindowAll:
		return Window(s), nil
	default:
		return "", apperr.Validation("window must be one of: day, week, month, all")
	}
}

// Cutoff returns the lower-bound timestamp for the window. The second
// return is false for the unbounded all-time window.
func (w Window) Cutoff(now time.Time) (time.Time, bool) {
	switch w {
	case WindowDay:
		return now.AddDate(0, 0, -1), true
	case WindowWeek:
		return now.AddDate(0, 0, -7), true
	case WindowMonth:
		return now.AddDate(0, -1, 0), true
	default:
		return time.Time{}, false
	}
}

type BuilderSummary struct {
	ID            uint   `json:"id"`
	Username      string `json:"username"`
	TwitterHandle string `json:"twitter_handle"`

	WindowVotes    int `json:"window_votes"`
	TotalVotes     int `json:"total_votes"`
	WindowProjects int `json:"window_projects"`
	TotalProjects  int `json:"total_projects"`
}

// TopBuilders ranks builders over the window, recomputing from raw vote
// rows. Results are cached briefly; there is no persisted counter to go
// stale.
func TopBuilders(window Window) ([]BuilderSummary, error) {
	cacheKey := "builders:" + string(window)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if builders, ok := cached.([]BuilderSummary); ok {
			return builders, nil
		}
	}

	builders, err := computeTopBuilders(window, time.Now())
	if err != nil {
		return nil, err
	}

	utils.GetCache().Set(cacheKey, builders, 1*time.Minute)
	return builders, nil
}

// InvalidateLeaderboards drops cached rankings after a vote toggle so the
// next read reflects the ledger.
func InvalidateLeaderboards() {
	for _, w := range []Window{WindowDay, WindowWeek, WindowMonth, WindowAll} {
		utils.GetCache().Delete("builders:" + string(w))
	}
}

func computeTopBuilders(window Window, now time.Time) ([]BuilderSummary, error) {
	cutoff, bounded := window.Cutoff(now)

	// Only users who finished profile setup appear on the board.
	var users []models.User
	if err := db.DB.Preload("Projects").
		Where("username IS NOT NULL AND username <> ''").
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	projectIDs := make([]uint, 0)
	for i := range users {
		for _, p := range users[i].Projects {
			projectIDs = append(projectIDs, p.ID)
		}
	}

	totalCounts := countVotesByProject(projectIDs, time.Time{}, false)
	windowCounts := totalCounts
	if bounded {
		windowCounts = countVotesByProject(projectIDs, cutoff, true)
	}

	builders := make([]BuilderSummary, 0, len(users))
	for i := range users {
		u := &users[i]
		b := BuilderSummary{
			ID:            u.ID,
			Username:      u.Handle(),
			TwitterHandle: u.TwitterHandle,
			TotalProjects: len(u.Projects),
		}
		for _, p := range u.Projects {
			b.WindowVotes += windowCounts[p.ID]
			b.TotalVotes += totalCounts[p.ID]
			if !bounded || !p.CreatedAt.Before(cutoff) {
				b.WindowProjects++
			}
		}
		builders = append(builders, b)
	}

	// Three-level tie-break; stable sort keeps full ties in user-id order
	// so repeated calls never reorder.
	sort.SliceStable(builders, func(i, j int) bool {
		if builders[i].WindowVotes != builders[j].WindowVotes {
			return builders[i].WindowVotes > builders[j].WindowVotes
		}
		if builders[i].TotalVotes != builders[j].TotalVotes {
			return builders[i].TotalVotes > builders[j].TotalVotes
		}
		return builders[i].WindowProjects > builders[j].WindowProjects
	})

	if len(builders) > topBuildersLimit {
		builders = builders[:topBuildersLimit]
	}
	return builders, nil
}

// ProjectFilter narrows the project listing. Zero values mean "no filter".
type ProjectFilter struct {
	Category string
	OwnerID  uint
	TopOnly  bool
	EventPid string
}

// TopProjects lists projects for display: pinned first, then event
// containers, then by surviving vote count.
func TopProjects(f ProjectFilter) ([]models.Project, error) {
	q := db.DB.Preload("User")
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.OwnerID != 0 {
		q = q.Where("user_id = ?", f.OwnerID)
	}
	if f.TopOnly {
		q = q.Where("is_top = ?", true)
	}
	if f.EventPid != "" {
		var event models.Project
		if err := db.DB.Where("pid = ? AND is_event = ?", f.EventPid, true).First(&event).Error; err != nil {
			return nil, apperr.NotFound("event not found")
		}
		q = q.Where("event_id = ?", event.ID)
	}

	var projects []models.Project
	if err := q.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	fillEngagementCounts(projects)

	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].IsPinned != projects[j].IsPinned {
			return projects[i].IsPinned
		}
		if projects[i].IsEvent != projects[j].IsEvent {
			return projects[i].IsEvent
		}
		return projects[i].VoteCount > projects[j].VoteCount
	})

	return projects, nil
}

// fillEngagementCounts batch-fills vote and feedback counts for a page of
// projects.
func fillEngagementCounts(projects []models.Project) {
	if len(projects) == 0 {
		return
	}

	projectIDs := make([]uint, len(projects))
	for i, p := range projects {
		projectIDs[i] = p.ID
	}

	voteCounts := countVotesByProject(projectIDs, time.Time{}, false)

	type countResult struct {
		ProjectID uint
		Count     int
	}
	var results []countResult
	db.DB.Model(&models.Feedback{}).
		Select("project_id, COUNT(*) as count").
		Where("project_id IN ?", projectIDs).
		Group("project_id").
		Scan(&results)

	feedbackCounts := make(map[uint]int, len(results))
	for _, r := range results {
		feedbackCounts[r.ProjectID] = r.Count
	}

	for i := range projects {
		projects[i].VoteCount = voteCounts[projects[i].ID]
		projects[i].FeedbackCount = feedbackCounts[projects[i].ID]
	}
}

func countVotesByProject(projectIDs []uint, since time.Time, bounded bool) map[uint]int {
	counts := make(map[uint]int, len(projectIDs))
	if len(projectIDs) == 0 {
		return counts
	}

	type countResult struct {
		ProjectID uint
		Count     int
	}
	q := db.DB.Model(&models.Vote{}).
		Select("project_id, COUNT(*) as count").
		Where("project_id IN ?", projectIDs).
		Group("project_id")
	if bounded {
		q = q.Where("created_at >= ?", since)
	}

	var results []countResult
	q.Scan(&results)
	for _, r := range results {
		counts[r.ProjectID] = r.Count
	}
	return counts
}
