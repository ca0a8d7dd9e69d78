package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	VotesCast = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "buildboard_votes_cast_total", Help: "Total votes cast"},
	)
	VotesRetracted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "buildboard_votes_retracted_total", Help: "Total votes toggled off"},
	)
	FeedbackCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "buildboard_feedback_total", Help: "Total feedback comments created"},
	)
	NotificationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "buildboard_notifications_total", Help: "Total notifications fanned out"},
	)
	NotificationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "buildboard_notifications_failed_total", Help: "Total notification writes dropped after an error"},
	)
)

func Register() {
	prometheus.MustRegister(VotesCast, VotesRetracted, FeedbackCreated, NotificationsCreated, NotificationsFailed)
}
