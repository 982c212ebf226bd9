package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ModerationActions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "agora_moderation_actions_total",
	Help: "Number of moderation actions by action and result",
}, []string{"action", "result"})

var ReportsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "agora_reports_created_total",
	Help: "Number of reports created",
})

var PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "agora_posts_created_total",
	Help: "Number of posts created",
})

var EventPublishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "agora_event_publish_failures_total",
	Help: "Number of domain events that failed to publish",
}, []string{"type"})

var ReportedPosts = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "agora_reported_posts",
	Help: "Number of posts with at least one report",
})

var ActiveReports = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "agora_active_reports",
	Help: "Number of reports that are still active",
})

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "agora_http_requests_total",
	Help: "Number of HTTP requests by route and status",
}, []string{"method", "route", "status"})

var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "agora_http_request_duration_seconds",
	Help:    "HTTP request latency",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route"})

const (
	ActionDeactivate = "deactivate"
	ActionRestore    = "restore"
	ResultSuccess    = "success"
	ResultError      = "error"
)

// ObserveModeration 记录一次审核操作
func ObserveModeration(action string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	ModerationActions.WithLabelValues(action, result).Inc()
}
