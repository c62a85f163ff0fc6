package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "propdesk_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "propdesk_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "propdesk_mutations_total",
		Help: "Mutating operations by entity type, action and result",
	}, []string{"entity", "action", "result"})

	notificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "propdesk_notifications_total",
		Help: "Notification rows written by type",
	}, []string{"type"})

	mailJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "propdesk_mail_jobs_total",
		Help: "Notification mail jobs by outcome",
	}, []string{"result"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func ObserveMutation(entity, action, result string) {
	mutationsTotal.WithLabelValues(entity, action, result).Inc()
}

func ObserveNotifications(notificationType string, count int) {
	notificationsTotal.WithLabelValues(notificationType).Add(float64(count))
}

func ObserveMailJob(result string) {
	mailJobsTotal.WithLabelValues(result).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
