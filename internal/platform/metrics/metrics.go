package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	RequestsSubmitted  *prometheus.CounterVec
	RequestsResolved   *prometheus.CounterVec
	ConsistencyFaults  *prometheus.CounterVec
	PhotoVerdicts      *prometheus.CounterVec
	DetectorLatency    prometheus.Histogram
	DetectorCacheHits  prometheus.Counter
	NotificationsSent  prometheus.Counter
	RelayPublishErrors prometheus.Counter
}

// New creates and registers all Prometheus metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestsSubmitted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "digital_society_requests_submitted_total",
			Help: "Requests accepted into the Pending state",
		}, []string{"workflow", "type"}),
		RequestsResolved: f.NewCounterVec(prometheus.CounterOpts{
			Name: "digital_society_requests_resolved_total",
			Help: "Requests moved to a terminal state by an inspector",
		}, []string{"workflow", "type", "outcome"}),
		ConsistencyFaults: f.NewCounterVec(prometheus.CounterOpts{
			Name: "digital_society_consistency_faults_total",
			Help: "Approvals that found an expected record missing",
		}, []string{"workflow"}),
		PhotoVerdicts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "digital_society_photo_verdicts_total",
			Help: "Photo admission verdicts by check",
		}, []string{"check"}),
		DetectorLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "digital_society_face_detector_duration_seconds",
			Help:    "Latency of face-detection provider calls",
			Buckets: prometheus.DefBuckets,
		}),
		DetectorCacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "digital_society_face_detector_cache_hits_total",
			Help: "Face detections served from cache",
		}),
		NotificationsSent: f.NewCounter(prometheus.CounterOpts{
			Name: "digital_society_notifications_relayed_total",
			Help: "Notifications published to the message broker",
		}),
		RelayPublishErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "digital_society_notification_relay_errors_total",
			Help: "Failed notification publish attempts",
		}),
	}
}

func (m *Metrics) IncrementSubmitted(workflow, requestType string) {
	if m == nil {
		return
	}
	m.RequestsSubmitted.WithLabelValues(workflow, requestType).Inc()
}

func (m *Metrics) IncrementResolved(workflow, requestType, outcome string) {
	if m == nil {
		return
	}
	m.RequestsResolved.WithLabelValues(workflow, requestType, outcome).Inc()
}

func (m *Metrics) IncrementConsistencyFault(workflow string) {
	if m == nil {
		return
	}
	m.ConsistencyFaults.WithLabelValues(workflow).Inc()
}

func (m *Metrics) IncrementPhotoVerdict(check string) {
	if m == nil {
		return
	}
	m.PhotoVerdicts.WithLabelValues(check).Inc()
}

func (m *Metrics) ObserveDetectorLatency(d time.Duration) {
	if m == nil {
		return
	}
	m.DetectorLatency.Observe(d.Seconds())
}

func (m *Metrics) IncrementDetectorCacheHit() {
	if m == nil {
		return
	}
	m.DetectorCacheHits.Inc()
}

func (m *Metrics) AddNotificationsRelayed(n int) {
	if m == nil {
		return
	}
	m.NotificationsSent.Add(float64(n))
}

func (m *Metrics) IncrementRelayError() {
	if m == nil {
		return
	}
	m.RelayPublishErrors.Inc()
}
