package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementSubmitted("renewal", "Passport")
	m.IncrementSubmitted("renewal", "Passport")
	m.IncrementResolved("registration", "Vehicle Registration", "rejected")
	m.IncrementPhotoVerdict("face_size")
	m.AddNotificationsRelayed(3)
	m.ObserveDetectorLatency(20 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsSubmitted.WithLabelValues("renewal", "Passport")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsResolved.WithLabelValues("registration", "Vehicle Registration", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PhotoVerdicts.WithLabelValues("face_size")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.NotificationsSent))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementSubmitted("renewal", "Passport")
		m.IncrementConsistencyFault("registration")
		m.ObserveDetectorLatency(time.Second)
		m.IncrementRelayError()
	})
}
