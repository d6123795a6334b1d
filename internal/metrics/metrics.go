package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotelhub",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		},
		[]string{"route", "status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotelhub",
			Name:      "bookings_created_total",
			Help:      "Bookings appended to the ledger.",
		},
	)

	bookingStatus = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotelhub",
			Name:      "booking_status_changes_total",
			Help:      "Booking status transitions by destination status.",
		},
		[]string{"status"},
	)

	snapshotWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotelhub",
			Name:      "snapshot_writes_total",
			Help:      "Full-collection snapshot writes by collection.",
		},
		[]string{"collection"},
	)

	driftSteps = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotelhub",
			Name:      "availability_drift_steps_total",
			Help:      "Simulated availability adjustments applied by the drift worker.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, bookingStatus, snapshotWrites, driftSteps)
	})
}

func IncHTTP(route, status string) {
	httpRequests.WithLabelValues(route, status).Inc()
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncBookingStatus(status string) {
	bookingStatus.WithLabelValues(status).Inc()
}

func IncSnapshotWrite(collection string) {
	snapshotWrites.WithLabelValues(collection).Inc()
}

func IncDriftStep() {
	driftSteps.Inc()
}
