package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_booking",
			Name:      "bookings_created_total",
			Help:      "Count of bookings created, by room slug.",
		},
		[]string{"room"},
	)

	bookingCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotel_booking",
			Name:      "bookings_cancelled_total",
			Help:      "Count of bookings cancelled by guests.",
		},
	)

	availabilitySearches = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotel_booking",
			Name:      "availability_searches_total",
			Help:      "Count of availability searches served.",
		},
	)

	referenceRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotel_booking",
			Name:      "reference_retries_total",
			Help:      "Count of booking reference collisions that forced a retry.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingCancelled, availabilitySearches, referenceRetries)
	})
}

func IncBookingCreated(room string) {
	bookingCreated.WithLabelValues(room).Inc()
}

func IncBookingCancelled() {
	bookingCancelled.Inc()
}

func IncAvailabilitySearch() {
	availabilitySearches.Inc()
}

func IncReferenceRetry() {
	referenceRetries.Inc()
}
