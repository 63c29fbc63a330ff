package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AppointmentsBooked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carehub_appointments_booked_total",
		Help: "Appointments created through the booking flow.",
	})

	SlotConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carehub_slot_conflicts_total",
		Help: "Booking attempts rejected because the slot key already existed.",
	})

	Discharges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carehub_discharges_total",
		Help: "Admissions discharged with a billing record created.",
	})

	BilledAmount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "carehub_billed_amount",
		Help:    "Total amount per generated billing record.",
		Buckets: prometheus.ExponentialBuckets(500, 2, 10),
	})
)

// Register mounts the scrape endpoint on the shared engine.
func Register(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
