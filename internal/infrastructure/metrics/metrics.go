// Package metrics exposes Prometheus collectors for the booking engine and
// the HTTP surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/spacebook/spacebook/internal/domain/reservation"
	vo "github.com/spacebook/spacebook/internal/domain/reservation/valueobjects"
)

const namespace = "spacebook"

// Collectors groups every metric the service exports. Create one per
// registry; registering twice on the same registry panics.
type Collectors struct {
	// admissions counts admission decisions.
	// Labels: result (admitted, rejected), rule (empty when admitted)
	admissions *prometheus.CounterVec

	// transitions counts lifecycle changes written to the history log.
	// Labels: action
	transitions *prometheus.CounterVec

	// httpDuration measures request latency.
	// Labels: method, route, status
	httpDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)
	return &Collectors{
		admissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admission_total",
			Help:      "Reservation admission decisions by result and failing rule",
		}, []string{"result", "rule"}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reservation",
			Name:      "transitions_total",
			Help:      "Reservation lifecycle transitions by action",
		}, []string{"action"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}
}

func (c *Collectors) ObserveAdmission(rule reservation.Rule, admitted bool) {
	if admitted {
		c.admissions.WithLabelValues("admitted", "").Inc()
		return
	}
	c.admissions.WithLabelValues("rejected", string(rule)).Inc()
}

func (c *Collectors) ObserveTransition(action vo.HistoryAction) {
	c.transitions.WithLabelValues(string(action)).Inc()
}

func (c *Collectors) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	c.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
