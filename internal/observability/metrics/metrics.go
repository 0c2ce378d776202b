package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	OutcomeAccepted     = "accepted"
	OutcomeInvalid      = "invalid"
	OutcomeFileRejected = "file_rejected"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
)

// SiteMetrics exposes counters for the booking, login and calendar screens.
type SiteMetrics struct {
	bookingTotal  *prometheus.CounterVec
	loginTotal    *prometheus.CounterVec
	calendarTotal prometheus.Counter
}

func NewSiteMetrics(reg prometheus.Registerer) *SiteMetrics {
	m := &SiteMetrics{
		bookingTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stay_booking",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Booking form submissions by outcome",
		}, []string{"outcome"}),
		loginTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stay_booking",
			Subsystem: "login",
			Name:      "attempts_total",
			Help:      "Login attempts by outcome",
		}, []string{"outcome"}),
		calendarTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "stay_booking",
			Subsystem: "calendar",
			Name:      "day_selections_total",
			Help:      "Days picked on the calendar",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingTotal, m.loginTotal, m.calendarTotal)
	return m
}

func (m *SiteMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingTotal.WithLabelValues(outcome).Inc()
}

func (m *SiteMetrics) ObserveLogin(outcome string) {
	if m == nil {
		return
	}
	m.loginTotal.WithLabelValues(outcome).Inc()
}

func (m *SiteMetrics) ObserveDaySelected() {
	if m == nil {
		return
	}
	m.calendarTotal.Inc()
}
