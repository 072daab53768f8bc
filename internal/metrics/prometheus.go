package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EvaluationsTotal counts evaluations by transport and resulting verdict
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pwstrength_evaluations_total",
			Help: "Total number of password strength evaluations",
		},
		[]string{"transport", "verdict"},
	)

	// DurationSeconds measures how long an evaluation took
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pwstrength_evaluation_duration_seconds",
			Help:    "Duration of password strength evaluation in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8), // 10µs to ~160ms
		},
		[]string{"transport"},
	)

	// ErrorsTotal counts rejected evaluation requests
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pwstrength_errors_total",
			Help: "Total number of rejected password strength requests",
		},
		[]string{"transport", "error_type"},
	)

	// PasswordLength tracks password lengths in code points
	PasswordLength = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pwstrength_password_length",
			Help:    "Length of evaluated passwords in characters",
			Buckets: prometheus.LinearBuckets(0, 4, 17), // 0 to 64
		},
		[]string{"transport"},
	)

	// StrengthValue tracks computed strength scores
	StrengthValue = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pwstrength_strength_value",
			Help:    "Computed password strength values",
			Buckets: []float64{10, 20, 40, 80, 150, 300, 500, 1000, 5000},
		},
		[]string{"transport"},
	)

	// RunOverridesTotal counts evaluations forced to Very Weak by run detection
	RunOverridesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pwstrength_run_overrides_total",
			Help: "Total number of evaluations decided by run detection",
		},
		[]string{"transport"},
	)
)

// RecordEvaluation increments the evaluation counter for a verdict label
func RecordEvaluation(transport, verdict string) {
	EvaluationsTotal.WithLabelValues(transport, verdict).Inc()
}

// RecordDuration records the duration of an evaluation
func RecordDuration(transport string, duration float64) {
	DurationSeconds.WithLabelValues(transport).Observe(duration)
}

// RecordError increments the error counter
func RecordError(transport, errorType string) {
	ErrorsTotal.WithLabelValues(transport, errorType).Inc()
}

// RecordLength records the length of an evaluated password
func RecordLength(transport string, length int) {
	PasswordLength.WithLabelValues(transport).Observe(float64(length))
}

// RecordStrength records a computed strength value
func RecordStrength(transport string, value float64) {
	StrengthValue.WithLabelValues(transport).Observe(value)
}

// RecordRunOverride increments the run override counter
func RecordRunOverride(transport string) {
	RunOverridesTotal.WithLabelValues(transport).Inc()
}
