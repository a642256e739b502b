package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PipelineRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "completion_pipeline_runs_total",
		Help: "Completion pipeline runs by outcome.",
	}, []string{"outcome"})

	SignalOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signal_outcomes_total",
		Help: "Downstream signal attempts by result.",
	}, []string{"result"})

	HotbillTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotbill_transitions_total",
		Help: "Hotbill state entries by destination state.",
	}, []string{"to"})

	LegacyCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "legacy_calls_total",
		Help: "Calls to the legacy backend by endpoint and result.",
	}, []string{"endpoint", "result"})
)

// Pipeline outcome labels.
const (
	OutcomeCompleted            = "completed"
	OutcomeValidationFailed     = "validation_failed"
	OutcomeBlocked              = "blocked"
	OutcomeConfirmationRequired = "confirmation_required"
	OutcomeSubmissionFailed     = "submission_failed"
	OutcomeError                = "error"
)
