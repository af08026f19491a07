package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BatchesSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rconhub_batches_submitted_total",
		Help: "Total number of batch submissions, labelled by action.",
	}, []string{"action"})

	BatchesSettled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rconhub_batches_settled_total",
		Help: "Total number of settled batches, labelled by action and final state.",
	}, []string{"action", "state"})

	RecipientOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rconhub_recipient_outcomes_total",
		Help: "Per-recipient outcomes, labelled by action and outcome.",
	}, []string{"action", "outcome"})

	TransportErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rconhub_transport_errors_total",
		Help: "Invocations that failed at the transport layer, labelled by action.",
	}, []string{"action"})

	BatchSettleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rconhub_batch_settle_duration_seconds",
		Help:    "Time from submission to settle-all join, bounded by the slowest recipient.",
		Buckets: prometheus.DefBuckets,
	})
)

// Outcome label values for RecipientOutcomes
const (
	OutcomeSuccess        = "success"
	OutcomeLogicalFailure = "logical_failure"
	OutcomeTransportError = "transport_error"
)
