package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	filterRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ats",
		Subsystem: "filter",
		Name:      "requests_total",
		Help:      "Total number of list/search evaluations broken down by entity and outcome.",
	}, []string{"entity", "outcome"})

	filterDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ats",
		Subsystem: "filter",
		Name:      "duration_seconds",
		Help:      "Time spent evaluating criteria over a collection.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
	}, []string{"entity"})

	filterMatched = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ats",
		Subsystem: "filter",
		Name:      "matched_ratio",
		Help:      "Fraction of the collection kept by the criteria.",
		Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
	}, []string{"entity"})

	mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ats",
		Subsystem: "store",
		Name:      "mutations_total",
		Help:      "Total number of record mutations broken down by entity and operation.",
	}, []string{"entity", "op"})

	uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ats",
		Subsystem: "files",
		Name:      "uploads_total",
		Help:      "Total number of file uploads broken down by kind and result.",
	}, []string{"kind", "result"})

	aiCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ats",
		Subsystem: "ai",
		Name:      "calls_total",
		Help:      "Total number of AI provider calls broken down by operation and result.",
	}, []string{"op", "result"})
)

// RecordFilter observes one evaluation of criteria over a collection
func RecordFilter(entity string, total, kept int, took time.Duration) {
	filterRequests.WithLabelValues(entity, "ok").Inc()
	filterDuration.WithLabelValues(entity).Observe(took.Seconds())
	if total > 0 {
		filterMatched.WithLabelValues(entity).Observe(float64(kept) / float64(total))
	}
}

// RecordFilterRejected counts criteria refused as malformed
func RecordFilterRejected(entity string) {
	filterRequests.WithLabelValues(entity, "rejected").Inc()
}

func RecordMutation(entity, op string) {
	mutations.WithLabelValues(entity, op).Inc()
}

func RecordUpload(kind string, err error) {
	uploads.WithLabelValues(kind, result(err)).Inc()
}

func RecordAICall(op string, err error) {
	aiCalls.WithLabelValues(op, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
