package split

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// splitsPerformed counts committed splits.
	// Labels: shape (and, or, iff, ite, matcher, ind_pred, generic)
	splitsPerformed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "casesplit",
		Subsystem: "split",
		Name:      "performed_total",
		Help:      "Total case splits committed",
	}, []string{"shape"})

	// splitFailures counts split attempts that returned an error.
	// Labels: code (limit_exceeded, elaboration, introduction, cancelled, ...)
	splitFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "casesplit",
		Subsystem: "split",
		Name:      "failures_total",
		Help:      "Total case split attempts that failed",
	}, []string{"code"})

	splitCases = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "casesplit",
		Subsystem: "split",
		Name:      "cases",
		Help:      "Number of goals produced by a case split",
		Buckets:   []float64{2, 3, 4, 6, 8, 16},
	})
)
