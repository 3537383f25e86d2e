package commands

import (
	"io"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/pkg/errors"

	"github.com/born-ml/probability/distributions"
)

// Metric name may contain labels in Prometheus format.

var evaluationDuration = metrics.NewHistogram(`gamma_evaluation_duration_seconds`)

func evaluationsTotal(fn string) *metrics.Counter {
	return metrics.GetOrCreateCounter(`gamma_evaluations_total{fn="` + fn + `"}`)
}

func errorsTotal(kind string) *metrics.Counter {
	return metrics.GetOrCreateCounter(`gamma_errors_total{kind="` + kind + `"}`)
}

// observeEvaluation records n evaluated points of fn started at startTime.
func observeEvaluation(fn string, n int, startTime time.Time) {
	evaluationsTotal(fn).Add(n)
	evaluationDuration.UpdateDuration(startTime)
}

// observeError counts err under its validation kind.
func observeError(err error) {
	errorsTotal(errorKind(err)).Inc()
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, distributions.ErrDomain):
		return "domain"
	case errors.Is(err, distributions.ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(err, distributions.ErrShape):
		return "shape"
	default:
		return "usage"
	}
}

func writeMetrics(w io.Writer) {
	metrics.WritePrometheus(w, false)
}
