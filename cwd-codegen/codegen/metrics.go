package codegen

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const promNamespace = "cwd"

type Indicators struct {
	jobsTotal          *prometheus.CounterVec
	jobDurationSeconds *prometheus.HistogramVec
}

func NewIndicators(reg prometheus.Registerer) *Indicators {
	return &Indicators{
		jobsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: promNamespace,
				Subsystem: "codegen",
				Name:      "jobs_total",
				Help:      "Total number of generator invocations by category and outcome",
			},
			[]string{"category", "status"},
		),
		jobDurationSeconds: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: promNamespace,
				Subsystem: "codegen",
				Name:      "job_duration_seconds",
				Help:      "Duration of a generator invocation in seconds",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"category"},
		),
	}
}

// ObserveJob records one finished invocation.
func (p *Indicators) ObserveJob(category Category, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	p.jobsTotal.With(prometheus.Labels{
		"category": string(category),
		"status":   status,
	}).Inc()
	p.jobDurationSeconds.With(prometheus.Labels{
		"category": string(category),
	}).Observe(duration.Seconds())
}

// WriteTextfile dumps the gathered metrics in the node exporter textfile
// format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
