package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for recruitment administration.
type Metrics struct {
	OpenRecruitments    prometheus.Gauge
	RecruitmentsSaved   prometheus.Counter
	RecruitmentsDeleted prometheus.Counter
	SaveDuration        prometheus.Histogram
}

// New registers the recruitment metrics on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the recruitment metrics on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OpenRecruitments: factory.NewGauge(prometheus.GaugeOpts{
			Name: "apply_recruitments_open",
			Help: "Number of recruitments currently accepting applications",
		}),
		RecruitmentsSaved: factory.NewCounter(prometheus.CounterOpts{
			Name: "apply_recruitments_saved_total",
			Help: "Total number of recruitment create or update operations",
		}),
		RecruitmentsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "apply_recruitments_deleted_total",
			Help: "Total number of recruitments deleted",
		}),
		SaveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "apply_recruitment_save_duration_seconds",
			Help:    "Duration of recruitment save operations including item replacement",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) SetOpenRecruitments(n int) {
	m.OpenRecruitments.Set(float64(n))
}

func (m *Metrics) IncrementSaved() {
	m.RecruitmentsSaved.Inc()
}

func (m *Metrics) IncrementDeleted() {
	m.RecruitmentsDeleted.Inc()
}

// ObserveSave records the duration of a Save call started at start.
func (m *Metrics) ObserveSave(start time.Time) {
	m.SaveDuration.Observe(time.Since(start).Seconds())
}
