package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks the application form lifecycle.
type Metrics struct {
	FormsCreated      prometheus.Counter
	FormsSubmitted    prometheus.Counter
	SubmissionsDenied *prometheus.CounterVec
	EventPublishFails prometheus.Counter
}

func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FormsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "apply_application_forms_created_total",
			Help: "Total number of application forms created",
		}),
		FormsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "apply_application_forms_submitted_total",
			Help: "Total number of application forms submitted",
		}),
		SubmissionsDenied: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "apply_application_form_rejections_total",
			Help: "Rejected create, update or submit attempts by reason",
		}, []string{"reason"}),
		EventPublishFails: factory.NewCounter(prometheus.CounterOpts{
			Name: "apply_application_form_event_publish_failures_total",
			Help: "Lifecycle events that could not be published",
		}),
	}
}

func (m *Metrics) IncrementCreated() {
	m.FormsCreated.Inc()
}

func (m *Metrics) IncrementSubmitted() {
	m.FormsSubmitted.Inc()
}

// IncrementRejected counts a rejected request under its error kind.
func (m *Metrics) IncrementRejected(reason string) {
	m.SubmissionsDenied.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncrementPublishFailure() {
	m.EventPublishFails.Inc()
}
