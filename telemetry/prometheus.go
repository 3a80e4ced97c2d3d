package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Prometheus is a Sink backed by github.com/prometheus/client_golang. It
// registers its collectors eagerly on construction, matching the teacher
// pack's use of package-level collectors registered once at startup.
type Prometheus struct {
	unknownPageType   prometheus.Counter
	crossPageMismatch prometheus.Counter
	fsmTransitions    *prometheus.CounterVec
	missingCapability prometheus.Counter
	queueDepth        prometheus.Gauge
}

// NewPrometheus creates and registers a Prometheus-backed Sink against reg.
// Pass prometheus.DefaultRegisterer to use the global registry.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		unknownPageType: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cnav_unknown_page_type_total",
			Help: "CNAV pages dropped because their message type is not decoded.",
		}),
		crossPageMismatch: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cnav_cross_page_mismatch_total",
			Help: "HaveNewEphemeris calls that found both ephemeris halves with Toe1 != Toe2.",
		}),
		fsmTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "channel_fsm_transition_total",
			Help: "Channel FSM transitions processed, by originating state and event.",
		}, []string{"from", "event"}),
		missingCapability: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "channel_fsm_missing_capability_total",
			Help: "Entry actions that failed because a required capability was not bound.",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dispatch_queue_depth",
			Help: "Number of control messages currently buffered in the dispatch queue.",
		}),
	}
	reg.MustRegister(p.unknownPageType, p.crossPageMismatch, p.fsmTransitions, p.missingCapability, p.queueDepth)
	return p
}

func (p *Prometheus) IncUnknownPageType()   { p.unknownPageType.Inc() }
func (p *Prometheus) IncCrossPageMismatch() { p.crossPageMismatch.Inc() }
func (p *Prometheus) IncFSMTransition(from, event string) {
	p.fsmTransitions.WithLabelValues(from, event).Inc()
}
func (p *Prometheus) IncMissingCapability() { p.missingCapability.Inc() }
func (p *Prometheus) SetQueueDepth(n int)   { p.queueDepth.Set(float64(n)) }
