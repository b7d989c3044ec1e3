package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
)

var _ fulfillment.Recorder = (*Metrics)(nil)

// Metrics colectores del motor de preparación con registro propio.
type Metrics struct {
	registry *prometheus.Registry

	WorkflowTransitions  *prometheus.CounterVec
	DispatchOutcomes     *prometheus.CounterVec
	ReservationFallbacks prometheus.Counter
	ERPQueryDuration     *prometheus.HistogramVec
	ERPQueryErrors       *prometheus.CounterVec
	CircuitBreakerState  *prometheus.GaugeVec
}

// New registra los colectores bajo el namespace dado (por defecto "fulfillment").
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = "fulfillment"
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.WorkflowTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_transitions_total",
			Help:      "Transiciones de estado del workflow de picking",
		},
		[]string{"from", "to"},
	)
	m.DispatchOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_outcomes_total",
			Help:      "Resultados de despacho con irsaliye",
		},
		[]string{"outcome"},
	)
	m.ReservationFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_fallbacks_total",
			Help:      "Consultas de reservas resueltas desde la caché por fallo del ERP",
		},
	)
	m.ERPQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "erp_query_duration_seconds",
			Help:      "Latencia de consultas contra el ERP",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 15},
		},
		[]string{"op"},
	)
	m.ERPQueryErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "erp_query_errors_total",
			Help:      "Consultas al ERP fallidas",
		},
		[]string{"op"},
	)
	m.CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Estado del circuito (0=cerrado, 1=semiabierto, 2=abierto)",
		},
		[]string{"name"},
	)

	registry.MustRegister(
		m.WorkflowTransitions,
		m.DispatchOutcomes,
		m.ReservationFallbacks,
		m.ERPQueryDuration,
		m.ERPQueryErrors,
		m.CircuitBreakerState,
	)
	return m
}

// Handler endpoint /metrics del registro propio.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// Registry expone el registro (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) WorkflowTransition(from, to string) {
	m.WorkflowTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) DispatchOutcome(outcome string) {
	m.DispatchOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ReservationFallback() {
	m.ReservationFallbacks.Inc()
}

// ObserveERPQuery registra latencia y, si falló, el error de una operación contra el ERP.
func (m *Metrics) ObserveERPQuery(op string, d time.Duration, err error) {
	m.ERPQueryDuration.WithLabelValues(op).Observe(d.Seconds())
	if err != nil {
		m.ERPQueryErrors.WithLabelValues(op).Inc()
	}
}

// SetBreakerState 0 cerrado, 1 semiabierto, 2 abierto (mismo orden que gobreaker.State).
func (m *Metrics) SetBreakerState(name string, state int) {
	m.CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
