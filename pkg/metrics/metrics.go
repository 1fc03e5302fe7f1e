package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	// Доменные метрики расписания
	AppointmentsCreated *prometheus.CounterVec
	StatusTransitions   *prometheus.CounterVec
	BayConflicts        prometheus.Counter
}

// New создает и регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		AppointmentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Number of created appointments",
			ConstLabels: constLabels,
		}, []string{"source", "model"}),

		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_status_transitions_total",
			Help:        "Number of appointment status transition attempts",
			ConstLabels: constLabels,
		}, []string{"from", "to", "result"}),

		BayConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bay_conflicts_total",
			Help:        "Number of rejected attempts to occupy a busy bay",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.AppointmentsCreated,
		m.StatusTransitions,
		m.BayConflicts,
	)

	return m
}

// RecordAppointmentCreated учитывает созданную запись
func (m *Metrics) RecordAppointmentCreated(source, model string) {
	if m == nil {
		return
	}
	m.AppointmentsCreated.WithLabelValues(source, model).Inc()
}

// RecordTransition учитывает попытку смены статуса (result: ok, invalid, conflict, error)
func (m *Metrics) RecordTransition(from, to, result string) {
	if m == nil {
		return
	}
	m.StatusTransitions.WithLabelValues(from, to, result).Inc()
}

// RecordBayConflict учитывает отказ из-за занятого бокса
// Студия в метку не попадает: число студий не ограничено
func (m *Metrics) RecordBayConflict() {
	if m == nil {
		return
	}
	m.BayConflicts.Inc()
}
