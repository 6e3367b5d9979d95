package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   prometheus.Gauge
	DBInUseConnections  prometheus.Gauge
	DBIdleConnections   prometheus.Gauge
	DBWaitCount         prometheus.Gauge

	BookingsSubmitted     prometheus.Counter
	BookingSubmitFailures prometheus.Counter
	FunnelStepsTracked    *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном registry
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),

		BookingsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_submitted_total",
			Help:        "Bookings persisted from the public form",
			ConstLabels: labels,
		}),
		BookingSubmitFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_submit_failures_total",
			Help:        "Failed booking submissions",
			ConstLabels: labels,
		}),
		FunnelStepsTracked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_funnel_steps_total",
			Help:        "Funnel steps recorded by the booking form",
			ConstLabels: labels,
		}, []string{"step"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.BookingsSubmitted,
		m.BookingSubmitFailures,
		m.FunnelStepsTracked,
	)

	return m
}

// Handler HTTP-обработчик для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry нужен тестам для проверки значений
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Методы ниже безопасны для nil-получателя: при выключенных метриках
// сервисы получают nil и ничего не пишут

// BookingSubmitted учитывает успешную отправку брони
func (m *Metrics) BookingSubmitted() {
	if m == nil {
		return
	}
	m.BookingsSubmitted.Inc()
}

// BookingSubmitFailed учитывает неуспешную отправку брони
func (m *Metrics) BookingSubmitFailed() {
	if m == nil {
		return
	}
	m.BookingSubmitFailures.Inc()
}

// FunnelStep учитывает записанный шаг воронки
func (m *Metrics) FunnelStep(step int) {
	if m == nil {
		return
	}
	m.FunnelStepsTracked.WithLabelValues(strconv.Itoa(step)).Inc()
}
