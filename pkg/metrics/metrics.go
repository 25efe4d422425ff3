package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus метрик сервиса.
// Все методы безопасны для nil-получателя, что позволяет отключать метрики конфигом
type Metrics struct {
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	calendarCallDuration *prometheus.HistogramVec
	calendarFailOpen     *prometheus.CounterVec
	availabilityChecks   *prometheus.CounterVec
	bookingsTotal        *prometheus.CounterVec
	realtimeSessions     prometheus.Gauge
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		calendarCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "calendar_call_duration_seconds",
			Help:        "Latency of calendar store calls",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"op", "outcome"}),
		calendarFailOpen: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_read_degraded_total",
			Help:        "Court availability reads resolved by the read failure policy",
			ConstLabels: constLabels,
		}, []string{"facility_id", "policy"}),
		availabilityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_checks_total",
			Help:        "check_availability calls by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_total",
			Help:        "create_booking calls by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		realtimeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "realtime_sessions_active",
			Help:        "Open realtime WebSocket sessions",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.calendarCallDuration,
		m.calendarFailOpen,
		m.availabilityChecks,
		m.bookingsTotal,
		m.realtimeSessions,
	)

	return m
}

// ObserveHTTPRequest учитывает завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveCalendarCall учитывает обращение к хранилищу календаря
func (m *Metrics) ObserveCalendarCall(op, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.calendarCallDuration.WithLabelValues(op, outcome).Observe(d.Seconds())
}

// IncReadDegraded учитывает чтение, решенное политикой отказа (fail-open / fail-closed)
func (m *Metrics) IncReadDegraded(facilityID, policy string) {
	if m == nil {
		return
	}
	m.calendarFailOpen.WithLabelValues(facilityID, policy).Inc()
}

// IncAvailabilityCheck учитывает результат check_availability
func (m *Metrics) IncAvailabilityCheck(outcome string) {
	if m == nil {
		return
	}
	m.availabilityChecks.WithLabelValues(outcome).Inc()
}

// IncBooking учитывает результат create_booking
func (m *Metrics) IncBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

// RealtimeSessionOpened увеличивает число активных realtime сессий
func (m *Metrics) RealtimeSessionOpened() {
	if m == nil {
		return
	}
	m.realtimeSessions.Inc()
}

// RealtimeSessionClosed уменьшает число активных realtime сессий
func (m *Metrics) RealtimeSessionClosed() {
	if m == nil {
		return
	}
	m.realtimeSessions.Dec()
}
