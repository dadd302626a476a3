package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	storeCommitsTotal   *prometheus.CounterVec
	storeCommitDuration *prometheus.HistogramVec
	slotsGenerated      *prometheus.HistogramVec
	sessionsTransitions *prometheus.CounterVec
}

// New создает и регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре (для тестов)
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
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		storeCommitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "store_commits_total",
			Help:        "Total number of key-value store commits",
			ConstLabels: constLabels,
		}, []string{"key", "result"}),
		storeCommitDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "store_commit_duration_seconds",
			Help:        "Key-value store commit duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"key"}),
		slotsGenerated: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "availability_slots_generated",
			Help:        "Number of free slots returned by the availability engine",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 2, 4, 6, 8, 10, 15, 20},
		}, []string{"professional"}),
		sessionsTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "sessions_transitions_total",
			Help:        "Session lifecycle transitions",
			ConstLabels: constLabels,
		}, []string{"transition"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.storeCommitsTotal,
		m.storeCommitDuration,
		m.slotsGenerated,
		m.sessionsTransitions,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveStoreCommit фиксирует запись ключа в хранилище
func (m *Metrics) ObserveStoreCommit(key string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.storeCommitsTotal.WithLabelValues(key, result).Inc()
	m.storeCommitDuration.WithLabelValues(key).Observe(duration.Seconds())
}

// ObserveSlotsGenerated фиксирует количество сгенерированных слотов
func (m *Metrics) ObserveSlotsGenerated(professional string, count int) {
	if m == nil {
		return
	}
	m.slotsGenerated.WithLabelValues(professional).Observe(float64(count))
}

// IncSessionTransition увеличивает счётчик переходов статуса сессии
func (m *Metrics) IncSessionTransition(transition string) {
	if m == nil {
		return
	}
	m.sessionsTransitions.WithLabelValues(transition).Inc()
}
