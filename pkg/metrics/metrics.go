package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллектор Prometheus метрик сервиса
type Metrics struct {
	service string

	// HTTP
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// БД
	dbQueryDuration *prometheus.HistogramVec
	dbQueriesTotal  *prometheus.CounterVec
	dbOpenConns     *prometheus.GaugeVec
	dbInUseConns    *prometheus.GaugeVec
	dbIdleConns     *prometheus.GaugeVec
	dbWaitCount     *prometheus.GaugeVec

	// Движок доступности
	availabilityRebuilds *prometheus.CounterVec
	staleResults         *prometheus.CounterVec
	skippedRecords       *prometheus.CounterVec
	reservations         *prometheus.CounterVec
}

// New создает коллектор и регистрирует метрики в reg.
// Если reg == nil, используется prometheus.DefaultRegisterer.
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		service: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),
		dbQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),
		dbOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established database connections",
		}, []string{"service"}),
		dbInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of database connections currently in use",
		}, []string{"service"}),
		dbIdleConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle database connections",
		}, []string{"service"}),
		dbWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),
		availabilityRebuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_rebuilds_total",
			Help: "Number of availability index rebuilds",
		}, []string{"service"}),
		staleResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_stale_results_total",
			Help: "Number of fetched record sets discarded as stale",
		}, []string{"service"}),
		skippedRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_skipped_records_total",
			Help: "Number of malformed records skipped during rebuild",
		}, []string{"service"}),
		reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reservations_total",
			Help: "Reservation transactions by outcome",
		}, []string{"service", "outcome"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueriesTotal,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.dbWaitCount,
		m.availabilityRebuilds,
		m.staleResults,
		m.skippedRecords,
		m.reservations,
	)

	return m
}

// ObserveHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.service, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.service, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery записывает метрики запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil && err != sql.ErrNoRows {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(m.service, operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики connection pool
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbOpenConns.WithLabelValues(m.service).Set(float64(stats.OpenConnections))
	m.dbInUseConns.WithLabelValues(m.service).Set(float64(stats.InUse))
	m.dbIdleConns.WithLabelValues(m.service).Set(float64(stats.Idle))
	m.dbWaitCount.WithLabelValues(m.service).Set(float64(stats.WaitCount))
}

// IncRebuild увеличивает счетчик перестроений индекса занятости
func (m *Metrics) IncRebuild() {
	m.availabilityRebuilds.WithLabelValues(m.service).Inc()
}

// IncStaleResult учитывает отброшенный устаревший ответ с записями
func (m *Metrics) IncStaleResult() {
	m.staleResults.WithLabelValues(m.service).Inc()
}

// AddSkippedRecords учитывает записи, пропущенные при построении индекса
func (m *Metrics) AddSkippedRecords(n int) {
	if n <= 0 {
		return
	}
	m.skippedRecords.WithLabelValues(m.service).Add(float64(n))
}

// IncCommit учитывает оптимистично примененное бронирование
func (m *Metrics) IncCommit() {
	m.reservations.WithLabelValues(m.service, "committed").Inc()
}

// IncConfirm учитывает бронирование, подтвержденное сервером
func (m *Metrics) IncConfirm() {
	m.reservations.WithLabelValues(m.service, "confirmed").Inc()
}

// IncRollback учитывает откат бронирования
func (m *Metrics) IncRollback() {
	m.reservations.WithLabelValues(m.service, "rolled_back").Inc()
}
