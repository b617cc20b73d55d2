package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Результаты обработки push-событий
const (
	PushApplied   = "applied"
	PushUnmatched = "unmatched"
	PushMalformed = "malformed"
)

// Metrics набор метрик сервиса
// Каждый экземпляр использует собственный registry, поэтому в тестах можно создавать несколько
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	pushEvents     *prometheus.CounterVec
	pushReconnects prometheus.Counter
	activeViews    *prometheus.GaugeVec

	statusCommands *prometheus.CounterVec
	backendCalls   *prometheus.HistogramVec
	dbQueries      *prometheus.HistogramVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Количество HTTP запросов",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Длительность обработки HTTP запросов",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		pushEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "push_events_total",
			Help:        "Push-события статусов по результату применения",
			ConstLabels: constLabels,
		}, []string{"result"}),
		pushReconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "push_reconnects_total",
			Help:        "Количество переподключений к push-каналу",
			ConstLabels: constLabels,
		}),
		activeViews: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "live_views_active",
			Help:        "Количество активных live-представлений",
			ConstLabels: constLabels,
		}, []string{"role"}),
		statusCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "status_commands_total",
			Help:        "Команды смены статуса по типу и исходу",
			ConstLabels: constLabels,
		}, []string{"kind", "outcome"}),
		backendCalls: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "backend_call_duration_seconds",
			Help:        "Длительность запросов к бэкенду гаража",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation", "status"}),
		dbQueries: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Длительность запросов к журналу команд",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation", "result"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.pushEvents,
		m.pushReconnects,
		m.activeViews,
		m.statusCommands,
		m.backendCalls,
		m.dbQueries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler HTTP обработчик для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает собственный registry экземпляра
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) PushEvent(result string) {
	if m == nil {
		return
	}
	m.pushEvents.WithLabelValues(result).Inc()
}

func (m *Metrics) PushReconnect() {
	if m == nil {
		return
	}
	m.pushReconnects.Inc()
}

func (m *Metrics) ViewOpened(role string) {
	if m == nil {
		return
	}
	m.activeViews.WithLabelValues(role).Inc()
}

func (m *Metrics) ViewClosed(role string) {
	if m == nil {
		return
	}
	m.activeViews.WithLabelValues(role).Dec()
}

func (m *Metrics) StatusCommand(kind, outcome string) {
	if m == nil {
		return
	}
	m.statusCommands.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) BackendCall(operation string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.backendCalls.WithLabelValues(operation, strconv.Itoa(status)).Observe(d.Seconds())
}

func (m *Metrics) DBQuery(operation string, d time.Duration, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.dbQueries.WithLabelValues(operation, result).Observe(d.Seconds())
}
