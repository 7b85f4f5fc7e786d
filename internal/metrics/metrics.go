// Package metrics собирает Prometheus-метрики запросов к бирже и циклов сборщика.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ftxc"

// Metrics хранит метрики в собственном реестре. Методы безопасны для nil-получателя.
type Metrics struct {
	registry       *prometheus.Registry
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	records        *prometheus.CounterVec
	cycles         *prometheus.CounterVec
	marketFailures *prometheus.CounterVec
}

// New создает набор метрик в новом реестре
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Exchange API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		requestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Exchange API request latency.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		records: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_decoded_total",
			Help:      "Records decoded from exchange responses.",
		}, []string{"endpoint"}),
		cycles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collect_cycles_total",
			Help:      "Collector cycles by outcome.",
		}, []string{"outcome"}),
		marketFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "market_failures_total",
			Help:      "Per-market candle retrieval failures.",
		}, []string{"market"}),
	}
}

// ObserveRequest учитывает завершенный запрос
func (m *Metrics) ObserveRequest(endpoint, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, outcome).Inc()
	m.requestLatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// AddRecords учитывает количество декодированных записей
func (m *Metrics) AddRecords(endpoint string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.records.WithLabelValues(endpoint).Add(float64(n))
}

// ObserveCycle учитывает цикл сборщика
func (m *Metrics) ObserveCycle(outcome string) {
	if m == nil {
		return
	}
	m.cycles.WithLabelValues(outcome).Inc()
}

// MarketFailure учитывает ошибку получения свечей по инструменту
func (m *Metrics) MarketFailure(market string) {
	if m == nil {
		return
	}
	m.marketFailures.WithLabelValues(market).Inc()
}

// Registry возвращает реестр метрик
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler возвращает HTTP-обработчик для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve запускает HTTP-сервер метрик и останавливает его при отмене ctx
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
