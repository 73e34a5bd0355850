package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success Outcome = "success"
	Error   Outcome = "error"
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                         sync.Once
	metricsRouter                *chi.Mux
	httpRequestDurationHistogram *prometheus.HistogramVec
	agentPhaseDurationHistogram  *prometheus.HistogramVec
	relayFeeCounter              *prometheus.CounterVec
	stakingTickCounter           *prometheus.CounterVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	go func() {
		metricsAddr := fmt.Sprintf(":%d", metricsPort)
		err := http.ListenAndServe(metricsAddr, metricsRouter)
		if err != nil {
			log.Fatal().Err(err).Msgf("error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"endpoint", "status"},
	)

	agentPhaseDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agent_phase_duration_seconds",
			Help:    "Histogram of user agent phase call durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"phase", "outcome"},
	)

	relayFeeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_fee_usd_total",
			Help: "Accumulated relay fees charged by adapters, in micro USD.",
		},
		[]string{"adapter_type"},
	)

	stakingTickCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "staking_tick_total",
			Help: "Count of staking scheduler ticks per pool, tick type and outcome.",
		},
		[]string{"tick", "asset", "outcome"},
	)

	prometheus.MustRegister(
		httpRequestDurationHistogram,
		agentPhaseDurationHistogram,
		relayFeeCounter,
		stakingTickCounter,
	)
}

// StartHttpRequestDurationTimer starts a timer to measure http request handling duration.
func StartHttpRequestDurationTimer(endpoint string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		httpRequestDurationHistogram.WithLabelValues(endpoint, fmt.Sprintf("%d", statusCode)).Observe(duration)
	}
}

// StartAgentPhaseTimer starts a timer to measure one user agent phase call.
func StartAgentPhaseTimer(phase string) func(outcome Outcome) {
	startTime := time.Now()
	return func(outcome Outcome) {
		duration := time.Since(startTime).Seconds()
		agentPhaseDurationHistogram.WithLabelValues(phase, outcome.String()).Observe(duration)
	}
}

// RecordRelayFee accumulates the fee an adapter charged for one transfer.
func RecordRelayFee(adapterType string, feeUsd uint64) {
	relayFeeCounter.WithLabelValues(adapterType).Add(float64(feeUsd))
}

// RecordStakingTick counts one scheduler tick outcome.
func RecordStakingTick(tick, asset string, outcome Outcome) {
	stakingTickCounter.WithLabelValues(tick, asset, outcome.String()).Inc()
}
