package obs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service collectors. A nil *Metrics is valid and records
// nothing, so the use case can run without instrumentation.
type Metrics struct {
	gatherer prometheus.Gatherer

	auctionsCreated prometheus.Counter
	bids            *prometheus.CounterVec
	settlements     *prometheus.CounterVec
	platformFees    prometheus.Counter

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		auctionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "auction_created_total",
			Help: "Auctions opened.",
		}),
		bids: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auction_bids_total",
			Help: "Bids submitted, by outcome.",
		}, []string{"result"}),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auction_settlements_total",
			Help: "Auctions settled, by whether a winner existed.",
		}, []string{"winner"}),
		platformFees: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "auction_platform_fees_total",
			Help: "Platform fees accrued, in currency units.",
		}),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(
		m.auctionsCreated, m.bids, m.settlements, m.platformFees,
		m.httpInFlight, m.httpRequestsTotal, m.httpRequestDuration,
	)
	return m
}

func (m *Metrics) AuctionCreated() {
	if m == nil {
		return
	}
	m.auctionsCreated.Inc()
}

// BidResult counts a bid under result, "ok" for accepted bids and the error
// kind otherwise.
func (m *Metrics) BidResult(result string) {
	if m == nil {
		return
	}
	m.bids.WithLabelValues(result).Inc()
}

func (m *Metrics) Settled(hasWinner bool, fee uint64) {
	if m == nil {
		return
	}
	m.settlements.WithLabelValues(strconv.FormatBool(hasWinner)).Inc()
	m.platformFees.Add(float64(fee))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Instrument records RPS, latency and in-flight requests. route is called
// after the request was served so routers can report the matched pattern
// instead of the raw path.
func (m *Metrics) Instrument(route func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.httpInFlight.Inc()
			defer m.httpInFlight.Dec()
			start := time.Now()

			sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
			next.ServeHTTP(sw, r)

			labels := []string{r.Method, route(r), strconv.Itoa(sw.code)}
			m.httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			m.httpRequestsTotal.WithLabelValues(labels...).Inc()
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
