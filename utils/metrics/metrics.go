package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "food_hero",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "food_hero",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	requestTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "food_hero",
			Subsystem: "requests",
			Name:      "transitions_total",
			Help:      "Food request status transitions by target status.",
		},
		[]string{"status"},
	)

	pointsAwarded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "food_hero",
			Subsystem: "gamification",
			Name:      "points_awarded_total",
			Help:      "Total points awarded to heroes.",
		},
	)

	badgesAwarded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "food_hero",
			Subsystem: "gamification",
			Name:      "badges_awarded_total",
			Help:      "Badges awarded to heroes.",
		},
		[]string{"badge"},
	)

	couponsClaimed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "food_hero",
			Subsystem: "gamification",
			Name:      "coupons_claimed_total",
			Help:      "Coupons claimed by heroes.",
		},
		[]string{"coupon"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		requestTransitions,
		pointsAwarded,
		badgesAwarded,
		couponsClaimed,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency labelled by route template.
func Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if cr := mux.CurrentRoute(r); cr != nil {
				if tpl, err := cr.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
			httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

func RecordTransition(status string) {
	requestTransitions.WithLabelValues(status).Inc()
}

func RecordPoints(points int64) {
	if points > 0 {
		pointsAwarded.Add(float64(points))
	}
}

func RecordBadge(badgeID string) {
	badgesAwarded.WithLabelValues(badgeID).Inc()
}

func RecordCoupon(couponID string) {
	couponsClaimed.WithLabelValues(couponID).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
