package http

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wareed_http_requests_total",
		Help: "HTTP requests by method and status.",
	}, []string{"method", "status"})

	bookingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wareed_bookings_total",
		Help: "Booking attempts by outcome.",
	}, []string{"outcome"})
)

func observeBooking(outcome string) {
	bookingsTotal.WithLabelValues(outcome).Inc()
}

// Metrics counts requests by method and response status.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		requestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
	})
}

// MetricsHandler exposes the Prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
