// Package metrics collects Prometheus metrics for registrations, the auth
// gate and HTTP traffic.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth gate outcomes.
const (
	AuthVerified           = "verified"
	AuthMissingCredentials = "missing_credentials"
	AuthInvalidToken       = "invalid_token"
	AuthExpiredToken       = "expired_token"
	AuthLookupFailed       = "lookup_failed"
)

// Recorder is what handlers and middleware report to.
type Recorder interface {
	RecordRegistration(outcome string)
	RecordAuth(outcome string)
	RecordRequest(method string, status int, duration time.Duration)
}

// Collector is the Prometheus backed Recorder.
type Collector struct {
	registrations *prometheus.CounterVec
	authOutcomes  *prometheus.CounterVec
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers it on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clothes_registrations_total",
			Help: "Registration attempts by outcome.",
		}, []string{"outcome"}),
		authOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clothes_auth_gate_total",
			Help: "Bearer token checks on protected routes by outcome.",
		}, []string{"outcome"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clothes_http_requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clothes_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}
	reg.MustRegister(c.registrations, c.authOutcomes, c.requests, c.latency)
	return c
}

func (c *Collector) RecordRegistration(outcome string) {
	c.registrations.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordAuth(outcome string) {
	c.authOutcomes.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordRequest(method string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method).Observe(duration.Seconds())
}

// Handler exposes the gatherer in the Prometheus text format.
func Handler(g prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordRegistration(string) {}
func (Nop) RecordAuth(string) {}
func (Nop) RecordRequest(string, int, time.Duration) {}
