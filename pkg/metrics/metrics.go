// Package metrics holds the OpenTelemetry instruments shared by the HTTP layer.
package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HTTPServer records one counter increment and one duration sample per request.
type HTTPServer struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewHTTPServer creates the http_server_requests counter and the
// http_server_duration histogram on meter.
func NewHTTPServer(meter metric.Meter) (*HTTPServer, error) {
	requests, err := meter.Int64Counter("http_server_requests",
		metric.WithDescription("Number of handled HTTP requests"))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}

	duration, err := meter.Float64Histogram("http_server_duration",
		metric.WithDescription("Duration of handled HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &HTTPServer{requests: requests, duration: duration}, nil
}

// Record adds a sample for a request to route that finished with status.
func (m *HTTPServer) Record(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.String("http.status_code", strconv.Itoa(status)),
	)
	m.requests.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
}
