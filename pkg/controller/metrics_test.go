package controller_test

import (
	"context"
	"customers/pkg/controller"
	"customers/pkg/metrics"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestWithMetrics_LabelsRoutePattern(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	m, err := metrics.NewHTTPServer(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test"))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(controller.WithMetrics(m))
	r.Get("/customers/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/customers/42", nil))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var found bool
	for _, metric := range rm.ScopeMetrics[0].Metrics {
		sum, ok := metric.Data.(metricdata.Sum[int64])
		if !ok {
			continue
		}
		found = true
		require.Len(t, sum.DataPoints, 1)
		route, _ := sum.DataPoints[0].Attributes.Value(attribute.Key("http.route"))
		status, _ := sum.DataPoints[0].Attributes.Value(attribute.Key("http.status_code"))
		require.Equal(t, "/customers/{id}", route.AsString())
		require.Equal(t, "404", status.AsString())
	}
	require.True(t, found)
}

func TestWithMetrics_CountsPanicsAsInternalErrors(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	m, err := metrics.NewHTTPServer(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test"))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(controller.WithRecover, controller.WithMetrics(m))
	r.Post("/customers/{id}/promotion", func(http.ResponseWriter, *http.Request) {
		panic("customer is already gold")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/customers/7/promotion", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var found bool
	for _, metric := range rm.ScopeMetrics[0].Metrics {
		sum, ok := metric.Data.(metricdata.Sum[int64])
		if !ok {
			continue
		}
		found = true
		require.Len(t, sum.DataPoints, 1)
		require.Equal(t, int64(1), sum.DataPoints[0].Value)
		route, _ := sum.DataPoints[0].Attributes.Value(attribute.Key("http.route"))
		status, _ := sum.DataPoints[0].Attributes.Value(attribute.Key("http.status_code"))
		require.Equal(t, "/customers/{id}/promotion", route.AsString())
		require.Equal(t, "500", status.AsString())
	}
	require.True(t, found)
}
