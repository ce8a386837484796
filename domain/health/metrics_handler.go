package health

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler serves Prometheus metrics
type MetricsHandler struct {
	handler http.Handler
}

// NewMetricsHandler serves the default registry
func NewMetricsHandler() *MetricsHandler {
	return NewMetricsHandlerFor(prometheus.DefaultGatherer)
}

// NewMetricsHandlerFor serves metrics from g
func NewMetricsHandlerFor(g prometheus.Gatherer) *MetricsHandler {
	return &MetricsHandler{handler: promhttp.HandlerFor(g, promhttp.HandlerOpts{})}
}

// Metrics handles GET /metrics
func (m *MetricsHandler) Metrics(c echo.Context) error {
	m.handler.ServeHTTP(c.Response(), c.Request())
	return nil
}
