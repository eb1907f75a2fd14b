package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	ShipmentsTotal   *prometheus.CounterVec
	ShipmentDuration *prometheus.HistogramVec
	GatewayErrors    *prometheus.CounterVec
}

// NewMetrics creates and registers Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		ShipmentsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fulfillment_shipments_total",
				Help: "Total number of shipment requests by entry point and status",
			},
			[]string{"entry", "status"},
		),
		ShipmentDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fulfillment_shipment_duration_seconds",
				Help:    "Shipment request duration in seconds by entry point",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"entry"},
		),
		GatewayErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fulfillment_gateway_errors_total",
				Help: "Total gateway API errors by gateway and error type",
			},
			[]string{"gateway", "error_type"},
		),
	}
}

// RecordShipment records a shipment request metric.
func (m *Metrics) RecordShipment(entry, status string, duration float64) {
	m.ShipmentsTotal.WithLabelValues(entry, status).Inc()
	m.ShipmentDuration.WithLabelValues(entry).Observe(duration)
}

// RecordGatewayError records a gateway error metric.
func (m *Metrics) RecordGatewayError(gateway, errorType string) {
	m.GatewayErrors.WithLabelValues(gateway, errorType).Inc()
}
