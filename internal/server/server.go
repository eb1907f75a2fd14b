// Package server exposes the shipping service over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sellerdesk/fulfillment/internal/telemetry"
	"github.com/sellerdesk/fulfillment/pkg/shipping"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Server is the HTTP server for the fulfillment service.
type Server struct {
	port    int
	service shipping.ShippingService
	logger  *otelzap.Logger
	metrics *telemetry.Metrics
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a new server instance.
func New(cfg Config, service shipping.ShippingService, logger *otelzap.Logger) *Server {
	return &Server{
		port:    cfg.Port,
		service: service,
		logger:  logger,
		metrics: telemetry.NewMetrics(),
	}
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/v1/shipments", s.handleCreateShipment)

	return mux
}

// Run starts the HTTP server and blocks until the context is cancelled
// or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Starting server", zap.Int("port", s.port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Request/response types for the shipments endpoint.
type addressRequest struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

type shipmentRequest struct {
	OrderID string          `json:"order_id"`
	Items   []shipping.Item `json:"items"`
	Address addressRequest  `json:"address"`
}

type shipmentResponse struct {
	TrackingNumber string `json:"tracking_number"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCreateShipment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(errorResponse{Error: "Method not allowed, use POST"})
		return
	}

	var req shipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errorResponse{Error: "Invalid JSON: " + err.Error()})
		return
	}

	start := time.Now()
	trackingNumber, err := s.service.Ship(r.Context(), req.OrderID, req.Items, addressToModel(req.Address))
	if err != nil {
		s.metrics.RecordShipment("primitive", "error", time.Since(start).Seconds())
		w.WriteHeader(statusForError(s.metrics, err))
		json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
		return
	}

	s.metrics.RecordShipment("primitive", "success", time.Since(start).Seconds())
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(shipmentResponse{TrackingNumber: trackingNumber})
}

// statusForError maps the error taxonomy to HTTP statuses: validation
// failures are the caller's fault, gateway failures are upstream.
func statusForError(metrics *telemetry.Metrics, err error) int {
	var validationErr *shipping.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var apiErr *shipping.APIError
	if errors.As(err, &apiErr) {
		metrics.RecordGatewayError("amazon-fba", fmt.Sprintf("http_%d", apiErr.StatusCode))
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

func addressToModel(addr addressRequest) shipping.Address {
	return shipping.Address{
		Name:        addr.Name,
		Line1:       addr.Line1,
		Line2:       addr.Line2,
		City:        addr.City,
		State:       addr.State,
		PostalCode:  addr.PostalCode,
		CountryCode: addr.Country,
		Phone:       addr.Phone,
	}
}
