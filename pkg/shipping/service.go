package shipping

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Service orchestrates validate -> map -> invoke -> parse for outbound
// shipments. It holds no per-call state; every call is a single
// stateless request/response exchange.
type Service struct {
	gateway FulfillmentGateway
	logger  *otelzap.Logger
	tracer  trace.Tracer
	rand    io.Reader
}

// NewService creates a shipping service. A nil logger is replaced with
// a no-op logger, and a nil tracer disables span creation.
func NewService(gateway FulfillmentGateway, logger *otelzap.Logger, tracer trace.Tracer) *Service {
	if logger == nil {
		logger = otelzap.New(zap.NewNop())
	}
	return &Service{
		gateway: gateway,
		logger:  logger,
		tracer:  tracer,
		rand:    rand.Reader,
	}
}

var _ ShippingService = (*Service)(nil)

// Ship validates the shipment input, submits it to the fulfillment
// gateway and returns the carrier tracking number. Any downstream
// failure is logged once and wrapped in a ShippingError.
func (s *Service) Ship(ctx context.Context, orderID string, items []Item, address Address) (string, error) {
	if s.tracer != nil {
		var span trace.Span
		ctx, span = s.tracer.Start(ctx, "shipping.Ship")
		defer span.End()
	}

	s.logger.Info("Starting FBA shipment process",
		zap.String("order_id", orderID),
		zap.Int("items_count", len(items)),
	)

	trackingNumber, err := s.ship(ctx, orderID, items, address)
	if err != nil {
		s.logger.Error("FBA shipment failed",
			zap.String("order_id", orderID),
			zap.String("error", err.Error()),
		)
		return "", &ShippingError{OrderID: orderID, Cause: err}
	}

	s.logger.Info("FBA shipment created successfully",
		zap.String("order_id", orderID),
		zap.String("tracking_number", trackingNumber),
	)
	return trackingNumber, nil
}

func (s *Service) ship(ctx context.Context, orderID string, items []Item, address Address) (string, error) {
	req, err := NewShipmentRequest(orderID, items, address)
	if err != nil {
		return "", err
	}

	resp, err := s.gateway.CreateFulfillmentOrder(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.TrackingNumber, nil
}

// ShipOrder ships a stored order to its buyer. The order's data is
// loaded lazily, items are derived from its product list and the
// address from the buyer's free-text address blob. Failures surface as
// ShippingError like the primitive entry point.
func (s *Service) ShipOrder(ctx context.Context, order *Order, buyer *Buyer) (string, error) {
	if s.tracer != nil {
		var span trace.Span
		ctx, span = s.tracer.Start(ctx, "shipping.ShipOrder")
		defer span.End()
	}

	orderID := strconv.Itoa(order.ID())

	s.logger.Info("Starting FBA shipment process",
		zap.String("order_id", orderID),
	)

	trackingNumber, err := s.shipOrder(order, buyer, orderID)
	if err != nil {
		s.logger.Error("FBA shipment failed",
			zap.String("order_id", orderID),
			zap.String("error", err.Error()),
		)
		return "", &ShippingError{OrderID: orderID, Cause: err}
	}

	s.logger.Info("FBA shipment created successfully",
		zap.String("order_id", orderID),
		zap.String("tracking_number", trackingNumber),
	)
	return trackingNumber, nil
}

func (s *Service) shipOrder(order *Order, buyer *Buyer, orderID string) (string, error) {
	data, err := order.Data()
	if err != nil {
		return "", fmt.Errorf("order data is not available: %w", err)
	}
	if buyer == nil || buyer.Name == "" {
		return "", errors.New("buyer name is missing")
	}

	items := make([]Item, 0, len(data.Products))
	for _, product := range data.Products {
		items = append(items, Item{SKU: product.SKU, Quantity: product.Quantity()})
	}
	if len(items) == 0 {
		return "", errors.New("order has no items to ship")
	}

	address := ParseAddressLines(buyer.Address)
	address.Name = buyer.Name
	address.CountryCode = buyer.CountryCode

	s.logger.Debug("Derived shipment from order",
		zap.String("order_id", orderID),
		zap.Int("items_count", len(items)),
		zap.String("city", address.City),
		zap.String("state", address.State),
	)

	return s.orderTrackingNumber(orderID)
}

// orderTrackingNumber generates the order-derived tracking format:
// AMZ-<first five chars of the order id>-<six uppercase hex chars>.
func (s *Service) orderTrackingNumber(orderID string) (string, error) {
	prefix := orderID
	if len(prefix) > 5 {
		prefix = prefix[:5]
	}

	buf := make([]byte, 3)
	if _, err := io.ReadFull(s.rand, buf); err != nil {
		return "", fmt.Errorf("generating tracking number: %w", err)
	}

	return fmt.Sprintf("AMZ-%s-%s", prefix, strings.ToUpper(hex.EncodeToString(buf))), nil
}
