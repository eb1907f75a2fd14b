// Package mock provides an in-memory fulfillment gateway for testing.
package mock

import (
	"context"
	"fmt"
	"time"

	"github.com/sellerdesk/fulfillment/pkg/shipping"
)

// Gateway is a mock fulfillment gateway for testing.
type Gateway struct {
	name string

	// Err, when set, is returned from every CreateFulfillmentOrder call.
	Err error
}

// New creates a new mock gateway.
func New(name string) *Gateway {
	return &Gateway{name: name}
}

// Name returns the gateway name.
func (g *Gateway) Name() string {
	return g.name
}

// CreateFulfillmentOrder returns a fabricated fulfillment response.
func (g *Gateway) CreateFulfillmentOrder(ctx context.Context, req *shipping.ShipmentRequest) (*shipping.FulfillmentResponse, error) {
	if g.Err != nil {
		return nil, g.Err
	}

	now := time.Now()
	return &shipping.FulfillmentResponse{
		FulfillmentOrderID:    fmt.Sprintf("%s-order-%d", g.name, now.UnixNano()),
		TrackingNumber:        fmt.Sprintf("1Z%06X%02d%07d", now.UnixNano()&0xFFFFFF, 10+now.UnixNano()%90, now.UnixNano()%9000000+1000000),
		Carrier:               "UPS",
		ShippingSpeed:         "Standard",
		Status:                "PLANNING",
		EstimatedDeliveryDate: now.AddDate(0, 0, 5).Format("2006-01-02"),
		CreatedAt:             now.Format(time.RFC3339),
	}, nil
}

var _ shipping.FulfillmentGateway = (*Gateway)(nil)
