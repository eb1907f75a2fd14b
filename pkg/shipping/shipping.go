// Package shipping decouples a caller's order and buyer domain objects
// from a fulfillment provider's wire format.
package shipping

import (
	"context"
)

// ShippingService is the externally-facing shipping operation. The two
// methods are alternate entry points into the same operation: one takes
// primitive shipment data, the other takes domain Order/Buyer objects.
type ShippingService interface {
	// Ship validates the shipment input, submits it to the fulfillment
	// gateway and returns the carrier tracking number.
	Ship(ctx context.Context, orderID string, items []Item, address Address) (string, error)

	// ShipOrder ships a stored order to its buyer. Items are derived
	// from the order's product list and the address from the buyer's
	// free-text address blob.
	ShipOrder(ctx context.Context, order *Order, buyer *Buyer) (string, error)
}

// FulfillmentGateway creates a fulfillment order with a provider.
type FulfillmentGateway interface {
	// Name returns the gateway identifier (e.g., "amazon-fba").
	Name() string

	// CreateFulfillmentOrder submits a validated shipment request and
	// returns the provider's response.
	CreateFulfillmentOrder(ctx context.Context, req *ShipmentRequest) (*FulfillmentResponse, error)
}
