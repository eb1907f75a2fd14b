package amazonfba

import (
	"context"
)

// APIClient defines the Selling Partner API operations the gateway
// needs. The abstraction allows mock implementations during testing
// and the real HTTP implementation in production.
type APIClient interface {
	// CreateFulfillmentOrder submits a fulfillment order request.
	CreateFulfillmentOrder(ctx context.Context, req *CreateFulfillmentOrderRequest) (*FulfillmentOrderResult, error)
}

// ============================================================================
// API Request/Response Types (match the fulfillment-outbound 2020-07-01 API)
// ============================================================================

// CreateFulfillmentOrderRequest is the request body for
// POST /fba/outbound/2020-07-01/fulfillmentOrders.
type CreateFulfillmentOrderRequest struct {
	SellerFulfillmentOrderID string             `json:"sellerFulfillmentOrderId"`
	DisplayableOrderID       string             `json:"displayableOrderId"`
	DisplayableOrderDate     string             `json:"displayableOrderDate"`
	DisplayableOrderComment  string             `json:"displayableOrderComment"`
	ShippingSpeedCategory    string             `json:"shippingSpeedCategory"`
	DestinationAddress       DestinationAddress `json:"destinationAddress"`
	Items                    []OrderItem        `json:"items"`
}

// DestinationAddress is the provider's address shape. Optional fields
// are pointers so that absent values serialize as JSON null rather than
// empty strings.
type DestinationAddress struct {
	Name          string  `json:"name"`
	AddressLine1  string  `json:"addressLine1"`
	AddressLine2  *string `json:"addressLine2"`
	City          string  `json:"city"`
	StateOrRegion string  `json:"stateOrRegion"`
	PostalCode    string  `json:"postalCode"`
	CountryCode   string  `json:"countryCode"`
	Phone         *string `json:"phone"`
}

// OrderItem is one fulfillment order line.
type OrderItem struct {
	SellerSKU                    string `json:"sellerSku"`
	SellerFulfillmentOrderItemID string `json:"sellerFulfillmentOrderItemId"`
	Quantity                     int    `json:"quantity"`
}

// FulfillmentOrderResult is the provider response. Every field may be
// absent; missing fields decode to the empty string.
type FulfillmentOrderResult struct {
	FulfillmentOrderID    string `json:"fulfillmentOrderId"`
	TrackingNumber        string `json:"trackingNumber"`
	Carrier               string `json:"carrier"`
	ShippingSpeed         string `json:"shippingSpeed"`
	Status                string `json:"status"`
	EstimatedDeliveryDate string `json:"estimatedDeliveryDate"`
	CreatedAt             string `json:"createdAt"`
}
