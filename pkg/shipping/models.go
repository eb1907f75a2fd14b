package shipping

// Item is one shipment line: a seller SKU and how many units to send.
type Item struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// Address is the destination for a shipment.
type Address struct {
	Name        string
	Line1       string
	Line2       string
	City        string
	State       string
	PostalCode  string
	CountryCode string
	Phone       string
}

// ShipmentRequest is a validated, immutable shipment. It can only be
// constructed through NewShipmentRequest, so holding one implies the
// input passed validation.
type ShipmentRequest struct {
	orderID string
	items   []Item
	address Address
}

// NewShipmentRequest validates the shipment input and returns the
// request value, or the first validation failure found.
func NewShipmentRequest(orderID string, items []Item, address Address) (*ShipmentRequest, error) {
	if err := Validate(orderID, items, address); err != nil {
		return nil, err
	}
	copied := make([]Item, len(items))
	copy(copied, items)
	return &ShipmentRequest{
		orderID: orderID,
		items:   copied,
		address: address,
	}, nil
}

// OrderID returns the seller's order identifier.
func (r *ShipmentRequest) OrderID() string {
	return r.orderID
}

// Items returns a copy of the shipment lines.
func (r *ShipmentRequest) Items() []Item {
	items := make([]Item, len(r.items))
	copy(items, r.items)
	return items
}

// Address returns the destination address.
func (r *ShipmentRequest) Address() Address {
	return r.address
}

// FulfillmentResponse wraps a provider's raw response fields. The
// provider may omit any field, so every field defaults to the empty
// string; callers must not assume the response is complete.
type FulfillmentResponse struct {
	FulfillmentOrderID    string `json:"fulfillmentOrderId"`
	TrackingNumber        string `json:"trackingNumber"`
	Carrier               string `json:"carrier"`
	ShippingSpeed         string `json:"shippingSpeed"`
	Status                string `json:"status"`
	EstimatedDeliveryDate string `json:"estimatedDeliveryDate"`
	CreatedAt             string `json:"createdAt"`
}
