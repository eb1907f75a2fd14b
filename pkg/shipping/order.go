package shipping

import (
	"errors"
	"strconv"
	"strings"
)

// Product is a single product line on a seller order. Amount is the
// quantity-like field exactly as it appears in the order data; it is
// not guaranteed to be present or numeric.
type Product struct {
	SKU    string `json:"sku"`
	Amount any    `json:"amount"`
}

// Quantity returns the product's shippable quantity. Amounts that are
// absent, non-numeric, or below one all default to 1, which is the
// historical behavior order data relies on.
func (p Product) Quantity() int {
	switch v := p.Amount.(type) {
	case int:
		if v >= 1 {
			return v
		}
	case float64:
		if v >= 1 {
			return int(v)
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 1 {
			return n
		}
	}
	return 1
}

// OrderData is the loaded content of a seller order.
type OrderData struct {
	ID       int       `json:"id"`
	Products []Product `json:"products"`
}

// OrderSource loads order data by id.
type OrderSource interface {
	LoadOrder(id int) (*OrderData, error)
}

// Order is a seller order whose data is loaded lazily from an
// OrderSource on first access.
type Order struct {
	id     int
	source OrderSource
	data   *OrderData
}

// NewOrder creates an order backed by the given source. No data is
// loaded until Data is called.
func NewOrder(id int, source OrderSource) *Order {
	return &Order{id: id, source: source}
}

// ID returns the order identifier.
func (o *Order) ID() int {
	return o.id
}

// Data returns the order data, loading it from the source on first
// access and caching it for subsequent calls.
func (o *Order) Data() (*OrderData, error) {
	if o.data != nil {
		return o.data, nil
	}
	if o.source == nil {
		return nil, errors.New("order has no data source")
	}
	data, err := o.source.LoadOrder(o.id)
	if err != nil {
		return nil, err
	}
	o.data = data
	return o.data, nil
}

// Buyer is the recipient of an order-derived shipment. Address is a
// free-text blob; structured fields are derived from it with
// ParseAddressLines.
type Buyer struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	CountryCode string `json:"country_code"`
}
