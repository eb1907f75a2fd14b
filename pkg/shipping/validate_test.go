package shipping_test

import (
	"testing"

	"github.com/sellerdesk/fulfillment/pkg/shipping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() shipping.Address {
	return shipping.Address{
		Name:        "Jane Buyer",
		Line1:       "742 Evergreen Terrace",
		City:        "Springfield",
		State:       "IL",
		PostalCode:  "62704",
		CountryCode: "US",
	}
}

func validItems() []shipping.Item {
	return []shipping.Item{{SKU: "WIDGET-1", Quantity: 2}}
}

func TestValidate_Valid(t *testing.T) {
	err := shipping.Validate("ORDER-123", validItems(), validAddress())
	assert.NoError(t, err)
}

func TestValidate_EmptyOrderID(t *testing.T) {
	err := shipping.Validate("", validItems(), validAddress())
	require.Error(t, err)
	assert.Equal(t, "Order ID cannot be empty", err.Error())
}

func TestValidate_EmptyItems(t *testing.T) {
	err := shipping.Validate("ORDER-123", nil, validAddress())
	require.Error(t, err)
	assert.Equal(t, "Items array cannot be empty", err.Error())
}

func TestValidate_ItemMissingSKU(t *testing.T) {
	items := []shipping.Item{{SKU: "", Quantity: 1}}
	err := shipping.Validate("ORDER-123", items, validAddress())
	require.Error(t, err)
	assert.Equal(t, `Each item must have "sku" and "quantity"`, err.Error())
}

func TestValidate_ItemZeroQuantity(t *testing.T) {
	items := []shipping.Item{{SKU: "WIDGET-1", Quantity: 0}}
	err := shipping.Validate("ORDER-123", items, validAddress())
	require.Error(t, err)
	assert.Equal(t, `Each item must have "sku" and "quantity"`, err.Error())
}

func TestValidate_SecondItemInvalid(t *testing.T) {
	items := []shipping.Item{
		{SKU: "WIDGET-1", Quantity: 1},
		{SKU: "WIDGET-2", Quantity: -3},
	}
	err := shipping.Validate("ORDER-123", items, validAddress())
	require.Error(t, err)
	assert.Equal(t, `Each item must have "sku" and "quantity"`, err.Error())
}

func TestValidate_MissingAddressFields(t *testing.T) {
	tests := []struct {
		field string
		mod   func(*shipping.Address)
	}{
		{"name", func(a *shipping.Address) { a.Name = "" }},
		{"line1", func(a *shipping.Address) { a.Line1 = "" }},
		{"city", func(a *shipping.Address) { a.City = "" }},
		{"state", func(a *shipping.Address) { a.State = "" }},
		{"postal_code", func(a *shipping.Address) { a.PostalCode = "" }},
		{"country", func(a *shipping.Address) { a.CountryCode = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			addr := validAddress()
			tt.mod(&addr)

			err := shipping.Validate("ORDER-123", validItems(), addr)
			require.Error(t, err)
			assert.Equal(t, "Shipping address field '"+tt.field+"' is required", err.Error())
		})
	}
}

func TestValidate_ReportsFirstMissingField(t *testing.T) {
	// With several fields missing, only the first in check order is
	// reported.
	addr := shipping.Address{Name: "Jane Buyer", Line1: "742 Evergreen Terrace"}
	err := shipping.Validate("ORDER-123", validItems(), addr)
	require.Error(t, err)
	assert.Equal(t, "Shipping address field 'city' is required", err.Error())
}

func TestValidate_OptionalFieldsNotRequired(t *testing.T) {
	addr := validAddress()
	addr.Line2 = ""
	addr.Phone = ""
	assert.NoError(t, shipping.Validate("ORDER-123", validItems(), addr))
}

func TestValidate_ReturnsValidationError(t *testing.T) {
	err := shipping.Validate("", validItems(), validAddress())

	var validationErr *shipping.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestNewShipmentRequest_Valid(t *testing.T) {
	req, err := shipping.NewShipmentRequest("ORDER-123", validItems(), validAddress())
	require.NoError(t, err)
	assert.Equal(t, "ORDER-123", req.OrderID())
	assert.Equal(t, validItems(), req.Items())
	assert.Equal(t, validAddress(), req.Address())
}

func TestNewShipmentRequest_Invalid(t *testing.T) {
	req, err := shipping.NewShipmentRequest("", validItems(), validAddress())
	assert.Nil(t, req)
	assert.Error(t, err)
}

func TestNewShipmentRequest_CopiesItems(t *testing.T) {
	items := validItems()
	req, err := shipping.NewShipmentRequest("ORDER-123", items, validAddress())
	require.NoError(t, err)

	// Mutating the caller's slice must not affect the request.
	items[0].SKU = "MUTATED"
	assert.Equal(t, "WIDGET-1", req.Items()[0].SKU)

	// Nor does mutating the returned copy.
	req.Items()[0].SKU = "MUTATED"
	assert.Equal(t, "WIDGET-1", req.Items()[0].SKU)
}
