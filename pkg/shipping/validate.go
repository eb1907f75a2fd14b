package shipping

import (
	"fmt"
)

// requiredAddressFields lists the required address fields in the order
// they are checked. The labels are the wire names callers see in error
// messages, not the Go field names.
var requiredAddressFields = []string{"name", "line1", "city", "state", "postal_code", "country"}

// Validate enforces the required-field and shape invariants on shipment
// input. It short-circuits at the first violation, checking order id,
// then items, then each address field in a fixed order.
func Validate(orderID string, items []Item, address Address) error {
	if orderID == "" {
		return &ValidationError{Message: "Order ID cannot be empty"}
	}

	if len(items) == 0 {
		return &ValidationError{Message: "Items array cannot be empty"}
	}

	for _, item := range items {
		if item.SKU == "" || item.Quantity <= 0 {
			return &ValidationError{Message: `Each item must have "sku" and "quantity"`}
		}
	}

	for _, field := range requiredAddressFields {
		if addressFieldValue(address, field) == "" {
			return &ValidationError{Message: fmt.Sprintf("Shipping address field '%s' is required", field)}
		}
	}

	return nil
}

func addressFieldValue(address Address, field string) string {
	switch field {
	case "name":
		return address.Name
	case "line1":
		return address.Line1
	case "city":
		return address.City
	case "state":
		return address.State
	case "postal_code":
		return address.PostalCode
	case "country":
		return address.CountryCode
	}
	return ""
}
