package main

import (
	"testing"

	"github.com/sellerdesk/fulfillment/pkg/shipping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItems(t *testing.T) {
	items, err := parseItems([]string{"WIDGET-1:2", "WIDGET-2:1"})

	require.NoError(t, err)
	assert.Equal(t, []shipping.Item{
		{SKU: "WIDGET-1", Quantity: 2},
		{SKU: "WIDGET-2", Quantity: 1},
	}, items)
}

func TestParseItems_BareSKUDefaultsToOne(t *testing.T) {
	items, err := parseItems([]string{"WIDGET-1"})

	require.NoError(t, err)
	assert.Equal(t, []shipping.Item{{SKU: "WIDGET-1", Quantity: 1}}, items)
}

func TestParseItems_InvalidQuantity(t *testing.T) {
	_, err := parseItems([]string{"WIDGET-1:lots"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity must be a number")
}

func TestParseItems_Empty(t *testing.T) {
	items, err := parseItems(nil)

	require.NoError(t, err)
	assert.Empty(t, items)
}
