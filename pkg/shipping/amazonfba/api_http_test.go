package amazonfba_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sellerdesk/fulfillment/pkg/shipping"
	"github.com/sellerdesk/fulfillment/pkg/shipping/amazonfba"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPAPIClient_CreateFulfillmentOrder_Success(t *testing.T) {
	var gotPath, gotToken, gotDate string
	var gotBody amazonfba.CreateFulfillmentOrderRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("x-amz-access-token")
		gotDate = r.Header.Get("x-amz-date")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(amazonfba.FulfillmentOrderResult{
			FulfillmentOrderID:    "FBA1234567890ABC",
			TrackingNumber:        "1ZAB123407654321",
			Carrier:               "UPS",
			ShippingSpeed:         "Standard",
			Status:                "PLANNING",
			EstimatedDeliveryDate: "2026-03-15",
			CreatedAt:             "2026-03-10T12:00:00Z",
		})
	}))
	defer srv.Close()

	client := amazonfba.NewHTTPAPIClient(amazonfba.HTTPAPIClientConfig{
		BaseURL:     srv.URL,
		Credentials: amazonfba.Credentials{AccessToken: "test-token"},
	})

	result, err := client.CreateFulfillmentOrder(context.Background(), &amazonfba.CreateFulfillmentOrderRequest{
		SellerFulfillmentOrderID: "ORDER-123",
		DisplayableOrderID:       "ORDER-123",
	})

	require.NoError(t, err)
	assert.Equal(t, "/fba/outbound/2020-07-01/fulfillmentOrders", gotPath)
	assert.Equal(t, "test-token", gotToken)
	assert.Regexp(t, `^\d{8}T\d{6}Z$`, gotDate)
	assert.Equal(t, "ORDER-123", gotBody.SellerFulfillmentOrderID)
	assert.Equal(t, "1ZAB123407654321", result.TrackingNumber)
	assert.Equal(t, "PLANNING", result.Status)
}

func TestHTTPAPIClient_DefaultAccessToken(t *testing.T) {
	var gotToken string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("x-amz-access-token")
		json.NewEncoder(w).Encode(amazonfba.FulfillmentOrderResult{})
	}))
	defer srv.Close()

	client := amazonfba.NewHTTPAPIClient(amazonfba.HTTPAPIClientConfig{BaseURL: srv.URL})

	_, err := client.CreateFulfillmentOrder(context.Background(), &amazonfba.CreateFulfillmentOrderRequest{})

	require.NoError(t, err)
	assert.Equal(t, "mock_token", gotToken)
}

func TestHTTPAPIClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal failure", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := amazonfba.NewHTTPAPIClient(amazonfba.HTTPAPIClientConfig{BaseURL: srv.URL})

	_, err := client.CreateFulfillmentOrder(context.Background(), &amazonfba.CreateFulfillmentOrderRequest{})

	require.Error(t, err)

	var apiErr *shipping.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "Amazon API request failed")
}

func TestHTTPAPIClient_StructuredErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"code":"InvalidInput","message":"Missing destination address"}]}`))
	}))
	defer srv.Close()

	client := amazonfba.NewHTTPAPIClient(amazonfba.HTTPAPIClientConfig{BaseURL: srv.URL})

	_, err := client.CreateFulfillmentOrder(context.Background(), &amazonfba.CreateFulfillmentOrderRequest{})

	require.Error(t, err)

	var apiErr *shipping.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Amazon API request failed: Missing destination address", apiErr.Message)
}

func TestHTTPAPIClient_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := amazonfba.NewHTTPAPIClient(amazonfba.HTTPAPIClientConfig{BaseURL: srv.URL})

	_, err := client.CreateFulfillmentOrder(context.Background(), &amazonfba.CreateFulfillmentOrderRequest{})

	require.Error(t, err)

	var apiErr *shipping.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "Amazon API request failed")
	assert.Error(t, apiErr.Cause)
}

func TestHTTPAPIClient_PartialResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Provider omitted most fields; they must decode as empty strings.
		w.Write([]byte(`{"fulfillmentOrderId":"FBA1234567890ABC"}`))
	}))
	defer srv.Close()

	client := amazonfba.NewHTTPAPIClient(amazonfba.HTTPAPIClientConfig{BaseURL: srv.URL})

	result, err := client.CreateFulfillmentOrder(context.Background(), &amazonfba.CreateFulfillmentOrderRequest{})

	require.NoError(t, err)
	assert.Equal(t, "FBA1234567890ABC", result.FulfillmentOrderID)
	assert.Empty(t, result.TrackingNumber)
	assert.Empty(t, result.Carrier)
}
