package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sellerdesk/fulfillment/internal/server"
	"github.com/sellerdesk/fulfillment/pkg/shipping"
	"github.com/sellerdesk/fulfillment/pkg/shipping/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Constructed once: metrics registration on the default Prometheus
// registry panics on duplicates.
var testHandler = newTestHandler()

var testGateway = mock.New("amazon-fba")

func newTestHandler() http.Handler {
	logger := otelzap.New(zap.NewNop())
	service := shipping.NewService(testGateway, logger, nil)
	return server.New(server.Config{Port: 8080}, service, logger).Handler()
}

func doRequest(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	testHandler.ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	rec := doRequest(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	rec := doRequest(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CreateShipment_Success(t *testing.T) {
	testGateway.Err = nil
	body := `{
		"order_id": "ORDER-123",
		"items": [{"sku": "WIDGET-1", "quantity": 2}],
		"address": {
			"name": "Jane Buyer",
			"line1": "742 Evergreen Terrace",
			"city": "Springfield",
			"state": "IL",
			"postal_code": "62704",
			"country": "US"
		}
	}`

	rec := doRequest(http.MethodPost, "/v1/shipments", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tracking_number":"1Z`)
}

func TestServer_CreateShipment_ValidationError(t *testing.T) {
	testGateway.Err = nil
	body := `{"order_id": "", "items": [], "address": {}}`

	rec := doRequest(http.MethodPost, "/v1/shipments", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order ID cannot be empty")
}

func TestServer_CreateShipment_GatewayError(t *testing.T) {
	testGateway.Err = shipping.NewAPIError("Amazon API request failed: simulated API error", nil).WithStatusCode(http.StatusInternalServerError)
	defer func() { testGateway.Err = nil }()

	body := `{
		"order_id": "ORDER-123",
		"items": [{"sku": "WIDGET-1", "quantity": 2}],
		"address": {
			"name": "Jane Buyer",
			"line1": "742 Evergreen Terrace",
			"city": "Springfield",
			"state": "IL",
			"postal_code": "62704",
			"country": "US"
		}
	}`

	rec := doRequest(http.MethodPost, "/v1/shipments", body)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to ship order ORDER-123")
}

func TestServer_CreateShipment_InvalidJSON(t *testing.T) {
	rec := doRequest(http.MethodPost, "/v1/shipments", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON")
}

func TestServer_CreateShipment_MethodNotAllowed(t *testing.T) {
	rec := doRequest(http.MethodGet, "/v1/shipments", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
