// Package amazonfba provides the Amazon FBA fulfillment gateway,
// backed by the Selling Partner fulfillment-outbound API.
package amazonfba

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sellerdesk/fulfillment/pkg/shipping"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const gatewayName = "amazon-fba"

const (
	sandboxEndpoint    = "https://sandbox.sellingpartnerapi-na.amazon.com"
	productionEndpoint = "https://sellingpartnerapi-na.amazon.com"
)

// Credentials holds the Selling Partner API credential set.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	ClientID     string
	ClientSecret string
}

// Config holds Amazon FBA gateway configuration.
type Config struct {
	Credentials Credentials
	BaseURL     string // optional override; derived from Sandbox when empty
	Sandbox     bool   // use the sandbox host instead of production
	UseMock     bool   // when true, uses the mock API client
}

func (c Config) endpoint() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if c.Sandbox {
		return sandboxEndpoint
	}
	return productionEndpoint
}

// Client is the Amazon FBA gateway. It implements
// shipping.FulfillmentGateway and delegates API calls to the underlying
// APIClient (mock or HTTP), chosen once at construction.
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new Amazon FBA gateway. If cfg.UseMock is true, the
// gateway fabricates responses without network I/O; otherwise it talks
// to the sandbox or production host selected by cfg.Sandbox.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient

	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			BaseURL:     cfg.endpoint(),
			Credentials: cfg.Credentials,
			Timeout:     30 * time.Second,
		})
	}

	return NewWithAPIClient(cfg, apiClient, logger, tracer)
}

// NewWithAPIClient creates a gateway with a custom API client. This is
// useful for injecting mock clients in tests.
func NewWithAPIClient(cfg Config, apiClient APIClient, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	if logger == nil {
		logger = otelzap.New(zap.NewNop())
	}
	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// Name returns the gateway name.
func (c *Client) Name() string {
	return gatewayName
}

// CreateFulfillmentOrder maps the shipment request to the provider
// payload, invokes the API and returns the parsed response.
func (c *Client) CreateFulfillmentOrder(ctx context.Context, req *shipping.ShipmentRequest) (*shipping.FulfillmentResponse, error) {
	if c.tracer != nil {
		var span trace.Span
		ctx, span = c.tracer.Start(ctx, "amazonfba.CreateFulfillmentOrder")
		defer span.End()
	}

	c.logger.Info("Creating fulfillment order",
		zap.String("order_id", req.OrderID()),
		zap.Int("items_count", len(req.Items())),
	)

	apiReq := buildFulfillmentOrderPayload(req)

	apiResp, err := c.apiClient.CreateFulfillmentOrder(ctx, apiReq)
	if err != nil {
		c.logger.Error("Amazon SP-API error", zap.Error(err))
		return nil, err
	}

	return resultToResponse(apiResp), nil
}

var _ shipping.FulfillmentGateway = (*Client)(nil)

// ============================================================================
// Conversion helpers: shipping models -> API models
// ============================================================================

// buildFulfillmentOrderPayload maps a validated shipment request to the
// SP-API createFulfillmentOrder shape. The order id populates both the
// seller-facing and displayable id fields, and every item gets a fresh
// correlation id unique within the payload.
func buildFulfillmentOrderPayload(req *shipping.ShipmentRequest) *CreateFulfillmentOrderRequest {
	address := req.Address()
	items := req.Items()

	apiItems := make([]OrderItem, len(items))
	for i, item := range items {
		apiItems[i] = OrderItem{
			SellerSKU:                    item.SKU,
			SellerFulfillmentOrderItemID: "item_" + uuid.New().String(),
			Quantity:                     item.Quantity,
		}
	}

	return &CreateFulfillmentOrderRequest{
		SellerFulfillmentOrderID: req.OrderID(),
		DisplayableOrderID:       req.OrderID(),
		DisplayableOrderDate:     time.Now().Format(time.RFC3339),
		DisplayableOrderComment:  "Order from seller",
		ShippingSpeedCategory:    "Standard",
		DestinationAddress: DestinationAddress{
			Name:          address.Name,
			AddressLine1:  address.Line1,
			AddressLine2:  optionalString(address.Line2),
			City:          address.City,
			StateOrRegion: address.State,
			PostalCode:    address.PostalCode,
			CountryCode:   address.CountryCode,
			Phone:         optionalString(address.Phone),
		},
		Items: apiItems,
	}
}

// optionalString maps empty strings to nil so they serialize as null.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ============================================================================
// Conversion helpers: API models -> shipping models
// ============================================================================

func resultToResponse(result *FulfillmentOrderResult) *shipping.FulfillmentResponse {
	return &shipping.FulfillmentResponse{
		FulfillmentOrderID:    result.FulfillmentOrderID,
		TrackingNumber:        result.TrackingNumber,
		Carrier:               result.Carrier,
		ShippingSpeed:         result.ShippingSpeed,
		Status:                result.Status,
		EstimatedDeliveryDate: result.EstimatedDeliveryDate,
		CreatedAt:             result.CreatedAt,
	}
}
