package amazonfba

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sellerdesk/fulfillment/pkg/shipping"
)

// MockAPIClient fabricates fulfillment responses without network I/O.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnCreateFulfillmentOrder func(ctx context.Context, req *CreateFulfillmentOrderRequest) (*FulfillmentOrderResult, error)

	now  func() time.Time
	intN func(int) int
}

// NewMockAPIClient creates a new mock API client with default behavior:
// a short simulated processing delay and a fabricated successful
// response per request.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{
		SimulateLatency: 100 * time.Millisecond,
		now:             time.Now,
		intN:            rand.IntN,
	}
}

// SetClock overrides the mock's time source. Used by tests that assert
// on fabricated dates.
func (m *MockAPIClient) SetClock(now func() time.Time) {
	m.now = now
}

// CreateFulfillmentOrder returns a fabricated fulfillment order. The
// simulated latency is a cooperative sleep that honors context
// cancellation.
func (m *MockAPIClient) CreateFulfillmentOrder(ctx context.Context, req *CreateFulfillmentOrderRequest) (*FulfillmentOrderResult, error) {
	if m.SimulateLatency > 0 {
		timer := time.NewTimer(m.SimulateLatency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if m.SimulateErrors {
		return nil, shipping.NewAPIError("Amazon API request failed: simulated API error", nil)
	}

	if m.OnCreateFulfillmentOrder != nil {
		return m.OnCreateFulfillmentOrder(ctx, req)
	}

	now := m.now()
	return &FulfillmentOrderResult{
		FulfillmentOrderID:    fulfillmentOrderID(),
		TrackingNumber:        m.trackingNumber(),
		Carrier:               "UPS",
		ShippingSpeed:         "Standard",
		Status:                "PLANNING",
		EstimatedDeliveryDate: now.AddDate(0, 0, 5).Format("2006-01-02"),
		CreatedAt:             now.Format(time.RFC3339),
	}, nil
}

const trackingCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// trackingNumber fabricates a UPS-style tracking number:
// 1Z + 6 alphanumerics + 2 digits + 7 digits.
func (m *MockAPIClient) trackingNumber() string {
	var b strings.Builder
	b.WriteString("1Z")
	for i := 0; i < 6; i++ {
		b.WriteByte(trackingCharset[m.intN(len(trackingCharset))])
	}
	fmt.Fprintf(&b, "%02d", 10+m.intN(90))
	fmt.Fprintf(&b, "%07d", 1000000+m.intN(9000000))
	return b.String()
}

// fulfillmentOrderID fabricates a provider-style order id with an FBA
// prefix and a uniqueness suffix.
func fulfillmentOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "FBA" + suffix[:13]
}

var _ APIClient = (*MockAPIClient)(nil)
