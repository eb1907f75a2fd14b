package amazonfba

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sellerdesk/fulfillment/pkg/shipping"
)

const fulfillmentOrdersPath = "/fba/outbound/2020-07-01/fulfillmentOrders"

// HTTPAPIClient is the production implementation of APIClient. It
// performs one outbound request per call with a bounded timeout and no
// internal retries; retry policy belongs to the caller.
type HTTPAPIClient struct {
	baseURL     string
	credentials Credentials
	httpClient  *http.Client
}

// HTTPAPIClientConfig holds configuration for the HTTP client.
type HTTPAPIClientConfig struct {
	BaseURL     string
	Credentials Credentials
	Timeout     time.Duration
}

// NewHTTPAPIClient creates a new HTTP-based API client.
func NewHTTPAPIClient(cfg HTTPAPIClientConfig) *HTTPAPIClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &HTTPAPIClient{
		baseURL:     cfg.BaseURL,
		credentials: cfg.Credentials,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreateFulfillmentOrder submits the fulfillment order to the Selling
// Partner API. Any transport failure, non-2xx status or unparsable
// body surfaces as a shipping.APIError carrying the original error.
func (c *HTTPAPIClient) CreateFulfillmentOrder(ctx context.Context, req *CreateFulfillmentOrderRequest) (*FulfillmentOrderResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, shipping.NewAPIError("Amazon API request failed: "+err.Error(), err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+fulfillmentOrdersPath, bytes.NewReader(body))
	if err != nil {
		return nil, shipping.NewAPIError("Amazon API request failed: "+err.Error(), err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	// A real integration would exchange the LWA refresh token and sign
	// the request with AWS Signature V4. The token and date headers are
	// the stubbed stand-in for that scheme.
	httpReq.Header.Set("x-amz-access-token", c.accessToken())
	httpReq.Header.Set("x-amz-date", time.Now().UTC().Format("20060102T150405Z"))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, shipping.NewAPIError("Amazon API request failed: "+err.Error(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.parseError(resp)
	}

	var result FulfillmentOrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, shipping.NewAPIError("Amazon API request failed: "+err.Error(), err)
	}

	return &result, nil
}

func (c *HTTPAPIClient) accessToken() string {
	if c.credentials.AccessToken == "" {
		return "mock_token"
	}
	return c.credentials.AccessToken
}

// parseError extracts error information from a non-2xx response.
func (c *HTTPAPIClient) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	message := strings.TrimSpace(string(body))
	if message == "" {
		message = resp.Status
	}

	var apiErr struct {
		Errors []struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && len(apiErr.Errors) > 0 && apiErr.Errors[0].Message != "" {
		message = apiErr.Errors[0].Message
	}

	return shipping.NewAPIError("Amazon API request failed: "+message, nil).
		WithStatusCode(resp.StatusCode)
}

// Ensure HTTPAPIClient implements APIClient interface
var _ APIClient = (*HTTPAPIClient)(nil)
