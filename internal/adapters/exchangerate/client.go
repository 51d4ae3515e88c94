package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/casillerohn/order_ledger_app/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// Client talks to an exchangerate-api.com style pair endpoint:
// GET {base}/{apiKey}/pair/{from}/{to} -> {"result":"success","conversion_rate":24.51}.
// The http.Client timeout bounds the whole call so a hanging oracle can never
// stall order creation; callers treat a timeout like any other failure.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ providers.RateProvider = (*Client)(nil)

// NewClient creates a rate oracle client with a bounded request timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// pairResponse is the subset of the oracle payload we care about.
type pairResponse struct {
	Result         string  `json:"result"`
	ConversionRate float64 `json:"conversion_rate"`
	ErrorType      string  `json:"error-type"`
}

// FetchRate queries the oracle for the fromCode -> toCode conversion rate.
func (c *Client) FetchRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	if c.apiKey == "" {
		return decimal.Zero, fmt.Errorf("rate oracle API key not configured")
	}

	url := fmt.Sprintf("%s/%s/pair/%s/%s", c.baseURL, c.apiKey, fromCode, toCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build rate oracle request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate oracle request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("rate oracle returned status %d", resp.StatusCode)
	}

	var payload pairResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode rate oracle response: %w", err)
	}

	if payload.Result != "success" {
		return decimal.Zero, fmt.Errorf("rate oracle error: %s", payload.ErrorType)
	}
	if payload.ConversionRate <= 0 {
		return decimal.Zero, fmt.Errorf("rate oracle returned no usable rate")
	}

	return decimal.NewFromFloat(payload.ConversionRate), nil
}
