package providers

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProvider is the outbound port to the external rate oracle. Callers
// treat any error (network, timeout, malformed payload) as "oracle
// unavailable" and fall back; the provider never needs to distinguish.
type RateProvider interface {
	FetchRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error)
}
