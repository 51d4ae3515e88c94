package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateSvcFacade resolves the exchange rate stored with new orders.
type RateSvcFacade interface {
	// ResolveRate returns the rate to store for an order in the given
	// currency. customRate, when non-empty, must parse as a positive decimal
	// and is used verbatim without consulting the oracle.
	ResolveRate(ctx context.Context, currency string, customRate string) (decimal.Decimal, error)

	// QuoteRate previews the current foreign-to-local rate without side
	// effects. It never fails, falling back to the configured constant when
	// the oracle is unreachable, so it returns no error.
	QuoteRate(ctx context.Context) decimal.Decimal
}
