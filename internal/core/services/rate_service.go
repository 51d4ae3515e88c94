package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/casillerohn/order_ledger_app/internal/apperrors"
	"github.com/casillerohn/order_ledger_app/internal/core/domain"
	"github.com/casillerohn/order_ledger_app/internal/core/ports/providers"
	portssvc "github.com/casillerohn/order_ledger_app/internal/core/ports/services"
	"github.com/casillerohn/order_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// RateService resolves the exchange rate stored with new orders. Spread and
// fallback are policy values injected from config: spread approximates bank
// sell pricing on top of the oracle mid rate, fallback keeps order creation
// alive when the oracle is unreachable.
type RateService struct {
	provider providers.RateProvider
	spread   decimal.Decimal
	fallback decimal.Decimal
}

// NewRateService creates a new RateService.
func NewRateService(provider providers.RateProvider, spread, fallback decimal.Decimal) *RateService {
	return &RateService{
		provider: provider,
		spread:   spread,
		fallback: fallback,
	}
}

var _ portssvc.RateSvcFacade = (*RateService)(nil)

// ResolveRate produces the rate to store for an order in the given currency.
// Local currency is always 1.0 and never consults the oracle. A caller
// supplied custom rate is used verbatim after validation. Otherwise the
// oracle is queried with the configured spread applied; oracle failure is
// absorbed into the fallback constant, never surfaced to the caller.
func (s *RateService) ResolveRate(ctx context.Context, currency string, customRate string) (decimal.Decimal, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" || currency == domain.CurrencyHNL {
		return decimal.NewFromInt(1), nil
	}

	if customRate != "" {
		rate, err := decimal.NewFromString(customRate)
		if err != nil || rate.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, fmt.Errorf("%w: custom rate must be a positive number", apperrors.ErrValidation)
		}
		return rate, nil
	}

	return s.oracleRate(ctx, currency), nil
}

// QuoteRate previews the current foreign-to-local rate. It never fails; the
// fallback constant covers an unreachable oracle.
func (s *RateService) QuoteRate(ctx context.Context) decimal.Decimal {
	return s.oracleRate(ctx, domain.CurrencyUSD)
}

// oracleRate fetches currency->HNL from the oracle and applies the spread.
// Any failure is logged as an observability event and the fallback returned.
func (s *RateService) oracleRate(ctx context.Context, currency string) decimal.Decimal {
	rate, err := s.provider.FetchRate(ctx, currency, domain.CurrencyHNL)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Rate oracle unavailable, using fallback rate",
			slog.String("currency", currency),
			slog.String("fallback", s.fallback.String()),
			slog.String("error", err.Error()),
		)
		return s.fallback
	}
	return rate.Add(s.spread)
}
