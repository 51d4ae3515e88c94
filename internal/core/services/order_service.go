package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/casillerohn/order_ledger_app/internal/apperrors"
	"github.com/casillerohn/order_ledger_app/internal/core/domain"
	portsrepo "github.com/casillerohn/order_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/casillerohn/order_ledger_app/internal/core/ports/services"
	"github.com/casillerohn/order_ledger_app/internal/dto"
)

// OrderService provides business logic for orders and their trackings.
type OrderService struct {
	orderRepo   portsrepo.OrderRepositoryFacade
	rateService portssvc.RateSvcFacade
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, rateService portssvc.RateSvcFacade) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		rateService: rateService,
	}
}

var _ portssvc.OrderSvcFacade = (*OrderService)(nil)

// CreateOrder resolves the exchange rate for the order's currency and
// persists the order together with its trackings in one transaction. The
// returned order carries the generated id and the rate actually stored.
func (s *OrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	purchaseDate, err := parsePurchaseDate(req.PurchaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid purchase_date %q", apperrors.ErrValidation, req.PurchaseDate)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = domain.CurrencyHNL
	}

	rate, err := s.rateService.ResolveRate(ctx, currency, req.CustomRate)
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		PurchaseDate:   purchaseDate,
		OriginalAmount: req.OriginalAmount,
		Currency:       currency,
		ExchangeRate:   rate,
	}

	trackings := make([]domain.Tracking, 0, len(req.Trackings))
	for _, t := range req.Trackings {
		trackings = append(trackings, domain.Tracking{
			TrackingNumber: t.TrackingNumber,
			Carrier:        carrierOrDefault(t.Carrier),
		})
	}

	orderID, err := s.orderRepo.CreateOrderWithTrackings(ctx, order, trackings)
	if err != nil {
		return nil, err
	}

	order.OrderID = orderID
	order.Trackings = trackings
	return &order, nil
}

// ListOrders returns every order newest-id-first with trackings embedded.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.ListOrdersWithTrackings(ctx)
}

// UpdateFinancials overwrites amount, freight and selling price for an
// order. Currency and exchange rate stay untouched; a missing id updates
// zero rows and still succeeds.
func (s *OrderService) UpdateFinancials(ctx context.Context, orderID int64, req dto.UpdateFinancialsRequest) error {
	return s.orderRepo.UpdateOrderFinancials(ctx, orderID, req.OriginalAmount, req.FreightCostHNL, req.SellingPriceHNL)
}

// AddTracking appends one tracking to an existing order. The order's
// existence is only enforced by the store's foreign key.
func (s *OrderService) AddTracking(ctx context.Context, orderID int64, req dto.TrackingInput) error {
	return s.orderRepo.AddTracking(ctx, domain.Tracking{
		OrderID:        orderID,
		TrackingNumber: req.TrackingNumber,
		Carrier:        carrierOrDefault(req.Carrier),
	})
}

// DeleteOrder removes an order and all its trackings. Idempotent.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID int64) error {
	return s.orderRepo.DeleteOrder(ctx, orderID)
}

// parsePurchaseDate accepts the YYYY-MM-DD wire format and, to be lenient
// with clients that send timestamps, full RFC3339.
func parsePurchaseDate(raw string) (time.Time, error) {
	if d, err := time.Parse(time.DateOnly, raw); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func carrierOrDefault(carrier string) string {
	if strings.TrimSpace(carrier) == "" {
		return domain.DefaultCarrier
	}
	return carrier
}
