package repositories

import (
	"context"

	"github.com/casillerohn/order_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderRepositoryFacade defines persistence operations for orders and their
// trackings. CreateOrderWithTrackings is the only multi-statement operation
// and must be atomic: either the order row and every tracking row land, or
// none of them do.
type OrderRepositoryFacade interface {
	// CreateOrderWithTrackings persists the order and its trackings in one
	// transaction and returns the generated order id.
	CreateOrderWithTrackings(ctx context.Context, order domain.Order, trackings []domain.Tracking) (int64, error)

	// ListOrdersWithTrackings returns every order newest-id-first, each with
	// its trackings attached (an empty slice when there are none).
	ListOrdersWithTrackings(ctx context.Context) ([]domain.Order, error)

	// UpdateOrderFinancials overwrites amount, freight and selling price.
	// A missing order id affects zero rows and is not an error.
	UpdateOrderFinancials(ctx context.Context, orderID int64, amount, freightHNL, sellingHNL decimal.Decimal) error

	// AddTracking appends one tracking. The foreign key on trackings.order_id
	// is the only existence check for the order.
	AddTracking(ctx context.Context, tracking domain.Tracking) error

	// DeleteOrder removes the order's trackings and then the order itself.
	// Deleting a missing id is a no-op.
	DeleteOrder(ctx context.Context, orderID int64) error
}
