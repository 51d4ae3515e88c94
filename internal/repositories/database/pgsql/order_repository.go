package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/casillerohn/order_ledger_app/internal/apperrors"
	"github.com/casillerohn/order_ledger_app/internal/core/domain"
	portsrepo "github.com/casillerohn/order_ledger_app/internal/core/ports/repositories"
	"github.com/casillerohn/order_ledger_app/internal/models"
	"github.com/casillerohn/order_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// pgForeignKeyViolation is the Postgres error code raised when a tracking
// references a missing order.
const pgForeignKeyViolation = "23503"

// PgxOrderRepository implements portsrepo.OrderRepositoryFacade using pgxpool.
type PgxOrderRepository struct {
	BaseRepository
}

// NewOrderRepository creates a new PgxOrderRepository.
func NewOrderRepository(pool PGXPool) *PgxOrderRepository {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

// CreateOrderWithTrackings inserts the order row and all its tracking rows
// inside a single transaction. Any insert failure rolls everything back so
// no partial order is ever visible.
func (r *PgxOrderRepository) CreateOrderWithTrackings(ctx context.Context, order domain.Order, trackings []domain.Tracking) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	// Ignored once the transaction has committed.
	defer r.Rollback(ctx, tx)

	modelOrder := mapping.ToModelOrder(order)

	var orderID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (purchase_date, original_amount, currency, exchange_rate, freight_cost_hnl, selling_price_hnl)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING order_id`,
		modelOrder.PurchaseDate,
		modelOrder.OriginalAmount,
		modelOrder.Currency,
		modelOrder.ExchangeRate,
		modelOrder.FreightCostHNL,
		modelOrder.SellingPriceHNL,
	).Scan(&orderID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert order", err)
	}

	for _, tracking := range trackings {
		modelTracking := mapping.ToModelTracking(tracking)
		_, err = tx.Exec(ctx, `
			INSERT INTO trackings (order_id, tracking_number, carrier)
			VALUES ($1, $2, $3)`,
			orderID,
			modelTracking.TrackingNumber,
			modelTracking.Carrier,
		)
		if err != nil {
			return 0, apperrors.NewAppError(500, "failed to insert tracking "+modelTracking.TrackingNumber, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return orderID, nil
}

// ListOrdersWithTrackings returns all orders newest-id-first with their
// trackings attached. Grouping happens here rather than via a SQL json_agg
// join, so an order without trackings gets an empty slice instead of a
// single null placeholder.
func (r *PgxOrderRepository) ListOrdersWithTrackings(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT order_id, purchase_date, original_amount, currency, exchange_rate,
		       freight_cost_hnl, selling_price_hnl, created_at
		FROM orders
		ORDER BY order_id DESC`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list orders", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	indexByID := map[int64]int{}
	for rows.Next() {
		var m models.Order
		err := rows.Scan(
			&m.OrderID, &m.PurchaseDate, &m.OriginalAmount, &m.Currency,
			&m.ExchangeRate, &m.FreightCostHNL, &m.SellingPriceHNL, &m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order", err)
		}
		indexByID[m.OrderID] = len(orders)
		orders = append(orders, mapping.ToDomainOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating orders", err)
	}

	trackingRows, err := r.Pool.Query(ctx, `
		SELECT tracking_id, order_id, tracking_number, carrier
		FROM trackings
		ORDER BY tracking_id`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list trackings", err)
	}
	defer trackingRows.Close()

	for trackingRows.Next() {
		var m models.Tracking
		if err := trackingRows.Scan(&m.TrackingID, &m.OrderID, &m.TrackingNumber, &m.Carrier); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tracking", err)
		}
		if i, ok := indexByID[m.OrderID]; ok {
			orders[i].Trackings = append(orders[i].Trackings, mapping.ToDomainTracking(m))
		}
	}
	if err := trackingRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trackings", err)
	}

	return orders, nil
}

// UpdateOrderFinancials overwrites the three mutable money fields. Currency
// and exchange_rate are deliberately not touched. Zero affected rows is not
// an error.
func (r *PgxOrderRepository) UpdateOrderFinancials(ctx context.Context, orderID int64, amount, freightHNL, sellingHNL decimal.Decimal) error {
	_, err := r.Pool.Exec(ctx, `
		UPDATE orders
		SET original_amount = $1, freight_cost_hnl = $2, selling_price_hnl = $3
		WHERE order_id = $4`,
		amount, freightHNL, sellingHNL, orderID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update order financials", err)
	}
	return nil
}

// AddTracking inserts a tracking without checking the order first; the
// foreign key constraint is the backstop for a missing order id.
func (r *PgxOrderRepository) AddTracking(ctx context.Context, tracking domain.Tracking) error {
	modelTracking := mapping.ToModelTracking(tracking)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO trackings (order_id, tracking_number, carrier)
		VALUES ($1, $2, $3)`,
		modelTracking.OrderID, modelTracking.TrackingNumber, modelTracking.Carrier,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperrors.NewAppError(500, fmt.Sprintf("order %d does not exist", tracking.OrderID), err)
		}
		return apperrors.NewAppError(500, "failed to insert tracking", err)
	}
	return nil
}

// DeleteOrder removes the order's trackings and then the order itself,
// in that order, inside one transaction. Deleting a missing id is a no-op.
func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM trackings WHERE order_id = $1`, orderID); err != nil {
		return apperrors.NewAppError(500, "failed to delete trackings", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM orders WHERE order_id = $1`, orderID); err != nil {
		return apperrors.NewAppError(500, "failed to delete order", err)
	}

	return r.Commit(ctx, tx)
}
