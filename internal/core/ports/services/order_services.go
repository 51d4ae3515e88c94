package services

import (
	"context"

	"github.com/casillerohn/order_ledger_app/internal/core/domain"
	"github.com/casillerohn/order_ledger_app/internal/dto"
)

// OrderSvcFacade defines the order operations exposed to the HTTP layer.
type OrderSvcFacade interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateFinancials(ctx context.Context, orderID int64, req dto.UpdateFinancialsRequest) error
	AddTracking(ctx context.Context, orderID int64, req dto.TrackingInput) error
	DeleteOrder(ctx context.Context, orderID int64) error
}
