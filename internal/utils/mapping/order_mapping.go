package mapping

import (
	"github.com/casillerohn/order_ledger_app/internal/core/domain"
	"github.com/casillerohn/order_ledger_app/internal/models"
)

// ToModelOrder converts a domain.Order to its database model.
func ToModelOrder(o domain.Order) models.Order {
	return models.Order{
		OrderID:         o.OrderID,
		PurchaseDate:    o.PurchaseDate,
		OriginalAmount:  o.OriginalAmount,
		Currency:        o.Currency,
		ExchangeRate:    o.ExchangeRate,
		FreightCostHNL:  o.FreightCostHNL,
		SellingPriceHNL: o.SellingPriceHNL,
		CreatedAt:       o.CreatedAt,
	}
}

// ToDomainOrder converts a database model to a domain.Order.
// Trackings are attached separately by the repository; the slice is
// initialized here so an order never carries a nil trackings collection.
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:         m.OrderID,
		PurchaseDate:    m.PurchaseDate,
		OriginalAmount:  m.OriginalAmount,
		Currency:        m.Currency,
		ExchangeRate:    m.ExchangeRate,
		FreightCostHNL:  m.FreightCostHNL,
		SellingPriceHNL: m.SellingPriceHNL,
		CreatedAt:       m.CreatedAt,
		Trackings:       []domain.Tracking{},
	}
}

// ToModelTracking converts a domain.Tracking to its database model.
func ToModelTracking(t domain.Tracking) models.Tracking {
	return models.Tracking{
		TrackingID:     t.TrackingID,
		OrderID:        t.OrderID,
		TrackingNumber: t.TrackingNumber,
		Carrier:        t.Carrier,
	}
}

// ToDomainTracking converts a database model to a domain.Tracking.
func ToDomainTracking(m models.Tracking) domain.Tracking {
	return domain.Tracking{
		TrackingID:     m.TrackingID,
		OrderID:        m.OrderID,
		TrackingNumber: m.TrackingNumber,
		Carrier:        m.Carrier,
	}
}
