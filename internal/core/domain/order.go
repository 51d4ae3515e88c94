package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency codes the ledger understands. HNL is the local currency all
// totals are ultimately expressed in; anything else is converted through
// Order.ExchangeRate at creation time.
const (
	CurrencyHNL = "HNL"
	CurrencyUSD = "USD"
)

// DefaultCarrier is stored when the caller does not name a carrier.
const DefaultCarrier = "Unknown"

// Order is a purchase order together with its shipment trackings.
// ExchangeRate means "1 unit of Currency = ExchangeRate HNL" and is fixed
// at creation; later financial edits never recompute it.
type Order struct {
	OrderID         int64
	PurchaseDate    time.Time
	OriginalAmount  decimal.Decimal
	Currency        string
	ExchangeRate    decimal.Decimal
	FreightCostHNL  decimal.Decimal
	SellingPriceHNL decimal.Decimal
	CreatedAt       time.Time
	Trackings       []Tracking
}

// TotalHNL is the order amount converted to local currency.
func (o Order) TotalHNL() decimal.Decimal {
	return o.OriginalAmount.Mul(o.ExchangeRate)
}

// Tracking is a carrier shipment reference owned by exactly one order.
// Trackings are append-only: created with the order or via add-tracking,
// never edited, and removed only when the order is deleted.
type Tracking struct {
	TrackingID     int64
	OrderID        int64
	TrackingNumber string
	Carrier        string
}
