package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order mirrors the orders table.
type Order struct {
	OrderID         int64           `json:"orderID"`
	PurchaseDate    time.Time       `json:"purchaseDate"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	Currency        string          `json:"currency"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	FreightCostHNL  decimal.Decimal `json:"freightCostHNL"`
	SellingPriceHNL decimal.Decimal `json:"sellingPriceHNL"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Tracking mirrors the trackings table. order_id is a plain FK to orders;
// the repository is responsible for deleting trackings before their order.
type Tracking struct {
	TrackingID     int64  `json:"trackingID"`
	OrderID        int64  `json:"orderID"`
	TrackingNumber string `json:"trackingNumber"`
	Carrier        string `json:"carrier"`
}
