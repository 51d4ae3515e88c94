package dto

import (
	"time"

	"github.com/casillerohn/order_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrackingInput is one shipment tracking supplied on order creation or via
// the add-tracking endpoint. Carrier is optional and defaults to "Unknown".
type TrackingInput struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
	Carrier        string `json:"carrier"`
}

// CreateOrderRequest defines the data needed to create a new order.
// PurchaseDate is a YYYY-MM-DD date. CustomRate, when present, overrides the
// rate oracle for foreign-currency orders and must parse as a positive decimal.
type CreateOrderRequest struct {
	PurchaseDate   string          `json:"purchase_date" binding:"required"`
	OriginalAmount decimal.Decimal `json:"original_amount" binding:"required"`
	Currency       string          `json:"currency"`
	Trackings      []TrackingInput `json:"trackings"`
	CustomRate     string          `json:"custom_rate" binding:"omitempty,positivedecimal"`
}

// UpdateFinancialsRequest overwrites the mutable money fields of an order.
// Freight and selling price default to 0 when omitted; currency and
// exchange rate are not part of this request on purpose.
type UpdateFinancialsRequest struct {
	OriginalAmount  decimal.Decimal `json:"original_amount" binding:"required"`
	FreightCostHNL  decimal.Decimal `json:"freight_cost_hnl"`
	SellingPriceHNL decimal.Decimal `json:"selling_price_hnl"`
}

// CreateOrderResponse is returned after a successful order creation.
type CreateOrderResponse struct {
	Success         bool    `json:"success"`
	OrderID         int64   `json:"order_id"`
	TasaUsada       float64 `json:"tasa_usada"`
	TotalEnLempiras string  `json:"total_en_lempiras"`
}

// TrackingResponse is the wire shape of one tracking inside an order listing.
type TrackingResponse struct {
	NGuia   string `json:"n_guia"`
	Carrier string `json:"carrier"`
}

// OrderResponse is one order in the listing, trackings embedded.
type OrderResponse struct {
	OrderID         int64              `json:"order_id"`
	PurchaseDate    string             `json:"purchase_date"`
	OriginalAmount  float64            `json:"original_amount"`
	Currency        string             `json:"currency"`
	ExchangeRate    float64            `json:"exchange_rate"`
	FreightCostHNL  float64            `json:"freight_cost_hnl"`
	SellingPriceHNL float64            `json:"selling_price_hnl"`
	Trackings       []TrackingResponse `json:"trackings"`
}

// SuccessResponse is the body of mutation endpoints that return no data.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ToCreateOrderResponse builds the creation response from the persisted order.
// The local-currency total is rendered with two decimal places.
func ToCreateOrderResponse(o *domain.Order) CreateOrderResponse {
	return CreateOrderResponse{
		Success:         true,
		OrderID:         o.OrderID,
		TasaUsada:       o.ExchangeRate.InexactFloat64(),
		TotalEnLempiras: o.TotalHNL().StringFixed(2),
	}
}

// ToOrderResponse converts a domain.Order to its listing DTO. The trackings
// slice is always materialized, never nil, so an order without trackings
// serializes as an empty array.
func ToOrderResponse(o *domain.Order) OrderResponse {
	trackings := make([]TrackingResponse, len(o.Trackings))
	for i, t := range o.Trackings {
		trackings[i] = TrackingResponse{
			NGuia:   t.TrackingNumber,
			Carrier: t.Carrier,
		}
	}
	return OrderResponse{
		OrderID:         o.OrderID,
		PurchaseDate:    o.PurchaseDate.Format(time.DateOnly),
		OriginalAmount:  o.OriginalAmount.InexactFloat64(),
		Currency:        o.Currency,
		ExchangeRate:    o.ExchangeRate.InexactFloat64(),
		FreightCostHNL:  o.FreightCostHNL.InexactFloat64(),
		SellingPriceHNL: o.SellingPriceHNL.InexactFloat64(),
		Trackings:       trackings,
	}
}

// ToListOrderResponse converts a slice of domain orders to listing DTOs.
func ToListOrderResponse(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i, o := range orders {
		res[i] = ToOrderResponse(&o)
	}
	return res
}
