package dto

import "github.com/shopspring/decimal"

// RateResponse is the body of the rate quote endpoint. The rate goes out as
// a plain JSON number, which is what the frontend consumes.
type RateResponse struct {
	Rate float64 `json:"rate"`
}

// ToRateResponse converts a resolved rate to its wire shape.
func ToRateResponse(rate decimal.Decimal) RateResponse {
	return RateResponse{Rate: rate.InexactFloat64()}
}
