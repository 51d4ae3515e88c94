package handlers

import (
	"net/http"

	portssvc "github.com/casillerohn/order_ledger_app/internal/core/ports/services"
	"github.com/casillerohn/order_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// rateHandler handles the read-only rate quote endpoint.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers the rate quote route.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)
	rg.GET("/rate", h.getRate)
}

// getRate quotes the current USD -> HNL rate without side effects, so a
// caller can preview the rate before committing to an order. Quoting never
// fails; an unreachable oracle is absorbed into the fallback rate.
func (h *rateHandler) getRate(c *gin.Context) {
	rate := h.rateService.QuoteRate(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}
