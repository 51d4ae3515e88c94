package handlers

import (
	portssvc "github.com/casillerohn/order_ledger_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service interfaces.
func RegisterRoutes(
	r *gin.Engine,
	orderService portssvc.OrderSvcFacade,
	rateService portssvc.RateSvcFacade,
) {
	registerValidations()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	api := r.Group("/api")
	registerRateRoutes(api, rateService)
	registerOrderRoutes(api, orderService)
}

// registerValidations adds custom binding validations to gin's validator
// engine. "positivedecimal" accepts a string field that parses as a decimal
// strictly greater than zero (used for custom_rate).
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("positivedecimal", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	})
}
