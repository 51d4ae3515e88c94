package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/casillerohn/order_ledger_app/internal/apperrors"
	portssvc "github.com/casillerohn/order_ledger_app/internal/core/ports/services"
	"github.com/casillerohn/order_ledger_app/internal/dto"
	"github.com/casillerohn/order_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindErrorMessage turns a ShouldBindJSON failure into a client-facing
// message. A value that was present but failed the positive-decimal rule
// gets named explicitly; anything else (malformed JSON, absent required
// fields) keeps the generic message.
func bindErrorMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fieldErr := range fieldErrs {
			if fieldErr.Tag() == "positivedecimal" {
				return "custom rate must be a positive number"
			}
		}
	}
	return "missing required fields"
}

// orderHandler handles HTTP requests related to orders and their trackings.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// newOrderHandler creates a new orderHandler.
func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{
		orderService: os,
	}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.PUT("/:id/financials", h.updateFinancials)
		orders.POST("/:id/tracking", h.addTracking)
		orders.DELETE("/:id", h.deleteOrder)
	}
}

func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	logger.Info("Received request to create order",
		slog.String("currency", req.Currency),
		slog.Int("trackings", len(req.Trackings)),
	)

	order, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating order", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create order in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	logger.Info("Order created successfully",
		slog.Int64("order_id", order.OrderID),
		slog.String("exchange_rate", order.ExchangeRate.String()),
	)
	c.JSON(http.StatusCreated, dto.ToCreateOrderResponse(order))
}

func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list orders from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Orders listed successfully", slog.Int("count", len(orders)))
	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}

func (h *orderHandler) updateFinancials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	var req dto.UpdateFinancialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateFinancials", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	if err := h.orderService.UpdateFinancials(c.Request.Context(), orderID, req); err != nil {
		logger.Error("Failed to update order financials", slog.Int64("order_id", orderID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Order financials updated", slog.Int64("order_id", orderID))
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *orderHandler) addTracking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	var req dto.TrackingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddTracking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	if err := h.orderService.AddTracking(c.Request.Context(), orderID, req); err != nil {
		logger.Error("Failed to add tracking", slog.Int64("order_id", orderID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Tracking added", slog.Int64("order_id", orderID), slog.String("tracking_number", req.TrackingNumber))
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *orderHandler) deleteOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderID); err != nil {
		logger.Error("Failed to delete order", slog.Int64("order_id", orderID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Order deleted", slog.Int64("order_id", orderID))
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// parseOrderID reads the :id path param. On failure it writes the 400
// response itself and returns ok=false.
func parseOrderID(c *gin.Context) (int64, bool) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return 0, false
	}
	return orderID, true
}
