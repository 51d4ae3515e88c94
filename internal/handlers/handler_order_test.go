package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casillerohn/order_ledger_app/internal/apperrors"
	"github.com/casillerohn/order_ledger_app/internal/core/domain"
	portssvc "github.com/casillerohn/order_ledger_app/internal/core/ports/services"
	"github.com/casillerohn/order_ledger_app/internal/dto"
	"github.com/casillerohn/order_ledger_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) UpdateFinancials(ctx context.Context, orderID int64, req dto.UpdateFinancialsRequest) error {
	args := m.Called(ctx, orderID, req)
	return args.Error(0)
}

func (m *MockOrderService) AddTracking(ctx context.Context, orderID int64, req dto.TrackingInput) error {
	args := m.Called(ctx, orderID, req)
	return args.Error(0)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) ResolveRate(ctx context.Context, currency string, customRate string) (decimal.Decimal, error) {
	args := m.Called(ctx, currency, customRate)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRateService) QuoteRate(ctx context.Context) decimal.Decimal {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Test Suite ---
type OrderHandlerTestSuite struct {
	suite.Suite
	mockOrderSvc *MockOrderService
	mockRateSvc  *MockRateService
	router       *gin.Engine
}

func (suite *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockOrderSvc = new(MockOrderService)
	suite.mockRateSvc = new(MockRateService)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.mockOrderSvc, suite.mockRateSvc)
}

func (suite *OrderHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *OrderHandlerTestSuite) TestCreateOrder_Success() {
	order := &domain.Order{
		OrderID:        12,
		OriginalAmount: decimal.NewFromInt(100),
		Currency:       "USD",
		ExchangeRate:   decimal.RequireFromString("25.00"),
		Trackings:      []domain.Tracking{},
	}
	suite.mockOrderSvc.On("CreateOrder", mock.Anything, mock.AnythingOfType("dto.CreateOrderRequest")).
		Return(order, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/orders", gin.H{
		"purchase_date":   "2024-01-01",
		"original_amount": 100,
		"currency":        "USD",
		"custom_rate":     "25.00",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CreateOrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(int64(12), resp.OrderID)
	suite.Equal(25.0, resp.TasaUsada)
	suite.Equal("2500.00", resp.TotalEnLempiras)
	suite.mockOrderSvc.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestCreateOrder_MissingRequiredFields() {
	w := suite.performRequest(http.MethodPost, "/api/orders", gin.H{
		"currency": "USD",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "missing required fields")
	suite.mockOrderSvc.AssertNotCalled(suite.T(), "CreateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderHandlerTestSuite) TestCreateOrder_InvalidCustomRateRejected() {
	w := suite.performRequest(http.MethodPost, "/api/orders", gin.H{
		"purchase_date":   "2024-01-01",
		"original_amount": 100,
		"currency":        "USD",
		"custom_rate":     "-1",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	// The rejected rule is named, not lumped in with absent fields.
	suite.Contains(w.Body.String(), "custom rate must be a positive number")
	suite.NotContains(w.Body.String(), "missing required fields")
	suite.mockOrderSvc.AssertNotCalled(suite.T(), "CreateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderHandlerTestSuite) TestCreateOrder_ServiceValidationError() {
	suite.mockOrderSvc.On("CreateOrder", mock.Anything, mock.AnythingOfType("dto.CreateOrderRequest")).
		Return(nil, apperrors.NewValidationError("invalid purchase_date")).Once()

	w := suite.performRequest(http.MethodPost, "/api/orders", gin.H{
		"purchase_date":   "bad-date",
		"original_amount": 100,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockOrderSvc.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestCreateOrder_StorageErrorIs500() {
	suite.mockOrderSvc.On("CreateOrder", mock.Anything, mock.AnythingOfType("dto.CreateOrderRequest")).
		Return(nil, apperrors.NewAppError(500, "failed to insert order", nil)).Once()

	w := suite.performRequest(http.MethodPost, "/api/orders", gin.H{
		"purchase_date":   "2024-01-01",
		"original_amount": 100,
	})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "failed to insert order")
	suite.mockOrderSvc.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestListOrders_EmptyTrackingsSerializeAsEmptyArray() {
	orders := []domain.Order{
		{OrderID: 3, Currency: "HNL", ExchangeRate: decimal.NewFromInt(1), Trackings: []domain.Tracking{}},
	}
	suite.mockOrderSvc.On("ListOrders", mock.Anything).Return(orders, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/orders", nil)

	suite.Equal(http.StatusOK, w.Code)
	// An order without trackings must carry an empty array, never null.
	suite.Contains(w.Body.String(), `"trackings":[]`)
	suite.mockOrderSvc.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestListOrders_EmbedsTrackings() {
	orders := []domain.Order{
		{
			OrderID:      8,
			Currency:     "USD",
			ExchangeRate: decimal.RequireFromString("24.69"),
			Trackings: []domain.Tracking{
				{TrackingID: 1, OrderID: 8, TrackingNumber: "1Z999", Carrier: "UPS"},
			},
		},
	}
	suite.mockOrderSvc.On("ListOrders", mock.Anything).Return(orders, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/orders", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.OrderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Require().Len(resp[0].Trackings, 1)
	suite.Equal("1Z999", resp[0].Trackings[0].NGuia)
	suite.Equal("UPS", resp[0].Trackings[0].Carrier)
}

func (suite *OrderHandlerTestSuite) TestUpdateFinancials_Success() {
	suite.mockOrderSvc.On("UpdateFinancials", mock.Anything, int64(5), mock.AnythingOfType("dto.UpdateFinancialsRequest")).
		Return(nil).Once()

	w := suite.performRequest(http.MethodPut, "/api/orders/5/financials", gin.H{
		"original_amount":  150,
		"freight_cost_hnl": 300,
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"success":true`)
	suite.mockOrderSvc.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestUpdateFinancials_InvalidID() {
	w := suite.performRequest(http.MethodPut, "/api/orders/abc/financials", gin.H{
		"original_amount": 150,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockOrderSvc.AssertNotCalled(suite.T(), "UpdateFinancials", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderHandlerTestSuite) TestAddTracking_Success() {
	suite.mockOrderSvc.On("AddTracking", mock.Anything, int64(5), dto.TrackingInput{
		TrackingNumber: "XYZ123",
		Carrier:        "FedEx",
	}).Return(nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/orders/5/tracking", gin.H{
		"tracking_number": "XYZ123",
		"carrier":         "FedEx",
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"success":true`)
	suite.mockOrderSvc.AssertExpectations(suite.T())
}

func (suite *OrderHandlerTestSuite) TestDeleteOrder_Success() {
	suite.mockOrderSvc.On("DeleteOrder", mock.Anything, int64(7)).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/orders/7", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"success":true`)
	suite.mockOrderSvc.AssertExpectations(suite.T())
}

// Deleting an id that no longer exists is idempotent at the store level, so
// the handler still reports success.
func (suite *OrderHandlerTestSuite) TestDeleteOrder_MissingIDStillSucceeds() {
	suite.mockOrderSvc.On("DeleteOrder", mock.Anything, int64(9999)).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/orders/9999", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"success":true`)
}

func (suite *OrderHandlerTestSuite) TestGetRate() {
	suite.mockRateSvc.On("QuoteRate", mock.Anything).
		Return(decimal.RequireFromString("24.78")).Once()

	w := suite.performRequest(http.MethodGet, "/api/rate", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(24.78, resp.Rate)
	suite.mockRateSvc.AssertExpectations(suite.T())
}

func TestOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}
