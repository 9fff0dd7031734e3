package service

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/ibeloyar/memestore/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *fakeStorage) GetProductByID(_ context.Context, id string) (*model.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, model.ErrProductNotFound
	}

	copied := *product
	return &copied, nil
}

func (s *fakeStorage) CreateOrder(_ context.Context, order model.Order) error {
	if s.createOrderErr != nil {
		return s.createOrderErr
	}

	s.createdOrders = append(s.createdOrders, order)
	s.orders[order.ID] = &order
	return nil
}

func (s *fakeStorage) SetOrderStatus(_ context.Context, id string, status model.OrderStatus) error {
	order, ok := s.orders[id]
	if !ok {
		return model.ErrOrderNotFound
	}

	order.Status = status
	return nil
}

func (s *fakeStorage) withProduct(product model.Product) *fakeStorage {
	s.products[product.ID] = &product
	return s
}

func testProduct() model.Product {
	return model.Product{
		ID:          "prod-1",
		Name:        "Meme Mug",
		Category:    "mugs",
		Price:       decimal.RequireFromString("49.99"),
		ImageURL:    "https://img.example/mug.png",
		PaymentLink: "https://rzp.example/l/mug",
		CreatedAt:   time.Now(),
	}
}

func TestCreateOrder_Success(t *testing.T) {
	storage := newFakeStorage().withProduct(testProduct())
	svc := newWebhookService(storage)

	resp, apiErr := svc.CreateOrder(context.Background(), model.CreateOrderDTO{
		CustomerName:  "Test Customer",
		CustomerPhone: "+919000000001",
		ProductID:     "prod-1",
	})

	require.Nil(t, apiErr)
	require.NotNil(t, resp)
	require.Len(t, storage.createdOrders, 1)

	order := storage.createdOrders[0]
	assert.Equal(t, resp.OrderID, order.ID)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, "Meme Mug", order.ProductName)
	assert.True(t, order.Amount.Equal(decimal.RequireFromString("49.99")))

	// the payment page link must carry the order id back through notes
	u, err := url.Parse(resp.PaymentURL)
	require.NoError(t, err)
	assert.Equal(t, order.ID, u.Query().Get("notes[order_id]"))
	assert.Equal(t, "Test Customer", u.Query().Get("prefill[name]"))
	assert.Equal(t, "+919000000001", u.Query().Get("prefill[contact]"))
}

func TestCreateOrder_ProductNotFound(t *testing.T) {
	svc := newWebhookService(newFakeStorage())

	_, apiErr := svc.CreateOrder(context.Background(), model.CreateOrderDTO{
		CustomerName:  "Test Customer",
		CustomerPhone: "+919000000001",
		ProductID:     "missing",
	})

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
}

func TestCreateOrder_MissingCustomerDetails(t *testing.T) {
	svc := newWebhookService(newFakeStorage().withProduct(testProduct()))

	_, apiErr := svc.CreateOrder(context.Background(), model.CreateOrderDTO{
		CustomerName:  "",
		CustomerPhone: "+919000000001",
		ProductID:     "prod-1",
	})

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
}

func TestCreateOrder_NoPaymentLink(t *testing.T) {
	product := testProduct()
	product.PaymentLink = ""
	svc := newWebhookService(newFakeStorage().withProduct(product))

	_, apiErr := svc.CreateOrder(context.Background(), model.CreateOrderDTO{
		CustomerName:  "Test Customer",
		CustomerPhone: "+919000000001",
		ProductID:     "prod-1",
	})

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Code)
}

func TestSetOrderStatus_AdminTransitions(t *testing.T) {
	order := pendingOrder("ord-1", "9000000001", "50", time.Now())
	order.Status = model.OrderStatusPaid
	storage := newFakeStorage(order)
	svc := newWebhookService(storage)

	apiErr := svc.SetOrderStatus(context.Background(), "ord-1", model.OrderStatusDispatched)
	require.Nil(t, apiErr)
	assert.Equal(t, model.OrderStatusDispatched, storage.orders["ord-1"].Status)

	apiErr = svc.SetOrderStatus(context.Background(), "ord-1", model.OrderStatusDelivered)
	require.Nil(t, apiErr)
	assert.Equal(t, model.OrderStatusDelivered, storage.orders["ord-1"].Status)
}

func TestSetOrderStatus_RejectsWebhookStatuses(t *testing.T) {
	for _, status := range []model.OrderStatus{model.OrderStatusPending, model.OrderStatusPaid, model.OrderStatusFailed, "bogus"} {
		t.Run(string(status), func(t *testing.T) {
			svc := newWebhookService(newFakeStorage())

			apiErr := svc.SetOrderStatus(context.Background(), "ord-1", status)

			require.NotNil(t, apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.Code)
		})
	}
}

func TestSetOrderStatus_NotFound(t *testing.T) {
	svc := newWebhookService(newFakeStorage())

	apiErr := svc.SetOrderStatus(context.Background(), "missing", model.OrderStatusDispatched)

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Code)
}

func TestGetOrdersByPhone_InvalidPhone(t *testing.T) {
	svc := newWebhookService(newFakeStorage())

	_, apiErr := svc.GetOrdersByPhone(context.Background(), "123")

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
}
