package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/ibeloyar/memestore/internal/model"
	"github.com/ibeloyar/memestore/pgk/signature"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "test-secret"

// fakeStorage implements the order-related part of StorageRepo in memory;
// the embedded interface panics on anything the test did not expect to be
// called.
type fakeStorage struct {
	StorageRepo

	orders   map[string]*model.Order
	products map[string]*model.Product

	lookupErr      error
	markPaidErr    error
	createOrderErr error

	markPaidCalls int
	createdOrders []model.Order
}

func newFakeStorage(orders ...model.Order) *fakeStorage {
	s := &fakeStorage{
		orders:   make(map[string]*model.Order),
		products: make(map[string]*model.Product),
	}
	for i := range orders {
		order := orders[i]
		s.orders[order.ID] = &order
	}
	return s
}

func (s *fakeStorage) GetOrderByID(_ context.Context, id string) (*model.Order, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}

	order, ok := s.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}

	copied := *order
	return &copied, nil
}

func (s *fakeStorage) GetLatestPendingOrder(_ context.Context, phone string, amount decimal.Decimal) (*model.Order, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}

	matches := make([]*model.Order, 0)
	for _, order := range s.orders {
		if normalizePhone(order.CustomerPhone) == phone &&
			order.Amount.Equal(amount) &&
			order.Status == model.OrderStatusPending {
			matches = append(matches, order)
		}
	}

	if len(matches) == 0 {
		return nil, model.ErrOrderNotFound
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	copied := *matches[0]
	return &copied, nil
}

func (s *fakeStorage) MarkOrderPaid(_ context.Context, id, paymentID string, paymentDetails json.RawMessage) error {
	if s.markPaidErr != nil {
		return s.markPaidErr
	}

	order, ok := s.orders[id]
	if !ok {
		return model.ErrOrderConflict
	}
	if order.Status != model.OrderStatusPending && order.Status != model.OrderStatusFailed {
		return model.ErrOrderConflict
	}

	order.Status = model.OrderStatusPaid
	order.PaymentID = paymentID
	order.PaymentDetails = paymentDetails
	s.markPaidCalls++

	return nil
}

func newWebhookService(storage StorageRepo) *Service {
	return New(storage, nil, nil, Config{
		TokenSecret:   "secret",
		TokenLifetime: time.Hour,
		WebhookSecret: testWebhookSecret,
	})
}

func signedBody(t *testing.T, payload string) ([]byte, string) {
	t.Helper()
	body := []byte(payload)
	return body, signature.Sign(body, testWebhookSecret)
}

func capturedPayload(paymentID string, amount int64, contact string, notes map[string]string) string {
	event := model.PaymentEvent{
		Event: model.EventPaymentCaptured,
		Payload: model.PaymentPayload{
			Payment: &model.PaymentEnvelope{
				Entity: model.PaymentEntity{
					ID:      paymentID,
					Amount:  amount,
					Contact: contact,
					Notes:   notes,
				},
			},
		},
	}

	raw, _ := json.Marshal(event)
	return string(raw)
}

func pendingOrder(id, phone string, amount string, createdAt time.Time) model.Order {
	return model.Order{
		ID:            id,
		CustomerName:  "Test Customer",
		CustomerPhone: phone,
		ProductID:     "prod-1",
		ProductName:   "Meme Mug",
		Amount:        decimal.RequireFromString(amount),
		Status:        model.OrderStatusPending,
		CreatedAt:     createdAt,
	}
}

func TestHandleNotification_InvalidSignature(t *testing.T) {
	storage := newFakeStorage(pendingOrder("ord-1", "9000000001", "50", time.Now()))
	svc := newWebhookService(storage)

	body := []byte(capturedPayload("pay_1", 5000, "+919000000001", nil))
	wrongSig := signature.Sign(body, "wrong-secret")

	_, apiErr := svc.HandleNotification(context.Background(), body, wrongSig)

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Code)
	assert.Equal(t, model.OrderStatusPending, storage.orders["ord-1"].Status)
	assert.Zero(t, storage.markPaidCalls)
}

func TestHandleNotification_MissingSecret(t *testing.T) {
	svc := New(newFakeStorage(), nil, nil, Config{})

	body, sig := signedBody(t, capturedPayload("pay_1", 5000, "+919000000001", nil))

	_, apiErr := svc.HandleNotification(context.Background(), body, sig)

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}

func TestHandleNotification_MalformedPayload(t *testing.T) {
	svc := newWebhookService(newFakeStorage())

	body, sig := signedBody(t, `{"event": "payment.captured", "payload": `)

	_, apiErr := svc.HandleNotification(context.Background(), body, sig)

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
	assert.Equal(t, model.ErrMalformedPayloadMessage, apiErr.Message)
}

func TestHandleNotification_IgnoredEvent(t *testing.T) {
	storage := newFakeStorage(pendingOrder("ord-1", "9000000001", "50", time.Now()))
	svc := newWebhookService(storage)

	body, sig := signedBody(t, `{"event":"payment.failed","payload":{"payment":{"entity":{"id":"pay_1","amount":5000,"contact":"+919000000001"}}}}`)

	result, apiErr := svc.HandleNotification(context.Background(), body, sig)

	require.Nil(t, apiErr)
	assert.Equal(t, model.WebhookResultIgnored, result)
	assert.Equal(t, model.OrderStatusPending, storage.orders["ord-1"].Status)
}

func TestHandleNotification_DirectReference(t *testing.T) {
	storage := newFakeStorage(pendingOrder("ord-1", "9000000001", "50", time.Now()))
	svc := newWebhookService(storage)

	notes := map[string]string{"order_id": "ord-1"}
	body, sig := signedBody(t, capturedPayload("pay_1", 5000, "+919000000001", notes))

	result, apiErr := svc.HandleNotification(context.Background(), body, sig)

	require.Nil(t, apiErr)
	assert.Equal(t, model.WebhookResultOK, result)
	assert.Equal(t, model.OrderStatusPaid, storage.orders["ord-1"].Status)
	assert.Equal(t, "pay_1", storage.orders["ord-1"].PaymentID)
	assert.NotEmpty(t, storage.orders["ord-1"].PaymentDetails)
}

func TestHandleNotification_DirectReference_UnknownOrder(t *testing.T) {
	storage := newFakeStorage()
	svc := newWebhookService(storage)

	notes := map[string]string{"order_id": "missing"}
	body, sig := signedBody(t, capturedPayload("pay_1", 5000, "+919000000001", notes))

	result, apiErr := svc.HandleNotification(context.Background(), body, sig)

	require.Nil(t, apiErr)
	assert.Equal(t, model.WebhookResultNoMatch, result)
	assert.Zero(t, storage.markPaidCalls)
}

func TestHandleNotification_FuzzyMatch(t *testing.T) {
	// 5000 minor units resolve to 50 currency units
	storage := newFakeStorage(pendingOrder("ord-1", "9000000001", "50", time.Now()))
	svc := newWebhookService(storage)

	body, sig := signedBody(t, capturedPayload("pay_1", 5000, "+919000000001", map[string]string{}))

	result, apiErr := svc.HandleNotification(context.Background(), body, sig)

	require.Nil(t, apiErr)
	assert.Equal(t, model.WebhookResultOK, result)
	assert.Equal(t, model.OrderStatusPaid, storage.orders["ord-1"].Status)
	assert.Equal(t, "pay_1", storage.orders["ord-1"].PaymentID)
}

func TestHandleNotification_FuzzyMatch_PicksMostRecent(t *testing.T) {
	now := time.Now()
	storage := newFakeStorage(
		pendingOrder("ord-older", "9000000001", "100", now.Add(-time.Hour)),
		pendingOrder("ord-newer", "9000000001", "100", now),
	)
	svc := newWebhookService(storage)

	body, sig := signedBody(t, capturedPayload("pay_1", 10000, "9000000001", nil))

	result, apiErr := svc.HandleNotification(context.Background(), body, sig)

	require.Nil(t, apiErr)
	assert.Equal(t, model.WebhookResultOK, result)
	assert.Equal(t, model.OrderStatusPaid, storage.orders["ord-newer"].Status)
	assert.Equal(t, model.OrderStatusPending, storage.orders["ord-older"].Status)
}

func TestHandleNotification_FuzzyMatch_NoMatch(t *testing.T) {
	storage := newFakeStorage(pendingOrder("ord-1", "9000000002", "50", time.Now()))
	svc := newWebhookService(storage)

	body, sig := signedBody(t, capturedPayload("pay_1", 5000, "+919000000001", nil))

	result, apiErr := svc.HandleNotification(context.Background(), body, sig)

	require.Nil(t, apiErr)
	assert.Equal(t, model.WebhookResultNoMatch, result)
	assert.Zero(t, storage.markPaidCalls)
}

func TestHandleNotification_MissingContact(t *testing.T) {
	storage := newFakeStorage(pendingOrder("ord-1", "9000000001", "50", time.Now()))
	svc := newWebhookService(storage)

	body, sig := signedBody(t, capturedPayload("pay_1", 5000, "", nil))

	result, apiErr := svc.HandleNotification(context.Background(), body, sig)

	require.Nil(t, apiErr)
	assert.Equal(t, model.WebhookResultNoMatch, result)
	assert.Zero(t, storage.markPaidCalls)
}

func TestHandleNotification_DuplicateDelivery(t *testing.T) {
	storage := newFakeStorage(pendingOrder("ord-1", "9000000001", "50", time.Now()))
	svc := newWebhookService(storage)

	notes := map[string]string{"order_id": "ord-1"}
	body, sig := signedBody(t, capturedPayload("pay_1", 5000, "+919000000001", notes))

	// replaying the identical notification produces exactly one transition
	for i := 0; i < 5; i++ {
		result, apiErr := svc.HandleNotification(context.Background(), body, sig)
		require.Nil(t, apiErr, "delivery %d", i)

		if i == 0 {
			assert.Equal(t, model.WebhookResultOK, result)
		} else {
			assert.Equal(t, model.WebhookResultDuplicate, result)
		}
	}

	assert.Equal(t, 1, storage.markPaidCalls)
	assert.Equal(t, model.OrderStatusPaid, storage.orders["ord-1"].Status)
}

func TestHandleNotification_NeverRegressesStatus(t *testing.T) {
	for _, status := range []model.OrderStatus{model.OrderStatusPaid, model.OrderStatusDispatched, model.OrderStatusDelivered} {
		t.Run(string(status), func(t *testing.T) {
			order := pendingOrder("ord-1", "9000000001", "50", time.Now())
			order.Status = status
			storage := newFakeStorage(order)
			svc := newWebhookService(storage)

			notes := map[string]string{"order_id": "ord-1"}
			body, sig := signedBody(t, capturedPayload("pay_1", 5000, "+919000000001", notes))

			result, apiErr := svc.HandleNotification(context.Background(), body, sig)

			require.Nil(t, apiErr)
			assert.Equal(t, model.WebhookResultDuplicate, result)
			assert.Equal(t, status, storage.orders["ord-1"].Status)
			assert.Zero(t, storage.markPaidCalls)
		})
	}
}

func TestHandleNotification_PaysFailedOrder(t *testing.T) {
	order := pendingOrder("ord-1", "9000000001", "50", time.Now())
	order.Status = model.OrderStatusFailed
	storage := newFakeStorage(order)
	svc := newWebhookService(storage)

	notes := map[string]string{"order_id": "ord-1"}
	body, sig := signedBody(t, capturedPayload("pay_1", 5000, "+919000000001", notes))

	result, apiErr := svc.HandleNotification(context.Background(), body, sig)

	require.Nil(t, apiErr)
	assert.Equal(t, model.WebhookResultOK, result)
	assert.Equal(t, model.OrderStatusPaid, storage.orders["ord-1"].Status)
}

func TestHandleNotification_ConcurrentWriteConflict(t *testing.T) {
	storage := newFakeStorage(pendingOrder("ord-1", "9000000001", "50", time.Now()))
	storage.markPaidErr = model.ErrOrderConflict
	svc := newWebhookService(storage)

	notes := map[string]string{"order_id": "ord-1"}
	body, sig := signedBody(t, capturedPayload("pay_1", 5000, "+919000000001", notes))

	result, apiErr := svc.HandleNotification(context.Background(), body, sig)

	require.Nil(t, apiErr)
	assert.Equal(t, model.WebhookResultDuplicate, result)
}

func TestHandleNotification_StorageErrorOnResolve(t *testing.T) {
	storage := newFakeStorage()
	storage.lookupErr = errors.New("connection refused")
	svc := newWebhookService(storage)

	body, sig := signedBody(t, capturedPayload("pay_1", 5000, "+919000000001", nil))

	_, apiErr := svc.HandleNotification(context.Background(), body, sig)

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}

func TestHandleNotification_StorageErrorOnUpdate(t *testing.T) {
	storage := newFakeStorage(pendingOrder("ord-1", "9000000001", "50", time.Now()))
	storage.markPaidErr = errors.New("connection refused")
	svc := newWebhookService(storage)

	notes := map[string]string{"order_id": "ord-1"}
	body, sig := signedBody(t, capturedPayload("pay_1", 5000, "+919000000001", notes))

	_, apiErr := svc.HandleNotification(context.Background(), body, sig)

	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}

func TestHandleNotification_PaymentPageEnvelope(t *testing.T) {
	storage := newFakeStorage(pendingOrder("ord-1", "9000000001", "50", time.Now()))
	svc := newWebhookService(storage)

	payload := fmt.Sprintf(
		`{"event":"payment_page.paid","payload":{"payment_page":{"entity":{"id":"pay_1","amount":5000,"contact":"","notes":{"order_id":%q}}}}}`,
		"ord-1")
	body, sig := signedBody(t, payload)

	result, apiErr := svc.HandleNotification(context.Background(), body, sig)

	require.Nil(t, apiErr)
	assert.Equal(t, model.WebhookResultOK, result)
	assert.Equal(t, model.OrderStatusPaid, storage.orders["ord-1"].Status)
}
