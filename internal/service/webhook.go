package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ibeloyar/memestore/internal/model"
	"github.com/ibeloyar/memestore/pgk/signature"
	"github.com/shopspring/decimal"
)

// HandleNotification authenticates an inbound payment notification against
// the webhook secret, resolves the order it refers to and applies the
// pending/failed -> paid transition exactly once.
//
// rawBody must be the exact bytes read off the wire: the sender signed those
// bytes, and hashing anything re-serialized produces a different digest.
//
// Every non-error outcome (processed, ignored event, no matching order,
// duplicate delivery) is reported as a WebhookResult so the handler can
// acknowledge with 200; the gateway retries on any other status code.
func (s *Service) HandleNotification(ctx context.Context, rawBody []byte, signatureHeader string) (model.WebhookResult, *model.APIError) {
	if s.webhookSecret == "" {
		// fail closed: never process unverified notifications
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	if !signature.Verify(rawBody, signatureHeader, s.webhookSecret) {
		return "", &model.APIError{
			Code:    http.StatusForbidden,
			Message: model.ErrInvalidSignatureMessage,
		}
	}

	var event model.PaymentEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		// authentic but unreadable; distinct from a signature mismatch
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrMalformedPayloadMessage,
		}
	}

	if !event.Captured() {
		return model.WebhookResultIgnored, nil
	}

	payment := event.Entity()
	if payment == nil || payment.ID == "" {
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrMalformedPayloadMessage,
		}
	}

	order, apiErr := s.resolveOrder(ctx, payment)
	if apiErr != nil {
		return "", apiErr
	}
	if order == nil {
		return model.WebhookResultNoMatch, nil
	}

	// duplicate delivery: the order already moved past the webhook's reach
	if order.Status != model.OrderStatusPending && order.Status != model.OrderStatusFailed {
		return model.WebhookResultDuplicate, nil
	}

	evidence, err := json.Marshal(payment)
	if err != nil {
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	err = s.storage.MarkOrderPaid(ctx, order.ID, payment.ID, evidence)
	if errors.Is(err, model.ErrOrderConflict) {
		// a concurrent delivery won the conditional write
		return model.WebhookResultDuplicate, nil
	}
	if err != nil {
		// transient datastore failure: report 500 so the gateway redelivers;
		// safe because the transition above is idempotent
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return model.WebhookResultOK, nil
}

// resolveOrder locates the order a payment refers to. An explicit order id in
// the notes metadata takes precedence; otherwise the most recent pending
// order matching the normalized contact phone and the amount (minor units
// converted to currency units) is taken. A nil order with nil error means no
// match, which the sender must not retry on.
func (s *Service) resolveOrder(ctx context.Context, payment *model.PaymentEntity) (*model.Order, *model.APIError) {
	if orderID := payment.Notes[model.OrderIDNoteKey]; orderID != "" {
		order, err := s.storage.GetOrderByID(ctx, orderID)
		if errors.Is(err, model.ErrOrderNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, &model.APIError{
				Code:    http.StatusInternalServerError,
				Message: model.ErrInternalServerMessage,
			}
		}
		return order, nil
	}

	phone := normalizePhone(payment.Contact)
	if phone == "" {
		return nil, nil
	}

	amount := decimal.New(payment.Amount, -2)

	order, err := s.storage.GetLatestPendingOrder(ctx, phone, amount)
	if errors.Is(err, model.ErrOrderNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return order, nil
}
