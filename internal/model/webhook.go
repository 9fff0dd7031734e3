package model

// Payment gateway event names that mean funds were captured. The gateway
// delivers many other event kinds to the same endpoint; everything else is
// acknowledged and ignored. payment_page.paid is the Payment Pages variant
// of the same signal.
const (
	EventPaymentCaptured = "payment.captured"
	EventPaymentPagePaid = "payment_page.paid"
)

// OrderIDNoteKey is the metadata key under which the storefront passes its
// own order id through the hosted payment page.
const OrderIDNoteKey = "order_id"

// PaymentEvent is the notification body delivered by the payment gateway.
// It is parsed only after the raw bytes have passed signature verification.
type PaymentEvent struct {
	Event   string         `json:"event"`
	Payload PaymentPayload `json:"payload"`
}

type PaymentPayload struct {
	Payment     *PaymentEnvelope `json:"payment,omitempty"`
	PaymentPage *PaymentEnvelope `json:"payment_page,omitempty"`
}

type PaymentEnvelope struct {
	Entity PaymentEntity `json:"entity"`
}

type PaymentEntity struct {
	ID      string            `json:"id"`
	Amount  int64             `json:"amount"` // minor currency units
	Contact string            `json:"contact"`
	Notes   map[string]string `json:"notes"`
}

// Captured reports whether the event kind means a successfully charged payment.
func (e *PaymentEvent) Captured() bool {
	return e.Event == EventPaymentCaptured || e.Event == EventPaymentPagePaid
}

// Entity returns the payment entity regardless of which envelope the gateway
// used, or nil when neither is present.
func (e *PaymentEvent) Entity() *PaymentEntity {
	if e.Payload.Payment != nil {
		return &e.Payload.Payment.Entity
	}
	if e.Payload.PaymentPage != nil {
		return &e.Payload.PaymentPage.Entity
	}
	return nil
}

// WebhookResult is the application-level outcome reported back to the sender.
// All of these are acknowledged with HTTP 200 so the gateway does not retry;
// its retry policy is keyed off the status code alone.
type WebhookResult string

const (
	WebhookResultOK        WebhookResult = "ok"
	WebhookResultIgnored   WebhookResult = "ignored"
	WebhookResultNoMatch   WebhookResult = "no matching order"
	WebhookResultDuplicate WebhookResult = "duplicate"
)
