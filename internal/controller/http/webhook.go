package http

import (
	"io"
	"net/http"

	"github.com/ibeloyar/memestore/internal/model"
)

// SignatureHeader is the request header carrying the lowercase hex
// HMAC-SHA256 digest of the raw body.
const SignatureHeader = "X-Razorpay-Signature"

type webhookResponse struct {
	Status string `json:"status"`
}

type webhookErrorResponse struct {
	Error string `json:"error"`
}

// PaymentWebhook handles inbound payment gateway notifications. The body is
// read raw and handed to the service untouched; parsing it here would break
// signature verification.
func (c *Controller) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		c.lg.Errorf("webhook: failed to read request body: %v", err)
		writeJSON(w, c.lg, webhookErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}
	defer r.Body.Close()

	result, apiErr := c.service.HandleNotification(r.Context(), body, r.Header.Get(SignatureHeader))
	if apiErr != nil {
		c.lg.Errorf("webhook: notification rejected: %s", apiErr.Message)
		writeJSON(w, c.lg, webhookErrorResponse{Error: apiErr.Message}, apiErr.Code)
		return
	}

	if result != model.WebhookResultOK {
		c.lg.Infof("webhook: handled without mutation: %s", result)
	}

	writeJSON(w, c.lg, webhookResponse{Status: string(result)}, http.StatusOK)
}
