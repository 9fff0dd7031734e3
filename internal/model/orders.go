package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusFailed     OrderStatus = "failed"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusDispatched OrderStatus = "dispatched"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusFailed, OrderStatusPaid, OrderStatusDispatched, OrderStatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID              string          `json:"id"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Amount          decimal.Decimal `json:"amount"`
	Status          OrderStatus     `json:"status"`
	PaymentID       string          `json:"payment_id,omitempty"`
	PaymentDetails  json.RawMessage `json:"payment_details,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type CreateOrderDTO struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address,omitempty"`
	ProductID       string `json:"product_id"`
}

// CreateOrderResponse is returned to the storefront after a pending order has
// been created; PaymentURL points at the hosted payment page with the order id
// carried in the notes metadata so the webhook can find its way back.
type CreateOrderResponse struct {
	OrderID    string `json:"order_id"`
	PaymentURL string `json:"payment_url"`
}

type SetOrderStatusDTO struct {
	Status OrderStatus `json:"status"`
}
