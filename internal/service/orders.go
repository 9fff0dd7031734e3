package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/ibeloyar/memestore/internal/model"
)

// CreateOrder starts a checkout: a pending order is written with the product
// name and price denormalized into it, and the buyer is sent to the hosted
// payment page with the order id carried in the notes metadata.
func (s *Service) CreateOrder(ctx context.Context, input model.CreateOrderDTO) (*model.CreateOrderResponse, *model.APIError) {
	if err := validateCreateOrderDTO(input); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	product, err := s.storage.GetProductByID(ctx, input.ProductID)
	if errors.Is(err, model.ErrProductNotFound) {
		return nil, &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrProductNotFoundMessage,
		}
	}
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	if product.PaymentLink == "" {
		return nil, &model.APIError{
			Code:    http.StatusConflict,
			Message: "payment link is not available for this product",
		}
	}

	order := model.Order{
		ID:              uuid.NewString(),
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		ProductID:       product.ID,
		ProductName:     product.Name,
		Amount:          product.Price,
		Status:          model.OrderStatusPending,
		CreatedAt:       time.Now(),
	}

	if err := s.storage.CreateOrder(ctx, order); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	paymentURL, err := buildPaymentURL(product.PaymentLink, order)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return &model.CreateOrderResponse{
		OrderID:    order.ID,
		PaymentURL: paymentURL,
	}, nil
}

func buildPaymentURL(paymentLink string, order model.Order) (string, error) {
	u, err := url.Parse(paymentLink)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("description", "Order for "+order.ProductName)
	q.Set("notes[order_id]", order.ID)
	q.Set("prefill[name]", order.CustomerName)
	q.Set("prefill[contact]", order.CustomerPhone)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// GetOrdersByPhone returns the customer's order history, newest first.
func (s *Service) GetOrdersByPhone(ctx context.Context, contact string) ([]model.Order, *model.APIError) {
	phone := normalizePhone(contact)
	if phone == "" {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: "valid phone is required",
		}
	}

	orders, err := s.storage.GetOrdersByPhone(ctx, phone)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return orders, nil
}

func (s *Service) GetAllOrders(ctx context.Context) ([]model.Order, *model.APIError) {
	orders, err := s.storage.GetAllOrders(ctx)
	if err != nil {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return orders, nil
}

// SetOrderStatus applies administrator transitions. The webhook alone moves
// orders into paid, so only the fulfillment statuses are allowed here.
func (s *Service) SetOrderStatus(ctx context.Context, id string, status model.OrderStatus) *model.APIError {
	if status != model.OrderStatusDispatched && status != model.OrderStatusDelivered {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrInvalidOrderStatusMessage,
		}
	}

	err := s.storage.SetOrderStatus(ctx, id, status)
	if errors.Is(err, model.ErrOrderNotFound) {
		return &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrOrderNotFoundMessage,
		}
	}
	if err != nil {
		return &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) *model.APIError {
	err := s.storage.DeleteOrder(ctx, id)
	if errors.Is(err, model.ErrOrderNotFound) {
		return &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrOrderNotFoundMessage,
		}
	}
	if err != nil {
		return &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return nil
}
