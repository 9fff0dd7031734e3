package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage         = "internal server error"
	ErrInvalidLoginOrPasswordMessage = "invalid login or password"
	ErrInvalidSignatureMessage       = "invalid signature"
	ErrMalformedPayloadMessage       = "malformed payload"
	ErrOrderNotFoundMessage          = "order not found"
	ErrProductNotFoundMessage        = "product not found"
	ErrInvalidOrderStatusMessage     = "invalid order status"
	ErrCustomerDetailsRequiredMsg    = "customer name and phone are required"
	ErrImageDataRequiredMessage      = "no image data provided"
)

var (
	ErrInvalidLoginOrPassword = errors.New(ErrInvalidLoginOrPasswordMessage)

	// ErrOrderNotFound is returned by the repository when an order lookup
	// matches nothing.
	ErrOrderNotFound = errors.New(ErrOrderNotFoundMessage)

	// ErrOrderConflict is returned when a conditional status update touched
	// zero rows: the order has already moved past the expected status.
	ErrOrderConflict = errors.New("order status conflict")

	ErrProductNotFound  = errors.New(ErrProductNotFoundMessage)
	ErrCategoryNotFound = errors.New("category not found")
	ErrBannerNotFound   = errors.New("banner not found")
	ErrUserAlreadyExist = errors.New("user already exists")
)
