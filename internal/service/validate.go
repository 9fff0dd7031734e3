package service

import (
	"errors"
	"strings"

	"github.com/ibeloyar/memestore/internal/model"
)

const (
	minPassLen  = 4
	maxPassLen  = 64
	minLoginLen = 3
	maxLoginLen = 64

	phoneDigits = 10
)

func validateLoginDTO(input model.LoginDTO) error {
	if len(input.Login) < minLoginLen || len(input.Login) > maxLoginLen {
		return errors.New(model.ErrInvalidLoginOrPasswordMessage)
	}

	if len(input.Password) < minPassLen || len(input.Password) > maxPassLen {
		return errors.New(model.ErrInvalidLoginOrPasswordMessage)
	}

	return nil
}

// normalizePhone reduces a contact string to its canonical form: the last 10
// digits, everything else stripped. Returns "" when fewer than 10 digits are
// present, which callers treat as a missing contact.
func normalizePhone(contact string) string {
	var digits strings.Builder

	for _, r := range contact {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	if len(s) < phoneDigits {
		return ""
	}

	return s[len(s)-phoneDigits:]
}

func validateCreateOrderDTO(input model.CreateOrderDTO) error {
	if strings.TrimSpace(input.CustomerName) == "" || normalizePhone(input.CustomerPhone) == "" {
		return errors.New(model.ErrCustomerDetailsRequiredMsg)
	}

	if input.ProductID == "" {
		return errors.New("product id is required")
	}

	return nil
}

func validateProductDTO(input model.ProductDTO) error {
	if strings.TrimSpace(input.Name) == "" {
		return errors.New("product name is required")
	}

	if !input.Price.IsPositive() {
		return errors.New("product price must be positive")
	}

	return nil
}
