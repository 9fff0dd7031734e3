package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price,omitempty"`
	Description   string          `json:"description,omitempty"`
	ImageURL      string          `json:"image_url"`
	PaymentLink   string          `json:"payment_link"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ProductDTO struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price,omitempty"`
	Description   string          `json:"description,omitempty"`
	ImageURL      string          `json:"image_url"`
	PaymentLink   string          `json:"payment_link"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Banner struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	Link     string `json:"link,omitempty"`
	Position int    `json:"position"`
}

type UploadImageDTO struct {
	Image string `json:"image"` // base64-encoded image data
}

type UploadImageResponse struct {
	URL string `json:"url"`
}
