package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ibeloyar/memestore/internal/model"
)

func (s *Service) GetProducts(ctx context.Context) ([]model.Product, *model.APIError) {
	products, err := s.storage.GetProducts(ctx)
	if err != nil {
		return nil, internalError()
	}

	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*model.Product, *model.APIError) {
	product, err := s.storage.GetProductByID(ctx, id)
	if errors.Is(err, model.ErrProductNotFound) {
		return nil, &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrProductNotFoundMessage,
		}
	}
	if err != nil {
		return nil, internalError()
	}

	return product, nil
}

func (s *Service) CreateProduct(ctx context.Context, input model.ProductDTO) (*model.Product, *model.APIError) {
	if err := validateProductDTO(input); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	product := model.Product{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Category:      input.Category,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		PaymentLink:   input.PaymentLink,
		CreatedAt:     time.Now(),
	}

	if err := s.storage.CreateProduct(ctx, product); err != nil {
		return nil, internalError()
	}

	return &product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, input model.ProductDTO) *model.APIError {
	if err := validateProductDTO(input); err != nil {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	product := model.Product{
		ID:            id,
		Name:          input.Name,
		Category:      input.Category,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		PaymentLink:   input.PaymentLink,
	}

	err := s.storage.UpdateProduct(ctx, product)
	if errors.Is(err, model.ErrProductNotFound) {
		return &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrProductNotFoundMessage,
		}
	}
	if err != nil {
		return internalError()
	}

	return nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) *model.APIError {
	err := s.storage.DeleteProduct(ctx, id)
	if errors.Is(err, model.ErrProductNotFound) {
		return &model.APIError{
			Code:    http.StatusNotFound,
			Message: model.ErrProductNotFoundMessage,
		}
	}
	if err != nil {
		return internalError()
	}

	return nil
}

func (s *Service) GetCategories(ctx context.Context) ([]model.Category, *model.APIError) {
	categories, err := s.storage.GetCategories(ctx)
	if err != nil {
		return nil, internalError()
	}

	return categories, nil
}

func (s *Service) CreateCategory(ctx context.Context, name string) (*model.Category, *model.APIError) {
	if strings.TrimSpace(name) == "" {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: "category name is required",
		}
	}

	category := model.Category{
		ID:   uuid.NewString(),
		Name: name,
	}

	if err := s.storage.CreateCategory(ctx, category); err != nil {
		return nil, internalError()
	}

	return &category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id string) *model.APIError {
	err := s.storage.DeleteCategory(ctx, id)
	if errors.Is(err, model.ErrCategoryNotFound) {
		return &model.APIError{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		}
	}
	if err != nil {
		return internalError()
	}

	return nil
}

func (s *Service) GetBanners(ctx context.Context) ([]model.Banner, *model.APIError) {
	banners, err := s.storage.GetBanners(ctx)
	if err != nil {
		return nil, internalError()
	}

	return banners, nil
}

func (s *Service) CreateBanner(ctx context.Context, input model.Banner) (*model.Banner, *model.APIError) {
	if input.ImageURL == "" {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: "banner image url is required",
		}
	}

	banner := model.Banner{
		ID:       uuid.NewString(),
		ImageURL: input.ImageURL,
		Link:     input.Link,
		Position: input.Position,
	}

	if err := s.storage.CreateBanner(ctx, banner); err != nil {
		return nil, internalError()
	}

	return &banner, nil
}

func (s *Service) DeleteBanner(ctx context.Context, id string) *model.APIError {
	err := s.storage.DeleteBanner(ctx, id)
	if errors.Is(err, model.ErrBannerNotFound) {
		return &model.APIError{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		}
	}
	if err != nil {
		return internalError()
	}

	return nil
}

func internalError() *model.APIError {
	return &model.APIError{
		Code:    http.StatusInternalServerError,
		Message: model.ErrInternalServerMessage,
	}
}
