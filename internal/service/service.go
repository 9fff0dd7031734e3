package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ibeloyar/memestore/internal/model"
	"github.com/ibeloyar/memestore/pgk/auth"
	"github.com/shopspring/decimal"
)

type StorageRepo interface {
	GetUserByLogin(ctx context.Context, login string) *model.User
	CreateUser(ctx context.Context, user model.User) (int64, error)

	CreateOrder(ctx context.Context, order model.Order) error
	GetOrderByID(ctx context.Context, id string) (*model.Order, error)
	GetLatestPendingOrder(ctx context.Context, phone string, amount decimal.Decimal) (*model.Order, error)
	MarkOrderPaid(ctx context.Context, id, paymentID string, paymentDetails json.RawMessage) error
	GetOrdersByPhone(ctx context.Context, phone string) ([]model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	SetOrderStatus(ctx context.Context, id string, status model.OrderStatus) error
	DeleteOrder(ctx context.Context, id string) error

	GetProducts(ctx context.Context) ([]model.Product, error)
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, product model.Product) error
	UpdateProduct(ctx context.Context, product model.Product) error
	DeleteProduct(ctx context.Context, id string) error

	GetCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, category model.Category) error
	DeleteCategory(ctx context.Context, id string) error

	GetBanners(ctx context.Context) ([]model.Banner, error)
	CreateBanner(ctx context.Context, banner model.Banner) error
	DeleteBanner(ctx context.Context, id string) error
}

type PasswordRepo interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
}

// UploadClient is the outbound HTTP client used by the image upload proxy.
type UploadClient interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

type Config struct {
	TokenSecret   string
	TokenLifetime time.Duration
	WebhookSecret string
	ImgBBAPIKey   string
}

type Service struct {
	storage  StorageRepo
	password PasswordRepo
	client   UploadClient

	tokenSecret   string
	tokenExp      time.Duration
	webhookSecret string
	imgbbAPIKey   string
	uploadURL     string
}

func New(s StorageRepo, p PasswordRepo, client UploadClient, cfg Config) *Service {
	return &Service{
		storage:  s,
		password: p,
		client:   client,

		tokenSecret:   cfg.TokenSecret,
		tokenExp:      cfg.TokenLifetime,
		webhookSecret: cfg.WebhookSecret,
		imgbbAPIKey:   cfg.ImgBBAPIKey,
		uploadURL:     defaultUploadURL,
	}
}

func (s *Service) Login(ctx context.Context, input model.LoginDTO) (string, *model.APIError) {
	if err := validateLoginDTO(input); err != nil {
		return "", &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	user := s.storage.GetUserByLogin(ctx, input.Login)
	if user == nil {
		return "", &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrInvalidLoginOrPasswordMessage,
		}
	}

	if !s.password.CheckPasswordHash(input.Password, user.Password) {
		return "", &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrInvalidLoginOrPasswordMessage,
		}
	}

	token, err := auth.GenerateBearerToken(model.TokenInfo{
		ID:    user.ID,
		Login: user.Login,
	}, s.tokenExp, s.tokenSecret)
	if err != nil {
		return "", &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return token, nil
}

// RegisterAdmin creates another administrator account. Reachable only from
// behind the admin auth middleware.
func (s *Service) RegisterAdmin(ctx context.Context, input model.LoginDTO) *model.APIError {
	if err := validateLoginDTO(input); err != nil {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	passwordHash, err := s.password.HashPassword(input.Password)
	if err != nil {
		return &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	_, err = s.storage.CreateUser(ctx, model.User{
		Login:    input.Login,
		Password: passwordHash,
	})
	if err != nil {
		if err == model.ErrUserAlreadyExist {
			return &model.APIError{
				Code:    http.StatusConflict,
				Message: err.Error(),
			}
		}
		return &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	return nil
}
