package http

import (
	"context"
	"net/http"

	"github.com/ibeloyar/memestore/internal/model"
	"go.uber.org/zap"
)

type Service interface {
	Login(ctx context.Context, input model.LoginDTO) (string, *model.APIError)
	RegisterAdmin(ctx context.Context, input model.LoginDTO) *model.APIError

	HandleNotification(ctx context.Context, rawBody []byte, signatureHeader string) (model.WebhookResult, *model.APIError)

	CreateOrder(ctx context.Context, input model.CreateOrderDTO) (*model.CreateOrderResponse, *model.APIError)
	GetOrdersByPhone(ctx context.Context, contact string) ([]model.Order, *model.APIError)
	GetAllOrders(ctx context.Context) ([]model.Order, *model.APIError)
	SetOrderStatus(ctx context.Context, id string, status model.OrderStatus) *model.APIError
	DeleteOrder(ctx context.Context, id string) *model.APIError

	GetProducts(ctx context.Context) ([]model.Product, *model.APIError)
	GetProduct(ctx context.Context, id string) (*model.Product, *model.APIError)
	CreateProduct(ctx context.Context, input model.ProductDTO) (*model.Product, *model.APIError)
	UpdateProduct(ctx context.Context, id string, input model.ProductDTO) *model.APIError
	DeleteProduct(ctx context.Context, id string) *model.APIError

	GetCategories(ctx context.Context) ([]model.Category, *model.APIError)
	CreateCategory(ctx context.Context, name string) (*model.Category, *model.APIError)
	DeleteCategory(ctx context.Context, id string) *model.APIError

	GetBanners(ctx context.Context) ([]model.Banner, *model.APIError)
	CreateBanner(ctx context.Context, input model.Banner) (*model.Banner, *model.APIError)
	DeleteBanner(ctx context.Context, id string) *model.APIError

	UploadImage(ctx context.Context, input model.UploadImageDTO) (*model.UploadImageResponse, *model.APIError)
}

type Pinger interface {
	Ping() error
}

type Controller struct {
	service Service
	pinger  Pinger
	lg      *zap.SugaredLogger
}

func New(s Service, p Pinger, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		service: s,
		pinger:  p,
		lg:      lg,
	}
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	if c.pinger == nil || c.pinger.Ping() != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
