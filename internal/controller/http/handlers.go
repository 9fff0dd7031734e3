package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ibeloyar/memestore/internal/model"
)

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	token, apiErr := c.service.Login(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Authorization", token)
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if apiErr := c.service.RegisterAdmin(r.Context(), body); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (c *Controller) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CreateOrderDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	response, apiErr := c.service.CreateOrder(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, response, http.StatusCreated)
}

func (c *Controller) GetOrdersByPhone(w http.ResponseWriter, r *http.Request) {
	orders, apiErr := c.service.GetOrdersByPhone(r.Context(), r.URL.Query().Get("phone"))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, orders, http.StatusOK)
}

func (c *Controller) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, apiErr := c.service.GetAllOrders(r.Context())
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, orders, http.StatusOK)
}

func (c *Controller) SetOrderStatus(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.SetOrderStatusDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	apiErr := c.service.SetOrderStatus(r.Context(), chi.URLParam(r, "orderID"), body.Status)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	apiErr := c.service.DeleteOrder(r.Context(), chi.URLParam(r, "orderID"))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, apiErr := c.service.GetProducts(r.Context())
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, products, http.StatusOK)
}

func (c *Controller) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, apiErr := c.service.GetProduct(r.Context(), chi.URLParam(r, "productID"))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, product, http.StatusOK)
}

func (c *Controller) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.ProductDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	product, apiErr := c.service.CreateProduct(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, product, http.StatusCreated)
}

func (c *Controller) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.ProductDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	apiErr := c.service.UpdateProduct(r.Context(), chi.URLParam(r, "productID"), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	apiErr := c.service.DeleteProduct(r.Context(), chi.URLParam(r, "productID"))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, apiErr := c.service.GetCategories(r.Context())
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, categories, http.StatusOK)
}

func (c *Controller) CreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.Category](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	category, apiErr := c.service.CreateCategory(r.Context(), body.Name)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, category, http.StatusCreated)
}

func (c *Controller) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	apiErr := c.service.DeleteCategory(r.Context(), chi.URLParam(r, "categoryID"))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) GetBanners(w http.ResponseWriter, r *http.Request) {
	banners, apiErr := c.service.GetBanners(r.Context())
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, banners, http.StatusOK)
}

func (c *Controller) CreateBanner(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.Banner](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	banner, apiErr := c.service.CreateBanner(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, banner, http.StatusCreated)
}

func (c *Controller) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	apiErr := c.service.DeleteBanner(r.Context(), chi.URLParam(r, "bannerID"))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) UploadImage(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.UploadImageDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	response, apiErr := c.service.UploadImage(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeJSON(w, c.lg, response, http.StatusOK)
}
