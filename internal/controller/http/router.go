package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/ibeloyar/memestore/internal/model"
	"github.com/ibeloyar/memestore/pgk/auth"
)

func InitRoutes(r *chi.Mux, c *Controller, secretKey string) *chi.Mux {

	r.Get("/ping", c.Ping)

	r.Post("/api/webhook/payment", c.PaymentWebhook)

	r.Get("/api/products", c.GetProducts)
	r.Get("/api/products/{productID}", c.GetProduct)
	r.Get("/api/categories", c.GetCategories)
	r.Get("/api/banners", c.GetBanners)

	r.Post("/api/orders", c.CreateOrder)
	r.Get("/api/orders", c.GetOrdersByPhone)

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", c.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.BearerMiddleware[model.TokenInfo](secretKey))

			r.Post("/register", c.RegisterAdmin)

			r.Get("/orders", c.GetAllOrders)
			r.Patch("/orders/{orderID}/status", c.SetOrderStatus)
			r.Delete("/orders/{orderID}", c.DeleteOrder)

			r.Post("/products", c.CreateProduct)
			r.Put("/products/{productID}", c.UpdateProduct)
			r.Delete("/products/{productID}", c.DeleteProduct)

			r.Post("/categories", c.CreateCategory)
			r.Delete("/categories/{categoryID}", c.DeleteCategory)

			r.Post("/banners", c.CreateBanner)
			r.Delete("/banners/{bannerID}", c.DeleteBanner)

			r.Post("/upload-image", c.UploadImage)
		})
	})

	return r
}
