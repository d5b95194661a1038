package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/webstore/docs"
	"github.com/rogerio-castellano/webstore/internal/http/handlers"
	mw "github.com/rogerio-castellano/webstore/internal/http/middleware"
	rl "github.com/rogerio-castellano/webstore/internal/http/rate_limiter"
)

type routerOptions struct {
	allowedOrigins []string
	limiter        *rl.Limiter
}

type Option func(*routerOptions)

func WithAllowedOrigins(origins []string) Option {
	return func(o *routerOptions) {
		o.allowedOrigins = origins
	}
}

// WithRateLimiter enables per-IP rate limiting. Routers built without it do
// not limit requests.
func WithRateLimiter(l *rl.Limiter) Option {
	return func(o *routerOptions) {
		o.limiter = l
	}
}

func NewRouter(opts ...Option) http.Handler {
	o := routerOptions{allowedOrigins: []string{"*"}}
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Metrics)
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: o.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", mw.RequestIDHeader},
		ExposedHeaders: []string{mw.RequestIDHeader},
	}).Handler)
	if o.limiter != nil {
		r.Use(o.limiter.Middleware)
	}

	r.Get("/healthz", handlers.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Post("/", handlers.GetProductsHandler)
		r.Get("/sections", handlers.GetSectionsHandler)
		r.Get("/sections/{id}", handlers.GetSectionByIDHandler)
		r.Get("/brands", handlers.GetBrandsHandler)
		r.Get("/brands/{id}", handlers.GetBrandByIDHandler)
		r.Get("/{id}", handlers.GetProductByIDHandler)
	})

	r.Route("/api/v1/employees", func(r chi.Router) {
		r.Get("/", handlers.GetEmployeesHandler)
		r.Get("/page", handlers.GetEmployeesPageHandler)
		r.Get("/{id}", handlers.GetEmployeeByIDHandler)

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)
			r.Post("/", handlers.CreateEmployeeHandler)
			r.Put("/{id}", handlers.UpdateEmployeeHandler)
			r.Delete("/{id}", handlers.DeleteEmployeeHandler)
		})
	})

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/", handlers.CatalogHandler)
		r.Get("/sections", handlers.SectionsTreeHandler)
		r.Get("/brands", handlers.BrandsViewHandler)
		r.Get("/{id}", handlers.ProductDetailsHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.Auth)
		r.Get("/cart", handlers.GetCartHandler)
		r.Delete("/cart", handlers.ClearCartHandler)
		r.Post("/cart/checkout", handlers.CheckoutHandler)
		r.Post("/cart/{id}/add", handlers.AddToCartHandler)
		r.Post("/cart/{id}/decrement", handlers.DecrementCartHandler)
		r.Delete("/cart/{id}", handlers.RemoveFromCartHandler)
		r.Get("/orders", handlers.GetUserOrdersHandler)
	})

	return r
}
