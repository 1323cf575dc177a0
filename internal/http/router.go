package router

import (
	"log"
	"net/http"

	"github.com/GbFerrera/asc-admin-api/internal/logger"
	"github.com/GbFerrera/asc-admin-api/internal/middlewares"
	"github.com/GbFerrera/asc-admin-api/internal/models"
	"github.com/go-chi/chi/v5"
)

type Config struct {
	Endpoint string
}

type Router struct {
	config       Config
	jwtService   models.JWTService
	orderService models.OrderService
}

func New(
	config Config,
	jwtService models.JWTService,
	orderService models.OrderService,
) *Router {
	return &Router{
		config,
		jwtService,
		orderService,
	}
}

func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewares.ServiceInjectorMiddleware(
			router.jwtService,
			router.orderService,
		),
		logger.RequestLogger,
		middlewares.AuthMiddleware().WithExcludedPaths(
			"/api/health",
		).Middleware,
	)

	r.Get("/api/health", Health)

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", GetOrders)
		r.With(middlewares.JSONMiddleware[models.OrderCreateData]).Post("/", CreateOrder)

		r.Get("/user/{userID}", GetUserOrders)

		r.Get("/{orderID}", GetOrder)
		r.With(middlewares.JSONMiddleware[StatusUpdateRequest]).Put("/{orderID}/status", UpdateOrderStatus)
		r.With(middlewares.JSONMiddleware[PaymentUpdateRequest]).Put("/{orderID}/payment", UpdatePaymentStatus)
		r.With(middlewares.JSONMiddleware[StatusUpdateRequest]).Put("/{orderID}/items/{itemID}/status", UpdateItemStatus)
		r.Post("/{orderID}/cancel", CancelOrder)
	})

	return r
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (router *Router) Run() {
	log.Fatal(http.ListenAndServe(router.config.Endpoint, router.get()))
}
