package router

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GbFerrera/asc-admin-api/internal/api"
	"github.com/GbFerrera/asc-admin-api/internal/middlewares"
	"github.com/GbFerrera/asc-admin-api/internal/models"
	"github.com/GbFerrera/asc-admin-api/internal/services"
	"github.com/go-chi/chi/v5"
)

// OrdersResponse is the list view payload. When the backend fetch fails the
// collection stays empty and Error carries the notification text, so the
// view always renders.
type OrdersResponse struct {
	Orders []models.Order `json:"orders"`
	Error  string         `json:"error,omitempty"`
}

// OrderDetailResponse is the detail view payload: the order plus the
// transitions currently worth offering for it.
type OrderDetailResponse struct {
	Order   *models.Order       `json:"order"`
	Actions models.OrderActions `json:"actions"`
}

func GetOrders(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	orders, err := (*orderService).GetOrders(r.Context())

	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			http.Error(w, "Backend rejected the session token", http.StatusUnauthorized)
			return
		}

		middlewares.EncodeJSONResponse(w, OrdersResponse{
			Orders: []models.Order{},
			Error:  "Falha ao carregar pedidos. Tente novamente mais tarde.",
		})
		return
	}

	filter := models.OrderFilter{
		Search:  r.URL.Query().Get("search"),
		Status:  r.URL.Query().Get("status"),
		Payment: r.URL.Query().Get("payment_status"),
	}

	middlewares.EncodeJSONResponse(w, OrdersResponse{Orders: services.FilterOrders(orders, filter)})
}

func GetUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		http.Error(w, "User id is invalid", http.StatusBadRequest)
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	orders, err := (*orderService).GetUserOrders(r.Context(), userID)

	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			http.Error(w, "Backend rejected the session token", http.StatusUnauthorized)
			return
		}

		middlewares.EncodeJSONResponse(w, OrdersResponse{
			Orders: []models.Order{},
			Error:  "Falha ao carregar pedidos. Tente novamente mais tarde.",
		})
		return
	}

	middlewares.EncodeJSONResponse(w, OrdersResponse{Orders: orders})
}

func GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		http.Error(w, "Order id is invalid", http.StatusBadRequest)
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	order, err := (*orderService).GetOrder(r.Context(), orderID)

	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			http.Error(w, "Pedido não encontrado", http.StatusNotFound)
			return
		}

		if errors.Is(err, api.ErrUnauthorized) {
			http.Error(w, "Backend rejected the session token", http.StatusUnauthorized)
			return
		}

		http.Error(w, "Falha ao carregar detalhes do pedido. Tente novamente mais tarde.", http.StatusBadGateway)
		return
	}

	middlewares.EncodeJSONResponse(w, OrderDetailResponse{
		Order:   order,
		Actions: services.OrderActions(order),
	})
}

func CreateOrder(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.OrderCreateData](w, r)

	if data.UserID == 0 || len(data.CertificateItems) == 0 {
		http.Error(w, "Request doesn't contain user id or certificate items", http.StatusBadRequest)
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	order, err := (*orderService).CreateOrder(r.Context(), data)

	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			http.Error(w, "Backend rejected the session token", http.StatusUnauthorized)
			return
		}

		http.Error(w, "Falha ao criar pedido. Tente novamente.", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	middlewares.EncodeJSONResponse(w, order)
}
