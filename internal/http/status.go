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

// StatusUpdateRequest carries the target status of an order or item
// transition.
type StatusUpdateRequest struct {
	Status *models.OrderStatus `json:"status"`
}

// PaymentUpdateRequest carries the target payment status of an order.
type PaymentUpdateRequest struct {
	PaymentStatus *models.PaymentStatus `json:"payment_status"`
}

// writeTransitionError maps workflow errors onto HTTP codes. failureMessage
// is the operator-facing text for plain backend failures; the dashboard
// retries nothing, the operator re-invokes the action by hand.
func writeTransitionError(w http.ResponseWriter, err error, failureMessage string) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		http.Error(w, "Pedido não encontrado", http.StatusNotFound)
	case errors.Is(err, services.ErrItemNotFound):
		http.Error(w, "Item não encontrado no pedido", http.StatusNotFound)
	case errors.Is(err, services.ErrInvalidStatus):
		http.Error(w, "Status is invalid", http.StatusUnprocessableEntity)
	case errors.Is(err, services.ErrTransitionNotAllowed):
		http.Error(w, "Transição de status não permitida", http.StatusConflict)
	case errors.Is(err, services.ErrTransitionInFlight):
		http.Error(w, "Já existe uma atualização em andamento", http.StatusConflict)
	case errors.Is(err, api.ErrUnauthorized):
		http.Error(w, "Backend rejected the session token", http.StatusUnauthorized)
	case errors.Is(err, api.ErrForbidden):
		http.Error(w, "Acesso negado", http.StatusForbidden)
	default:
		http.Error(w, failureMessage, http.StatusBadGateway)
	}
}

func parseOrderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		http.Error(w, "Order id is invalid", http.StatusBadRequest)
		return 0, false
	}
	return orderID, true
}

func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseOrderID(w, r)
	if !ok {
		return
	}

	data := middlewares.GetParsedJSONData[StatusUpdateRequest](w, r)
	if data.Status == nil {
		http.Error(w, "Request doesn't contain status", http.StatusBadRequest)
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	result, err := (*orderService).SetOrderStatus(r.Context(), orderID, *data.Status)

	if err != nil {
		writeTransitionError(w, err, "Falha ao atualizar status do pedido. Tente novamente.")
		return
	}

	middlewares.EncodeJSONResponse(w, result)
}

func UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseOrderID(w, r)
	if !ok {
		return
	}

	data := middlewares.GetParsedJSONData[PaymentUpdateRequest](w, r)
	if data.PaymentStatus == nil {
		http.Error(w, "Request doesn't contain payment status", http.StatusBadRequest)
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	result, err := (*orderService).SetPaymentStatus(r.Context(), orderID, *data.PaymentStatus)

	if err != nil {
		writeTransitionError(w, err, "Falha ao atualizar status de pagamento. Tente novamente.")
		return
	}

	middlewares.EncodeJSONResponse(w, result)
}

func UpdateItemStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseOrderID(w, r)
	if !ok {
		return
	}

	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		http.Error(w, "Item id is invalid", http.StatusBadRequest)
		return
	}

	data := middlewares.GetParsedJSONData[StatusUpdateRequest](w, r)
	if data.Status == nil {
		http.Error(w, "Request doesn't contain status", http.StatusBadRequest)
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	result, err := (*orderService).SetItemStatus(r.Context(), orderID, itemID, *data.Status)

	if err != nil {
		writeTransitionError(w, err, "Falha ao atualizar status do item. Tente novamente.")
		return
	}

	middlewares.EncodeJSONResponse(w, result)
}

func CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseOrderID(w, r)
	if !ok {
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	result, err := (*orderService).CancelOrder(r.Context(), orderID)

	if err != nil {
		writeTransitionError(w, err, "Falha ao cancelar pedido. Tente novamente.")
		return
	}

	middlewares.EncodeJSONResponse(w, result)
}
