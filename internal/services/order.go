package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/GbFerrera/asc-admin-api/internal/logger"
	"github.com/GbFerrera/asc-admin-api/internal/models"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound        = errors.New("order does not exist")
	ErrItemNotFound         = errors.New("item does not belong to the order")
	ErrInvalidStatus        = errors.New("status value is not known")
	ErrTransitionNotAllowed = errors.New("status transition is not allowed")
	ErrTransitionInFlight   = errors.New("a transition for this target is already in flight")
)

// OrderService mediates every status-changing action into one mutating call
// against the backend followed by one confirmation re-fetch. It owns no order
// state: the re-fetched order is the sole source of truth, and reads always
// go back to the backend.
type OrderService struct {
	backend  ordersBackend
	inflight inflightGuard
}

// ordersBackend is the slice of the backend client the workflow needs.
type ordersBackend interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListUserOrders(ctx context.Context, userID int64) ([]models.Order, error)
	GetOrder(ctx context.Context, orderID int64) (*models.Order, error)
	CreateOrder(ctx context.Context, data models.OrderCreateData) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, orderID int64, status models.PaymentStatus) error
	UpdateItemStatus(ctx context.Context, orderID, itemID int64, status models.OrderStatus) error
	CancelOrder(ctx context.Context, orderID int64) error
}

// NewOrderService creates an OrderService backed by the given client.
func NewOrderService(backend ordersBackend) *OrderService {
	return &OrderService{
		backend:  backend,
		inflight: inflightGuard{active: map[string]struct{}{}},
	}
}

// GetOrders fetches the full order collection. On failure it yields an empty
// collection together with the error, so the list view always has something
// to render.
func (o *OrderService) GetOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := o.backend.ListOrders(ctx)
	if err != nil {
		return []models.Order{}, err
	}

	return orders, nil
}

// GetUserOrders fetches the orders of a single customer, with the same
// empty-collection contract as GetOrders.
func (o *OrderService) GetUserOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	orders, err := o.backend.ListUserOrders(ctx, userID)
	if err != nil {
		return []models.Order{}, err
	}

	return orders, nil
}

// GetOrder fetches one order. A missing order is ErrOrderNotFound.
func (o *OrderService) GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	order, err := o.backend.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order == nil {
		return nil, ErrOrderNotFound
	}

	return order, nil
}

// CreateOrder registers a new order through the backend.
func (o *OrderService) CreateOrder(ctx context.Context, data models.OrderCreateData) (*models.Order, error) {
	return o.backend.CreateOrder(ctx, data)
}

// SetOrderStatus transitions the order-level status. The current order is
// read first so the transition can be rejected locally before any mutation
// goes out; the mutation is then applied and confirmed with a re-fetch.
func (o *OrderService) SetOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) (*models.TransitionResult, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	key := orderActionKey(orderID)
	if !o.inflight.acquire(key) {
		return nil, ErrTransitionInFlight
	}
	defer o.inflight.release(key)

	order, err := o.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !CanTransitionOrder(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, order.Status, status)
	}

	if err := o.backend.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Status do pedido #%d atualizado para %s", orderID, status.Label())

	return o.reconcile(ctx, orderID, message), nil
}

// SetPaymentStatus transitions the payment status, with the same contract as
// SetOrderStatus.
func (o *OrderService) SetPaymentStatus(ctx context.Context, orderID int64, status models.PaymentStatus) (*models.TransitionResult, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	key := orderActionKey(orderID)
	if !o.inflight.acquire(key) {
		return nil, ErrTransitionInFlight
	}
	defer o.inflight.release(key)

	order, err := o.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !CanTransitionPayment(order.PaymentStatus, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, order.PaymentStatus, status)
	}

	if err := o.backend.UpdatePaymentStatus(ctx, orderID, status); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Status de pagamento do pedido #%d atualizado para %s", orderID, status.Label())

	return o.reconcile(ctx, orderID, message), nil
}

// SetItemStatus transitions the status of a single item. The item must
// belong to the order; the order-level status is left alone even when every
// item reaches the same value.
func (o *OrderService) SetItemStatus(ctx context.Context, orderID, itemID int64, status models.OrderStatus) (*models.TransitionResult, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	key := itemActionKey(orderID, itemID)
	if !o.inflight.acquire(key) {
		return nil, ErrTransitionInFlight
	}
	defer o.inflight.release(key)

	order, err := o.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	item := order.Item(itemID)
	if item == nil {
		return nil, fmt.Errorf("%w: item %d, order %d", ErrItemNotFound, itemID, orderID)
	}

	if !CanTransitionItem(item.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, item.Status, status)
	}

	if err := o.backend.UpdateItemStatus(ctx, orderID, itemID, status); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Status do item atualizado para %s", status.Label())

	return o.reconcile(ctx, orderID, message), nil
}

// CancelOrder runs the alternate cancellation path, flipping the order to
// cancelled and the payment to failed in a single backend call.
func (o *OrderService) CancelOrder(ctx context.Context, orderID int64) (*models.TransitionResult, error) {
	key := orderActionKey(orderID)
	if !o.inflight.acquire(key) {
		return nil, ErrTransitionInFlight
	}
	defer o.inflight.release(key)

	order, err := o.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !CanTransitionOrder(order.Status, models.StatusCancelled) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, order.Status, models.StatusCancelled)
	}

	if err := o.backend.CancelOrder(ctx, orderID); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Pedido #%d cancelado", orderID)

	return o.reconcile(ctx, orderID, message), nil
}

// reconcile re-fetches the order after a successful mutation. When the
// re-fetch fails or comes back empty the mutation has still landed, so the
// result keeps the success message but reports the unconfirmed outcome and
// carries no order.
func (o *OrderService) reconcile(ctx context.Context, orderID int64, message string) *models.TransitionResult {
	order, err := o.backend.GetOrder(ctx, orderID)

	if err != nil || order == nil {
		if err != nil {
			logger.Log.Warn("transition applied but confirmation fetch failed",
				zap.Int64("orderID", orderID),
				zap.Error(err),
			)
		} else {
			logger.Log.Warn("transition applied but confirmation fetch returned no order",
				zap.Int64("orderID", orderID),
			)
		}

		return &models.TransitionResult{
			Outcome: models.TransitionUnconfirmed,
			Message: message,
		}
	}

	return &models.TransitionResult{
		Outcome: models.TransitionConfirmed,
		Message: message,
		Order:   order,
	}
}

func orderActionKey(orderID int64) string {
	return fmt.Sprintf("order:%d", orderID)
}

func itemActionKey(orderID, itemID int64) string {
	return fmt.Sprintf("item:%d:%d", orderID, itemID)
}

// inflightGuard is the per-action busy marker: the same logical action cannot
// be re-invoked while its request is outstanding, while unrelated actions
// (other orders, other items of the same order) proceed concurrently.
type inflightGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func (g *inflightGuard) acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return false
	}

	g.active[key] = struct{}{}
	return true
}

func (g *inflightGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.active, key)
}
