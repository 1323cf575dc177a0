package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/GbFerrera/asc-admin-api/internal/models"
)

// orderStatusUpdate and the sibling payloads are the partial updates the
// backend accepts on an order resource. The responses are discarded on
// purpose: the workflow always re-fetches the full order afterwards and
// treats that read as the source of truth.
type orderStatusUpdate struct {
	Status models.OrderStatus `json:"status"`
}

type paymentStatusUpdate struct {
	PaymentStatus models.PaymentStatus `json:"payment_status"`
}

type orderCancellation struct {
	Status        models.OrderStatus   `json:"status"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
}

// ListOrders fetches the full order collection.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order

	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Order{}, nil
		}
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// ListUserOrders fetches the orders belonging to one customer.
func (c *Client) ListUserOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	var orders []models.Order

	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/user/%d", userID), nil, &orders); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.Order{}, nil
		}
		return nil, fmt.Errorf("failed to list orders of user %d: %w", userID, err)
	}

	return orders, nil
}

// GetOrder fetches a single order. A missing order is reported as (nil, nil),
// matching the backend's "order or empty" contract.
func (c *Client) GetOrder(ctx context.Context, orderID int64) (*models.Order, error) {
	var order models.Order

	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil, &order); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order %d: %w", orderID, err)
	}

	return &order, nil
}

// CreateOrder registers a new order for a customer.
func (c *Client) CreateOrder(ctx context.Context, data models.OrderCreateData) (*models.Order, error) {
	var order models.Order

	if err := c.do(ctx, http.MethodPost, "/orders", data, &order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &order, nil
}

// UpdateOrderStatus sends the order-level status change.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) error {
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", orderID), orderStatusUpdate{Status: status}, nil); err != nil {
		return fmt.Errorf("failed to update status of order %d: %w", orderID, err)
	}

	return nil
}

// UpdatePaymentStatus sends the payment-status change.
func (c *Client) UpdatePaymentStatus(ctx context.Context, orderID int64, status models.PaymentStatus) error {
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", orderID), paymentStatusUpdate{PaymentStatus: status}, nil); err != nil {
		return fmt.Errorf("failed to update payment status of order %d: %w", orderID, err)
	}

	return nil
}

// UpdateItemStatus sends a status change for a single item of an order.
func (c *Client) UpdateItemStatus(ctx context.Context, orderID, itemID int64, status models.OrderStatus) error {
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/items/%d", orderID, itemID), orderStatusUpdate{Status: status}, nil); err != nil {
		return fmt.Errorf("failed to update status of item %d of order %d: %w", itemID, orderID, err)
	}

	return nil
}

// CancelOrder hits the alternate cancellation path, which flips the order to
// cancelled and the payment to failed in one call.
func (c *Client) CancelOrder(ctx context.Context, orderID int64) error {
	payload := orderCancellation{Status: models.StatusCancelled, PaymentStatus: models.PaymentFailed}

	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d", orderID), payload, nil); err != nil {
		return fmt.Errorf("failed to cancel order %d: %w", orderID, err)
	}

	return nil
}
