package services

import (
	"github.com/GbFerrera/asc-admin-api/internal/models"
)

// Transition legality lives here, in one place, and is checked before any
// network call goes out. The backend stays the final arbiter of anything it
// additionally rejects; this table only encodes what the dashboard itself
// guarantees: a transition must change the value, a cancelled order stays
// cancelled, and a settled payment stays paid.

// CanTransitionOrder reports whether an order-level status change is legal.
func CanTransitionOrder(from, to models.OrderStatus) bool {
	if from == to {
		return false
	}
	return from != models.StatusCancelled
}

// CanTransitionPayment reports whether a payment-status change is legal.
func CanTransitionPayment(from, to models.PaymentStatus) bool {
	if from == to {
		return false
	}
	return from != models.PaymentPaid
}

// CanTransitionItem reports whether an item-level status change is legal.
// Items carry no terminal state; any change of value is attempted.
func CanTransitionItem(from, to models.OrderStatus) bool {
	return from != to
}

// ItemStatusTargets returns the statuses an item may transition to, in menu
// order. For any current status that is exactly the three other values.
func ItemStatusTargets(from models.OrderStatus) []models.OrderStatus {
	targets := make([]models.OrderStatus, 0, len(models.OrderStatuses)-1)
	for _, status := range models.OrderStatuses {
		if CanTransitionItem(from, status) {
			targets = append(targets, status)
		}
	}
	return targets
}

// OrderActions computes every transition the detail view may offer for the
// order in its current state:
//   - "mark completed" unless the order is already completed or cancelled;
//   - "cancel" unless the order is already cancelled;
//   - "mark paid" and "mark failed" unless the payment is already paid,
//     with "mark failed" also suppressed once the payment has failed;
//   - per item, every status except the item's current one.
func OrderActions(order *models.Order) models.OrderActions {
	actions := models.OrderActions{
		Order:   []models.OrderStatus{},
		Payment: []models.PaymentStatus{},
		Items:   make([]models.ItemActions, 0, len(order.Items)),
	}

	if CanTransitionOrder(order.Status, models.StatusCompleted) {
		actions.Order = append(actions.Order, models.StatusCompleted)
	}
	if CanTransitionOrder(order.Status, models.StatusCancelled) {
		actions.Order = append(actions.Order, models.StatusCancelled)
	}

	for _, status := range []models.PaymentStatus{models.PaymentPaid, models.PaymentFailed} {
		if CanTransitionPayment(order.PaymentStatus, status) {
			actions.Payment = append(actions.Payment, status)
		}
	}

	for _, item := range order.Items {
		actions.Items = append(actions.Items, models.ItemActions{
			ItemID:  item.ID,
			Targets: ItemStatusTargets(item.Status),
		})
	}

	return actions
}
