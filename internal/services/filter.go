package services

import (
	"strconv"
	"strings"

	"github.com/GbFerrera/asc-admin-api/internal/models"
)

// FilterOrders returns the orders matching every predicate of the filter.
// It is a pure function over the in-memory collection: the source slice is
// not mutated, its ordering is preserved, and no network call is involved.
//
// The search term matches case-insensitively against the decimal order id or
// the embedded customer name; an empty term matches everything. The status
// and payment filters match on equality, with "" and "all" matching every
// order. An order is included only when all three predicates hold.
func FilterOrders(orders []models.Order, filter models.OrderFilter) []models.Order {
	result := make([]models.Order, 0, len(orders))
	term := strings.ToLower(filter.Search)

	for _, order := range orders {
		if !matchesSearch(order, term) {
			continue
		}
		if !matchesValue(filter.Status, string(order.Status)) {
			continue
		}
		if !matchesValue(filter.Payment, string(order.PaymentStatus)) {
			continue
		}
		result = append(result, order)
	}

	return result
}

func matchesSearch(order models.Order, term string) bool {
	if term == "" {
		return true
	}

	if strings.Contains(strconv.FormatInt(order.ID, 10), term) {
		return true
	}

	var name string
	if order.User != nil {
		name = order.User.Name
	}

	return strings.Contains(strings.ToLower(name), term)
}

func matchesValue(filter, value string) bool {
	return filter == "" || filter == models.FilterAll || filter == value
}
