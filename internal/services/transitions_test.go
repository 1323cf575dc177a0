package services

import (
	"testing"

	"github.com/GbFerrera/asc-admin-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrder(t *testing.T) {
	assert.True(t, CanTransitionOrder(models.StatusPending, models.StatusCompleted))
	assert.True(t, CanTransitionOrder(models.StatusProcessing, models.StatusCancelled))
	assert.True(t, CanTransitionOrder(models.StatusCompleted, models.StatusCancelled))

	// No transition to the current value.
	assert.False(t, CanTransitionOrder(models.StatusPending, models.StatusPending))

	// A cancelled order stays cancelled.
	assert.False(t, CanTransitionOrder(models.StatusCancelled, models.StatusPending))
	assert.False(t, CanTransitionOrder(models.StatusCancelled, models.StatusCompleted))
}

func TestCanTransitionPayment(t *testing.T) {
	assert.True(t, CanTransitionPayment(models.PaymentPending, models.PaymentPaid))
	assert.True(t, CanTransitionPayment(models.PaymentFailed, models.PaymentPaid))
	assert.True(t, CanTransitionPayment(models.PaymentPending, models.PaymentFailed))

	assert.False(t, CanTransitionPayment(models.PaymentFailed, models.PaymentFailed))

	// A settled payment stays paid.
	assert.False(t, CanTransitionPayment(models.PaymentPaid, models.PaymentPending))
	assert.False(t, CanTransitionPayment(models.PaymentPaid, models.PaymentFailed))
}

func TestItemStatusTargetsExcludeCurrentValue(t *testing.T) {
	assert.Equal(t,
		[]models.OrderStatus{models.StatusPending, models.StatusCompleted, models.StatusCancelled},
		ItemStatusTargets(models.StatusProcessing),
	)
	assert.Equal(t,
		[]models.OrderStatus{models.StatusProcessing, models.StatusCompleted, models.StatusCancelled},
		ItemStatusTargets(models.StatusPending),
	)
	assert.Equal(t,
		[]models.OrderStatus{models.StatusPending, models.StatusProcessing, models.StatusCompleted},
		ItemStatusTargets(models.StatusCancelled),
	)
}

func TestOrderActions(t *testing.T) {
	testCases := []struct {
		testName        string
		status          models.OrderStatus
		payment         models.PaymentStatus
		expectedOrder   []models.OrderStatus
		expectedPayment []models.PaymentStatus
	}{
		{
			testName:        "Should offer completion and cancellation for a pending unpaid order",
			status:          models.StatusPending,
			payment:         models.PaymentPending,
			expectedOrder:   []models.OrderStatus{models.StatusCompleted, models.StatusCancelled},
			expectedPayment: []models.PaymentStatus{models.PaymentPaid, models.PaymentFailed},
		},
		{
			testName:        "Should offer only cancellation for a completed order",
			status:          models.StatusCompleted,
			payment:         models.PaymentPending,
			expectedOrder:   []models.OrderStatus{models.StatusCancelled},
			expectedPayment: []models.PaymentStatus{models.PaymentPaid, models.PaymentFailed},
		},
		{
			testName:        "Should offer nothing for a cancelled order",
			status:          models.StatusCancelled,
			payment:         models.PaymentPending,
			expectedOrder:   []models.OrderStatus{},
			expectedPayment: []models.PaymentStatus{models.PaymentPaid, models.PaymentFailed},
		},
		{
			testName:        "Should offer no payment actions once paid",
			status:          models.StatusProcessing,
			payment:         models.PaymentPaid,
			expectedOrder:   []models.OrderStatus{models.StatusCompleted, models.StatusCancelled},
			expectedPayment: []models.PaymentStatus{},
		},
		{
			testName:        "Should suppress marking failed once the payment has failed",
			status:          models.StatusProcessing,
			payment:         models.PaymentFailed,
			expectedOrder:   []models.OrderStatus{models.StatusCompleted, models.StatusCancelled},
			expectedPayment: []models.PaymentStatus{models.PaymentPaid},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			order := &models.Order{
				ID:            5,
				Status:        tc.status,
				PaymentStatus: tc.payment,
				Items: []models.OrderItem{
					{ID: 10, Status: models.StatusProcessing},
					{ID: 11, Status: models.StatusCompleted},
				},
			}

			actions := OrderActions(order)

			assert.Equal(t, tc.expectedOrder, actions.Order)
			assert.Equal(t, tc.expectedPayment, actions.Payment)

			assert.Equal(t, []models.ItemActions{
				{ItemID: 10, Targets: []models.OrderStatus{models.StatusPending, models.StatusCompleted, models.StatusCancelled}},
				{ItemID: 11, Targets: []models.OrderStatus{models.StatusPending, models.StatusProcessing, models.StatusCancelled}},
			}, actions.Items)
		})
	}
}
