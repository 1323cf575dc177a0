package models

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -destination=mocks/mock_order.go . OrderService
type OrderService interface {
	GetOrders(ctx context.Context) ([]Order, error)

	GetUserOrders(ctx context.Context, userID int64) ([]Order, error)

	GetOrder(ctx context.Context, orderID int64) (*Order, error)

	CreateOrder(ctx context.Context, data OrderCreateData) (*Order, error)

	SetOrderStatus(ctx context.Context, orderID int64, status OrderStatus) (*TransitionResult, error)

	SetPaymentStatus(ctx context.Context, orderID int64, status PaymentStatus) (*TransitionResult, error)

	SetItemStatus(ctx context.Context, orderID, itemID int64, status OrderStatus) (*TransitionResult, error)

	CancelOrder(ctx context.Context, orderID int64) (*TransitionResult, error)
}

//go:generate mockgen -destination=mocks/mock_jwt.go . JWTService
type JWTService interface {
	GenerateJWT(subject string) (string, error)

	ValidateToken(token string) (*jwt.Token, error)
}
