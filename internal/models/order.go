package models

import (
	"encoding/json"

	"github.com/GbFerrera/asc-admin-api/internal/utils"
)

// OrderStatus is the fulfillment stage of an order or of a single item.
// The values are the backend's wire values; Label returns the text the
// dashboard shows for them.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every order/item status in menu order.
var OrderStatuses = []OrderStatus{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pendente"
	case StatusProcessing:
		return "Em Processamento"
	case StatusCompleted:
		return "Concluído"
	case StatusCancelled:
		return "Cancelado"
	}
	return string(s)
}

// PaymentStatus is the settlement stage of an order. Payment status exists
// only at order granularity.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentStatuses lists every payment status in menu order.
var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentPaid, PaymentFailed}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

func (s PaymentStatus) Label() string {
	switch s {
	case PaymentPending:
		return "Pendente"
	case PaymentPaid:
		return "Pago"
	case PaymentFailed:
		return "Falhou"
	}
	return string(s)
}

// OrderItem is a single certificate line within an order. CertificateData is
// an opaque snapshot owned by the backend and is never interpreted here.
type OrderItem struct {
	ID              int64           `json:"id"`
	CertificateID   int64           `json:"certificate_id"`
	CertificateName string          `json:"certificate_name"`
	Price           float64         `json:"price"`
	Quantity        int             `json:"quantity"`
	Status          OrderStatus     `json:"status"`
	CertificateData json.RawMessage `json:"certificate_data,omitempty"`
}

// OrderCustomer is the customer summary the backend embeds into an order.
type OrderCustomer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Order mirrors the backend's order resource field for field. TotalAmount is
// trusted as returned, never recomputed from the items, and the order status
// stays independent from the item statuses.
type Order struct {
	ID            int64             `json:"id"`
	UserID        int64             `json:"user_id"`
	TotalAmount   float64           `json:"total_amount"`
	Status        OrderStatus       `json:"status"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	PaymentID     string            `json:"payment_id,omitempty"`
	TrackingCode  string            `json:"tracking_code,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     utils.RFC3339Date `json:"created_at"`
	UpdatedAt     utils.RFC3339Date `json:"updated_at"`
	Items         []OrderItem       `json:"items"`
	User          *OrderCustomer    `json:"user,omitempty"`
}

// Item returns the item with the given id, or nil when the order has no such
// item.
func (o *Order) Item(itemID int64) *OrderItem {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			return &o.Items[i]
		}
	}
	return nil
}

// OrderCreateItem is one line of an order creation request.
type OrderCreateItem struct {
	CertificateID   int64           `json:"certificate_id"`
	Quantity        int             `json:"quantity"`
	Price           *float64        `json:"price,omitempty"`
	CertificateData json.RawMessage `json:"certificate_data,omitempty"`
}

// OrderCreateData is the payload of POST /orders on the backend.
type OrderCreateData struct {
	UserID           int64             `json:"user_id"`
	CertificateItems []OrderCreateItem `json:"certificate_items"`
	Notes            string            `json:"notes,omitempty"`
}
