package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pendente"
	StatusConfirmed OrderStatus = "Confirmado"
	StatusDelivery  OrderStatus = "Em entrega"
	StatusFinalized OrderStatus = "Finalizado"
	StatusCanceled  OrderStatus = "Cancelado"
)

type Order struct {
	ID              string
	StoreID         string
	ClientName      string
	Total           float64
	Status          OrderStatus
	CommissionPaid  bool
	PaymentIntentID *string // processor reference; nil for cash / direct-transfer orders
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PendingCommission is one aggregation row: a store with at least one
// finalized order whose commission is still owed to the platform.
type PendingCommission struct {
	StoreID       string
	StoreName     string
	Blocked       bool
	OldestPending time.Time
	DaysPending   int
}

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	GetOrdersByStoreID(storeID string, page, limit int32) ([]*Order, int64, error)
	UpdateOrderStatus(orderID string, newStatus OrderStatus) error
	SetCommissionPaid(orderID string) error
	PendingCommissionByStore() ([]*PendingCommission, error)
	CountPendingCommission(storeID string) (int64, error)
}
