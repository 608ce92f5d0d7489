package models

import (
	"time"

	"github.com/trazai/lojista-service/internal/domain"
)

type OrderModel struct {
	ID              string             `gorm:"primaryKey"`
	StoreID         string             `gorm:"type:uuid;index:idx_orders_store"`
	Store           StoreModel         `gorm:"foreignKey:StoreID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	ClientName      string
	Total           float64
	Status          domain.OrderStatus `gorm:"index:idx_orders_status"`
	CommissionPaid  bool               `gorm:"default:false;index:idx_orders_commission"`
	PaymentIntentID *string            // null for orders settled outside the processor
	CreatedAt       time.Time          `gorm:"index:idx_orders_created_at"`
	UpdatedAt       time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
