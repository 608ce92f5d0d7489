package mappers

import (
	"github.com/trazai/lojista-service/internal/domain"
	"github.com/trazai/lojista-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:              model.ID,
		StoreID:         model.StoreID,
		ClientName:      model.ClientName,
		Total:           model.Total,
		Status:          model.Status,
		CommissionPaid:  model.CommissionPaid,
		PaymentIntentID: model.PaymentIntentID,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:              order.ID,
		StoreID:         order.StoreID,
		ClientName:      order.ClientName,
		Total:           order.Total,
		Status:          order.Status,
		CommissionPaid:  order.CommissionPaid,
		PaymentIntentID: order.PaymentIntentID,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}
