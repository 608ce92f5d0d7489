package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/trazai/lojista-service/internal/domain"
	"github.com/trazai/lojista-service/internal/infrastructure/postgres/mappers"
	"github.com/trazai/lojista-service/internal/infrastructure/postgres/models"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Create(orderModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.First(&order, "id = ?", orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) GetOrdersByStoreID(storeID string, page, limit int32) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	baseQuery := r.DB.Model(&models.OrderModel{}).Where("store_id = ?", storeID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&orderModels).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}

	return orders, total, nil
}

func (r *DefaultOrderRepository) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	return r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     newStatus,
			"updated_at": time.Now(),
		}).Error
}

func (r *DefaultOrderRepository) SetCommissionPaid(orderID string) error {
	return r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"commission_paid": true,
			"updated_at":      time.Now(),
		}).Error
}

// PendingCommissionByStore groups finalized, commission-unpaid orders without
// a processor reference by store. Stores with no qualifying order produce no
// row. DaysPending is filled in by the usecase, which owns the clock.
func (r *DefaultOrderRepository) PendingCommissionByStore() ([]*domain.PendingCommission, error) {
	type pendingRow struct {
		StoreID       string
		StoreName     string
		Blocked       bool
		OldestPending time.Time
	}

	// The raw join bypasses the soft-delete scope on stores, so the filter
	// repeats it: a deleted store must not resurface as a debtor.
	var rows []pendingRow
	err := r.DB.Model(&models.OrderModel{}).
		Select("orders.store_id AS store_id, stores.name AS store_name, stores.blocked AS blocked, MIN(orders.created_at) AS oldest_pending").
		Joins("JOIN stores ON stores.id = orders.store_id").
		Where("orders.status = ? AND orders.commission_paid = ? AND orders.payment_intent_id IS NULL AND stores.deleted_at IS NULL",
			domain.StatusFinalized, false).
		Group("orders.store_id, stores.name, stores.blocked").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	pending := make([]*domain.PendingCommission, len(rows))
	for i, row := range rows {
		pending[i] = &domain.PendingCommission{
			StoreID:       row.StoreID,
			StoreName:     row.StoreName,
			Blocked:       row.Blocked,
			OldestPending: row.OldestPending,
		}
	}

	return pending, nil
}

// CountPendingCommission applies the same qualifying filter as
// PendingCommissionByStore for a single store. Processor-settled orders never
// count as debt, so blocking and unblocking share one rule.
func (r *DefaultOrderRepository) CountPendingCommission(storeID string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.OrderModel{}).
		Where("store_id = ? AND status = ? AND commission_paid = ? AND payment_intent_id IS NULL",
			storeID, domain.StatusFinalized, false).
		Count(&count).Error
	return count, err
}
