package usecase

import (
	"fmt"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/trazai/lojista-service/internal/domain"
	orderdto "github.com/trazai/lojista-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	PlaceOrder(input *orderdto.PlaceOrderInput) (*domain.Order, error)
	GetOrderByID(id string) (*domain.Order, error)
	GetOrdersByStoreID(storeID string, page, limit int32) ([]*domain.Order, int64, error)
	UpdateOrderStatus(id string, status domain.OrderStatus) error
	SettleCommission(orderID string) error
}

type DefaultOrderUsecase struct {
	orderRepo domain.OrderRepository
	now       func() time.Time
}

func NewDefaultOrderUsecase(orderRepo domain.OrderRepository) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		orderRepo: orderRepo,
		now:       time.Now,
	}
}

func (uc *DefaultOrderUsecase) PlaceOrder(input *orderdto.PlaceOrderInput) (*domain.Order, error) {
	if input.StoreID == "" {
		return nil, domain.ErrStoreIDMissing
	}
	if input.Total <= 0 {
		return nil, fmt.Errorf("order total must be positive")
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:              idGenerator(),
		StoreID:         input.StoreID,
		ClientName:      input.ClientName,
		Total:           input.Total,
		Status:          domain.StatusPending,
		CommissionPaid:  false,
		PaymentIntentID: input.PaymentIntentID,
		CreatedAt:       uc.now(),
		UpdatedAt:       uc.now(),
	}

	if err := uc.orderRepo.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

func (uc *DefaultOrderUsecase) GetOrderByID(id string) (*domain.Order, error) {
	return uc.orderRepo.GetOrderByID(id)
}

func (uc *DefaultOrderUsecase) GetOrdersByStoreID(storeID string, page, limit int32) ([]*domain.Order, int64, error) {
	return uc.orderRepo.GetOrdersByStoreID(storeID, page, limit)
}

func (uc *DefaultOrderUsecase) UpdateOrderStatus(id string, status domain.OrderStatus) error {
	return uc.orderRepo.UpdateOrderStatus(id, status)
}

// SettleCommission marks an order's platform commission as paid. The next
// unblocking sweep picks the change up; nothing is unblocked inline here.
func (uc *DefaultOrderUsecase) SettleCommission(orderID string) error {
	order, err := uc.orderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}
	if order.CommissionPaid {
		return nil
	}

	return uc.orderRepo.SetCommissionPaid(orderID)
}
