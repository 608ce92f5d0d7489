package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trazai/lojista-service/internal/domain"
	storedto "github.com/trazai/lojista-service/internal/usecase/dto/store"
)

type StoreUsecase interface {
	CreateStore(input *storedto.CreateStoreInput) (*domain.Store, error)
	UpdateStore(input *storedto.UpdateStoreInput) (*domain.Store, error)
	DeleteStore(id string) error
	GetStoreByID(id string) (*domain.Store, error)
	GetStores(page, limit int32) ([]*domain.Store, error)
	IsStoreOpen(id string) (bool, error)
	CheckStoreAccess(id string) error
}

type DefaultStoreUsecase struct {
	StoreRepo domain.StoreRepository
	now       func() time.Time
}

func NewDefaultStoreUsecase(storeRepo domain.StoreRepository) *DefaultStoreUsecase {
	return &DefaultStoreUsecase{
		StoreRepo: storeRepo,
		now:       time.Now,
	}
}

func (uc *DefaultStoreUsecase) CreateStore(input *storedto.CreateStoreInput) (*domain.Store, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("store name is required")
	}

	store := &domain.Store{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Phone:       input.Phone,
		Description: input.Description,
		Category:    input.Category,
		Open:        true,
		Blocked:     false,
		Schedule:    input.Schedule,
		CreatedAt:   uc.now(),
		UpdatedAt:   uc.now(),
	}

	if err := uc.StoreRepo.CreateStore(store); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return store, nil
}

func (uc *DefaultStoreUsecase) UpdateStore(input *storedto.UpdateStoreInput) (*domain.Store, error) {
	if input.ID == "" {
		return nil, domain.ErrStoreIDMissing
	}

	store, err := uc.StoreRepo.GetStoreByID(input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}

	if input.Name != "" {
		store.Name = input.Name
	}
	if input.Phone != "" {
		store.Phone = input.Phone
	}
	if input.Description != "" {
		store.Description = input.Description
	}
	if input.Category != "" {
		store.Category = input.Category
	}
	if input.Open != nil {
		store.Open = *input.Open
	}
	if input.Schedule != nil {
		store.Schedule = input.Schedule
	}

	store.UpdatedAt = uc.now()

	if err := uc.StoreRepo.UpdateStore(store); err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}

	return store, nil
}

func (uc *DefaultStoreUsecase) DeleteStore(id string) error {
	return uc.StoreRepo.DeleteStore(id)
}

func (uc *DefaultStoreUsecase) GetStoreByID(id string) (*domain.Store, error) {
	store, err := uc.StoreRepo.GetStoreByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	return store, nil
}

func (uc *DefaultStoreUsecase) GetStores(page, limit int32) ([]*domain.Store, error) {
	return uc.StoreRepo.GetStores(page, limit)
}

func (uc *DefaultStoreUsecase) IsStoreOpen(id string) (bool, error) {
	store, err := uc.GetStoreByID(id)
	if err != nil {
		return false, err
	}
	return store.IsOpenAt(uc.now()), nil
}

// CheckStoreAccess is the point read behind the access gate: it resolves the
// store and rejects it while the blocked flag is set. The flag may lag the
// sweeps by one interval, which is accepted.
func (uc *DefaultStoreUsecase) CheckStoreAccess(id string) error {
	if id == "" {
		return domain.ErrStoreIDMissing
	}

	store, err := uc.StoreRepo.GetStoreByID(id)
	if err != nil {
		return fmt.Errorf("failed to look up store: %w", err)
	}
	if store == nil {
		return domain.ErrStoreNotFound
	}
	if store.Blocked {
		return domain.ErrStoreBlocked
	}

	return nil
}
