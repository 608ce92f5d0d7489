package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/trazai/lojista-service/internal/domain"
	"github.com/trazai/lojista-service/internal/infrastructure/postgres/mappers"
	"github.com/trazai/lojista-service/internal/infrastructure/postgres/models"
)

type DefaultStoreRepository struct {
	db *gorm.DB
}

func NewDefaultStoreRepository(db *gorm.DB) *DefaultStoreRepository {
	return &DefaultStoreRepository{db: db}
}

func (r *DefaultStoreRepository) CreateStore(store *domain.Store) error {
	return r.db.Create(mappers.ToGORMStore(store)).Error
}

// UpdateStore never touches the blocked column: the commission sweeps own
// that flag, and a full-row write here would revert a concurrent block.
func (r *DefaultStoreRepository) UpdateStore(store *domain.Store) error {
	return r.db.Model(&models.StoreModel{ID: store.ID}).
		Select("name", "phone", "description", "category", "open", "schedule", "updated_at").
		Updates(mappers.ToGORMStore(store)).Error
}

func (r *DefaultStoreRepository) DeleteStore(id string) error {
	return r.db.Delete(&models.StoreModel{}, "id = ?", id).Error
}

func (r *DefaultStoreRepository) GetStoreByID(id string) (*domain.Store, error) {
	var model models.StoreModel
	if err := r.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return mappers.ToDomainStore(&model), nil
}

func (r *DefaultStoreRepository) GetStores(page, limit int32) ([]*domain.Store, error) {
	var storeModels []*models.StoreModel

	offset := (page - 1) * limit
	query := r.db.Model(&models.StoreModel{})

	if err := query.Offset(int(offset)).Limit(int(limit)).Find(&storeModels).Error; err != nil {
		return nil, err
	}

	return r.toDomainList(storeModels), nil
}

func (r *DefaultStoreRepository) GetBlockedStores() ([]*domain.Store, error) {
	var storeModels []*models.StoreModel

	if err := r.db.Where("blocked = ?", true).Find(&storeModels).Error; err != nil {
		return nil, err
	}

	return r.toDomainList(storeModels), nil
}

// SetBlocked is a single-column atomic write; the sweeps re-derive the flag
// from the qualifying order count on every run, so last-write-wins is safe.
func (r *DefaultStoreRepository) SetBlocked(id string, blocked bool) error {
	res := r.db.Model(&models.StoreModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"blocked":    blocked,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStoreNotFound
	}
	return nil
}

func (r *DefaultStoreRepository) toDomainList(storeModels []*models.StoreModel) []*domain.Store {
	stores := make([]*domain.Store, len(storeModels))
	for i, model := range storeModels {
		stores[i] = mappers.ToDomainStore(model)
	}
	return stores
}
