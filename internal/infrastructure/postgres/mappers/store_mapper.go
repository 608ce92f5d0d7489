package mappers

import (
	"encoding/json"
	"log/slog"

	"github.com/trazai/lojista-service/internal/domain"
	"github.com/trazai/lojista-service/internal/infrastructure/postgres/models"
)

// ToDomainStore parses the stored schedule payload once, at the data-access
// boundary. An unparsable payload maps to a nil schedule, which the evaluator
// treats as closed.
func ToDomainStore(model *models.StoreModel) *domain.Store {
	schedule, err := domain.ParseWeeklySchedule(model.Schedule)
	if err != nil {
		slog.Warn("store has malformed schedule payload", "store_id", model.ID, "error", err)
		schedule = nil
	}

	return &domain.Store{
		ID:          model.ID,
		Name:        model.Name,
		Phone:       model.Phone,
		Description: model.Description,
		Category:    model.Category,
		Open:        model.Open,
		Blocked:     model.Blocked,
		Schedule:    schedule,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ToGORMStore(store *domain.Store) *models.StoreModel {
	var schedule string
	if store.Schedule != nil {
		raw, err := json.Marshal(store.Schedule)
		if err == nil {
			schedule = string(raw)
		}
	}

	return &models.StoreModel{
		ID:          store.ID,
		Name:        store.Name,
		Phone:       store.Phone,
		Description: store.Description,
		Category:    store.Category,
		Open:        store.Open,
		Blocked:     store.Blocked,
		Schedule:    schedule,
		CreatedAt:   store.CreatedAt,
		UpdatedAt:   store.UpdatedAt,
	}
}
