package storedto

import "github.com/trazai/lojista-service/internal/domain"

type CreateStoreInput struct {
	Name        string
	Phone       string
	Description string
	Category    string
	Schedule    domain.WeeklySchedule
}

type UpdateStoreInput struct {
	ID          string
	Name        string
	Phone       string
	Description string
	Category    string
	Open        *bool
	Schedule    domain.WeeklySchedule
}
