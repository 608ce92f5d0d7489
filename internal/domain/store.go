package domain

import "time"

type Store struct {
	ID          string
	Name        string
	Phone       string
	Description string
	Category    string
	Open        bool // manual open/closed switch set by the store owner
	Blocked     bool
	Schedule    WeeklySchedule // nil when absent or unparsable
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type StoreRepository interface {
	CreateStore(store *Store) error
	UpdateStore(store *Store) error
	DeleteStore(id string) error
	GetStoreByID(id string) (*Store, error)
	GetStores(page, limit int32) ([]*Store, error)
	GetBlockedStores() ([]*Store, error)
	SetBlocked(id string, blocked bool) error
}
