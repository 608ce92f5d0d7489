package domain

import "time"

type StoreEventType string

const (
	StoreEventBlocked   StoreEventType = "BLOCKED"
	StoreEventUnblocked StoreEventType = "UNBLOCKED"
)

type StoreEvent struct {
	StoreID     string         `json:"store_id"`
	StoreName   string         `json:"store_name"`
	Event       StoreEventType `json:"event"`
	DaysPending int            `json:"days_pending,omitempty"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

type StoreEventPublisher interface {
	PublishStoreEvent(event StoreEvent) error
}
