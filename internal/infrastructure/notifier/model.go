package notifier

import "time"

type AdminMessagePayload struct {
	Kind        string    `json:"kind"`
	StoreID     string    `json:"store_id"`
	StoreName   string    `json:"store_name"`
	DaysPending int       `json:"days_pending,omitempty"`
	Message     string    `json:"message"`
	SentAt      time.Time `json:"sent_at"`
}
