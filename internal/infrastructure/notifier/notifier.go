package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/trazai/lojista-service/internal/domain"
)

// WebhookNotifier posts admin messages to a configured webhook.
// Delivery is fire-and-forget: failures are logged and never reach the
// caller, so a dead webhook cannot abort a sweep.
type WebhookNotifier struct {
	URL    string
	client *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		URL: url,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (n *WebhookNotifier) NotifyAdmin(notification domain.AdminNotification) {
	if n.URL == "" {
		return
	}

	payload := AdminMessagePayload{
		Kind:        string(notification.Kind),
		StoreID:     notification.StoreID,
		StoreName:   notification.StoreName,
		DaysPending: notification.DaysPending,
		Message:     formatMessage(notification),
		SentAt:      time.Now(),
	}

	go func() {
		body, err := json.Marshal(payload)
		if err != nil {
			log.Printf("Failed to marshal admin message: %v\n", err)
			return
		}

		req, err := http.NewRequest("POST", n.URL, bytes.NewBuffer(body))
		if err != nil {
			log.Printf("Failed to create admin message request: %v\n", err)
			return
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			log.Printf("Admin message failed: %v\n", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Printf("Admin message sent to %s\n", n.URL)
		} else {
			log.Printf("Admin webhook returned status %d", resp.StatusCode)
		}
	}()
}

func formatMessage(n domain.AdminNotification) string {
	switch n.Kind {
	case domain.NotificationStoreBlocked:
		return fmt.Sprintf("Loja %q bloqueada: comissão pendente há %d dias", n.StoreName, n.DaysPending)
	case domain.NotificationBlockWarning:
		return fmt.Sprintf("Loja %q com comissão pendente há %d dias, próxima do bloqueio", n.StoreName, n.DaysPending)
	case domain.NotificationStoreUnlocked:
		return fmt.Sprintf("Loja %q desbloqueada: comissões regularizadas", n.StoreName)
	default:
		return fmt.Sprintf("Loja %q: %s", n.StoreName, n.Kind)
	}
}
