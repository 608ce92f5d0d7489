package domain

type NotificationKind string

const (
	NotificationStoreBlocked  NotificationKind = "store_blocked"
	NotificationBlockWarning  NotificationKind = "block_warning"
	NotificationStoreUnlocked NotificationKind = "store_unblocked"
)

type AdminNotification struct {
	Kind        NotificationKind
	StoreID     string
	StoreName   string
	DaysPending int
}

// AdminNotifier delivers fire-and-forget messages to the platform admins.
// Implementations must not block the caller; delivery failures are logged
// and swallowed.
type AdminNotifier interface {
	NotifyAdmin(notification AdminNotification)
}
