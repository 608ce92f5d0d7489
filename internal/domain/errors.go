package domain

import "errors"

var (
	ErrStoreNotFound  = errors.New("store not found")
	ErrStoreBlocked   = errors.New("store blocked: regularize commission payment to continue")
	ErrStoreIDMissing = errors.New("store id is required")
	ErrOrderNotFound  = errors.New("order not found")
)
