package entity

import "time"

// StoreStatus is the derived availability of the storefront at EvaluatedAt.
// It is never persisted.
type StoreStatus struct {
	IsOpen          bool       `json:"isOpen"`
	ClosedMessage   *string    `json:"closedMessage"`   // nil when open
	NextOpeningTime *string    `json:"nextOpeningTime"` // "HH:MM" in store time, nil when open or force-closed
	NextOpeningAt   *time.Time `json:"nextOpeningAt"`
	EvaluatedAt     time.Time  `json:"evaluatedAt"`
}
