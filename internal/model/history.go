package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the per-recipient delivery state of a notification.
type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryRead      DeliveryStatus = "read"
	DeliveryClicked   DeliveryStatus = "clicked"
)

// DeliveryHistoryEntry records that a recipient was a delivery target of a
// notification. At most one entry exists per (notification, recipient) pair,
// regardless of how many devices the recipient owns.
type DeliveryHistoryEntry struct {
	NotificationID uuid.UUID      `json:"notification_id"`
	RecipientID    uuid.UUID      `json:"recipient_id"`
	Status         DeliveryStatus `json:"status"`
	DeliveredAt    time.Time      `json:"delivered_at"`
	ReadAt         *time.Time     `json:"read_at,omitempty"`
	ClickedAt      *time.Time     `json:"clicked_at,omitempty"`
}
