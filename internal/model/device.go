package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceEndpoint is one installed app instance that can receive pushes.
// The token issued by the push transport is the identity; re-registering a
// token reassigns it to the new owner.
type DeviceEndpoint struct {
	Token       string    `json:"token"`        // opaque transport token, unique system-wide
	RecipientID uuid.UUID `json:"recipient_id"` // current owner
	DeviceClass string    `json:"device_class"` // e.g. "ios", "android", "web"
	Label       string    `json:"label"`        // human-readable device name
	Active      bool      `json:"active"`       // false after unregister, never hard-deleted
	LastUsedAt  time.Time `json:"last_used_at"`
	CreatedAt   time.Time `json:"created_at"`
}
