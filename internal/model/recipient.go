package model

import "github.com/google/uuid"

// Subscription tiers used by audience selection.
const (
	TierPremium = "premium"
	TierFree    = "free"
)

// Recipient is the end-user entity notifications are addressed to.
// Consumed read-only; the surrounding application owns its lifecycle.
type Recipient struct {
	ID   uuid.UUID `json:"id"`
	Tier string    `json:"tier"`
}
