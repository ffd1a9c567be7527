package model

import (
	"time"

	"github.com/google/uuid"
)

// Audience selects which recipients a notification is addressed to.
type Audience string

const (
	AudienceAll          Audience = "all"
	AudiencePremiumUsers Audience = "premium_users"
	AudienceFreeUsers    Audience = "free_users"
	AudienceSpecificUser Audience = "specific_user"
)

// Valid reports whether the audience is one of the known selectors.
func (a Audience) Valid() bool {
	switch a {
	case AudienceAll, AudiencePremiumUsers, AudienceFreeUsers, AudienceSpecificUser:
		return true
	}
	return false
}

// TypeGeneral is the default notification category.
const TypeGeneral = "general"

// Notification represents a notification entity in the system.
type Notification struct {
	ID                uuid.UUID      `json:"id"`                            // unique identifier for the notification
	Title             string         `json:"title"`                         // push title
	Body              string         `json:"body"`                          // push body text
	Data              map[string]any `json:"data,omitempty"`                // free-form payload forwarded to devices
	Type              string         `json:"type"`                          // category tag, e.g. "general", "promo"
	Audience          Audience       `json:"audience"`                      // who receives it
	TargetRecipientID *uuid.UUID     `json:"target_recipient_id,omitempty"` // set iff audience is specific_user
	Status            Status         `json:"status"`                        // current lifecycle state
	ScheduledAt       *time.Time     `json:"scheduled_at,omitempty"`        // when a deferred notification becomes due
	SentAt            *time.Time     `json:"sent_at,omitempty"`             // when the delivery attempt completed
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// NotificationFilter narrows List queries. Nil fields are ignored.
type NotificationFilter struct {
	Status      *Status
	Type        *string
	Audience    *Audience
	RecipientID *uuid.UUID
}
