package dto

import "time"

// CreateRequest is the payload for creating a notification.
type CreateRequest struct {
	Title             string         `json:"title" validate:"required"`
	Body              string         `json:"body" validate:"required"`
	Data              map[string]any `json:"data"`
	Type              string         `json:"type"`
	Audience          string         `json:"audience" validate:"required,oneof=all premium_users free_users specific_user"`
	TargetRecipientID string         `json:"target_recipient_id" validate:"omitempty,uuid4"`
	ScheduledAt       *time.Time     `json:"scheduled_at"`
}

// UpdateRequest is the payload for patching a scheduled notification.
// Absent fields are left unchanged.
type UpdateRequest struct {
	Title       *string        `json:"title" validate:"omitempty,min=1"`
	Body        *string        `json:"body" validate:"omitempty,min=1"`
	Data        map[string]any `json:"data"`
	Type        *string        `json:"type"`
	ScheduledAt *time.Time     `json:"scheduled_at"`
}

// AcknowledgeRequest marks a delivered notification read or clicked for one
// recipient.
type AcknowledgeRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid4"`
	Status      string `json:"status" validate:"required,oneof=read clicked"`
}

// RegisterDeviceRequest registers a device token for a recipient.
type RegisterDeviceRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid4"`
	Token       string `json:"token" validate:"required"`
	DeviceClass string `json:"device_class" validate:"required"`
	Label       string `json:"label"`
}
