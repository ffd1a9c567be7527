package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/pushgate/push-dispatcher/internal/model"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatch/mock.go -package=mocks

type multicastSender interface {
	SendEachForMulticast(ctx context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type tokenResolver interface {
	Tokens(ctx context.Context, aud model.Audience, target *uuid.UUID) ([]string, error)
	RecipientIDs(ctx context.Context, aud model.Audience, target *uuid.UUID) ([]uuid.UUID, error)
}

type historyWriter interface {
	CreateEntries(ctx context.Context, notificationID uuid.UUID, recipientIDs []uuid.UUID, deliveredAt time.Time) error
}

// Outcome summarizes one multicast delivery.
type Outcome struct {
	SuccessCount int `json:"success_count"`
	FailureCount int `json:"failure_count"`
}

// Dispatcher builds the transport message for a notification, invokes the
// push transport and records per-recipient delivery history.
type Dispatcher struct {
	sender   multicastSender
	resolver tokenResolver
	history  historyWriter
	timeout  time.Duration
}

// NewDispatcher creates a new delivery dispatcher. timeout bounds a single
// multicast call.
func NewDispatcher(sender multicastSender, resolver tokenResolver, history historyWriter, timeout time.Duration) *Dispatcher {
	return &Dispatcher{sender: sender, resolver: resolver, history: history, timeout: timeout}
}

// Dispatch resolves the notification's audience and delivers it. A returned
// error is a transport-level failure: nothing was recorded and the caller
// must settle the notification as failed. An empty audience short-circuits
// to a zero outcome without touching the transport.
func (d *Dispatcher) Dispatch(ctx context.Context, n model.Notification) (Outcome, error) {
	tokens, err := d.resolver.Tokens(ctx, n.Audience, n.TargetRecipientID)
	if err != nil {
		return Outcome{}, fmt.Errorf("resolve audience tokens: %w", err)
	}

	if len(tokens) == 0 {
		zlog.Logger.Info().Str("id", n.ID.String()).Msg("audience resolved to zero tokens, skipping transport")
		return Outcome{}, nil
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	resp, err := d.sender.SendEachForMulticast(sendCtx, buildMessage(n, tokens))
	if err != nil {
		return Outcome{}, fmt.Errorf("multicast send: %w", err)
	}

	recipientIDs, err := d.resolver.RecipientIDs(ctx, n.Audience, n.TargetRecipientID)
	if err != nil {
		// The pushes are out; history must not turn a delivered batch into a
		// failed notification. Entry creation is idempotent, so a later
		// acknowledgement path can still not invent rows.
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to resolve recipients for history")
		return Outcome{SuccessCount: resp.SuccessCount, FailureCount: resp.FailureCount}, nil
	}

	if err := d.history.CreateEntries(ctx, n.ID, recipientIDs, time.Now()); err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to create delivery history entries")
	}

	return Outcome{SuccessCount: resp.SuccessCount, FailureCount: resp.FailureCount}, nil
}

// buildMessage assembles the FCM multicast message. The data block echoes
// title and body so data-only consumers stay self-describing, and every
// payload value is coerced to a string because FCM data maps are string-only.
func buildMessage(n model.Notification, tokens []string) *messaging.MulticastMessage {
	data := make(map[string]string, len(n.Data)+4)
	for k, v := range n.Data {
		data[k] = stringify(v)
	}
	data["notification_id"] = n.ID.String()
	data["type"] = n.Type
	data["title"] = n.Title
	data["body"] = n.Body

	badge := 1

	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:                 "default",
				DefaultVibrateTimings: true,
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": "10"},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					ContentAvailable: true,
					Sound:            "default",
					Badge:            &badge,
				},
			},
		},
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	return string(b)
}
