// Package fcm wraps the Firebase Cloud Messaging client behind an explicitly
// constructed value so the dispatcher receives its transport by injection
// instead of reaching for process-global state.
package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Client is the push transport handle.
type Client struct {
	messaging *messaging.Client
}

// New constructs an FCM client from a service-account credentials file.
func New(ctx context.Context, credentialsFile string) (*Client, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init fcm messaging client: %w", err)
	}

	return &Client{messaging: client}, nil
}

// SendEachForMulticast delivers one multicast message, returning per-token
// outcomes. A batch-level error (auth, network) is returned as err.
func (c *Client) SendEachForMulticast(ctx context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	return c.messaging.SendEachForMulticast(ctx, msg)
}
