package device

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/pushgate/push-dispatcher/internal/model"
)

// Repository provides methods to interact with the device_endpoints table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new device endpoint repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Upsert registers a device token. Registering a token that already exists
// reassigns it to the new owner, reactivates it and refreshes last_used_at.
func (r *Repository) Upsert(ctx context.Context, d model.DeviceEndpoint) (model.DeviceEndpoint, error) {
	query := `
		INSERT INTO device_endpoints (
		    token, recipient_id, device_class, label, active, last_used_at
		) VALUES ($1, $2, $3, $4, TRUE, now())
		ON CONFLICT (token) DO UPDATE
		SET recipient_id = EXCLUDED.recipient_id,
		    device_class = EXCLUDED.device_class,
		    label = EXCLUDED.label,
		    active = TRUE,
		    last_used_at = now()
		RETURNING token, recipient_id, device_class, label, active, last_used_at, created_at;
    `

	err := r.db.Master.QueryRowContext(ctx, query, d.Token, d.RecipientID, d.DeviceClass, d.Label).Scan(
		&d.Token, &d.RecipientID, &d.DeviceClass, &d.Label, &d.Active, &d.LastUsedAt, &d.CreatedAt,
	)
	if err != nil {
		return model.DeviceEndpoint{}, fmt.Errorf("failed to upsert device endpoint: %w", err)
	}

	return d, nil
}

// Deactivate soft-deletes a device token. Returns false when the token is
// unknown; unregistering an unknown token is a no-op, not an error.
func (r *Repository) Deactivate(ctx context.Context, token string) (bool, error) {
	query := `
		UPDATE device_endpoints
		SET active = FALSE
		WHERE token = $1;
    `

	res, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate device endpoint: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows > 0, nil
}

// ActiveTokens retrieves every active token in the system.
func (r *Repository) ActiveTokens(ctx context.Context) ([]string, error) {
	query := `
		SELECT token
		FROM device_endpoints
		WHERE active;
    `

	return r.queryTokens(ctx, query)
}

// ActiveTokensByRecipient retrieves the active tokens owned by one recipient.
func (r *Repository) ActiveTokensByRecipient(ctx context.Context, recipientID uuid.UUID) ([]string, error) {
	query := `
		SELECT token
		FROM device_endpoints
		WHERE active AND recipient_id = $1;
    `

	return r.queryTokens(ctx, query, recipientID)
}

// ActiveTokensByRecipients retrieves the active tokens owned by any of the
// given recipients.
func (r *Repository) ActiveTokensByRecipients(ctx context.Context, recipientIDs []uuid.UUID) ([]string, error) {
	query := `
		SELECT token
		FROM device_endpoints
		WHERE active AND recipient_id = ANY($1);
    `

	return r.queryTokens(ctx, query, pq.Array(recipientIDs))
}

// ActiveRecipientIDs retrieves the distinct owners of at least one active token.
func (r *Repository) ActiveRecipientIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT recipient_id
		FROM device_endpoints
		WHERE active;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active recipient ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *Repository) queryTokens(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get active tokens: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
	}

	return tokens, rows.Err()
}
