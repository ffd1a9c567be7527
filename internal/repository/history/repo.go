package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/pushgate/push-dispatcher/internal/model"
)

var ErrEntryNotFound = errors.New("delivery history entry not found")

// Repository provides methods to interact with the delivery_history table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new delivery history repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateEntries records one delivered entry per recipient for a notification.
// The primary key on (notification_id, recipient_id) plus ON CONFLICT DO
// NOTHING makes the call idempotent under concurrent dispatches.
func (r *Repository) CreateEntries(ctx context.Context, notificationID uuid.UUID, recipientIDs []uuid.UUID, deliveredAt time.Time) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO delivery_history (notification_id, recipient_id, status, delivered_at)
		SELECT $1, unnest($2::uuid[]), $3, $4
		ON CONFLICT (notification_id, recipient_id) DO NOTHING;
    `

	_, err := r.db.ExecContext(ctx, query, notificationID, pq.Array(recipientIDs), model.DeliveryDelivered, deliveredAt)
	if err != nil {
		return fmt.Errorf("failed to create delivery history entries: %w", err)
	}

	return nil
}

// Acknowledge transitions one entry to the requested status. The timestamp
// stamped is driven by the requested status, not the entry's current one, and
// an already-clicked entry never regresses to read.
func (r *Repository) Acknowledge(ctx context.Context, notificationID, recipientID uuid.UUID, status model.DeliveryStatus) error {
	var query string

	switch status {
	case model.DeliveryRead:
		query = `
		UPDATE delivery_history
		SET status = CASE WHEN status = 'clicked' THEN status ELSE 'read' END,
		    read_at = COALESCE(read_at, now())
		WHERE notification_id = $1 AND recipient_id = $2;
    `
	case model.DeliveryClicked:
		query = `
		UPDATE delivery_history
		SET status = 'clicked',
		    clicked_at = COALESCE(clicked_at, now())
		WHERE notification_id = $1 AND recipient_id = $2;
    `
	default:
		return fmt.Errorf("cannot acknowledge with status %q", status)
	}

	res, err := r.db.ExecContext(ctx, query, notificationID, recipientID)
	if err != nil {
		return fmt.Errorf("failed to acknowledge delivery: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// ListByRecipient retrieves a recipient's delivery history, newest first.
func (r *Repository) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]model.DeliveryHistoryEntry, error) {
	query := `
		SELECT notification_id, recipient_id, status, delivered_at, read_at, clicked_at
		FROM delivery_history
		WHERE recipient_id = $1
		ORDER BY delivered_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery history: %w", err)
	}
	defer rows.Close()

	var entries []model.DeliveryHistoryEntry
	for rows.Next() {
		var e model.DeliveryHistoryEntry
		if err := rows.Scan(&e.NotificationID, &e.RecipientID, &e.Status, &e.DeliveredAt, &e.ReadAt, &e.ClickedAt); err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
