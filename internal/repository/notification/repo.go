package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/pushgate/push-dispatcher/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrClaimLost means the compare-and-set status update matched zero rows:
	// another send attempt claimed the notification first, or its status
	// changed underneath us. The caller must abort its dispatch attempt.
	ErrClaimLost = errors.New("send claim lost")
)

// Repository provides methods to interact with the notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new notification into the database and returns its ID.
func (r *Repository) Create(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    title, body, data, type, audience, target_recipient_id, status, scheduled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `

	data, err := encodeData(n.Data)
	if err != nil {
		return uuid.Nil, err
	}

	err = r.db.Master.QueryRowContext(
		ctx, query, n.Title, n.Body, data, n.Type, n.Audience, n.TargetRecipientID, n.Status, n.ScheduledAt,
	).Scan(&n.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n.ID, nil
}

// GetByID retrieves a notification by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	query := `
		SELECT id, title, body, data, type, audience, target_recipient_id,
		       status, scheduled_at, sent_at, created_at, updated_at
		FROM notifications
		WHERE id = $1;
    `

	n, err := scanNotification(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// List retrieves notifications matching the filter, newest first.
func (r *Repository) List(ctx context.Context, f model.NotificationFilter) ([]model.Notification, error) {
	query := `
		SELECT id, title, body, data, type, audience, target_recipient_id,
		       status, scheduled_at, sent_at, created_at, updated_at
		FROM notifications
		WHERE ($1::text IS NULL OR status = $1)
		  AND ($2::text IS NULL OR type = $2)
		  AND ($3::text IS NULL OR audience = $3)
		  AND ($4::uuid IS NULL OR target_recipient_id = $4)
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, f.Status, f.Type, f.Audience, f.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// Update rewrites the editable fields of a notification.
func (r *Repository) Update(ctx context.Context, n model.Notification) error {
	query := `
		UPDATE notifications
		SET title = $1, body = $2, data = $3, type = $4, scheduled_at = $5, updated_at = now()
		WHERE id = $6;
    `

	data, err := encodeData(n.Data)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, n.Title, n.Body, data, n.Type, n.ScheduledAt, n.ID)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// Delete removes a notification; delivery history rows cascade with it.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM notifications
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// ClaimForSending transitions a notification into the sending state, but only
// if its status still equals expected. Zero affected rows means a concurrent
// send attempt won the claim and yields ErrClaimLost.
func (r *Repository) ClaimForSending(ctx context.Context, id uuid.UUID, expected model.Status) error {
	next, err := model.NextStatus(expected, model.EventClaim)
	if err != nil {
		return err
	}

	query := `
		UPDATE notifications
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3;
    `

	res, err := r.db.ExecContext(ctx, query, next, id, expected)
	if err != nil {
		return fmt.Errorf("failed to claim notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrClaimLost
	}

	return nil
}

// MarkSent settles a claimed notification as sent and stamps sent_at.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	return r.settle(ctx, id, model.EventDispatchSuccess, &sentAt)
}

// MarkFailed settles a claimed notification as failed. sent_at stays unset.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return r.settle(ctx, id, model.EventDispatchFailure, nil)
}

func (r *Repository) settle(ctx context.Context, id uuid.UUID, event model.Event, sentAt *time.Time) error {
	next, err := model.NextStatus(model.StatusSending, event)
	if err != nil {
		return err
	}

	query := `
		UPDATE notifications
		SET status = $1, sent_at = $2, updated_at = now()
		WHERE id = $3 AND status = $4;
    `

	res, err := r.db.ExecContext(ctx, query, next, sentAt, id, model.StatusSending)
	if err != nil {
		return fmt.Errorf("failed to settle notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// ListDue retrieves scheduled notifications whose due time has passed.
func (r *Repository) ListDue(ctx context.Context, now time.Time) ([]model.Notification, error) {
	query := `
		SELECT id, title, body, data, type, audience, target_recipient_id,
		       status, scheduled_at, sent_at, created_at, updated_at
		FROM notifications
		WHERE status = $1 AND scheduled_at <= $2
		ORDER BY scheduled_at;
    `

	rows, err := r.db.QueryContext(ctx, query, model.StatusScheduled, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list due notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func encodeData(data map[string]any) ([]byte, error) {
	if data == nil {
		return []byte("{}"), nil
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode notification data: %w", err)
	}

	return b, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row rowScanner) (model.Notification, error) {
	var (
		n      model.Notification
		data   []byte
		target uuid.NullUUID
	)

	err := row.Scan(
		&n.ID, &n.Title, &n.Body, &data, &n.Type, &n.Audience, &target,
		&n.Status, &n.ScheduledAt, &n.SentAt, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return model.Notification{}, err
	}

	if target.Valid {
		n.TargetRecipientID = &target.UUID
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &n.Data); err != nil {
			return model.Notification{}, fmt.Errorf("failed to decode notification data: %w", err)
		}
	}

	return n, nil
}
