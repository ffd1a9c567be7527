package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/pushgate/push-dispatcher/internal/dispatch"
	"github.com/pushgate/push-dispatcher/internal/model"
	notifrepo "github.com/pushgate/push-dispatcher/internal/repository/notification"
	"github.com/pushgate/push-dispatcher/internal/repository/recipient"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

var (
	// ErrTargetRequired rejects a specific_user notification without a target.
	ErrTargetRequired = errors.New("target recipient id is required for specific_user audience")

	// ErrTargetNotAllowed rejects a target on a broadcast audience.
	ErrTargetNotAllowed = errors.New("target recipient id is only allowed for specific_user audience")

	// ErrUnknownAudience rejects an unrecognized audience selector.
	ErrUnknownAudience = errors.New("unknown audience")

	// ErrTargetUnknown rejects a target that does not resolve to a recipient.
	ErrTargetUnknown = errors.New("target recipient does not exist")

	// ErrAlreadySent rejects modification of a sent notification.
	ErrAlreadySent = errors.New("cannot modify a sent notification")

	// ErrNotEditable rejects modification of a notification that is mid-send
	// or already failed; only scheduled notifications are editable.
	ErrNotEditable = errors.New("only scheduled notifications can be modified")

	// ErrBadAckStatus rejects acknowledgement statuses other than read/clicked.
	ErrBadAckStatus = errors.New("acknowledgement status must be read or clicked")
)

type notificationRepository interface {
	Create(ctx context.Context, n model.Notification) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Notification, error)
	List(ctx context.Context, f model.NotificationFilter) ([]model.Notification, error)
	Update(ctx context.Context, n model.Notification) error
	Delete(ctx context.Context, id uuid.UUID) error
	ClaimForSending(ctx context.Context, id uuid.UUID, expected model.Status) error
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
	ListDue(ctx context.Context, now time.Time) ([]model.Notification, error)
}

type historyRepository interface {
	Acknowledge(ctx context.Context, notificationID, recipientID uuid.UUID, status model.DeliveryStatus) error
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]model.DeliveryHistoryEntry, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, n model.Notification) (dispatch.Outcome, error)
}

type recipientDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (model.Recipient, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service is the notification lifecycle manager. It owns the status state
// machine and orchestrates the dispatcher, the delivery history and the
// recipient directory.
type Service struct {
	repo       notificationRepository
	history    historyRepository
	dispatcher dispatcher
	directory  recipientDirectory
	cache      cache
}

// NewService creates a new notification lifecycle service.
func NewService(
	repo notificationRepository,
	history historyRepository,
	dispatcher dispatcher,
	directory recipientDirectory,
	cache cache,
) *Service {
	return &Service{repo: repo, history: history, dispatcher: dispatcher, directory: directory, cache: cache}
}

// Create validates and persists a notification. A future scheduled_at defers
// it to the sweeper; anything else dispatches immediately. A dispatch failure
// is absorbed into status failed, never returned to the caller.
func (s *Service) Create(ctx context.Context, strategy retry.Strategy, n model.Notification) (model.Notification, error) {
	if err := s.validate(ctx, n); err != nil {
		return model.Notification{}, err
	}

	if n.Type == "" {
		n.Type = model.TypeGeneral
	}

	deferred := n.ScheduledAt != nil && n.ScheduledAt.After(time.Now())
	if deferred {
		n.Status = model.StatusScheduled
	} else {
		// Immediate sends are persisted already claimed, so the send path is
		// the same one the sweeper uses.
		n.Status = model.StatusSending
	}

	id, err := s.repo.Create(ctx, n)
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}
	n.ID = id

	s.cacheStatus(ctx, strategy, id, n.Status)

	if !deferred {
		s.Send(ctx, strategy, n)
	}

	created, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("reload notification: %w", err)
	}

	return created, nil
}

// Send claims a notification for delivery, dispatches it and settles its
// status. Losing the claim to a concurrent send attempt is a silent no-op;
// dispatch failures settle the notification as failed and are not returned.
func (s *Service) Send(ctx context.Context, strategy retry.Strategy, n model.Notification) {
	if err := s.repo.ClaimForSending(ctx, n.ID, n.Status); err != nil {
		if errors.Is(err, notifrepo.ErrClaimLost) {
			zlog.Logger.Info().Str("id", n.ID.String()).Msg("send claim lost, skipping dispatch")
			return
		}

		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to claim notification")
		return
	}

	outcome, err := s.dispatcher.Dispatch(ctx, n)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("dispatch failed")

		if err := s.repo.MarkFailed(ctx, n.ID); err != nil {
			zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to mark notification failed")
			return
		}
		s.cacheStatus(ctx, strategy, n.ID, model.StatusFailed)
		return
	}

	if err := s.repo.MarkSent(ctx, n.ID, time.Now()); err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to mark notification sent")
		return
	}
	s.cacheStatus(ctx, strategy, n.ID, model.StatusSent)

	zlog.Logger.Info().
		Str("id", n.ID.String()).
		Int("success", outcome.SuccessCount).
		Int("failure", outcome.FailureCount).
		Msg("notification dispatched")
}

// Get retrieves a notification by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("get notification: %w", err)
	}

	return n, nil
}

// GetStatusByID retrieves the status of a notification, read-through cached.
func (s *Service) GetStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status from cache")
	}

	if errors.Is(err, redis.Nil) {
		n, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get notification status: %w", err)
		}
		status = string(n.Status)

		s.cacheStatus(ctx, strategy, id, n.Status)
	}

	return model.Status(status), nil
}

// List retrieves notifications matching the filter.
func (s *Service) List(ctx context.Context, f model.NotificationFilter) ([]model.Notification, error) {
	notifications, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

// UpdatePatch carries the editable fields of a scheduled notification.
// Nil fields are left unchanged.
type UpdatePatch struct {
	Title       *string
	Body        *string
	Data        map[string]any
	Type        *string
	ScheduledAt *time.Time
}

// Update applies a patch to a scheduled notification. Sent notifications are
// immutable; sending and failed ones are no longer editable either.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch UpdatePatch) (model.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("get notification: %w", err)
	}

	switch n.Status {
	case model.StatusSent:
		return model.Notification{}, ErrAlreadySent
	case model.StatusScheduled:
	default:
		return model.Notification{}, ErrNotEditable
	}

	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Body != nil {
		n.Body = *patch.Body
	}
	if patch.Data != nil {
		n.Data = patch.Data
	}
	if patch.Type != nil {
		n.Type = *patch.Type
	}
	if patch.ScheduledAt != nil {
		n.ScheduledAt = patch.ScheduledAt
	}

	if err := s.repo.Update(ctx, n); err != nil {
		return model.Notification{}, fmt.Errorf("update notification: %w", err)
	}

	return n, nil
}

// Delete removes a notification unconditionally, cascading its history.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	return nil
}

// Acknowledge transitions a recipient's delivery history entry to read or
// clicked.
func (s *Service) Acknowledge(ctx context.Context, notificationID, recipientID uuid.UUID, status model.DeliveryStatus) error {
	switch status {
	case model.DeliveryRead, model.DeliveryClicked:
	default:
		return ErrBadAckStatus
	}

	if err := s.history.Acknowledge(ctx, notificationID, recipientID, status); err != nil {
		return fmt.Errorf("acknowledge delivery: %w", err)
	}

	return nil
}

// RecipientHistory retrieves a recipient's delivery history.
func (s *Service) RecipientHistory(ctx context.Context, recipientID uuid.UUID) ([]model.DeliveryHistoryEntry, error) {
	entries, err := s.history.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("list recipient history: %w", err)
	}

	return entries, nil
}

// SweepDue sends every scheduled notification whose due time has passed and
// returns how many were processed. One notification's failure never aborts
// the rest; Send's claim makes overlapping sweeps dispatch each row once.
func (s *Service) SweepDue(ctx context.Context, strategy retry.Strategy, now time.Time) (int, error) {
	due, err := s.repo.ListDue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list due notifications: %w", err)
	}

	for _, n := range due {
		s.Send(ctx, strategy, n)
	}

	return len(due), nil
}

func (s *Service) validate(ctx context.Context, n model.Notification) error {
	if !n.Audience.Valid() {
		return ErrUnknownAudience
	}

	if n.Audience == model.AudienceSpecificUser {
		if n.TargetRecipientID == nil {
			return ErrTargetRequired
		}

		if _, err := s.directory.FindByID(ctx, *n.TargetRecipientID); err != nil {
			if errors.Is(err, recipient.ErrRecipientNotFound) {
				return ErrTargetUnknown
			}

			return fmt.Errorf("resolve target recipient: %w", err)
		}

		return nil
	}

	if n.TargetRecipientID != nil {
		return ErrTargetNotAllowed
	}

	return nil
}

func (s *Service) cacheStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status model.Status) {
	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}
}
