package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/pushgate/push-dispatcher/internal/api/dto"
	"github.com/pushgate/push-dispatcher/internal/api/respond"
	"github.com/pushgate/push-dispatcher/internal/config"
	"github.com/pushgate/push-dispatcher/internal/model"
	"github.com/pushgate/push-dispatcher/internal/repository/history"
	notifrepo "github.com/pushgate/push-dispatcher/internal/repository/notification"
	notifsvc "github.com/pushgate/push-dispatcher/internal/service/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks

type notificationService interface {
	Create(ctx context.Context, strategy retry.Strategy, n model.Notification) (model.Notification, error)
	Get(ctx context.Context, id uuid.UUID) (model.Notification, error)
	GetStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error)
	List(ctx context.Context, f model.NotificationFilter) ([]model.Notification, error)
	Update(ctx context.Context, id uuid.UUID, patch notifsvc.UpdatePatch) (model.Notification, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Acknowledge(ctx context.Context, notificationID, recipientID uuid.UUID, status model.DeliveryStatus) error
	RecipientHistory(ctx context.Context, recipientID uuid.UUID) ([]model.DeliveryHistoryEntry, error)
}

// Handler serves the notification endpoints.
type Handler struct {
	service   notificationService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new notification handler.
func NewHandler(s notificationService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Create handles POST /api/notifications.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	n := model.Notification{
		Title:       req.Title,
		Body:        req.Body,
		Data:        req.Data,
		Type:        req.Type,
		Audience:    model.Audience(req.Audience),
		ScheduledAt: req.ScheduledAt,
	}

	if req.TargetRecipientID != "" {
		target, err := uuid.Parse(req.TargetRecipientID)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid target recipient id"))
			return
		}
		n.TargetRecipientID = &target
	}

	created, err := h.service.Create(c.Request.Context(), h.cfg.Retry, n)
	if err != nil {
		if isValidationErr(err) {
			zlog.Logger.Warn().Err(err).Msg("notification rejected")
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to create notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, created)
}

// List handles GET /api/notifications with optional status/type/audience/
// recipient_id query filters.
func (h *Handler) List(c *ginext.Context) {
	var f model.NotificationFilter

	if v := c.Query("status"); v != "" {
		status := model.Status(v)
		f.Status = &status
	}
	if v := c.Query("type"); v != "" {
		f.Type = &v
	}
	if v := c.Query("audience"); v != "" {
		audience := model.Audience(v)
		f.Audience = &audience
	}
	if v := c.Query("recipient_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid recipient id"))
			return
		}
		f.RecipientID = &id
	}

	notifications, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// Get handles GET /api/notifications/:id.
func (h *Handler) Get(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	n, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, n)
}

// GetStatus handles GET /api/notifications/:id/status.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	status, err := h.service.GetStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// Update handles PUT /api/notifications/:id.
func (h *Handler) Update(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, notifsvc.UpdatePatch{
		Title:       req.Title,
		Body:        req.Body,
		Data:        req.Data,
		Type:        req.Type,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, notifrepo.ErrNotificationNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
		case errors.Is(err, notifsvc.ErrAlreadySent), errors.Is(err, notifsvc.ErrNotEditable):
			respond.Fail(c.Writer, http.StatusConflict, err)
		default:
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to update notification")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, updated)
}

// Delete handles DELETE /api/notifications/:id.
func (h *Handler) Delete(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to delete notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification deleted")
}

// Acknowledge handles POST /api/notifications/:id/ack.
func (h *Handler) Acknowledge(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.AcknowledgeRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid recipient id"))
		return
	}

	err = h.service.Acknowledge(c.Request.Context(), id, recipientID, model.DeliveryStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, history.ErrEntryNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("delivery history entry not found"))
		case errors.Is(err, notifsvc.ErrBadAckStatus):
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		default:
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to acknowledge delivery")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, "delivery acknowledged")
}

// RecipientHistory handles GET /api/recipients/:id/history.
func (h *Handler) RecipientHistory(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	entries, err := h.service.RecipientHistory(c.Request.Context(), id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to list recipient history")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, entries)
}

func (h *Handler) parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Str("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}

func isValidationErr(err error) bool {
	return errors.Is(err, notifsvc.ErrTargetRequired) ||
		errors.Is(err, notifsvc.ErrTargetNotAllowed) ||
		errors.Is(err, notifsvc.ErrUnknownAudience) ||
		errors.Is(err, notifsvc.ErrTargetUnknown)
}
