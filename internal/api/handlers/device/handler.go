package device

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/pushgate/push-dispatcher/internal/api/dto"
	"github.com/pushgate/push-dispatcher/internal/api/respond"
	"github.com/pushgate/push-dispatcher/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/device/mock.go -package=mocks

type deviceService interface {
	Register(ctx context.Context, recipientID uuid.UUID, token, deviceClass, label string) (model.DeviceEndpoint, error)
	Unregister(ctx context.Context, token string) (bool, error)
}

// Handler serves the device registry endpoints.
type Handler struct {
	service   deviceService
	validator *validator.Validate
}

// NewHandler creates a new device handler.
func NewHandler(s deviceService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Register handles POST /api/devices.
func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterDeviceRequest

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

	endpoint, err := h.service.Register(c.Request.Context(), recipientID, req.Token, req.DeviceClass, req.Label)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to register device")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, endpoint)
}

// Unregister handles DELETE /api/devices/:token. Unknown tokens are a no-op
// so a client can retry logout safely.
func (h *Handler) Unregister(c *ginext.Context) {
	token := c.Param("token")
	if token == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing token"))
		return
	}

	if _, err := h.service.Unregister(c.Request.Context(), token); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to unregister device")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "device unregistered")
}
