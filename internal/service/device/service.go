package device

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/pushgate/push-dispatcher/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/device/mock.go -package=mocks

type deviceRepository interface {
	Upsert(ctx context.Context, d model.DeviceEndpoint) (model.DeviceEndpoint, error)
	Deactivate(ctx context.Context, token string) (bool, error)
}

// Service is the device registry.
type Service struct {
	repo deviceRepository
}

// NewService creates a new device registry service.
func NewService(repo deviceRepository) *Service {
	return &Service{repo: repo}
}

// Register upserts a device endpoint keyed by token. A token registered to
// another recipient is reassigned to the new owner and reactivated.
func (s *Service) Register(ctx context.Context, recipientID uuid.UUID, token, deviceClass, label string) (model.DeviceEndpoint, error) {
	endpoint, err := s.repo.Upsert(ctx, model.DeviceEndpoint{
		Token:       token,
		RecipientID: recipientID,
		DeviceClass: deviceClass,
		Label:       label,
	})
	if err != nil {
		return model.DeviceEndpoint{}, fmt.Errorf("register device: %w", err)
	}

	return endpoint, nil
}

// Unregister deactivates a token, best-effort. An unknown token returns
// (false, nil) so idempotent client retries never see an error.
func (s *Service) Unregister(ctx context.Context, token string) (bool, error) {
	deactivated, err := s.repo.Deactivate(ctx, token)
	if err != nil {
		return false, fmt.Errorf("unregister device: %w", err)
	}

	if !deactivated {
		zlog.Logger.Info().Msg("unregister for unknown token, ignoring")
	}

	return deactivated, nil
}
