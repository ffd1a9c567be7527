package audience

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pushgate/push-dispatcher/internal/model"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/audience/mock.go -package=mocks

// ErrTargetRequired means a specific_user audience reached the resolver
// without a target recipient; creation-time validation should prevent it.
var ErrTargetRequired = errors.New("specific_user audience requires a target recipient")

type deviceTokens interface {
	ActiveTokens(ctx context.Context) ([]string, error)
	ActiveTokensByRecipient(ctx context.Context, recipientID uuid.UUID) ([]string, error)
	ActiveTokensByRecipients(ctx context.Context, recipientIDs []uuid.UUID) ([]string, error)
	ActiveRecipientIDs(ctx context.Context) ([]uuid.UUID, error)
}

type directory interface {
	IDsByTier(ctx context.Context, tier string) ([]uuid.UUID, error)
}

// Resolver turns an audience selector into concrete delivery targets.
type Resolver struct {
	devices   deviceTokens
	directory directory
}

// NewResolver creates a new audience resolver.
func NewResolver(devices deviceTokens, directory directory) *Resolver {
	return &Resolver{devices: devices, directory: directory}
}

// Tokens resolves an audience to the set of active device tokens. An empty
// result is "nothing to deliver", never an error.
func (r *Resolver) Tokens(ctx context.Context, aud model.Audience, target *uuid.UUID) ([]string, error) {
	switch aud {
	case model.AudienceAll:
		return r.devices.ActiveTokens(ctx)
	case model.AudiencePremiumUsers:
		return r.tierTokens(ctx, model.TierPremium)
	case model.AudienceFreeUsers:
		return r.tierTokens(ctx, model.TierFree)
	case model.AudienceSpecificUser:
		if target == nil {
			return nil, ErrTargetRequired
		}
		return r.devices.ActiveTokensByRecipient(ctx, *target)
	default:
		return nil, fmt.Errorf("unknown audience %q", aud)
	}
}

// RecipientIDs resolves an audience to recipient identities for delivery
// history. One recipient with several devices yields exactly one ID.
func (r *Resolver) RecipientIDs(ctx context.Context, aud model.Audience, target *uuid.UUID) ([]uuid.UUID, error) {
	switch aud {
	case model.AudienceAll:
		return r.devices.ActiveRecipientIDs(ctx)
	case model.AudiencePremiumUsers:
		return r.directory.IDsByTier(ctx, model.TierPremium)
	case model.AudienceFreeUsers:
		return r.directory.IDsByTier(ctx, model.TierFree)
	case model.AudienceSpecificUser:
		if target == nil {
			return nil, ErrTargetRequired
		}
		return []uuid.UUID{*target}, nil
	default:
		return nil, fmt.Errorf("unknown audience %q", aud)
	}
}

func (r *Resolver) tierTokens(ctx context.Context, tier string) ([]string, error) {
	ids, err := r.directory.IDsByTier(ctx, tier)
	if err != nil {
		return nil, fmt.Errorf("resolve %s recipients: %w", tier, err)
	}

	if len(ids) == 0 {
		return nil, nil
	}

	return r.devices.ActiveTokensByRecipients(ctx, ids)
}
