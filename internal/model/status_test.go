package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		event   Event
		want    Status
		wantErr bool
	}{
		{"scheduled can be claimed", StatusScheduled, EventClaim, StatusSending, false},
		{"sending can be re-claimed", StatusSending, EventClaim, StatusSending, false},
		{"sending settles as sent", StatusSending, EventDispatchSuccess, StatusSent, false},
		{"sending settles as failed", StatusSending, EventDispatchFailure, StatusFailed, false},
		{"scheduled cannot settle directly", StatusScheduled, EventDispatchSuccess, "", true},
		{"sent is terminal", StatusSent, EventClaim, "", true},
		{"failed is terminal", StatusFailed, EventClaim, "", true},
		{"failed cannot settle again", StatusFailed, EventDispatchFailure, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextStatus(tt.current, tt.event)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrIllegalTransition)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAudienceValid(t *testing.T) {
	for _, aud := range []Audience{AudienceAll, AudiencePremiumUsers, AudienceFreeUsers, AudienceSpecificUser} {
		assert.True(t, aud.Valid())
	}

	assert.False(t, Audience("everyone").Valid())
	assert.False(t, Audience("").Valid())
}
