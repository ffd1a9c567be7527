package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pushgate/push-dispatcher/internal/model"
	mocks "github.com/pushgate/push-dispatcher/internal/mocks/dispatch"
)

func setupDispatcher(t *testing.T) (*Dispatcher, *mocks.MockmulticastSender, *mocks.MocktokenResolver, *mocks.MockhistoryWriter) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sender := mocks.NewMockmulticastSender(ctrl)
	resolver := mocks.NewMocktokenResolver(ctrl)
	history := mocks.NewMockhistoryWriter(ctrl)

	return NewDispatcher(sender, resolver, history, 5*time.Second), sender, resolver, history
}

func TestDispatch(t *testing.T) {
	dispatcher, sender, resolver, history := setupDispatcher(t)
	ctx := context.Background()

	n := model.Notification{
		ID:       uuid.New(),
		Title:    "Weekly digest",
		Body:     "Here is what you missed",
		Type:     model.TypeGeneral,
		Audience: model.AudienceAll,
		Data:     map[string]any{"unread": 7, "screen": "inbox"},
	}
	tokens := []string{"t1", "t2"}
	recipients := []uuid.UUID{uuid.New(), uuid.New()}

	resolver.EXPECT().Tokens(ctx, n.Audience, nil).Return(tokens, nil)

	var sent *messaging.MulticastMessage
	sender.EXPECT().
		SendEachForMulticast(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
			sent = msg
			return &messaging.BatchResponse{SuccessCount: 2, FailureCount: 0}, nil
		})

	resolver.EXPECT().RecipientIDs(ctx, n.Audience, nil).Return(recipients, nil)
	history.EXPECT().CreateEntries(ctx, n.ID, recipients, gomock.Any()).Return(nil)

	outcome, err := dispatcher.Dispatch(ctx, n)
	assert.NoError(t, err)
	assert.Equal(t, Outcome{SuccessCount: 2, FailureCount: 0}, outcome)

	assert.Equal(t, tokens, sent.Tokens)
	assert.Equal(t, n.Title, sent.Notification.Title)
	assert.Equal(t, n.Body, sent.Notification.Body)

	// Payload values are coerced to strings, reserved keys echo the envelope.
	assert.Equal(t, "7", sent.Data["unread"])
	assert.Equal(t, "inbox", sent.Data["screen"])
	assert.Equal(t, n.ID.String(), sent.Data["notification_id"])
	assert.Equal(t, n.Title, sent.Data["title"])
	assert.Equal(t, n.Body, sent.Data["body"])
	assert.Equal(t, model.TypeGeneral, sent.Data["type"])

	assert.Equal(t, "high", sent.Android.Priority)
	assert.Equal(t, "10", sent.APNS.Headers["apns-priority"])
}

func TestDispatch_EmptyAudience(t *testing.T) {
	dispatcher, _, resolver, _ := setupDispatcher(t)
	ctx := context.Background()

	n := model.Notification{ID: uuid.New(), Audience: model.AudienceFreeUsers}

	resolver.EXPECT().Tokens(ctx, n.Audience, nil).Return(nil, nil)

	outcome, err := dispatcher.Dispatch(ctx, n)
	assert.NoError(t, err)
	assert.Equal(t, Outcome{}, outcome)
}

func TestDispatch_TransportError(t *testing.T) {
	dispatcher, sender, resolver, _ := setupDispatcher(t)
	ctx := context.Background()

	n := model.Notification{ID: uuid.New(), Audience: model.AudienceAll}

	resolver.EXPECT().Tokens(ctx, n.Audience, nil).Return([]string{"t1"}, nil)
	sender.EXPECT().
		SendEachForMulticast(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("fcm unavailable"))

	_, err := dispatcher.Dispatch(ctx, n)
	assert.Error(t, err)
}

func TestDispatch_HistoryErrorDoesNotFailDelivery(t *testing.T) {
	dispatcher, sender, resolver, history := setupDispatcher(t)
	ctx := context.Background()

	target := uuid.New()
	n := model.Notification{ID: uuid.New(), Audience: model.AudienceSpecificUser, TargetRecipientID: &target}

	resolver.EXPECT().Tokens(ctx, n.Audience, &target).Return([]string{"t1"}, nil)
	sender.EXPECT().
		SendEachForMulticast(gomock.Any(), gomock.Any()).
		Return(&messaging.BatchResponse{SuccessCount: 1}, nil)
	resolver.EXPECT().RecipientIDs(ctx, n.Audience, &target).Return([]uuid.UUID{target}, nil)
	history.EXPECT().
		CreateEntries(ctx, n.ID, []uuid.UUID{target}, gomock.Any()).
		Return(errors.New("db down"))

	outcome, err := dispatcher.Dispatch(ctx, n)
	assert.NoError(t, err)
	assert.Equal(t, Outcome{SuccessCount: 1}, outcome)
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "plain", stringify("plain"))
	assert.Equal(t, "42", stringify(42))
	assert.Equal(t, "true", stringify(true))
	assert.Equal(t, `{"a":1}`, stringify(map[string]any{"a": 1}))
}
