package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/pushgate/push-dispatcher/internal/dispatch"
	mocks "github.com/pushgate/push-dispatcher/internal/mocks/service/notification"
	"github.com/pushgate/push-dispatcher/internal/model"
	notifrepo "github.com/pushgate/push-dispatcher/internal/repository/notification"
	"github.com/pushgate/push-dispatcher/internal/repository/recipient"
)

type serviceMocks struct {
	repo       *mocks.MocknotificationRepository
	history    *mocks.MockhistoryRepository
	dispatcher *mocks.Mockdispatcher
	directory  *mocks.MockrecipientDirectory
	cache      *mocks.Mockcache
}

func setupService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := serviceMocks{
		repo:       mocks.NewMocknotificationRepository(ctrl),
		history:    mocks.NewMockhistoryRepository(ctrl),
		dispatcher: mocks.NewMockdispatcher(ctrl),
		directory:  mocks.NewMockrecipientDirectory(ctrl),
		cache:      mocks.NewMockcache(ctrl),
	}

	return NewService(m.repo, m.history, m.dispatcher, m.directory, m.cache), m
}

func TestCreate_Immediate(t *testing.T) {
	svc, m := setupService(t)
	ctx := context.Background()
	var strategy retry.Strategy

	id := uuid.New()
	n := model.Notification{
		Title:    "Welcome",
		Body:     "Glad to have you",
		Audience: model.AudienceAll,
	}

	m.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, created model.Notification) (uuid.UUID, error) {
			assert.Equal(t, model.StatusSending, created.Status)
			assert.Equal(t, model.TypeGeneral, created.Type)
			return id, nil
		})
	m.cache.EXPECT().SetWithRetry(ctx, strategy, id.String(), string(model.StatusSending)).Return(nil)

	m.repo.EXPECT().ClaimForSending(ctx, id, model.StatusSending).Return(nil)
	m.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Return(dispatch.Outcome{SuccessCount: 3}, nil)
	m.repo.EXPECT().MarkSent(ctx, id, gomock.Any()).Return(nil)
	m.cache.EXPECT().SetWithRetry(ctx, strategy, id.String(), string(model.StatusSent)).Return(nil)

	m.repo.EXPECT().GetByID(ctx, id).Return(model.Notification{ID: id, Status: model.StatusSent}, nil)

	created, err := svc.Create(ctx, strategy, n)
	assert.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, model.StatusSent, created.Status)
}

func TestCreate_Deferred(t *testing.T) {
	svc, m := setupService(t)
	ctx := context.Background()
	var strategy retry.Strategy

	id := uuid.New()
	scheduledAt := time.Now().Add(time.Hour)
	n := model.Notification{
		Title:       "Sale starts",
		Body:        "Tomorrow at noon",
		Audience:    model.AudiencePremiumUsers,
		ScheduledAt: &scheduledAt,
	}

	m.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, created model.Notification) (uuid.UUID, error) {
			assert.Equal(t, model.StatusScheduled, created.Status)
			return id, nil
		})
	m.cache.EXPECT().SetWithRetry(ctx, strategy, id.String(), string(model.StatusScheduled)).Return(nil)
	m.repo.EXPECT().GetByID(ctx, id).Return(model.Notification{ID: id, Status: model.StatusScheduled}, nil)

	created, err := svc.Create(ctx, strategy, n)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusScheduled, created.Status)
}

func TestCreate_PastScheduleSendsImmediately(t *testing.T) {
	svc, m := setupService(t)
	ctx := context.Background()
	var strategy retry.Strategy

	id := uuid.New()
	scheduledAt := time.Now().Add(-time.Minute)
	n := model.Notification{
		Title:       "Expired already",
		Body:        "Goes out now",
		Audience:    model.AudienceAll,
		ScheduledAt: &scheduledAt,
	}

	m.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, created model.Notification) (uuid.UUID, error) {
			assert.Equal(t, model.StatusSending, created.Status)
			return id, nil
		})
	m.cache.EXPECT().SetWithRetry(ctx, strategy, id.String(), string(model.StatusSending)).Return(nil)
	m.repo.EXPECT().ClaimForSending(ctx, id, model.StatusSending).Return(nil)
	m.dispatcher.EXPECT().Dispatch(ctx, gomock.Any()).Return(dispatch.Outcome{}, nil)
	m.repo.EXPECT().MarkSent(ctx, id, gomock.Any()).Return(nil)
	m.cache.EXPECT().SetWithRetry(ctx, strategy, id.String(), string(model.StatusSent)).Return(nil)
	m.repo.EXPECT().GetByID(ctx, id).Return(model.Notification{ID: id, Status: model.StatusSent}, nil)

	_, err := svc.Create(ctx, strategy, n)
	assert.NoError(t, err)
}

func TestCreate_SpecificUserWithoutTarget(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Create(context.Background(), retry.Strategy{}, model.Notification{
		Title:    "Hi",
		Body:     "There",
		Audience: model.AudienceSpecificUser,
	})
	assert.ErrorIs(t, err, ErrTargetRequired)
}

func TestCreate_BroadcastWithTarget(t *testing.T) {
	svc, _ := setupService(t)

	target := uuid.New()

	_, err := svc.Create(context.Background(), retry.Strategy{}, model.Notification{
		Title:             "Hi",
		Body:              "There",
		Audience:          model.AudienceAll,
		TargetRecipientID: &target,
	})
	assert.ErrorIs(t, err, ErrTargetNotAllowed)
}

func TestCreate_UnknownAudience(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Create(context.Background(), retry.Strategy{}, model.Notification{
		Title:    "Hi",
		Body:     "There",
		Audience: model.Audience("everyone"),
	})
	assert.ErrorIs(t, err, ErrUnknownAudience)
}

func TestCreate_TargetUnknown(t *testing.T) {
	svc, m := setupService(t)
	ctx := context.Background()

	target := uuid.New()
	m.directory.EXPECT().FindByID(ctx, target).Return(model.Recipient{}, recipient.ErrRecipientNotFound)

	_, err := svc.Create(ctx, retry.Strategy{}, model.Notification{
		Title:             "Hi",
		Body:              "There",
		Audience:          model.AudienceSpecificUser,
		TargetRecipientID: &target,
	})
	assert.ErrorIs(t, err, ErrTargetUnknown)
}

func TestSend_DispatchFailureSettlesAsFailed(t *testing.T) {
	svc, m := setupService(t)
	ctx := context.Background()
	var strategy retry.Strategy

	n := model.Notification{ID: uuid.New(), Status: model.StatusSending, Audience: model.AudienceAll}

	m.repo.EXPECT().ClaimForSending(ctx, n.ID, model.StatusSending).Return(nil)
	m.dispatcher.EXPECT().Dispatch(ctx, n).Return(dispatch.Outcome{}, errors.New("fcm unavailable"))
	m.repo.EXPECT().MarkFailed(ctx, n.ID).Return(nil)
	m.cache.EXPECT().SetWithRetry(ctx, strategy, n.ID.String(), string(model.StatusFailed)).Return(nil)

	svc.Send(ctx, strategy, n)
}

func TestSend_ClaimLostSkipsDispatch(t *testing.T) {
	svc, m := setupService(t)
	ctx := context.Background()

	n := model.Notification{ID: uuid.New(), Status: model.StatusScheduled, Audience: model.AudienceAll}

	m.repo.EXPECT().ClaimForSending(ctx, n.ID, model.StatusScheduled).Return(notifrepo.ErrClaimLost)

	svc.Send(ctx, retry.Strategy{}, n)
}

func TestGetStatusByID_CacheHit(t *testing.T) {
	svc, m := setupService(t)
	ctx := context.Background()
	var strategy retry.Strategy

	id := uuid.New()
	m.cache.EXPECT().GetWithRetry(ctx, strategy, id.String()).Return(string(model.StatusSent), nil)

	status, err := svc.GetStatusByID(ctx, strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusSent, status)
}

func TestGetStatusByID_CacheMiss(t *testing.T) {
	svc, m := setupService(t)
	ctx := context.Background()
	var strategy retry.Strategy

	id := uuid.New()
	m.cache.EXPECT().GetWithRetry(ctx, strategy, id.String()).Return("", redis.Nil)
	m.repo.EXPECT().GetByID(ctx, id).Return(model.Notification{ID: id, Status: model.StatusScheduled}, nil)
	m.cache.EXPECT().SetWithRetry(ctx, strategy, id.String(), string(model.StatusScheduled)).Return(nil)

	status, err := svc.GetStatusByID(ctx, strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusScheduled, status)
}

func TestUpdate(t *testing.T) {
	svc, m := setupService(t)
	ctx := context.Background()

	id := uuid.New()
	title := "New title"

	m.repo.EXPECT().GetByID(ctx, id).Return(model.Notification{
		ID:     id,
		Title:  "Old title",
		Body:   "Body",
		Status: model.StatusScheduled,
	}, nil)
	m.repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, updated model.Notification) error {
			assert.Equal(t, "New title", updated.Title)
			assert.Equal(t, "Body", updated.Body)
			return nil
		})

	updated, err := svc.Update(ctx, id, UpdatePatch{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
}

func TestUpdate_SentIsImmutable(t *testing.T) {
	svc, m := setupService(t)
	ctx := context.Background()

	id := uuid.New()
	m.repo.EXPECT().GetByID(ctx, id).Return(model.Notification{ID: id, Status: model.StatusSent}, nil)

	_, err := svc.Update(ctx, id, UpdatePatch{})
	assert.ErrorIs(t, err, ErrAlreadySent)
}

func TestUpdate_FailedNotEditable(t *testing.T) {
	svc, m := setupService(t)
	ctx := context.Background()

	id := uuid.New()
	m.repo.EXPECT().GetByID(ctx, id).Return(model.Notification{ID: id, Status: model.StatusFailed}, nil)

	_, err := svc.Update(ctx, id, UpdatePatch{})
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestAcknowledge(t *testing.T) {
	svc, m := setupService(t)
	ctx := context.Background()

	notificationID, recipientID := uuid.New(), uuid.New()
	m.history.EXPECT().Acknowledge(ctx, notificationID, recipientID, model.DeliveryClicked).Return(nil)

	err := svc.Acknowledge(ctx, notificationID, recipientID, model.DeliveryClicked)
	assert.NoError(t, err)
}

func TestAcknowledge_BadStatus(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.Acknowledge(context.Background(), uuid.New(), uuid.New(), model.DeliveryDelivered)
	assert.ErrorIs(t, err, ErrBadAckStatus)
}

func TestSweepDue(t *testing.T) {
	svc, m := setupService(t)
	ctx := context.Background()
	var strategy retry.Strategy

	now := time.Now()
	first := model.Notification{ID: uuid.New(), Status: model.StatusScheduled, Audience: model.AudienceAll}
	second := model.Notification{ID: uuid.New(), Status: model.StatusScheduled, Audience: model.AudienceAll}

	m.repo.EXPECT().ListDue(ctx, now).Return([]model.Notification{first, second}, nil)

	// The first claim is lost to a concurrent sweep; the second proceeds.
	m.repo.EXPECT().ClaimForSending(ctx, first.ID, model.StatusScheduled).Return(notifrepo.ErrClaimLost)
	m.repo.EXPECT().ClaimForSending(ctx, second.ID, model.StatusScheduled).Return(nil)
	m.dispatcher.EXPECT().Dispatch(ctx, second).Return(dispatch.Outcome{SuccessCount: 1}, nil)
	m.repo.EXPECT().MarkSent(ctx, second.ID, gomock.Any()).Return(nil)
	m.cache.EXPECT().SetWithRetry(ctx, strategy, second.ID.String(), string(model.StatusSent)).Return(nil)

	processed, err := svc.SweepDue(ctx, strategy, now)
	assert.NoError(t, err)
	assert.Equal(t, 2, processed)
}
