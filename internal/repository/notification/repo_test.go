package notification

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/pushgate/push-dispatcher/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestCreate(t *testing.T) {
	repo, mock := setupMockDB(t)

	notificationID := uuid.New()
	n := model.Notification{
		Title:    "Maintenance window",
		Body:     "The service will be down tonight",
		Type:     model.TypeGeneral,
		Audience: model.AudienceAll,
		Status:   model.StatusSending,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO notifications (
		    title, body, data, type, audience, target_recipient_id, status, scheduled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `)).
		WithArgs(n.Title, n.Body, []byte("{}"), n.Type, n.Audience, nil, n.Status, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(notificationID))

	id, err := repo.Create(context.Background(), n)
	assert.NoError(t, err)
	assert.Equal(t, notificationID, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimForSending(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3;
    `)).
		WithArgs(model.StatusSending, id, model.StatusScheduled).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ClaimForSending(context.Background(), id, model.StatusScheduled)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimForSending_Lost(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3;
    `)).
		WithArgs(model.StatusSending, id, model.StatusScheduled).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ClaimForSending(context.Background(), id, model.StatusScheduled)
	assert.ErrorIs(t, err, ErrClaimLost)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimForSending_IllegalStatus(t *testing.T) {
	repo, _ := setupMockDB(t)

	err := repo.ClaimForSending(context.Background(), uuid.New(), model.StatusSent)
	assert.ErrorIs(t, err, model.ErrIllegalTransition)
}

func TestMarkSent(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	sentAt := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET status = $1, sent_at = $2, updated_at = now()
		WHERE id = $3 AND status = $4;
    `)).
		WithArgs(model.StatusSent, sentAt, id, model.StatusSending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkSent(context.Background(), id, sentAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkFailed_LeavesSentAtUnset(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE notifications
		SET status = $1, sent_at = $2, updated_at = now()
		WHERE id = $3 AND status = $4;
    `)).
		WithArgs(model.StatusFailed, nil, id, model.StatusSending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkFailed(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, title, body, data, type, audience, target_recipient_id,
		       status, scheduled_at, sent_at, created_at, updated_at
		FROM notifications
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListDue(t *testing.T) {
	repo, mock := setupMockDB(t)

	now := time.Now()
	id := uuid.New()
	scheduledAt := now.Add(-time.Minute)

	rows := sqlmock.NewRows([]string{
		"id", "title", "body", "data", "type", "audience", "target_recipient_id",
		"status", "scheduled_at", "sent_at", "created_at", "updated_at",
	}).AddRow(
		id, "Reminder", "You have a meeting", []byte(`{"room":"4a"}`), "general", "all", nil,
		"scheduled", scheduledAt, nil, now.Add(-time.Hour), now.Add(-time.Hour),
	)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, title, body, data, type, audience, target_recipient_id,
		       status, scheduled_at, sent_at, created_at, updated_at
		FROM notifications
		WHERE status = $1 AND scheduled_at <= $2
		ORDER BY scheduled_at;
    `)).
		WithArgs(model.StatusScheduled, now).
		WillReturnRows(rows)

	due, err := repo.ListDue(context.Background(), now)
	assert.NoError(t, err)
	assert.Len(t, due, 1)
	assert.Equal(t, id, due[0].ID)
	assert.Equal(t, model.StatusScheduled, due[0].Status)
	assert.Equal(t, map[string]any{"room": "4a"}, due[0].Data)
	assert.Nil(t, due[0].TargetRecipientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM notifications
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
