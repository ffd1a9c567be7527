package device

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/pushgate/push-dispatcher/internal/mocks/api/handlers/device"
	"github.com/pushgate/push-dispatcher/internal/model"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockdeviceService) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockdeviceService(ctrl)
	handler := NewHandler(service, validator.New())

	return handler, service
}

func newTestContext(t *testing.T, method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	c.Request = httptest.NewRequest(method, target, &buf)

	return c, w
}

func TestRegisterHandler(t *testing.T) {
	handler, service := setupHandler(t)

	recipientID := uuid.New()
	service.EXPECT().
		Register(gomock.Any(), recipientID, "fcm-token-1", "android", "Pixel 8").
		Return(model.DeviceEndpoint{
			Token:       "fcm-token-1",
			RecipientID: recipientID,
			DeviceClass: "android",
			Label:       "Pixel 8",
			Active:      true,
		}, nil)

	c, w := newTestContext(t, http.MethodPost, "/api/devices", map[string]any{
		"recipient_id": recipientID.String(),
		"token":        "fcm-token-1",
		"device_class": "android",
		"label":        "Pixel 8",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "fcm-token-1")
}

func TestRegisterHandler_MissingToken(t *testing.T) {
	handler, _ := setupHandler(t)

	c, w := newTestContext(t, http.MethodPost, "/api/devices", map[string]any{
		"recipient_id": uuid.New().String(),
		"device_class": "android",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterHandler_InvalidRecipientID(t *testing.T) {
	handler, _ := setupHandler(t)

	c, w := newTestContext(t, http.MethodPost, "/api/devices", map[string]any{
		"recipient_id": "not-a-uuid",
		"token":        "fcm-token-1",
		"device_class": "android",
	})

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnregisterHandler(t *testing.T) {
	handler, service := setupHandler(t)

	service.EXPECT().Unregister(gomock.Any(), "fcm-token-1").Return(true, nil)

	c, w := newTestContext(t, http.MethodDelete, "/api/devices/fcm-token-1", nil)
	c.Params = gin.Params{{Key: "token", Value: "fcm-token-1"}}

	handler.Unregister(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnregisterHandler_UnknownToken(t *testing.T) {
	handler, service := setupHandler(t)

	service.EXPECT().Unregister(gomock.Any(), "no-such-token").Return(false, nil)

	c, w := newTestContext(t, http.MethodDelete, "/api/devices/no-such-token", nil)
	c.Params = gin.Params{{Key: "token", Value: "no-such-token"}}

	handler.Unregister(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
