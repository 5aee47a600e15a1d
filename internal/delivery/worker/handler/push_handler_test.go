package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPushHandlerForTest(buf *bytes.Buffer) *PushHandler {
	return NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewJSONHandler(buf, nil)),
	})
}

func pushRequest(t *testing.T, data string, attributes map[string]string) *http.Request {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func encodeEvent(t *testing.T, event *service.AccountEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func TestPushHandler_LogsAccountEvent(t *testing.T) {
	buf := &bytes.Buffer{}
	h := newPushHandlerForTest(buf)
	userID := uuid.NewString()

	data := encodeEvent(t, &service.AccountEvent{
		EventID:    "evt-1",
		Type:       service.EventChannelSubscribed,
		UserID:     userID,
		OccurredAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Attributes: map[string]string{"channel_id": "chan-1"},
	})

	e := echo.New()
	rec := httptest.NewRecorder()
	err := h.HandlePush(e.NewContext(pushRequest(t, data, map[string]string{"request_id": "req-9"}), rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	logged := buf.String()
	assert.Contains(t, logged, `"request_id":"req-9"`)
	assert.Contains(t, logged, `"event_type":"channel.subscribed"`)
	assert.Contains(t, logged, `"attr.channel_id":"chan-1"`)
	assert.Contains(t, logged, userID)
}

func TestPushHandler_RejectsMalformed(t *testing.T) {
	h := newPushHandlerForTest(&bytes.Buffer{})
	e := echo.New()

	for name, data := range map[string]string{
		"not base64": "%%%",
		"not json":   base64.StdEncoding.EncodeToString([]byte("{oops")),
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			require.NoError(t, h.HandlePush(e.NewContext(pushRequest(t, data, nil), rec)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_AcksUnknownEvents(t *testing.T) {
	buf := &bytes.Buffer{}
	h := newPushHandlerForTest(buf)
	data := encodeEvent(t, &service.AccountEvent{Type: "user.teleported", UserID: uuid.NewString()})

	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, h.HandlePush(e.NewContext(pushRequest(t, data, nil), rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(buf.String(), "Dropping account event"))
}
