package pubsub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"projectforge/internal/domain/service"
	"projectforge/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *service.HistoryEvent {
	return &service.HistoryEvent{
		RequestID:  "req-1",
		MasterID:   77,
		EntityName: "Order",
		EntityID:   12,
		OpType:     "Update",
		ModifiedBy: "3",
		ModifiedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestPushMessage_RoundTrip(t *testing.T) {
	msg, err := NewPushMessage(testEvent(), "sub", time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "77", msg.Message.MessageID)
	assert.Equal(t, "2024-01-15T11:00:00Z", msg.Message.PublishTime)
	assert.Equal(t, "Order", msg.Message.Attributes[AttrEntityName])
	assert.Equal(t, "12", msg.Message.Attributes[AttrEntityID])
	assert.Equal(t, "req-1", msg.Message.Attributes[AttrRequestID])

	event, err := msg.Event()
	require.NoError(t, err)
	assert.Equal(t, testEvent(), event)
}

func TestPushMessage_InvalidData(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%"
	_, err := msg.Event()
	assert.Error(t, err)

	msg.Message.Data = "e30=" // {}
	_, err = msg.Event()
	assert.Error(t, err, "event without entity name")
}

func TestLocalHTTPPublisher_PublishHistoryEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, testutil.FixedClock(), testutil.DiscardLogger())
	require.NoError(t, publisher.PublishHistoryEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	event, err := received.Event()
	require.NoError(t, err)
	assert.Equal(t, int64(77), event.MasterID)
	assert.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, testutil.FixedClock(), testutil.DiscardLogger())
	err := publisher.PublishHistoryEvent(context.Background(), testEvent())
	assert.ErrorContains(t, err, "503")
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(testutil.DiscardLogger())
	assert.NoError(t, publisher.PublishHistoryEvent(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}
