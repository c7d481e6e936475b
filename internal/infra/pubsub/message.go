package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"time"

	"projectforge/internal/domain/service"

	"github.com/pkg/errors"
)

// PushMessage is the body Pub/Sub sends to push endpoints. The local
// publisher produces the same shape so the worker has one decoding path.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Attribute keys set on every history message.
const (
	AttrEntityName = "entity_name"
	AttrEntityID   = "entity_id"
	AttrMasterID   = "master_id"
	AttrRequestID  = "request_id"
)

func attributes(event *service.HistoryEvent) map[string]string {
	attrs := map[string]string{
		AttrEntityName: event.EntityName,
		AttrEntityID:   strconv.FormatInt(event.EntityID, 10),
		AttrMasterID:   strconv.FormatInt(event.MasterID, 10),
	}
	if event.RequestID != "" {
		attrs[AttrRequestID] = event.RequestID
	}

	return attrs
}

// NewPushMessage wraps an event the way a Pub/Sub push subscription does.
func NewPushMessage(event *service.HistoryEvent, subscription string, publishedAt time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes(event)
	msg.Message.MessageID = strconv.FormatInt(event.MasterID, 10)
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return msg, nil
}

// Event decodes the history event carried in the message data.
func (m *PushMessage) Event() (*service.HistoryEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.HistoryEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse history event")
	}
	if event.EntityName == "" {
		return nil, errors.New("history event without entity name")
	}

	return &event, nil
}
