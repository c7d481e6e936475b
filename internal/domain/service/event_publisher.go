package service

import (
	"context"
	"time"
)

// HistoryEvent announces a committed history master to other processes so
// they can expire their caches.
type HistoryEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	MasterID   int64     `json:"master_id"`
	EntityName string    `json:"entity_name"`
	EntityID   int64     `json:"entity_id"`
	OpType     string    `json:"op_type"`
	ModifiedBy string    `json:"modified_by"`
	ModifiedAt time.Time `json:"modified_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishHistoryEvent publishes a history event for async processing
	PublishHistoryEvent(ctx context.Context, event *HistoryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
