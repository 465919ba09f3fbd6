package repository

import (
	"context"
	"encoding/json"

	"guidelight/internal/chat/domain"

	"github.com/segmentio/kafka-go"
)

// NotificationPublisher pushes send events to the notification topic.
// Failures are the caller's to log, a broken broker never blocks chat.
type NotificationPublisher interface {
	PublishNotification(ctx context.Context, event domain.NotificationEvent) error
}

type kafkaNotificationPublisher struct {
	writer *kafka.Writer
}

// NewKafkaNotificationPublisher create publisher over an existing writer
func NewKafkaNotificationPublisher(writer *kafka.Writer) NotificationPublisher {
	return &kafkaNotificationPublisher{writer: writer}
}

func (p *kafkaNotificationPublisher) PublishNotification(ctx context.Context, event domain.NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Scope.ID),
		Value: data,
	})
}
