package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"fastfeet/internal/dto"
	"fastfeet/internal/entities"
	"fastfeet/internal/pkg/metrics"
)

type Gateway struct {
	producer       producer
	topic          string
	enqueueTimeout time.Duration
}

func New(producer producer, topic string, enqueueTimeout time.Duration) *Gateway {
	return &Gateway{
		producer:       producer,
		topic:          topic,
		enqueueTimeout: enqueueTimeout,
	}
}

// Enqueue отдает задание продюсеру и не ждет подтверждения брокера.
// Если продюсер не принял сообщение за enqueueTimeout - ErrQueueUnavailable
func (g *Gateway) Enqueue(ctx context.Context, job entities.NotificationJob) error {
	payload, err := json.Marshal(dto.NotificationMessageFromEntity(job))
	if err != nil {
		return fmt.Errorf("marshal notification %s: %w", job.Name, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(job.ID.String()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("name"), Value: []byte(job.Name.String())},
		},
		Timestamp: job.EnqueuedAt,
	}

	timer := time.NewTimer(g.enqueueTimeout)
	defer timer.Stop()

	select {
	case g.producer.Input() <- msg:
		metrics.NotificationsEnqueued.WithLabelValues(job.Name.String(), metrics.ResultOK).Inc()
		return nil
	case <-ctx.Done():
		metrics.NotificationsEnqueued.WithLabelValues(job.Name.String(), metrics.ResultDropped).Inc()
		return fmt.Errorf("enqueue %s: %w", job.Name, ctx.Err())
	case <-timer.C:
		metrics.NotificationsEnqueued.WithLabelValues(job.Name.String(), metrics.ResultDropped).Inc()
		return fmt.Errorf("enqueue %s: %w", job.Name, ErrQueueUnavailable)
	}
}
