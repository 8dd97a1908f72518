package notification_dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"fastfeet/internal/dto"
	"fastfeet/internal/entities"
	"fastfeet/internal/pkg/metrics"
	"fastfeet/pkg/logger"
)

type Handler struct {
	service                  Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, service Service, timeout time.Duration) *Handler {
	return &Handler{
		service:                  service,
		log:                      log.With(logger.NewField("handler", "notification.dispatch")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка группы
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать:
// контекст отменен и сообщение должно быть перечитано.
// Остальные сообщения помечаются прочитанными, даже если письмо не ушло
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var payload dto.NotificationMessage
	if err := json.Unmarshal(message.Value, &payload); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("bad notification message")
		metrics.NotificationsDispatched.WithLabelValues("unknown", metrics.ResultDropped).Inc()
		sess.MarkMessage(message, "")
		return false
	}

	job := payload.ToEntity()
	msgLog := h.log.With(
		logger.NewField("job_id", job.ID.String()),
		logger.NewField("name", job.Name.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Debug("notification processing")

	err := h.service.Dispatch(ctx, job)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) && sess.Context().Err() != nil:
			msgLog.With(logger.NewField("error", err)).Warn("session cancelled, message will be reprocessed")
			return true

		case errors.Is(err, entities.ErrInvalidArgument):
			msgLog.With(logger.NewField("error", err)).Warn("notification rejected")
			metrics.NotificationsDispatched.WithLabelValues(job.Name.String(), metrics.ResultDropped).Inc()

		default:
			msgLog.With(logger.NewField("error", err)).Error("notification dispatch failed")
			metrics.NotificationsDispatched.WithLabelValues(job.Name.String(), metrics.ResultFailed).Inc()
		}
		sess.MarkMessage(message, "")
		return false
	}

	metrics.NotificationsDispatched.WithLabelValues(job.Name.String(), metrics.ResultOK).Inc()
	msgLog.Info("notification sent")

	sess.MarkMessage(message, "")
	return false
}
