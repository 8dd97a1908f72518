package kafka

import (
	"context"
	"fmt"
	"sync"

	"github.com/IBM/sarama"

	"fastfeet/internal/pkg/config"
	"fastfeet/internal/pkg/metrics"
	"fastfeet/pkg/logger"
)

// Producer - обертка над sarama.AsyncProducer, сама вычитывает Errors()
type Producer struct {
	sarama.AsyncProducer
	log  logger.Logger
	done sync.WaitGroup
}

func NewSaramaProducerConfig(cfg *config.Kafka) (*sarama.Config, error) {
	saramaCfg, err := newSaramaConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, err
	}

	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal
	saramaCfg.Producer.Return.Successes = false
	saramaCfg.Producer.Return.Errors = true
	saramaCfg.Producer.Retry.Max = 3

	return saramaCfg, nil
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig, err := NewSaramaProducerConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", cfg.Brokers),
		logger.NewField("topic", cfg.NotificationsTopic),
	)

	if err := pingKafka(ctx, kafkaLog, cfg.Brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	asyncProducer, err := sarama.NewAsyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("async producer: %w", err)
	}

	return WrapProducer(kafkaLog, asyncProducer), nil
}

// WrapProducer запускает вычитку ошибок доставки
func WrapProducer(log logger.Logger, asyncProducer sarama.AsyncProducer) *Producer {
	p := &Producer{
		AsyncProducer: asyncProducer,
		log:           log,
	}

	p.done.Add(1)
	go p.drainErrors()

	return p
}

func (p *Producer) drainErrors() {
	defer p.done.Done()

	for perr := range p.Errors() {
		name := "unknown"
		for _, h := range perr.Msg.Headers {
			if string(h.Key) == "name" {
				name = string(h.Value)
			}
		}
		metrics.NotificationsEnqueued.WithLabelValues(name, metrics.ResultFailed).Inc()

		p.log.With(
			logger.NewField("error", perr.Err),
			logger.NewField("topic", perr.Msg.Topic),
			logger.NewField("name", name),
		).Error("notification delivery to kafka failed")
	}
}

// Close дожидается отправки буфера и вычитки ошибок
func (p *Producer) Close() error {
	p.AsyncProducer.AsyncClose()
	p.done.Wait()
	return nil
}
