package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/internal/infrastructure"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/jitter"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

const (
	publishAttempts = 3
	eventTypeHeader = "event_type"
)

// messageWriter: часть kafka.Writer, нужная продюсеру.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer публикует события order_placed в топик Kafka.
type Producer struct {
	writer  messageWriter
	logger  logger.Logger
	cfg     *cfg.KafkaCfg
	backoff jitter.Backoff
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return newProducer(writer, logger, cfg, jitter.DefaultBackoff())
}

func newProducer(writer messageWriter, logger logger.Logger, cfg *cfg.KafkaCfg, backoff jitter.Backoff) *Producer {
	return &Producer{
		writer:  writer,
		logger:  logger,
		cfg:     cfg,
		backoff: backoff,
	}
}

// PublishOrderPlaced пишет событие с ключом сессии, повторяя временные сбои с джиттером.
func (p *Producer) PublishOrderPlaced(ctx context.Context, event *usecase.OrderPlacedEvent) error {
	value, err := infrastructure.MarshalOrderPlaced(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: value,
		Headers: []kafka.Header{
			{Key: eventTypeHeader, Value: []byte(infrastructure.EventTypeOrderPlaced)},
		},
	}

	attempt := 0
	err = jitter.Retry(ctx, publishAttempts, p.backoff, isRetryableError, func(ctx context.Context) error {
		attempt++
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			p.logger.Warnf("Kafka write failed. attempt: %d, event_id: %s, error: %v", attempt, event.EventID, err)
			return err
		}
		return nil
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	p.logger.Debugf("order_placed published to kafka. topic: %s, event_id: %s", p.cfg.Topic, event.EventID)
	return nil
}

// EnsureTopic создаёт топик, если его ещё нет.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		err := conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topic %s: %w", p.cfg.Topic, err))
		}
		return nil
	case <-time.After(timeout):
		_ = conn.Close()
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout: %v, topic: %s", timeout, p.cfg.Topic))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// isRetryableError дополняет сетевую классификацию временными ошибками протокола Kafka.
func isRetryableError(err error) bool {
	var kerr kafka.Error
	if errors.As(err, &kerr) {
		return kerr.Temporary()
	}
	return infrastructure.IsRetryableError(err)
}
