package rabbitmq

import (
	"context"
	"sync"

	"github.com/DRSN-tech/food-delivery/internal/cfg"
	"github.com/DRSN-tech/food-delivery/internal/infrastructure"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/jitter"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/jimlawless/whereami"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeKind    = "topic"
	routingKey      = "orders.placed"
	publishAttempts = 3
)

// channel: часть amqp.Channel, которую использует Publisher.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// dialer открывает канал к брокеру.
type dialer func() (channel, error)

// Publisher публикует события order_placed в topic-exchange RabbitMQ.
// Канал открывается лениво и пересоздаётся после сетевой ошибки.
type Publisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	ch      channel
	dial    dialer
	cfg     *cfg.RabbitMQCfg
	logger  logger.Logger
	backoff jitter.Backoff
}

// Connect подключается к RabbitMQ по cfg.URL.
func Connect(cfg *cfg.RabbitMQCfg, logger logger.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	p := newPublisher(func() (channel, error) { return conn.Channel() }, cfg, logger, jitter.DefaultBackoff())
	p.conn = conn
	return p, nil
}

func newPublisher(dial dialer, cfg *cfg.RabbitMQCfg, logger logger.Logger, backoff jitter.Backoff) *Publisher {
	return &Publisher{
		dial:    dial,
		cfg:     cfg,
		logger:  logger,
		backoff: backoff,
	}
}

func (p *Publisher) PublishOrderPlaced(ctx context.Context, event *usecase.OrderPlacedEvent) error {
	body, err := infrastructure.MarshalOrderPlaced(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    event.EventID,
		Type:         infrastructure.EventTypeOrderPlaced,
		Timestamp:    event.PlacedAt,
		Body:         body,
	}

	err = jitter.Retry(ctx, publishAttempts, p.backoff, infrastructure.IsRetryableError, func(ctx context.Context) error {
		return p.publish(ctx, msg)
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	p.logger.Debugf("order_placed published to rabbitmq. exchange: %s, event_id: %s", p.cfg.Exchange, event.EventID)
	return nil
}

func (p *Publisher) publish(ctx context.Context, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		ch, err := p.dial()
		if err != nil {
			return err
		}
		if err := ch.ExchangeDeclare(p.cfg.Exchange, exchangeKind, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			return err
		}
		p.ch = ch
	}

	if err := p.ch.PublishWithContext(ctx, p.cfg.Exchange, routingKey, false, false, msg); err != nil {
		p.logger.Warnf("RabbitMQ publish failed, channel will be reopened: %v", err)
		_ = p.ch.Close()
		p.ch = nil
		return err
	}

	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil && !p.conn.IsClosed() {
		if err := p.conn.Close(); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}
