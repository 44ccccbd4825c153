package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

//go:generate mockgen -source=broker.go -destination=mock_broker.go -package=notify
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

// Broker publishes mail messages to a durable queue bound to a direct exchange.
type Broker struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
	queue    string
	mu       sync.Mutex
}

func Dial(url, exchange, queue string) (*Broker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	b, err := NewBroker(ch, exchange, queue)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	b.conn = conn
	return b, nil
}

// NewBroker declares the exchange, queue and binding on ch.
func NewBroker(ch Channel, exchange, queue string) (*Broker, error) {
	if err := ch.ExchangeDeclare(exchange, "direct", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(queue, queue, exchange, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}
	return &Broker{
		channel:  ch,
		exchange: exchange,
		queue:    queue,
	}, nil
}

// Dispatch enqueues msg for asynchronous delivery.
func (b *Broker) Dispatch(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	err = b.channel.PublishWithContext(ctx, b.exchange, b.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		zap.L().Error("can't publish email", zap.String("message_id", msg.ID), zap.Error(err))
		return fmt.Errorf("publish message: %w", err)
	}
	zap.L().Debug("email queued", zap.String("message_id", msg.ID), zap.String("recipient", msg.Recipient))
	return nil
}

// Consumer opens a second channel on the broker's connection for consuming.
func (b *Broker) Consumer(sender Sender, workers int) (*Consumer, error) {
	if b.conn == nil {
		return NewConsumer(b.channel, b.queue, sender, workers), nil
	}
	ch, err := b.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open consumer channel: %w", err)
	}
	return NewConsumer(ch, b.queue, sender, workers), nil
}

func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.channel.Close(); err != nil {
		zap.L().Warn("can't close channel", zap.Error(err))
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
