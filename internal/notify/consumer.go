package notify

import (
	"context"
	"encoding/json"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const consumerTag = "parking-mailer"

// Consumer drains the mail queue and hands each delivery to a worker pool.
// A message that fails to send is requeued once, then dropped.
type Consumer struct {
	channel Channel
	queue   string
	sender  Sender
	workers int
}

func NewConsumer(ch Channel, queue string, sender Sender, workers int) *Consumer {
	if workers < 1 {
		workers = 1
	}
	return &Consumer{
		channel: ch,
		queue:   queue,
		sender:  sender,
		workers: workers,
	}
}

// Run consumes until ctx is done or the delivery channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.channel.Qos(c.workers*2, 0, false); err != nil {
		zap.L().Warn("can't set QoS", zap.Error(err))
	}
	deliveries, err := c.channel.Consume(c.queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return err
	}

	pool := NewWorkerPool(c.workers)
	defer pool.Close()

	zap.L().Info("mail consumer started", zap.String("queue", c.queue), zap.Int("workers", c.workers))
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("mail consumer stopped")
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			err := pool.AddTask(ctx, func() error {
				return c.handle(ctx, d)
			})
			if err != nil {
				_ = d.Nack(false, true)
				return nil
			}
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) error {
	var msg Message
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		zap.L().Error("can't decode mail message, dropping", zap.String("message_id", d.MessageId), zap.Error(err))
		return d.Nack(false, false)
	}

	if err := c.sender.Send(ctx, msg); err != nil {
		requeue := !d.Redelivered
		zap.L().Error("can't send email",
			zap.String("message_id", msg.ID),
			zap.Bool("requeue", requeue),
			zap.Error(err),
		)
		return d.Nack(false, requeue)
	}
	return d.Ack(false)
}

func (c *Consumer) Close() error {
	return c.channel.Close()
}
