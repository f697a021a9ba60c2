package rabbitbroker

import (
	"context"
	"errors"

	"github.com/Egor213/RosoutDiag/internal/broker"
	errorsUtils "github.com/Egor213/RosoutDiag/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrDeliveriesClosed = errors.New("rabbitmq delivery channel closed")

type ConsumerConfig struct {
	URL      string
	Exchange string
	// Tag identifies the consumer on the broker; the node identity is used.
	Tag string
}

type Consumer struct {
	conn     *connection
	exchange string
	tag      string
}

func NewConsumer(cfg ConsumerConfig) (*Consumer, error) {
	conn, err := dial(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return &Consumer{
		conn:     conn,
		exchange: cfg.Exchange,
		tag:      cfg.Tag,
	}, nil
}

// Consume binds a private, auto-deleted queue to the exchange so every relay
// instance sees every record.
func (c *Consumer) Consume(ctx context.Context, handler broker.Handler) error {
	ch := c.conn.channel

	q, err := ch.QueueDeclare(
		"",    // server-generated name
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if err := ch.QueueBind(q.Name, "", c.exchange, false, nil); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	deliveries, err := ch.ConsumeWithContext(
		ctx,
		q.Name,
		c.tag,
		true,  // auto-ack
		true,  // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	log.WithFields(log.Fields{
		"exchange": c.exchange,
		"queue":    q.Name,
	}).Info("RabbitMQ consumer started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errorsUtils.WrapPathErr(ErrDeliveriesClosed)
			}
			if err := handler(ctx, d.Body); err != nil {
				log.WithFields(log.Fields{
					"exchange": c.exchange,
					"tag":      d.DeliveryTag,
					"error":    err,
				}).Error("Failed to handle message")
			}
		}
	}
}

func (c *Consumer) Close() error {
	log.WithField("exchange", c.exchange).Info("Closing RabbitMQ consumer...")
	return c.conn.close()
}
