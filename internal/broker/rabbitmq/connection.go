package rabbitbroker

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "fanout"

type connection struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// dial opens a connection with one channel and declares a fanout exchange
// named after the topic.
func dial(url, exchange string) (*connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		exchangeKind,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %q: %w", exchange, err)
	}

	return &connection{conn: conn, channel: ch}, nil
}

func (c *connection) close() error {
	var errs []error
	if err := c.channel.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := c.conn.Close(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}
	return nil
}
