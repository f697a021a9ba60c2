package rabbitbroker

import (
	"context"
	"time"

	errorsUtils "github.com/Egor213/RosoutDiag/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

type ProducerConfig struct {
	URL      string
	Exchange string
}

type Producer struct {
	conn     *connection
	exchange string
}

func NewProducer(cfg ProducerConfig) (*Producer, error) {
	conn, err := dial(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return &Producer{
		conn:     conn,
		exchange: cfg.Exchange,
	}, nil
}

func (p *Producer) SendMessage(ctx context.Context, value []byte) error {
	err := p.conn.channel.PublishWithContext(
		ctx,
		p.exchange,
		"",    // routing key, ignored by fanout
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        value,
		},
	)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	log.WithField("exchange", p.exchange).Debugf("Message sent: value=%s", string(value))
	return nil
}

func (p *Producer) Close() error {
	log.WithField("exchange", p.exchange).Info("Closing RabbitMQ producer...")
	return p.conn.close()
}
