package kafkabroker

import (
	"context"

	"github.com/Egor213/RosoutDiag/internal/broker"
	errorsUtils "github.com/Egor213/RosoutDiag/pkg/errors"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

type Consumer struct {
	reader *kafka.Reader
	topic  string
}

func NewConsumer(cfg ConsumerConfig) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		GroupID:     cfg.GroupID,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})
	return &Consumer{
		reader: r,
		topic:  cfg.Topic,
	}
}

// Consume commits every fetched message, including ones the handler
// rejected: a record that failed once will fail again.
func (c *Consumer) Consume(ctx context.Context, handler broker.Handler) error {
	log.WithField("topic", c.topic).Info("Kafka consumer started")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errorsUtils.WrapPathErr(err)
		}

		if err := handler(ctx, msg.Value); err != nil {
			log.WithFields(log.Fields{
				"topic":     msg.Topic,
				"partition": msg.Partition,
				"offset":    msg.Offset,
				"error":     err,
			}).Error("Failed to handle message")
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errorsUtils.WrapPathErr(err)
		}
	}
}

func (c *Consumer) Close() error {
	log.WithField("topic", c.topic).Info("Closing Kafka consumer...")
	return c.reader.Close()
}
