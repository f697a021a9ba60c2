package app

import (
	"fmt"

	"github.com/Egor213/RosoutDiag/internal/broker"
	kafkabroker "github.com/Egor213/RosoutDiag/internal/broker/kafka"
	rabbitbroker "github.com/Egor213/RosoutDiag/internal/broker/rabbitmq"
	"github.com/Egor213/RosoutDiag/internal/config"
	errorsUtils "github.com/Egor213/RosoutDiag/pkg/errors"
)

// newTransport wires the consumer of the input topic and the producer of the
// output topic for the configured broker.
func newTransport(cfg *config.Config, identity string) (broker.Consumer, broker.Producer, error) {
	switch cfg.Transport.Kind {
	case config.TransportKafka:
		groupID := cfg.Kafka.GroupID
		if groupID == "" {
			groupID = identity
		}
		consumer := kafkabroker.NewConsumer(kafkabroker.ConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Transport.InputTopic,
			GroupID: groupID,
		})
		producer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Transport.OutputTopic,
		})
		return consumer, producer, nil

	case config.TransportRabbitMQ:
		consumer, err := rabbitbroker.NewConsumer(rabbitbroker.ConsumerConfig{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.Transport.InputTopic,
			Tag:      identity,
		})
		if err != nil {
			return nil, nil, errorsUtils.WrapPathErr(err)
		}
		producer, err := rabbitbroker.NewProducer(rabbitbroker.ProducerConfig{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.Transport.OutputTopic,
		})
		if err != nil {
			consumer.Close()
			return nil, nil, errorsUtils.WrapPathErr(err)
		}
		return consumer, producer, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownTransport, cfg.Transport.Kind)
	}
}
