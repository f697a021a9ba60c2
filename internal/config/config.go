package config

import (
	"errors"
	"fmt"
	"os"

	errorsUtils "github.com/Egor213/RosoutDiag/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	TransportKafka    = "kafka"
	TransportRabbitMQ = "rabbitmq"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		Node       `yaml:"node"`
		Transport  `yaml:"transport"`
		Kafka      `yaml:"kafka"`
		RabbitMQ   `yaml:"rabbitmq"`
		GRPC       `yaml:"grpc"`
		Prometheus `yaml:"prometheus"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	// A false anonymous in yaml reads as unset and falls back to the default;
	// use NODE_ANONYMOUS=false to disable the unique suffix.
	Node struct {
		Name      string `yaml:"name" env:"NODE_NAME" env-default:"rosout_diagnostics"`
		Anonymous bool   `yaml:"anonymous" env:"NODE_ANONYMOUS" env-default:"true"`
	}

	Transport struct {
		Kind        string `yaml:"kind" env:"TRANSPORT_KIND" env-default:"kafka"`
		InputTopic  string `yaml:"input_topic" env:"INPUT_TOPIC" env-default:"rosout_agg"`
		OutputTopic string `yaml:"output_topic" env:"OUTPUT_TOPIC" env-default:"diagnostics"`
		QueueSize   int    `yaml:"queue_size" env:"QUEUE_SIZE" env-default:"10"`
	}

	Kafka struct {
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		GroupID string   `yaml:"group_id" env:"KAFKA_GROUP_ID"`
	}

	RabbitMQ struct {
		URL string `yaml:"url" env:"RABBITMQ_URL"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}

	GRPC struct {
		Port string `env-required:"true" yaml:"port" env:"GRPC_PORT"`
	}
)

const (
	ENV_PATH            = "infra/.env.dev"
	DEFAULT_CONFIG_PATH = "infra/config.yaml"
)

var (
	ErrUnknownTransport = errors.New("unknown transport kind")
	ErrEmptyTopic       = errors.New("topic must be specified")
	ErrSameTopics       = errors.New("input and output topics must differ")
	ErrQueueSize        = errors.New("queue size must be positive")
	ErrNoBrokers        = errors.New("kafka brokers must be specified")
	ErrNoRabbitURL      = errors.New("rabbitmq url must be specified")
)

func New() (*Config, error) {
	if err := godotenv.Load(ENV_PATH); err != nil {
		log.WithField("path", ENV_PATH).Debugf("Env file not loaded: %v", err)
	}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = DEFAULT_CONFIG_PATH
	}

	return Load(pathToConfig)
}

func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Transport.InputTopic == "" || c.Transport.OutputTopic == "" {
		return ErrEmptyTopic
	}
	if c.Transport.InputTopic == c.Transport.OutputTopic {
		return ErrSameTopics
	}
	if c.Transport.QueueSize <= 0 {
		return ErrQueueSize
	}

	switch c.Transport.Kind {
	case TransportKafka:
		if len(c.Kafka.Brokers) == 0 {
			return ErrNoBrokers
		}
	case TransportRabbitMQ:
		if c.RabbitMQ.URL == "" {
			return ErrNoRabbitURL
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTransport, c.Transport.Kind)
	}

	return nil
}
