package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ResultsDriverMemory = "memory"
	ResultsDriverRedis  = "redis"
)

type (
	Config struct {
		Log             Log
		HTTP            HTTP
		Kafka           Kafka
		KafkaController KafkaController
		Listener        Listener
		Codec           Codec
		S3              S3
		Results         Results
		Swagger         Swagger
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	HTTP struct {
		Enabled         bool          `env:"HTTP_ENABLED" envDefault:"true"`
		Port            string        `env:"HTTP_PORT" envDefault:"8080"`
		UsePreforkMode  bool          `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"5s"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"3s"`
		BodyLimit       int           `env:"HTTP_BODY_LIMIT" envDefault:"1048576"`
		SubmitTimeout   time.Duration `env:"HTTP_SUBMIT_TIMEOUT" envDefault:"5s"`
	}

	Kafka struct {
		Enabled       bool     `env:"KAFKA_ENABLED" envDefault:"false"`
		Brokers       []string `env:"KAFKA_BROKERS"`
		GroupID       string   `env:"KAFKA_GROUP_ID" envDefault:"image-transformer"`
		RequestsTopic string   `env:"KAFKA_REQUESTS_TOPIC" envDefault:"image-transform-requests"`
		EventsTopic   string   `env:"KAFKA_EVENTS_TOPIC" envDefault:"image-transform-events"`

		ConnAttempts int           `env:"KAFKA_CONN_ATTEMPTS" envDefault:"10"`
		ConnTimeout  time.Duration `env:"KAFKA_CONN_TIMEOUT" envDefault:"1s"`
		MaxBytes     int           `env:"KAFKA_CONSUMER_MAX_BYTES" envDefault:"1000000"`
		BatchTimeout time.Duration `env:"KAFKA_PRODUCER_BATCH_TIMEOUT" envDefault:"10ms"`
	}

	KafkaController struct {
		CommitTimeout   time.Duration `env:"KAFKA_CONTROLLER_COMMIT_TIMEOUT" envDefault:"2s"`
		SubmitTimeout   time.Duration `env:"KAFKA_CONTROLLER_SUBMIT_TIMEOUT" envDefault:"10s"` // ожидание места в очереди листенера
		ShutdownTimeout time.Duration `env:"KAFKA_CONTROLLER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	}

	Listener struct {
		QueueSize          int           `env:"LISTENER_QUEUE_SIZE" envDefault:"16"`
		SendTimeout        time.Duration `env:"LISTENER_SEND_TIMEOUT" envDefault:"5s"`
		ShutdownTimeout    time.Duration `env:"LISTENER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
		ResizeEmitFailures bool          `env:"LISTENER_RESIZE_EMIT_FAILURES" envDefault:"false"`
	}

	Codec struct {
		JPEGQuality int `env:"CODEC_JPEG_QUALITY" envDefault:"80"`
	}

	S3 struct {
		Enabled        bool          `env:"S3_ENABLED" envDefault:"false"`
		Endpoint       string        `env:"S3_ENDPOINT"`
		Region         string        `env:"S3_REGION"`
		AccessKey      string        `env:"S3_ACCESS_KEY"`
		SecretKey      string        `env:"S3_SECRET_KEY"`
		UsePathStyle   bool          `env:"S3_USE_PATH_STYLE" envDefault:"true"`
		ConnAttempts   int           `env:"S3_CONN_ATTEMPTS" envDefault:"10"`
		ConnTimeout    time.Duration `env:"S3_CONN_TIMEOUT" envDefault:"1s"`
		CfgLoadTimeout time.Duration `env:"S3_LOAD_CFG_TIMEOUT" envDefault:"10s"`
	}

	Results struct {
		Driver        string        `env:"RESULTS_DRIVER" envDefault:"memory"`
		TTL           time.Duration `env:"RESULTS_TTL" envDefault:"15m"`
		RedisAddr     string        `env:"RESULTS_REDIS_ADDR"`
		RedisPassword string        `env:"RESULTS_REDIS_PASSWORD"`
		RedisDB       int           `env:"RESULTS_REDIS_DB" envDefault:"0"`
		RedisPrefix   string        `env:"RESULTS_REDIS_PREFIX" envDefault:"image-transformer:result:"`
		ConnAttempts  int           `env:"RESULTS_REDIS_CONN_ATTEMPTS" envDefault:"10"`
		ConnTimeout   time.Duration `env:"RESULTS_REDIS_CONN_TIMEOUT" envDefault:"1s"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required when KAFKA_ENABLED=true")
	}

	if c.S3.Enabled && (c.S3.AccessKey == "" || c.S3.SecretKey == "") {
		return fmt.Errorf("S3_ACCESS_KEY and S3_SECRET_KEY are required when S3_ENABLED=true")
	}

	if !c.Kafka.Enabled && !c.HTTP.Enabled {
		return fmt.Errorf("at least one of KAFKA_ENABLED or HTTP_ENABLED must be true")
	}

	switch c.Results.Driver {
	case ResultsDriverMemory:
	case ResultsDriverRedis:
		if c.Results.RedisAddr == "" {
			return fmt.Errorf("RESULTS_REDIS_ADDR is required when RESULTS_DRIVER=redis")
		}
	default:
		return fmt.Errorf("RESULTS_DRIVER must be %q or %q, got %q", ResultsDriverMemory, ResultsDriverRedis, c.Results.Driver)
	}

	if c.Codec.JPEGQuality < 1 || c.Codec.JPEGQuality > 100 {
		return fmt.Errorf("CODEC_JPEG_QUALITY must be between 1 and 100, got %d", c.Codec.JPEGQuality)
	}

	return nil
}
