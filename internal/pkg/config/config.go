package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

const (
	TransitionPolicyPermissive = "permissive"
	TransitionPolicyStrict     = "strict"

	defaultTransitionPolicy  = TransitionPolicyPermissive
	defaultReferenceTimezone = "UTC"
	defaultOrderAPITimeout   = 10 * time.Second
	defaultLogLevel          = "info"
)

type (
	Log struct {
		Level string
	}

	Tasks struct {
		TransitionsCleanupInterval time.Duration
		TransitionsRetention       time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	// OrderAPI удаленный REST сервер заказов.
	// Token или пара Email/Password нужны только воркеру, BFF передает токен клиента.
	OrderAPI struct {
		BaseURL  string
		Timeout  time.Duration
		Token    string
		Email    string
		Password string
	}

	Orders struct {
		TransitionPolicy  string
		ReferenceTimezone string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Log      Log
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		OrderAPI OrderAPI
		Orders   Orders
		Kafka    Kafka
	}
)

// Load читает общую для BFF и воркера конфигурацию и сообщает обо всех ошибках сразу.
func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// ValidateWorker проверяет то, что нужно только воркеру: Kafka и собственную учетную запись
// на сервере заказов.
func (c *Config) ValidateWorker() error {
	var errs []error
	required := func(name, value string) {
		if value == "" {
			errs = append(errs, fmt.Errorf("%s is required", name))
		}
	}

	required("KAFKA_BROKERS", c.Kafka.Brokers)
	required("KAFKA_TOPIC", c.Kafka.Topic)
	required("KAFKA_CONSUMER_GROUP", c.Kafka.ConsumerGroup)
	required("KAFKA_HTTP_HEALTHCHECK_PORT", c.Kafka.PortHealthcheck)
	required("KAFKA_SARAMA_VERSION", c.Kafka.Sarama.Version)
	if c.Kafka.Handlers.OrderStatusChanged.ProcessTimeout <= 0 {
		errs = append(errs, errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required"))
	}

	if c.OrderAPI.Token == "" && c.OrderAPI.Email == "" {
		errs = append(errs, errors.New("ORDER_API_TOKEN or ORDER_API_EMAIL/ORDER_API_PASSWORD is required"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("worker validation: %w", err)
	}
	return nil
}

// Location часовой пояс, в котором дата доставки приводится к полуночи.
func (o Orders) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(o.ReferenceTimezone)
	if err != nil {
		return nil, fmt.Errorf("ORDER_REFERENCE_TIMEZONE=%q: %w", o.ReferenceTimezone, err)
	}
	return loc, nil
}

func loadFromEnv() (*Config, error) {
	env := &envReader{}

	cfg := &Config{
		Log: Log{
			Level: env.stringOr("LOG_LEVEL", defaultLogLevel),
		},
		Tasks: Tasks{
			TransitionsCleanupInterval: env.duration("BACKGROUND_TRANSITIONS_CLEANUP_INTERVAL"),
			TransitionsRetention:       env.duration("TRANSITIONS_RETENTION"),
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   env.duration("MIDDLEWARE_REQUEST_TIMEOUT"),
			RateLimiterQPS:   env.integer("MIDDLEWARE_RATE_LIMIT_QPS"),
			RateLimiterBurst: env.integer("MIDDLEWARE_RATE_LIMIT_BURST"),
			PprofEnabled:     env.boolean("PPROF_ENABLED"),
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		OrderAPI: OrderAPI{
			BaseURL:  os.Getenv("ORDER_API_BASE_URL"),
			Timeout:  env.durationOr("ORDER_API_TIMEOUT", defaultOrderAPITimeout),
			Token:    os.Getenv("ORDER_API_TOKEN"),
			Email:    os.Getenv("ORDER_API_EMAIL"),
			Password: os.Getenv("ORDER_API_PASSWORD"),
		},
		Orders: Orders{
			TransitionPolicy:  env.stringOr("ORDER_STATUS_TRANSITIONS", defaultTransitionPolicy),
			ReferenceTimezone: env.stringOr("ORDER_REFERENCE_TIMEZONE", defaultReferenceTimezone),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: env.boolean("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT"),
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: env.duration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT"),
				},
			},
		},
	}

	if err := env.err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errs []error
	required := func(name, value string) {
		if value == "" {
			errs = append(errs, fmt.Errorf("%s is required", name))
		}
	}
	positive := func(name string, value int64) {
		if value <= 0 {
			errs = append(errs, fmt.Errorf("%s is required and must be positive", name))
		}
	}

	required("PORT", cfg.Server.Port)
	positive("MIDDLEWARE_REQUEST_TIMEOUT", int64(cfg.Server.RequestTimeout))
	positive("MIDDLEWARE_RATE_LIMIT_QPS", int64(cfg.Server.RateLimiterQPS))
	positive("MIDDLEWARE_RATE_LIMIT_BURST", int64(cfg.Server.RateLimiterBurst))
	if cfg.Server.PprofEnabled {
		required("PPROF_PORT", cfg.Server.PprofPort)
	}

	required("POSTGRES_HOST", cfg.Database.Host)
	required("POSTGRES_PORT", cfg.Database.Port)
	required("POSTGRES_USER", cfg.Database.User)
	required("POSTGRES_PASSWORD", cfg.Database.Password)
	required("POSTGRES_DB", cfg.Database.DBName)
	required("POSTGRES_SSLMODE", cfg.Database.SSLMode)

	positive("BACKGROUND_TRANSITIONS_CLEANUP_INTERVAL", int64(cfg.Tasks.TransitionsCleanupInterval))
	positive("TRANSITIONS_RETENTION", int64(cfg.Tasks.TransitionsRetention))

	if u, err := url.Parse(cfg.OrderAPI.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("ORDER_API_BASE_URL=%q must be an absolute url", cfg.OrderAPI.BaseURL))
	}
	if (cfg.OrderAPI.Email == "") != (cfg.OrderAPI.Password == "") {
		errs = append(errs, errors.New("ORDER_API_EMAIL and ORDER_API_PASSWORD must be set together"))
	}

	switch cfg.Orders.TransitionPolicy {
	case TransitionPolicyPermissive, TransitionPolicyStrict:
	default:
		errs = append(errs, fmt.Errorf("ORDER_STATUS_TRANSITIONS=%q must be %q or %q",
			cfg.Orders.TransitionPolicy, TransitionPolicyPermissive, TransitionPolicyStrict))
	}
	if _, err := cfg.Orders.Location(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// envReader разбирает типизированные переменные и копит ошибки формата.
// Пустая переменная дает нулевое значение.
type envReader struct {
	errs []error
}

func (e *envReader) err() error {
	return errors.Join(e.errs...)
}

func (e *envReader) stringOr(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func (e *envReader) integer(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("invalid int format for %s=%q: %w", key, val, err))
	}
	return res
}

func (e *envReader) duration(key string) time.Duration {
	return e.durationOr(key, 0)
}

func (e *envReader) durationOr(key string, def time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("invalid duration format for %s=%q: %w", key, val, err))
	}
	return res
}

func (e *envReader) boolean(key string) bool {
	val := os.Getenv(key)
	if val == "" {
		return false
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("invalid bool format for %s=%q: %w", key, val, err))
	}
	return res
}
