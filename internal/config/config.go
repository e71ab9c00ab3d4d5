package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"paybox/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type (
	Config struct {
		App      App      `env-prefix:"APP_"`
		Logger   Logger   `env-prefix:"LOGGER_"`
		Postgres Postgres `env-prefix:"DB_"`
		HTTP     HTTP     `env-prefix:"HTTP_"`
		Cache    Cache    `env-prefix:"CACHE_"`
		Notifier Notifier `env-prefix:"NOTIFIER_"`
		Metrics  Metrics  `env-prefix:"METRICS_"`
		Paybox   Paybox   `env-prefix:"PAYBOX_"`
		Env      string   `                      env:"ENV" env-default:"local" validate:"oneof=local dev staging prod"`
	}

	App struct {
		Port    int    `env:"PORT"    validate:"gte=1,lte=65535" env-default:"8080"`
		Name    string `env:"NAME"    validate:"required"`
		Version string `env:"VERSION" validate:"required"`
	}

	Postgres struct {
		Host             string        `env:"HOST"                validate:"required"`
		Port             string        `env:"PORT"                validate:"required,gte=1,lte=65535"`
		Name             string        `env:"NAME"                validate:"required"`
		User             string        `env:"USER"                validate:"required"`
		Password         string        `env:"PASSWORD"            validate:"required"`
		SSLMode          string        `env:"SSL_MODE"            validate:"required"`
		PoolMax          int32         `env:"POOL_MAX"            validate:"min=1,max=100"                                                 env-default:"20"`
		ConnAttempts     int           `env:"CONN_ATTEMPTS"       validate:"min=1,max=10"                                                  env-default:"5"`
		BaseRetryDelay   time.Duration `env:"BASE_RETRY_DELAY"    validate:"gte=10ms,lte=10s"                                              env-default:"100ms"`
		MaxRetryDelay    time.Duration `env:"MAX_RETRY_DELAY"     validate:"gte=100ms,lte=30s,gtefield=BaseRetryDelay"                     env-default:"5s"`
		PingTimeout      time.Duration `env:"PING_TIMEOUT"        validate:"gte=100ms,lte=30s"                                             env-default:"3s"`
		TxIsolation      string        `env:"TX_ISOLATION"        validate:"oneof='read committed' 'repeatable read' serializable"         env-default:"read committed"`
		TxMaxAttempts    int           `env:"TX_MAX_ATTEMPTS"     validate:"min=1,max=10"                                                  env-default:"3"`
		TxBaseRetryDelay time.Duration `env:"TX_BASE_RETRY_DELAY" validate:"gte=1ms,lte=1s"                                                env-default:"10ms"`
		TxMaxRetryDelay  time.Duration `env:"TX_MAX_RETRY_DELAY"  validate:"gte=1ms,lte=5s,gtefield=TxBaseRetryDelay"                      env-default:"100ms"`
	}

	HTTP struct {
		Host              string        `env:"HOST"                validate:"required"                 env-default:"0.0.0.0"`
		Port              string        `env:"PORT"                validate:"required,gte=1,lte=65535" env-default:"8080"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s"         env-default:"5s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=30s"         env-default:"5s"`
		IdleTimeout       time.Duration `env:"IDLE_TIMEOUT"        validate:"gte=10ms,lte=5m"          env-default:"60s"`
		ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"    validate:"gte=10ms,lte=30s"         env-default:"10s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s"         env-default:"5s"`
	}

	Cache struct {
		Capacity        int           `env:"CAPACITY"         validate:"required,min=1,max=1000000" env-default:"64"`
		TTL             time.Duration `env:"TTL"              validate:"required,gt=0s,lte=24h"     env-default:"30s"`
		CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" validate:"gt=0s,lte=24h"              env-default:"10s"`
	}

	Notifier struct {
		Brokers        []string      `env:"BROKERS"          validate:"min=1,dive,hostname_port"                  env-separator:","`
		Topic          string        `env:"TOPIC"            validate:"required"`
		DLQTopic       string        `env:"DLQ_TOPIC"        validate:"required,nefield=Topic"`
		BatchSize      int           `env:"BATCH_SIZE"       validate:"required,min=1,max=1000"                   env-default:"1"`
		BatchTimeout   time.Duration `env:"BATCH_TIMEOUT"    validate:"required,gte=1ms,lte=30s"                  env-default:"10ms"`
		WriteTimeout   time.Duration `env:"WRITE_TIMEOUT"    validate:"required,gte=1ms,lte=30s"                  env-default:"2s"`
		ReadTimeout    time.Duration `env:"READ_TIMEOUT"     validate:"required,gte=1ms,lte=30s"                  env-default:"2s"`
		MaxAttempts    int           `env:"MAX_ATTEMPTS"     validate:"min=1,max=20"                              env-default:"3"`
		BaseRetryDelay time.Duration `env:"BASE_RETRY_DELAY" validate:"gte=10ms,lte=10s"                          env-default:"100ms"`
		MaxRetryDelay  time.Duration `env:"MAX_RETRY_DELAY"  validate:"gte=10ms,lte=30s,gtefield=BaseRetryDelay"  env-default:"2s"`
	}

	Paybox struct {
		PublicKeyPath     string        `env:"PUBLIC_KEY_PATH"     validate:"required"                      env-default:"./config/paybox-public-key.pem"`
		CurrencyListURL   string        `env:"CURRENCY_LIST_URL"   validate:"required,url"                  env-default:"http://www.currency-iso.org/dam/downloads/lists/list_one.xml"`
		CurrencyCachePath string        `env:"CURRENCY_CACHE_PATH" validate:"required"                      env-default:"./config/iso4217.xml"`
		CurrencyTimeout   time.Duration `env:"CURRENCY_TIMEOUT"    validate:"gte=100ms,lte=30s"             env-default:"3s"`
		OrderPlacedURL    string        `env:"ORDER_PLACED_URL"    validate:"required"                      env-default:"/order/placed"`
		OrderFailedURL    string        `env:"ORDER_FAILED_URL"    validate:"required"                      env-default:"/order/failed"`
		TrustedProxies    []string      `env:"TRUSTED_PROXIES"     validate:"dive,ip|cidr"                  env-separator:","`
	}

	Metrics struct {
		Host              string        `env:"HOST"                validate:"required"                 env-default:"0.0.0.0"`
		Port              string        `env:"PORT"                validate:"required,gte=1,lte=65535" env-default:"9090"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s"         env-default:"5s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=30s"         env-default:"5s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s"         env-default:"5s"`
	}

	Logger struct {
		Level      string `env:"LEVEL"       env-default:"info"                     validate:"oneof=debug info warn error"`
		Filename   string `env:"FILENAME"    env-default:"./logs/paybox-service.log"`
		MaxSize    int    `env:"MAX_SIZE"    env-default:"100"                      validate:"min=1,max=1000"`
		MaxBackups int    `env:"MAX_BACKUPS" env-default:"3"                        validate:"min=0,max=20"`
		MaxAge     int    `env:"MAX_AGE"     env-default:"28"                       validate:"min=1,max=365"`
	}
)

func Load() (*Config, error) {
	path := fetchConfigPath()
	if path == "" {
		return nil, entity.ErrConfigPathNotSet
	}
	return LoadPath(path)
}

func LoadPath(configPath string) (*Config, error) {
	const op = "config.LoadPath"

	validate := validator.New()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	} else if err != nil {
		return nil, fmt.Errorf("%s: checking config file: %w", op, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: read config: %w", op, err)
	}

	var validationErrors []string
	if err := validate.Struct(&cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, ve := range validationErrs {
				validationErrors = append(validationErrors,
					fmt.Sprintf("%s=%v must satisfy '%s'", ve.Field(), ve.Value(), ve.Tag()))
			}
			return nil, fmt.Errorf(
				"%s: config validation: %v", op,
				strings.Join(validationErrors, "; "),
			)
		}
		return nil, fmt.Errorf("%s: config validation: %w", op, err)
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var path string
	flag.StringVar(&path, "config", "", "Path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}
