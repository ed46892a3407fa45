package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/YDahdah/Nectar/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type (
	Config struct {
		App        App        `env-prefix:"APP_"`
		Logger     Logger     `env-prefix:"LOGGER_"`
		HTTP       HTTP       `env-prefix:"HTTP_"`
		Metrics    Metrics    `env-prefix:"METRICS_"`
		Notify     Notify     `env-prefix:"NOTIFY_"`
		SMTP       SMTP       `env-prefix:"SMTP_"`
		RateLimit  RateLimit  `env-prefix:"RATE_LIMIT_"`
		Newsletter Newsletter `env-prefix:"NEWSLETTER_"`
		Postgres   Postgres   `env-prefix:"DB_"`
		Env        string     `                            env:"ENV" env-default:"local" validate:"oneof=local dev staging prod"`
	}

	App struct {
		Name    string `env:"NAME"    validate:"required" env-default:"nectar-order-api"`
		Version string `env:"VERSION" validate:"required" env-default:"2.0.0"`
	}

	HTTP struct {
		Host              string        `env:"HOST"                validate:"required"                 env-default:"0.0.0.0"`
		Port              string        `env:"PORT"                validate:"required,gte=1,lte=65535" env-default:"8080"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s"         env-default:"5s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=30s"         env-default:"10s"`
		IdleTimeout       time.Duration `env:"IDLE_TIMEOUT"        validate:"gte=10ms,lte=90s"         env-default:"60s"`
		ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"    validate:"gte=10ms,lte=30s"         env-default:"10s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s"         env-default:"5s"`
	}

	Metrics struct {
		Host              string        `env:"HOST"                validate:"required"                 env-default:"0.0.0.0"`
		Port              string        `env:"PORT"                validate:"required,gte=1,lte=65535" env-default:"9090"`
		ReadTimeout       time.Duration `env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s"         env-default:"5s"`
		WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=30s"         env-default:"5s"`
		ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s"         env-default:"5s"`
	}

	// Notify carries the notification fan-out settings: the owner contact
	// that receives a copy of every order, and the shop identity used in
	// outgoing messages.
	Notify struct {
		OwnerPhone string `env:"OWNER_PHONE" validate:"omitempty,e164"     env-default:"+96181353685"`
		OrderEmail string `env:"ORDER_EMAIL" validate:"omitempty,email"`
		ShopName   string `env:"SHOP_NAME"   validate:"required"           env-default:"Nectar Perfume Shop"`
	}

	// SMTP credentials are optional: with User or Password empty the email
	// channel is disabled and reported as failed, never blocking an order.
	SMTP struct {
		Host     string `env:"HOST"     env-default:"smtp.gmail.com"`
		Port     int    `env:"PORT"     validate:"gte=1,lte=65535" env-default:"587"`
		User     string `env:"USER"     validate:"omitempty,email"`
		Password string `env:"PASSWORD"`
	}

	RateLimit struct {
		Window           time.Duration `env:"WINDOW"            validate:"gt=0s,lte=1h"       env-default:"15m"`
		Max              int           `env:"MAX"               validate:"min=1,max=100000"   env-default:"100"`
		CheckoutWindow   time.Duration `env:"CHECKOUT_WINDOW"   validate:"gt=0s,lte=1h"       env-default:"15m"`
		CheckoutMax      int           `env:"CHECKOUT_MAX"      validate:"min=1,max=1000"     env-default:"5"`
		NewsletterWindow time.Duration `env:"NEWSLETTER_WINDOW" validate:"gt=0s,lte=1h"       env-default:"15m"`
		NewsletterMax    int           `env:"NEWSLETTER_MAX"    validate:"min=1,max=1000"     env-default:"10"`
		CacheCapacity    int           `env:"CACHE_CAPACITY"    validate:"min=1,max=1000000"  env-default:"10000"`
	}

	Newsletter struct {
		Store string `env:"STORE" validate:"oneof=memory postgres" env-default:"memory"`
	}

	Postgres struct {
		Host           string        `env:"HOST"             env-default:"localhost"`
		Port           string        `env:"PORT"             env-default:"5432"       validate:"gte=1,lte=65535"`
		Name           string        `env:"NAME"             env-default:"nectar"`
		User           string        `env:"USER"             env-default:"nectar"`
		Password       string        `env:"PASSWORD"`
		SSLMode        string        `env:"SSL_MODE"         env-default:"disable"`
		PoolMax        int32         `env:"POOL_MAX"         env-default:"10"         validate:"min=1,max=100"`
		ConnAttempts   int           `env:"CONN_ATTEMPTS"    env-default:"5"          validate:"min=1,max=10"`
		BaseRetryDelay time.Duration `env:"BASE_RETRY_DELAY" env-default:"100ms"      validate:"gte=10ms,lte=10s"`
		MaxRetryDelay  time.Duration `env:"MAX_RETRY_DELAY"  env-default:"5s"         validate:"gte=100ms,lte=30s,gtefield=BaseRetryDelay"`
	}

	Logger struct {
		Level      string `env:"LEVEL"       env-default:"info"                       validate:"oneof=debug info warn error"`
		Filename   string `env:"FILENAME"    env-default:"./logs/nectar-order-api.log"`
		MaxSize    int    `env:"MAX_SIZE"    env-default:"100"                        validate:"min=1,max=1000"`
		MaxBackups int    `env:"MAX_BACKUPS" env-default:"3"                          validate:"min=0,max=20"`
		MaxAge     int    `env:"MAX_AGE"     env-default:"28"                         validate:"min=1,max=365"`
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

	if err := validate.Struct(&cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			messages := make([]string, 0, len(validationErrs))
			for _, ve := range validationErrs {
				messages = append(messages,
					fmt.Sprintf("%s=%v must satisfy '%s'", ve.Field(), ve.Value(), ve.Tag()))
			}
			return nil, fmt.Errorf("%s: config validation: %s", op, strings.Join(messages, "; "))
		}
		return nil, fmt.Errorf("%s: config validation: %w", op, err)
	}

	if err := cfg.checkStore(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

// checkStore enforces the Postgres credentials only when the newsletter
// subscriber store actually needs them.
func (c *Config) checkStore() error {
	if c.Newsletter.Store != StorePostgres {
		return nil
	}
	if c.Postgres.Host == "" || c.Postgres.Name == "" || c.Postgres.User == "" {
		return errors.New("newsletter store is postgres but DB_HOST/DB_NAME/DB_USER are not set")
	}
	return nil
}

// MailEnabled reports whether the SMTP channel has real credentials. The
// placeholder check mirrors the behavior of shipping with an untouched
// example config: no mail is ever attempted with it.
func (c *Config) MailEnabled() bool {
	user := strings.ToLower(strings.TrimSpace(c.SMTP.User))
	if user == "" || c.SMTP.Password == "" {
		return false
	}
	return !strings.Contains(user, "your-email") && !strings.Contains(user, "example.com")
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
