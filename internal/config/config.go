package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	appenv "github.com/garrettladley/creem/internal/env"
	"github.com/garrettladley/creem/internal/profile"
	"github.com/garrettladley/creem/internal/validator"
	"github.com/garrettladley/creem/internal/xslog"
)

const envPrefix = "CREEM_"

type Config struct {
	Env      appenv.Environment `env:"ENV" envDefault:"development" validate:"oneof=development production"`
	LogLevel xslog.Level        `env:"LOG_LEVEL" envDefault:"info"`
	Port     string             `env:"PORT" envDefault:"8080" validate:"required"`
	Creem    Creem              `envPrefix:"CREEM_"`
	HTTP     HTTP               `envPrefix:"CREEM_HTTP_"`
	Webhook  Webhook            `envPrefix:"CREEM_WEBHOOK_"`
	Redis    Redis              `envPrefix:"REDIS_"`

	profiles map[string]profile.Credentials
}

type Creem struct {
	// Profiles names additional profiles; each reads CREEM_<NAME>_API_KEY and friends.
	Profiles []string `env:"PROFILES" envSeparator:","`
}

// Profile is one entry of the profile table as read from the environment.
type Profile struct {
	APIKey        string `env:"API_KEY"`
	TestMode      bool   `env:"TEST_MODE"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

type HTTP struct {
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
	RetryTimes int           `env:"RETRY_TIMES" envDefault:"3" validate:"min=1"`
	RetrySleep time.Duration `env:"RETRY_SLEEP" envDefault:"100ms"`
}

type Webhook struct {
	Path            string `env:"PATH" envDefault:"/creem/webhook" validate:"startswith=/"`
	SignatureHeader string `env:"SIGNATURE_HEADER" envDefault:"creem-signature" validate:"required"`
}

type Redis struct {
	URL string `env:"URL"`
}

// Read parses and validates the configuration from the process environment.
func Read() (Config, error) {
	return read(env.Options{})
}

// ReadFrom is Read over an explicit environment, for tests and tooling.
func ReadFrom(environ map[string]string) (Config, error) {
	return read(env.Options{Environment: environ})
}

func read(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	cfg.profiles = make(map[string]profile.Credentials, len(cfg.Creem.Profiles)+1)

	def, err := readProfile(opts, envPrefix)
	if err != nil {
		return Config{}, fmt.Errorf("parsing profile %q: %w", profile.DefaultProfile, err)
	}
	if def != (profile.Credentials{}) {
		cfg.profiles[profile.DefaultProfile] = def
	}

	for _, name := range cfg.Creem.Profiles {
		name = strings.TrimSpace(name)
		if name == "" || name == profile.DefaultProfile {
			continue
		}
		creds, err := readProfile(opts, envPrefix+strings.ToUpper(name)+"_")
		if err != nil {
			return Config{}, fmt.Errorf("parsing profile %q: %w", name, err)
		}
		cfg.profiles[name] = creds
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readProfile(opts env.Options, prefix string) (profile.Credentials, error) {
	opts.Prefix = prefix
	p, err := env.ParseAsWithOptions[Profile](opts)
	if err != nil {
		return profile.Credentials{}, err
	}
	return profile.Credentials{
		APIKey:        p.APIKey,
		TestMode:      p.TestMode,
		WebhookSecret: p.WebhookSecret,
	}, nil
}

func (c Config) Validate() error {
	var errs []error
	if err := validator.Struct(c); err != nil {
		errs = append(errs, err)
	}
	if c.HTTP.Timeout <= 0 {
		errs = append(errs, errors.New("CREEM_HTTP_TIMEOUT must be positive"))
	}
	if c.HTTP.RetrySleep < 0 {
		errs = append(errs, errors.New("CREEM_HTTP_RETRY_SLEEP must not be negative"))
	}
	return errors.Join(errs...)
}

// Profiles returns the profile table. The caller owns the returned map.
func (c Config) Profiles() map[string]profile.Credentials {
	out := make(map[string]profile.Credentials, len(c.profiles))
	for name, creds := range c.profiles {
		out[name] = creds
	}
	return out
}

func (c Config) Resolver() *profile.Resolver {
	return profile.NewResolver(c.profiles)
}
