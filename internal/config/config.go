// Package config holds the fieldrules command configuration.
package config

import (
	"fmt"

	pkgconfig "github.com/dmitrymomot/fieldrules/pkg/config"
	"github.com/dmitrymomot/fieldrules/pkg/environment"
	"github.com/dmitrymomot/fieldrules/pkg/logger"
)

// Config is read from the environment (and .env files) before flags apply.
// Empty LogLevel and LogFormat keep the defaults of the environment.
type Config struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL"`
	LogFormat    string `env:"LOG_FORMAT"`
	Lang         string `env:"FIELDRULES_LANG" envDefault:"en"`
	Translations string `env:"FIELDRULES_TRANSLATIONS"`
}

// Load reads dotenv files (./.env when none are given) and parses Config.
func Load(envFiles ...string) (Config, error) {
	if err := pkgconfig.LoadEnv(envFiles...); err != nil {
		return Config{}, err
	}
	cfg, err := pkgconfig.Load[Config]()
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("LOG_FORMAT: %w", err)
	}
	return nil
}

// Environment returns the parsed APP_ENV value.
func (c Config) Environment() environment.Environment {
	return environment.Parse(c.Env)
}

// LoggerOptions maps the config to logger options. APP_ENV picks the
// defaults; LOG_LEVEL and LOG_FORMAT override them only when set.
// Values are validated by Load, so unparsable ones are ignored here.
func (c Config) LoggerOptions() []logger.Option {
	opts := []logger.Option{
		logger.WithEnvironment(c.Environment(), "fieldrules"),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	}
	if c.LogLevel != "" {
		if level, err := logger.ParseLevel(c.LogLevel); err == nil {
			opts = append(opts, logger.WithLevel(level))
		}
	}
	if c.LogFormat != "" {
		if format, err := logger.ParseFormat(c.LogFormat); err == nil {
			opts = append(opts, logger.WithFormat(format))
		}
	}
	return opts
}
