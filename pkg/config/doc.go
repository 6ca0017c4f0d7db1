// Package config loads typed configuration from the process environment.
//
// It wraps github.com/joho/godotenv (for .env files) and
// github.com/caarlos0/env/v11 (for struct parsing):
//
//   - LoadEnv reads one or more dotenv files into the process environment.
//     Variables that are already set win over file values.
//   - Load parses the environment into a new value of any tagged struct type.
//   - MustLoadEnv and MustLoad panic instead of returning errors, for
//     configuration a command cannot start without.
//
// # Usage
//
//	type Config struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	if err := config.LoadEnv(); err != nil {
//		return err
//	}
//	cfg, err := config.Load[Config]()
//
// WithEnvironment replaces the process environment with a fixed map, which
// keeps tests independent of the machine they run on.
//
// # Error Handling
//
// Parsing failures join ErrParsingConfig with the underlying env error, so
// errors.Is(err, config.ErrParsingConfig) holds and the message still names
// the offending variable.
package config
