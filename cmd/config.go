package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/etnz/taxlot"
	"github.com/joho/godotenv"
)

// settings are the raw configuration values, before parsing.
type settings struct {
	Method   string
	Rate     string
	Year     string
	Currency string
	Oversell string
	LogLevel string
}

// env reads the CTAX_* variables with getenv.
func env(getenv func(string) string) settings {
	return settings{
		Method:   getenv("CTAX_METHOD"),
		Rate:     getenv("CTAX_RATE"),
		Year:     getenv("CTAX_YEAR"),
		Currency: getenv("CTAX_CURRENCY"),
		Oversell: getenv("CTAX_OVERSELL"),
		LogLevel: getenv("CTAX_LOG_LEVEL"),
	}
}

// flags returns the values of the global flags.
func flags() settings {
	return settings{
		Method:   *method,
		Rate:     *rate,
		Year:     *year,
		Currency: *currency,
		Oversell: *oversell,
		LogLevel: *logLevel,
	}
}

// over returns s where every value set in o replaces the value of s.
func (s settings) over(o settings) settings {
	pick := func(a, b string) string {
		if b != "" {
			return b
		}
		return a
	}
	return settings{
		Method:   pick(s.Method, o.Method),
		Rate:     pick(s.Rate, o.Rate),
		Year:     pick(s.Year, o.Year),
		Currency: pick(s.Currency, o.Currency),
		Oversell: pick(s.Oversell, o.Oversell),
		LogLevel: pick(s.LogLevel, o.LogLevel),
	}
}

// config parses the settings on top of the default configuration.
func (s settings) config() (taxlot.Config, error) {
	cfg := taxlot.DefaultConfig()
	var err error
	if s.Method != "" {
		if cfg.Method, err = taxlot.ParseMethod(s.Method); err != nil {
			return cfg, err
		}
	}
	if s.Rate != "" {
		if cfg.Rate, err = taxlot.ParseRate(s.Rate); err != nil {
			return cfg, err
		}
	}
	if s.Year != "" {
		if cfg.Year, err = strconv.Atoi(s.Year); err != nil {
			return cfg, fmt.Errorf("invalid year %q: %w", s.Year, err)
		}
	}
	if s.Currency != "" {
		cfg.Currency = s.Currency
	}
	if s.Oversell != "" {
		if cfg.Oversell, err = taxlot.ParseOversellPolicy(s.Oversell); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

// loadDotEnv loads the dotenv file into the process environment. Variables
// already set win over the file.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// loadConfig returns the configuration from, in increasing precedence, the
// defaults, the dotenv file, the environment and the flags. It also installs
// the default logger.
func loadConfig() (taxlot.Config, error) {
	if err := loadDotEnv(*envFile); err != nil {
		return taxlot.Config{}, err
	}
	s := env(os.Getenv).over(flags())

	logger, err := newLogger(s.LogLevel, os.Stderr)
	if err != nil {
		return taxlot.Config{}, err
	}
	slog.SetDefault(logger)

	cfg, err := s.config()
	if err != nil {
		return cfg, err
	}
	cfg.Logger = logger
	logger.Debug("configuration loaded", "method", cfg.Method, "rate", cfg.Rate, "year", cfg.Year, "currency", cfg.Currency, "oversell", cfg.Oversell)
	return cfg, nil
}
