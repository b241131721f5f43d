package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
)

// Config is the file-backed service configuration.
type Config struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	BookingsDSN     string        `mapstructure:"bookings_dsn"`

	// YearPolicy is "fiscal" or "calendar"; fiscal is the finance
	// convention the dashboard reports in.
	YearPolicy string `mapstructure:"year_policy"`

	// SingleCountSpaces turns off the historical once-per-space
	// attribution of a detail's booking total.
	SingleCountSpaces bool `mapstructure:"single_count_spaces"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("addr", ":8080")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("year_policy", string(domain.YearPolicyFiscal))
	v.SetDefault("single_count_spaces", false)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch domain.YearPolicy(c.YearPolicy) {
	case domain.YearPolicyFiscal, domain.YearPolicyCalendar:
	default:
		return fmt.Errorf("invalid year_policy %q: must be fiscal or calendar", c.YearPolicy)
	}
	if c.BookingsDSN == "" {
		return fmt.Errorf("bookings_dsn is required")
	}
	return nil
}

func (c *Config) Policy() domain.YearPolicy {
	return domain.YearPolicy(c.YearPolicy)
}
