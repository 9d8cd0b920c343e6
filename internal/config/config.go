// Package config loads the cutoff rule configuration from YAML and
// validates it before it reaches the cutoff manager.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/kiran-bhalerao/urban-tiffin-app-v2/internal/meal"
)

// Config is the root configuration for cutoff.yaml.
type Config struct {
	Cutoff struct {
		Booking      meal.BookingConfig      `yaml:"booking" validate:"required"`
		Cancellation meal.CancellationConfig `yaml:"cancellation"`
	} `yaml:"cutoff"`

	Monitoring struct {
		HealthCheckPort   int  `yaml:"health_check_port" validate:"gte=0,lte=65535"`
		PrometheusEnabled bool `yaml:"prometheus_enabled"`
		PrometheusPort    int  `yaml:"prometheus_port" validate:"gte=0,lte=65535"`
	} `yaml:"monitoring"`

	Reload struct {
		Enabled         bool `yaml:"enabled"`
		IntervalSeconds int  `yaml:"interval_seconds" validate:"gte=0"`
	} `yaml:"reload"`
}

var validate = validator.New()

// Load reads, expands and validates the configuration file. An empty
// path falls back to configs/cutoff.yaml. A file with no booking rules
// at all gets the documented defaults applied.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "configs/cutoff.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cutoff config: %w", err)
	}

	// Support ${ENV_VAR} placeholders in YAML config.
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse cutoff config: %w", err)
	}

	cfg.applyDefaults()

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate cutoff config: %w", err)
	}

	return &cfg, nil
}

// Validate checks struct tags plus the constraints tags cannot express:
// a meal type may appear at most once per window.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	for window, rules := range map[string][]meal.BookingRule{
		"today":    c.Cutoff.Booking.Today,
		"tomorrow": c.Cutoff.Booking.Tomorrow,
	} {
		seen := make(map[meal.Type]bool)
		for i, r := range rules {
			if seen[r.MealType] {
				return fmt.Errorf("booking.%s[%d]: duplicate rule for meal type %q", window, i, r.MealType)
			}
			seen[r.MealType] = true
		}
	}

	return nil
}

func (c *Config) applyDefaults() {
	if len(c.Cutoff.Booking.Today) == 0 && len(c.Cutoff.Booking.Tomorrow) == 0 {
		c.Cutoff.Booking = meal.DefaultBookingConfig()
	}
	if c.Cutoff.Cancellation == (meal.CancellationConfig{}) {
		c.Cutoff.Cancellation = meal.DefaultCancellationConfig()
	}
	if c.Reload.IntervalSeconds == 0 {
		c.Reload.IntervalSeconds = 30
	}
}
