package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when the configuration fails validation.
var ErrInvalidConfig = errors.New("demo: invalid config")

// Config is the demo server configuration.
type Config struct {
	Log             LogConfig      `yaml:"log"`
	Store           StoreConfig    `yaml:"store"`
	Addr            string         `yaml:"addr" validate:"required,hostname_port"`
	Widgets         []WidgetConfig `yaml:"widgets" validate:"min=1,unique=ID,dive"`
	ShutdownTimeout time.Duration  `yaml:"shutdown_timeout" validate:"gt=0"`
}

// LogConfig selects the log level and encoding.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// StoreConfig selects where widget state is kept between requests.
type StoreConfig struct {
	Driver     string        `yaml:"driver" validate:"oneof=memory redis"`
	RedisURL   string        `yaml:"redis_url" validate:"required_if=Driver redis"`
	Prefix     string        `yaml:"prefix"`
	TTL        time.Duration `yaml:"ttl" validate:"gte=0"`
	MaxEntries int           `yaml:"max_entries" validate:"gte=0"`
}

// WidgetConfig describes one select rendered on the demo page.
type WidgetConfig struct {
	ID          string         `yaml:"id" validate:"required,alphanum"`
	Label       string         `yaml:"label" validate:"required"`
	Placeholder string         `yaml:"placeholder"`
	Direction   string         `yaml:"direction" validate:"omitempty,oneof=up down auto"`
	Value       string         `yaml:"value"`
	Options     []OptionConfig `yaml:"options" validate:"min=1,dive"`
	Wrap        bool           `yaml:"wrap"`
	Search      bool           `yaml:"search"`
	RichLabels  bool           `yaml:"rich_labels"`
	Disabled    bool           `yaml:"disabled"`
}

// OptionConfig is one option of a configured widget.
type OptionConfig struct {
	Value    string `yaml:"value" validate:"required"`
	Label    string `yaml:"label" validate:"required"`
	Disabled bool   `yaml:"disabled"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Log:             LogConfig{Level: "info", Format: "json"},
		Store: StoreConfig{
			Driver:     "memory",
			Prefix:     "dropdown",
			TTL:        time.Hour,
			MaxEntries: 10000,
		},
		Widgets: []WidgetConfig{
			{
				ID:          "dessert",
				Label:       "Dessert",
				Placeholder: "Pick a dessert",
				Search:      true,
				Options: []OptionConfig{
					{Value: "creme-brulee", Label: "Crème brûlée"},
					{Value: "eclair", Label: "Éclair"},
					{Value: "pavlova", Label: "Pavlova"},
					{Value: "strudel", Label: "Apfelstrudel", Disabled: true},
					{Value: "tiramisu", Label: "Tiramisù"},
				},
			},
			{
				ID:        "size",
				Label:     "Size",
				Value:     "m",
				Wrap:      true,
				Direction: "up",
				Options: []OptionConfig{
					{Value: "s", Label: "Small"},
					{Value: "m", Label: "Medium"},
					{Value: "l", Label: "Large"},
				},
			},
			{
				ID:         "plan",
				Label:      "Plan",
				RichLabels: true,
				Options: []OptionConfig{
					{Value: "free", Label: "Free <small>0 €</small>"},
					{Value: "pro", Label: "<strong>Pro</strong> <small>12 €</small>"},
				},
			},
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults, applies
// environment overrides and validates the result. An empty path skips the file.
func LoadConfig(path string, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg, getenv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("DEMO_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("REDIS_URL"); v != "" {
		cfg.Store.Driver = "redis"
		cfg.Store.RedisURL = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
}

// Validate checks the struct constraints and reports every violation.
func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateWidgetValue, WidgetConfig{})

	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Join(ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// validateWidgetValue rejects a preselected value that none of the widget's
// options carries.
func validateWidgetValue(sl validator.StructLevel) {
	wc := sl.Current().Interface().(WidgetConfig)
	if wc.Value == "" {
		return
	}
	for _, o := range wc.Options {
		if o.Value == wc.Value {
			return
		}
	}
	sl.ReportError(wc.Value, "Value", "Value", "option", "")
}
