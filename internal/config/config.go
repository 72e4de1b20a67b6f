package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the full service configuration loaded from config.toml
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Storage StorageConfig `toml:"storage"`
	Booking BookingConfig `toml:"booking"`
	EmailJS EmailJSConfig `toml:"emailjs"`
	Metrics MetricsConfig `toml:"metrics"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// LogsConfig holds logging settings
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// StorageConfig holds booking snapshot persistence settings
type StorageConfig struct {
	File string `toml:"file"`
}

// BookingConfig holds the booking rules for the store location
type BookingConfig struct {
	DailyItemCap  int      `toml:"daily_item_cap"`
	CappedSlot    string   `toml:"capped_slot"`
	CappedSlotCap int      `toml:"capped_slot_cap"`
	ClosedWeekday string   `toml:"closed_weekday"`
	Slots         []string `toml:"slots"`
}

// EmailJSConfig holds the transactional-email provider settings
type EmailJSConfig struct {
	Enabled    bool   `toml:"enabled"`
	BaseURL    string `toml:"base_url"`
	ServiceID  string `toml:"service_id"`
	TemplateID string `toml:"template_id"`
	PublicKey  string `toml:"public_key"`
	Timeout    int    `toml:"timeout"` // seconds
}

// MetricsConfig holds prometheus metrics settings
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Load reads and validates the configuration from the given TOML file
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ClosedWeekdayValue resolves the configured closed weekday name to time.Weekday
func (c *BookingConfig) ClosedWeekdayValue() (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(c.ClosedWeekday))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.ToLower(wd.String()) == name {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("config: unknown weekday %q", c.ClosedWeekday)
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			File:  "",
			Level: "info",
		},
		Storage: StorageConfig{
			File: "data/bookings.json",
		},
		Booking: BookingConfig{
			DailyItemCap:  80,
			CappedSlot:    "4:00 PM",
			CappedSlotCap: 30,
			ClosedWeekday: "Sunday",
			Slots: []string{
				"10:00 AM",
				"11:00 AM",
				"12:00 PM",
				"1:00 PM",
				"2:00 PM",
				"3:00 PM",
				"4:00 PM",
			},
		},
		EmailJS: EmailJSConfig{
			Enabled: false,
			BaseURL: "https://api.emailjs.com",
			Timeout: 10,
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "store-booking-service",
			Path:        "/metrics",
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}

	if c.Booking.DailyItemCap <= 0 {
		return fmt.Errorf("config: daily_item_cap must be positive, got %d", c.Booking.DailyItemCap)
	}

	if c.Booking.CappedSlotCap <= 0 || c.Booking.CappedSlotCap > c.Booking.DailyItemCap {
		return fmt.Errorf("config: capped_slot_cap must be in (0, daily_item_cap], got %d", c.Booking.CappedSlotCap)
	}

	if len(c.Booking.Slots) == 0 {
		return fmt.Errorf("config: at least one booking slot is required")
	}

	seen := make(map[string]struct{}, len(c.Booking.Slots))
	for _, slot := range c.Booking.Slots {
		if strings.TrimSpace(slot) == "" {
			return fmt.Errorf("config: empty slot label")
		}
		if _, ok := seen[slot]; ok {
			return fmt.Errorf("config: duplicate slot label %q", slot)
		}
		seen[slot] = struct{}{}
	}

	if _, ok := seen[c.Booking.CappedSlot]; !ok {
		return fmt.Errorf("config: capped_slot %q is not in the slot list", c.Booking.CappedSlot)
	}

	if _, err := c.Booking.ClosedWeekdayValue(); err != nil {
		return err
	}

	if c.EmailJS.Enabled {
		if c.EmailJS.ServiceID == "" || c.EmailJS.TemplateID == "" || c.EmailJS.PublicKey == "" {
			return fmt.Errorf("config: emailjs enabled but service_id, template_id or public_key is empty")
		}
		if c.EmailJS.BaseURL == "" {
			return fmt.Errorf("config: emailjs base_url is required")
		}
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics path is required when metrics are enabled")
	}

	return nil
}
