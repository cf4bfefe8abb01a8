package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/hoohsh/jetson-chatbot/internal"
)

// SensorConfig describes the serial link to the CO2 sensor bridge.
type SensorConfig struct {
	Port          string `toml:"port"`
	BaudRate      int    `toml:"baud_rate"`
	SettleDelayMS int    `toml:"settle_delay_ms"`
	ReadTimeoutMS int    `toml:"read_timeout_ms"`
}

type Config struct {
	Model  string       `toml:"model"`
	Sensor SensorConfig `toml:"sensor"`
}

// DefaultConfig returns the configuration used when no config file exists:
// the sensor bridge on its usual Jetson USB UART.
func DefaultConfig() *Config {
	return &Config{
		Sensor: SensorConfig{
			Port:          internal.DEFAULT_SERIAL_PORT,
			BaudRate:      internal.DEFAULT_BAUD_RATE,
			SettleDelayMS: internal.DEFAULT_SETTLE_DELAY_MS,
			ReadTimeoutMS: internal.DEFAULT_READ_TIMEOUT_MS,
		},
	}
}

// ValidateConfig checks if all required configuration fields are properly set
func ValidateConfig(cfg *Config) error {
	var missingFields []string

	if cfg.Sensor.Port == "" {
		missingFields = append(missingFields, "sensor.port")
	}

	if cfg.Sensor.BaudRate <= 0 {
		return fmt.Errorf("sensor.baud_rate must be positive, got %d", cfg.Sensor.BaudRate)
	}
	if cfg.Sensor.SettleDelayMS < 0 {
		return fmt.Errorf("sensor.settle_delay_ms must not be negative, got %d", cfg.Sensor.SettleDelayMS)
	}
	if cfg.Sensor.ReadTimeoutMS <= 0 {
		return fmt.Errorf("sensor.read_timeout_ms must be positive, got %d", cfg.Sensor.ReadTimeoutMS)
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required configuration fields: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

// LoadConfig reads the TOML config at path. A missing file is not an error:
// the documented defaults apply so the bot runs out of the box.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SettleDelay returns the sensor settle delay as a duration.
func (s SensorConfig) SettleDelay() time.Duration {
	return time.Duration(s.SettleDelayMS) * time.Millisecond
}

// ReadTimeout returns the serial read timeout as a duration.
func (s SensorConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutMS) * time.Millisecond
}
