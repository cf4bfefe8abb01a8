package initialization

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/hoohsh/jetson-chatbot/internal"
	"github.com/hoohsh/jetson-chatbot/internal/ai"
	"github.com/hoohsh/jetson-chatbot/internal/ai/tools"
	"github.com/hoohsh/jetson-chatbot/internal/config"
	"github.com/hoohsh/jetson-chatbot/internal/logger"
	"github.com/hoohsh/jetson-chatbot/internal/sensor"
)

// Initialize brings the process up: environment, model client, config, and
// the sensor-backed tool registry. A missing API key is reported but not
// fatal; the bot still starts and explains the limitation in chat.
func Initialize() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}

	if err := ai.Initialize(); err != nil {
		logger.Warnf("AI initialization: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = internal.DEFAULT_CONFIG_PATH
	}

	logger.Infof("Loading configuration from %s", configPath)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if cfg.Model != "" {
		ai.SetModel(cfg.Model)
	}

	reader := sensor.NewReader(
		cfg.Sensor.Port,
		cfg.Sensor.BaudRate,
		cfg.Sensor.SettleDelay(),
		cfg.Sensor.ReadTimeout(),
	)
	tools.RegisterCO2Sensor(reader)
	ai.SetSensorPort(cfg.Sensor.Port)

	logger.Successf("Initialization complete: sensor on %s at %d baud", cfg.Sensor.Port, cfg.Sensor.BaudRate)

	return cfg, nil
}
