package tools

import (
	"sync"

	"github.com/hoohsh/jetson-chatbot/internal/logger"
)

var (
	// Global singleton registry instance
	registry     *ToolRegistry
	registryOnce sync.Once
)

// GetRegistry returns the singleton registry instance. The first call
// registers the classifier tool; the measurement tool joins once a sensor
// backend is wired in via RegisterCO2Sensor.
func GetRegistry() *ToolRegistry {
	registryOnce.Do(func() {
		logger.AIDebugf("Initializing global tool registry")
		registry = NewToolRegistry()

		registry.RegisterTool(NewVentilationTool())
	})
	return registry
}

// RegisterCO2Sensor wires the measurement tool to a concrete sensor backend.
// Called once during process initialization.
func RegisterCO2Sensor(reader CO2Reader) {
	GetRegistry().RegisterTool(NewCO2SensorTool(reader))
	logger.Successf("CO2 sensor tool registered")
}
