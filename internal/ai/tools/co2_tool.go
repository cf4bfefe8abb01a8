package tools

import (
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/hoohsh/jetson-chatbot/internal/logger"
)

// MeasureToolName is the function name the model uses to request a reading.
const MeasureToolName = "measure_co2"

// CO2Reader is the sensor backend behind the measurement tool.
type CO2Reader interface {
	Read() (int, error)
}

// Measurer exposes the raw numeric reading so the orchestrator can feed it
// into the classifier chain without reparsing tool output text.
type Measurer interface {
	Measure() (int, error)
}

// CO2SensorTool embeds BaseTool and implements the Tool interface.
type CO2SensorTool struct {
	BaseTool
	reader CO2Reader
}

// NewCO2SensorTool creates the measurement tool over the given sensor backend.
func NewCO2SensorTool(reader CO2Reader) *CO2SensorTool {
	return &CO2SensorTool{
		BaseTool: BaseTool{
			ToolName:        MeasureToolName,
			ToolDescription: "Measure the current CO2 concentration in the room using the attached sensor. Returns the reading in ppm. The measurement takes about a second because the sensor needs time to sample.",
			ToolParameters: jsonschema.Definition{
				Type:       jsonschema.Object,
				Properties: map[string]jsonschema.Definition{},
			},
		},
		reader: reader,
	}
}

// Measure performs one sensor reading and returns the ppm value.
func (t *CO2SensorTool) Measure() (int, error) {
	return t.reader.Read()
}

// Execute runs one measurement and renders the reading for the model.
func (t *CO2SensorTool) Execute(args string) (string, error) {
	ppm, err := t.reader.Read()
	if err != nil {
		logger.Errorf("CO2 measurement failed: %v", err)
		return "", fmt.Errorf("measuring CO2: %w", err)
	}

	return fmt.Sprintf("Current CO2 concentration: %d ppm", ppm), nil
}
