package tools

import (
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/hoohsh/jetson-chatbot/internal/logger"
	"github.com/hoohsh/jetson-chatbot/internal/vent"
)

// VentilationToolName is the function name the model uses to classify a reading.
const VentilationToolName = "determine_ventilation_status"

// VentilationTool embeds BaseTool and implements the Tool interface.
type VentilationTool struct {
	BaseTool
}

// NewVentilationTool creates the classification tool. It is pure: the same
// ppm always yields the same recommendation.
func NewVentilationTool() *VentilationTool {
	return &VentilationTool{
		BaseTool: BaseTool{
			ToolName:        VentilationToolName,
			ToolDescription: "Classify a CO2 concentration into a ventilation recommendation. Below 800 ppm the air is fine, 800 to 1000 ppm ventilation is recommended, above 1000 ppm ventilation is required immediately.",
			ToolParameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"ppm": {
						Type:        jsonschema.Integer,
						Description: "CO2 concentration in parts per million, e.g. 650.",
					},
				},
				Required: []string{"ppm"},
			},
		},
	}
}

// Execute classifies the supplied ppm value and returns the recommendation.
func (t *VentilationTool) Execute(args string) (string, error) {
	var params map[string]interface{}
	if err := json.Unmarshal([]byte(args), &params); err != nil {
		logger.Errorf("Invalid arguments for %s: %v", VentilationToolName, err)
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	value, ok := params["ppm"]
	if !ok {
		return "", fmt.Errorf("%w (missing ppm argument)", vent.ErrInvalidInput)
	}

	assessment, err := vent.ClassifyValue(value)
	if err != nil {
		return "", err
	}

	return assessment.String(), nil
}
