// Package vent maps CO2 concentrations to ventilation recommendations.
package vent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tier is the ventilation urgency bucket for a CO2 reading.
type Tier string

const (
	TierOK       Tier = "OK"
	TierElevated Tier = "ELEVATED"
	TierHigh     Tier = "HIGH"
)

// Thresholds in ppm. Readings at exactly 800 or 1000 land in ELEVATED.
const (
	elevatedThreshold = 800
	highThreshold     = 1000
)

// ErrInvalidInput is returned when a value cannot be interpreted as a ppm
// integer. Its wording is shown to the model, so it says what to do next.
var ErrInvalidInput = errors.New("invalid CO2 value: supply a numeric ppm reading, e.g. 650")

// Assessment is the classification result for one reading.
type Assessment struct {
	PPM     int
	Tier    Tier
	Message string
}

// String renders the assessment the way tool results present it to the model.
func (a Assessment) String() string {
	return fmt.Sprintf("CO2 level is %d ppm (%s): %s", a.PPM, a.Tier, a.Message)
}

// Classify buckets a CO2 concentration. Pure: same ppm always yields the
// same assessment.
func Classify(ppm int) Assessment {
	switch {
	case ppm < elevatedThreshold:
		return Assessment{PPM: ppm, Tier: TierOK, Message: "air quality is adequate, no ventilation needed"}
	case ppm <= highThreshold:
		return Assessment{PPM: ppm, Tier: TierElevated, Message: "ventilation recommended"}
	default:
		return Assessment{PPM: ppm, Tier: TierHigh, Message: "immediate ventilation required"}
	}
}

// ClassifyValue adapts loosely typed tool-call arguments. JSON numbers
// arrive as float64 and models occasionally quote them as strings; anything
// else fails with ErrInvalidInput.
func ClassifyValue(value interface{}) (Assessment, error) {
	switch v := value.(type) {
	case float64:
		if v != float64(int(v)) {
			return Assessment{}, fmt.Errorf("%w (got %v)", ErrInvalidInput, v)
		}
		return Classify(int(v)), nil
	case int:
		return Classify(v), nil
	case string:
		ppm, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Assessment{}, fmt.Errorf("%w (got %q)", ErrInvalidInput, v)
		}
		return Classify(ppm), nil
	default:
		return Assessment{}, fmt.Errorf("%w (got %T)", ErrInvalidInput, value)
	}
}
