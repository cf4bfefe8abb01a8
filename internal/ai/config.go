package ai

import (
	"fmt"
	"sync"
	"time"
)

type Config struct {
	Model             string
	MaxResponseTokens int
	Temperature       float32
	SystemPrompt      string
	DefaultAPITimeout int

	EnableToolCalls bool
}

const defaultSystemPromptTemplate = `You are the air-quality assistant running on a small board with a CO2 sensor attached. Today is %s, local time %s.

Personality:
- Friendly, concise, and practical.
- Answer in plain sentences a person glancing at a console can absorb.
- Never acknowledge being an AI or describe your own tooling.

Available Tools (Use Proactively):
- measure_co2: Read the current CO2 concentration from the room sensor. Use it whenever the user asks about air quality, CO2 levels, or whether to open a window.
- determine_ventilation_status: Classify a known ppm value into a ventilation recommendation. Use it when the user supplies their own reading.

Operational Guidelines:
- Always complete tool actions BEFORE responding.
- A measurement already includes the ventilation recommendation; report both the number and the advice.
- If the sensor fails, say so plainly and suggest checking the connection. Never invent a reading.

Response Style:
- One or two sentences. State the ppm value and what to do about it.`

var (
	config     *Config
	configOnce sync.Once
)

func getFormattedSystemPrompt() string {
	date := time.Now().Format("2006-01-02")
	timeNow := time.Now().Format("15:04:05")
	return fmt.Sprintf(defaultSystemPromptTemplate, date, timeNow)
}

func DefaultConfig() *Config {
	return &Config{
		Model:             "gpt-4o-mini",
		MaxResponseTokens: 1000,
		Temperature:       0.7,
		SystemPrompt:      getFormattedSystemPrompt(),
		DefaultAPITimeout: 120,
		EnableToolCalls:   true,
	}
}

func GetConfig() *Config {
	configOnce.Do(func() {
		config = DefaultConfig()
	})
	return config
}

func SetConfig(newConfig *Config) {
	config = newConfig
}

func UpdateConfig(updater func(*Config)) {
	cfg := GetConfig()
	updater(cfg)
}

func RefreshSystemPrompt() {
	UpdateConfig(func(cfg *Config) {
		cfg.SystemPrompt = getFormattedSystemPrompt()
	})
}
