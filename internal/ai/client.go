package ai

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/hoohsh/jetson-chatbot/internal/logger"
)

var (
	apiKey      string
	client      completionClient
	initialized bool
	clientMutex sync.Mutex

	ErrMissingAPIKey = errors.New("OpenAI API key not found")

	// ErrNoChoices is returned when the model response carries no choices.
	ErrNoChoices = errors.New("no choices in model response")
)

// completionClient is the slice of the OpenAI client the orchestrator uses.
// Tests substitute a scripted fake.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

var modelMap = map[string]string{
	"gpt-4o":      openai.GPT4o,
	"gpt-4o-mini": openai.GPT4oMini,
}

func InitializeClient() error {
	clientMutex.Lock()
	defer clientMutex.Unlock()

	apiKey = os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		logger.Warnf("AI client initialized without API key. AI features will be limited.")
		initialized = true
		return ErrMissingAPIKey
	}

	client = openai.NewClient(apiKey)
	logger.Successf("OpenAI client initialized with API key")
	initialized = true
	return nil
}

func IsInitialized() bool {
	return initialized && apiKey != ""
}

func GetClient() completionClient {
	return client
}

func CreateContext() (context.Context, context.CancelFunc) {
	timeout := time.Duration(GetConfig().DefaultAPITimeout) * time.Second
	return context.WithTimeout(context.Background(), timeout)
}

func MapModelName(modelName string) string {
	if mapped, exists := modelMap[modelName]; exists {
		return mapped
	}
	return modelName
}
