package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/hoohsh/jetson-chatbot/internal/ai/tools"
	"github.com/hoohsh/jetson-chatbot/internal/logger"
	"github.com/hoohsh/jetson-chatbot/internal/vent"
)

// Turn runs one conversation turn: append the user text, ask the model, run
// whatever tool calls it requests in the order it requested them, then ask
// for the final reply. The conversation blocks until that reply exists;
// there is no internal parallelism because tool results may feed each other
// (measure before classify).
//
// Model transport failures propagate to the caller as errors. Tool failures
// never do: they become readable tool results so the model can explain them.
func Turn(conv *Conversation, userText string) (string, error) {
	if !IsInitialized() {
		return "AI processing is not available (missing OPENAI_API_KEY)", nil
	}

	cfg := GetConfig()

	if text := strings.TrimSpace(userText); text != "" {
		conv.AppendUser(text)
	}

	var availableTools []openai.Tool
	if cfg.EnableToolCalls {
		availableTools = tools.GetRegistry().GetOpenAITools()
	}

	ctx, cancel := CreateContext()
	defer cancel()

	resp, err := GetClient().CreateChatCompletion(ctx, createChatRequest(conv.Messages(), availableTools))
	if err != nil {
		logger.Errorf("OpenAI API error: %v", err)
		return "", fmt.Errorf("model service: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model service: %w", ErrNoChoices)
	}

	aiMessage := resp.Choices[0].Message
	conv.Append(aiMessage)

	// No tool calls: the first response already is the final answer.
	if len(aiMessage.ToolCalls) == 0 {
		return aiMessage.Content, nil
	}

	runToolCalls(conv, aiMessage.ToolCalls)

	// Follow-up request offers no tools: the model has its results and must
	// now answer in prose.
	followCtx, followCancel := CreateContext()
	defer followCancel()

	followResp, err := GetClient().CreateChatCompletion(followCtx, createChatRequest(conv.Messages(), nil))
	if err != nil {
		logger.Errorf("OpenAI API error on follow-up: %v", err)
		return "", fmt.Errorf("model service: %w", err)
	}
	if len(followResp.Choices) == 0 {
		return "", fmt.Errorf("model service: %w", ErrNoChoices)
	}

	finalText := normalizeReply(followResp.Choices[0].Message.Content)
	if finalText == "" {
		logger.Warnf("Empty AI response after tool execution")
		finalText = createToolFallbackResponse(conv.Messages())
	}

	conv.AppendAssistant(finalText)
	return finalText, nil
}

func createChatRequest(messages []openai.ChatCompletionMessage, availableTools []openai.Tool) openai.ChatCompletionRequest {
	cfg := GetConfig()

	request := openai.ChatCompletionRequest{
		Model:       MapModelName(cfg.Model),
		Messages:    messages,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxResponseTokens,
	}

	if len(availableTools) > 0 {
		request.Tools = availableTools
	}

	return request
}

// runToolCalls executes the requested calls in order, appending one tool
// result per call. One failing call must not abort the rest of the batch.
//
// Once the measure chain has fired, a later classifier call in the same
// batch that carries no ppm of its own is not executed again: the chain
// already covers it, and running it with empty arguments would append a
// contradictory error. Its call id is answered with the chain's result,
// the assessment on success or the sensor-failure report otherwise.
func runToolCalls(conv *Conversation, calls []openai.ToolCall) {
	var chainFired bool
	var chainName, chainContent string

	for _, call := range calls {
		if chainFired && call.Function.Name == tools.VentilationToolName && !hasExplicitPPM(call.Function.Arguments) {
			logger.AIDebugf("Answering call %s with the chained measurement result", call.ID)
			conv.AppendTool(call.ID, chainName, chainContent)
			continue
		}

		name, content := executeToolCall(call)
		if call.Function.Name == tools.MeasureToolName {
			chainFired, chainName, chainContent = true, name, content
		}
		conv.AppendTool(call.ID, name, content)
	}
}

// hasExplicitPPM reports whether a classifier call supplies its own ppm
// argument rather than relying on the measurement chain.
func hasExplicitPPM(args string) bool {
	var params map[string]interface{}
	if err := json.Unmarshal([]byte(args), &params); err != nil {
		return false
	}
	_, ok := params["ppm"]
	return ok
}

// executeToolCall resolves and runs a single requested call, returning the
// capability name that produced the content and the content itself. Errors
// of any kind degrade to readable content.
func executeToolCall(call openai.ToolCall) (string, string) {
	name := call.Function.Name
	logger.AIDebugf("Processing tool call: %s", name)

	if name == tools.MeasureToolName {
		return executeMeasureChain(call)
	}

	content, err := tools.GetRegistry().ExecuteTool(name, call.Function.Arguments)
	if err != nil {
		logger.Errorf("Tool execution error: %v", err)
		content = "Error executing tool: " + err.Error()
	} else {
		logger.AIDebugf("Tool %s executed, response length: %d chars", name, len(content))
	}

	return name, content
}

// executeMeasureChain runs the measurement and immediately feeds a successful
// reading into the classifier, producing one combined tool result under the
// classifier's name. The model is not required to know the two tools belong
// together; the chain guarantees a single "what's the CO2 level?" question
// yields both the number and the recommendation. A failed reading reports the
// sensor error and skips classification.
func executeMeasureChain(call openai.ToolCall) (string, string) {
	tool, err := tools.GetRegistry().GetTool(tools.MeasureToolName)
	if err != nil {
		logger.Errorf("Tool execution error: %v", err)
		return tools.MeasureToolName, "Error executing tool: " + err.Error()
	}

	measurer, ok := tool.(tools.Measurer)
	if !ok {
		// Not a chainable measurement backend, run it plainly.
		content, err := tools.GetRegistry().ExecuteTool(tools.MeasureToolName, call.Function.Arguments)
		if err != nil {
			content = "Error executing tool: " + err.Error()
		}
		return tools.MeasureToolName, content
	}

	ppm, err := measurer.Measure()
	if err != nil {
		logger.Errorf("CO2 measurement failed: %v", err)
		return tools.MeasureToolName, "Sensor reading failed: " + err.Error()
	}

	assessment := vent.Classify(ppm)
	logger.AIDebugf("Measured %d ppm, tier %s", ppm, assessment.Tier)

	return tools.VentilationToolName, "Measured " + assessment.String()
}

func createToolFallbackResponse(messages []openai.ChatCompletionMessage) string {
	toolNames := make([]string, 0)
	for _, msg := range messages {
		if msg.Role == openai.ChatMessageRoleTool {
			toolNames = append(toolNames, msg.Name)
		}
	}

	if len(toolNames) > 0 {
		return "I've completed your request using: " + strings.Join(toolNames, ", ")
	}

	return "I've completed the operations but couldn't generate a final response."
}

var (
	spaceBeforePeriod = regexp.MustCompile(`\s+\.`)
	multiSpace        = regexp.MustCompile(`\s{2,}`)
)

// normalizeReply flattens a model reply for single-line console display:
// newlines collapse to spaces, stray spacing before periods is removed.
func normalizeReply(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", " ")
	s = spaceBeforePeriod.ReplaceAllString(s, ".")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
