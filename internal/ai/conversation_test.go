package ai

import (
	"testing"

	"github.com/sashabaranov/go-openai"
)

func TestConversationAppendOrder(t *testing.T) {
	conv := NewConversation("system prompt")

	conv.AppendUser("what's the co2 level?")
	conv.AppendTool("call_1", "determine_ventilation_status", "CO2 level is 900 ppm (ELEVATED): ventilation recommended")
	conv.AppendAssistant("It's 900 ppm, open a window.")

	msgs := conv.Messages()
	wantRoles := []string{
		openai.ChatMessageRoleSystem,
		openai.ChatMessageRoleUser,
		openai.ChatMessageRoleTool,
		openai.ChatMessageRoleAssistant,
	}
	if len(msgs) != len(wantRoles) {
		t.Fatalf("len = %d, want %d", len(msgs), len(wantRoles))
	}
	for i, want := range wantRoles {
		if msgs[i].Role != want {
			t.Errorf("messages[%d].Role = %s, want %s", i, msgs[i].Role, want)
		}
	}
}

func TestConversationToolMessageCorrelation(t *testing.T) {
	conv := NewConversation("")
	conv.AppendTool("call_42", "measure_co2", "Sensor reading failed: no response from sensor")

	msgs := conv.Messages()
	if msgs[0].ToolCallID != "call_42" {
		t.Errorf("ToolCallID = %s", msgs[0].ToolCallID)
	}
	if msgs[0].Name != "measure_co2" {
		t.Errorf("Name = %s", msgs[0].Name)
	}
}

func TestConversationMessagesIsACopy(t *testing.T) {
	conv := NewConversation("")
	conv.AppendUser("hi")

	msgs := conv.Messages()
	msgs[0].Content = "tampered"

	if conv.Messages()[0].Content != "hi" {
		t.Error("mutating the returned slice altered the store")
	}
}

func TestNewConversationWithoutSystemPrompt(t *testing.T) {
	conv := NewConversation("")
	if conv.Len() != 0 {
		t.Errorf("Len = %d, want 0", conv.Len())
	}
}
