package ai

import (
	"github.com/sashabaranov/go-openai"
)

// Conversation is the append-only message log for one chat session. Messages
// are never edited or reordered once appended; the log lives as long as the
// session. A single turn is the only writer at a time; callers running
// concurrent turns must serialize them externally (one conversation per
// session, one in-flight turn per conversation).
type Conversation struct {
	messages []openai.ChatCompletionMessage
}

// NewConversation starts a session log, seeding it with the system prompt
// when one is given.
func NewConversation(systemPrompt string) *Conversation {
	c := &Conversation{}
	if systemPrompt != "" {
		c.messages = append(c.messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	return c
}

// Append adds a message to the end of the log.
func (c *Conversation) Append(msg openai.ChatCompletionMessage) {
	c.messages = append(c.messages, msg)
}

// AppendUser appends a plain user message.
func (c *Conversation) AppendUser(text string) {
	c.Append(openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})
}

// AppendAssistant appends a plain assistant message.
func (c *Conversation) AppendAssistant(text string) {
	c.Append(openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: text,
	})
}

// AppendTool appends a tool result correlated to the call that produced it.
// Name records which capability generated the content, which may differ from
// the one the model asked for when the measure chain fires.
func (c *Conversation) AppendTool(callID, name, content string) {
	c.Append(openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		Content:    content,
		Name:       name,
		ToolCallID: callID,
	})
}

// Messages returns a copy of the log in append order.
func (c *Conversation) Messages() []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len reports the number of messages in the log.
func (c *Conversation) Len() int {
	return len(c.messages)
}
