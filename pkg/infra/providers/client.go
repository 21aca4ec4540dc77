package providers

import (
	"context"
)

type Config struct {
	Credentials  Credentials `json:"credentials"`
	Model        string      `json:"model"`
	MaxTokens    int         `json:"max_tokens,omitempty"`
	Temperature  float64     `json:"temperature,omitempty"`
	SystemPrompt string      `json:"system_prompt,omitempty"`
}

type Credentials struct {
	ApiKey string `json:"api_key"`
}

// Message is one turn of a chat conversation. Role is "user" or
// "assistant"; anything else is coerced to "user" at the boundary.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client interface {
	Chat(ctx context.Context, config *Config, history []Message, prompt string) (*CompletionResponse, error)
}
