package request

import (
	"errors"

	"github.com/alvilabs/portfolio-api/pkg/infra/providers"
	"github.com/alvilabs/portfolio-api/pkg/utils"
)

const (
	maxChatMessageLength = 1000
	maxConversationSize  = 20
	historyKept          = 10
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message      string        `json:"message"`
	Conversation []ChatMessage `json:"conversation"`
}

var (
	ErrMessageRequired      = errors.New("Message is required")
	ErrInvalidMessageLength = errors.New("Invalid message length")
)

func (r *ChatRequest) Validate() error {
	if r.Message == "" {
		return ErrMessageRequired
	}

	r.Message = utils.SanitizeText(r.Message)
	if len(r.Message) == 0 || len(r.Message) > maxChatMessageLength {
		return ErrInvalidMessageLength
	}

	return nil
}

// History returns the sanitized conversation tail: an oversized
// conversation is dropped entirely, otherwise the last ten well-formed
// entries are kept with roles coerced to user/assistant.
func (r *ChatRequest) History() []providers.Message {
	conversation := r.Conversation
	if len(conversation) > maxConversationSize {
		conversation = nil
	}
	if len(conversation) > historyKept {
		conversation = conversation[len(conversation)-historyKept:]
	}

	var history []providers.Message
	for _, msg := range conversation {
		if msg.Role == "" || msg.Content == "" {
			continue
		}
		role := "user"
		if msg.Role == "assistant" {
			role = "assistant"
		}
		history = append(history, providers.Message{
			Role:    role,
			Content: utils.Truncate(utils.SanitizeText(msg.Content), maxChatMessageLength),
		})
	}
	return history
}
