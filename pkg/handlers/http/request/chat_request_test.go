package request

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatRequest_Validate(t *testing.T) {
	req := &ChatRequest{Message: "  hello <b>there</b>  "}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "hello there", req.Message)

	assert.Equal(t, ErrMessageRequired, (&ChatRequest{}).Validate())
	assert.Equal(t, ErrInvalidMessageLength, (&ChatRequest{Message: strings.Repeat("a", 1001)}).Validate())
	assert.Equal(t, ErrInvalidMessageLength, (&ChatRequest{Message: "<br>"}).Validate())
}

func TestChatRequest_History_KeepsLastTen(t *testing.T) {
	req := &ChatRequest{Message: "hi"}
	for i := 0; i < 15; i++ {
		req.Conversation = append(req.Conversation, ChatMessage{
			Role:    "user",
			Content: fmt.Sprintf("message %d", i),
		})
	}

	history := req.History()
	assert.Len(t, history, 10)
	assert.Equal(t, "message 5", history[0].Content)
	assert.Equal(t, "message 14", history[9].Content)
}

func TestChatRequest_History_DropsOversizedConversation(t *testing.T) {
	req := &ChatRequest{Message: "hi"}
	for i := 0; i < 21; i++ {
		req.Conversation = append(req.Conversation, ChatMessage{Role: "user", Content: "m"})
	}

	assert.Empty(t, req.History())
}

func TestChatRequest_History_SkipsMalformedAndCoercesRoles(t *testing.T) {
	req := &ChatRequest{
		Message: "hi",
		Conversation: []ChatMessage{
			{Role: "user", Content: "kept"},
			{Role: "", Content: "no role"},
			{Role: "user", Content: ""},
			{Role: "assistant", Content: "reply"},
			{Role: "system", Content: "coerced"},
		},
	}

	history := req.History()
	assert.Len(t, history, 3)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "assistant", history[1].Role)
	assert.Equal(t, "user", history[2].Role)
}

func TestChatRequest_History_TruncatesLongEntries(t *testing.T) {
	req := &ChatRequest{
		Message: "hi",
		Conversation: []ChatMessage{
			{Role: "user", Content: strings.Repeat("a", 2000)},
		},
	}

	history := req.History()
	assert.Len(t, history, 1)
	assert.Len(t, history[0].Content, 1000)
}
