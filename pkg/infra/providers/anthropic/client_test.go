package anthropic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alvilabs/portfolio-api/pkg/infra/providers"
)

func TestChat_RequiresAPIKey(t *testing.T) {
	c := NewAnthropicClient()

	resp, err := c.Chat(context.Background(), &providers.Config{}, nil, "hello")
	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "API key is required")
}
