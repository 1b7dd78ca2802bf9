package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGroqClientDefaults(t *testing.T) {
	c := NewGroqClient("test-key", "", "")
	assert.Equal(t, DefaultModel, c.model)
	assert.NotNil(t, c.client)
}

func TestNewGroqClientCustomModel(t *testing.T) {
	c := NewGroqClient("test-key", "https://example.invalid/v1", "llama-3.1-70b")
	assert.Equal(t, "llama-3.1-70b", c.model)
}
