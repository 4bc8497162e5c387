package llm

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"doctorai/pkg"
)

// Sampling configures a single completion call.
type Sampling struct {
	MaxTokens   int
	Temperature float32
}

// Client is the completion collaborator. It accepts the full role-tagged
// message sequence (system instruction + prior turns + latest user message)
// and returns the generated text. Failures are returned as-is; there is no
// retry here — a turn either gets a completion or fails.
type Client interface {
	Complete(ctx context.Context, messages []pkg.Message, cfg Sampling) (string, error)
}

// OpenAIClient backs Client with the OpenAI chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient constructs an OpenAI-backed client for the given model.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Complete sends the message history to the chat completion API and returns
// the assistant's reply, trimmed.
func (c *OpenAIClient) Complete(ctx context.Context, messages []pkg.Message, cfg Sampling) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}

	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := string(m.Role)
		if role != openai.ChatMessageRoleSystem && role != openai.ChatMessageRoleUser && role != openai.ChatMessageRoleAssistant {
			// coerce anything unknown to user
			role = openai.ChatMessageRoleUser
		}
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    oaMsgs,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
