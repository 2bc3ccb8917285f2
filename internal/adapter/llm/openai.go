package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"campaign-engine/internal/core/port"
)

const systemPrompt = "You are an expert advertising copywriter. You answer with JSON only."

// OpenAIWriter completes prompts with the OpenAI chat completion API.
type OpenAIWriter struct {
	client *openai.Client
	model  string
}

// NewOpenAIWriter creates a writer for the public OpenAI endpoint.
func NewOpenAIWriter(apiKey, model string) *OpenAIWriter {
	return NewOpenAIWriterWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewOpenAIWriterWithConfig creates a writer for any OpenAI compatible endpoint.
func NewOpenAIWriterWithConfig(cfg openai.ClientConfig, model string) *OpenAIWriter {
	return &OpenAIWriter{client: openai.NewClientWithConfig(cfg), model: model}
}

func (w *OpenAIWriter) Name() string { return "openai" }

// Complete implements port.CopyWriter.
func (w *OpenAIWriter) Complete(ctx context.Context, prompt string, params port.GenerationParams) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: w.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxCompletionTokens: params.MaxTokens,
		Temperature:         params.Temperature,
	}
	if params.JSON {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}

	resp, err := w.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
