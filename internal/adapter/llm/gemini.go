package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"campaign-engine/internal/core/port"
)

// GeminiWriter completes prompts with the Gemini API.
type GeminiWriter struct {
	client *genai.Client
	model  string
}

// NewGeminiWriter creates a writer authenticated with an API key.
func NewGeminiWriter(ctx context.Context, apiKey, model string) (*GeminiWriter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return NewGeminiWriterFromClient(client, model), nil
}

func NewGeminiWriterFromClient(c *genai.Client, model string) *GeminiWriter {
	return &GeminiWriter{client: c, model: model}
}

func (w *GeminiWriter) Name() string { return "gemini" }

// Complete implements port.CopyWriter.
func (w *GeminiWriter) Complete(ctx context.Context, prompt string, params port.GenerationParams) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(params.Temperature),
		MaxOutputTokens:   int32(params.MaxTokens),
	}
	if params.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := w.client.Models.GenerateContent(ctx, w.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("gemini returned no text")
	}
	return text, nil
}
