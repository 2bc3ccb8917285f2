package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
)

// LLMStrategy asks a language model for ad copy. Every failure, including
// an exhausted quota or an answer that does not parse, is reported as
// domain.ErrExternalDependency so the generator moves on. Calls are not
// retried.
type LLMStrategy struct {
	writer  port.CopyWriter
	quota   port.QuotaGuard
	timeout time.Duration
	params  port.GenerationParams
}

// LLMOption configures an LLMStrategy.
type LLMOption func(*LLMStrategy)

// WithQuota meters calls through guard.
func WithQuota(guard port.QuotaGuard) LLMOption {
	return func(s *LLMStrategy) {
		s.quota = guard
	}
}

// WithTimeout bounds each call. Zero disables the bound.
func WithTimeout(d time.Duration) LLMOption {
	return func(s *LLMStrategy) {
		s.timeout = d
	}
}

// WithGenerationParams overrides token and temperature settings.
func WithGenerationParams(p port.GenerationParams) LLMOption {
	return func(s *LLMStrategy) {
		s.params = p
	}
}

// NewLLMStrategy wraps writer as a content strategy.
func NewLLMStrategy(writer port.CopyWriter, opts ...LLMOption) *LLMStrategy {
	s := &LLMStrategy{
		writer:  writer,
		timeout: 10 * time.Second,
		params:  port.GenerationParams{MaxTokens: 300, Temperature: 0.7, JSON: true},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LLMStrategy) Name() string { return s.writer.Name() }

func (s *LLMStrategy) Source() domain.Source { return domain.SourceModel }

// Generate implements ContentStrategy.
func (s *LLMStrategy) Generate(ctx context.Context, req domain.ContentRequest) (domain.GeneratedContent, error) {
	req = req.WithDefaults()
	if s.quota != nil {
		ok, err := s.quota.Allow(ctx, "llm:"+s.writer.Name())
		if err != nil {
			return domain.GeneratedContent{}, fmt.Errorf("%w: quota check: %w", domain.ErrExternalDependency, err)
		}
		if !ok {
			return domain.GeneratedContent{}, fmt.Errorf("%w: %s quota exhausted", domain.ErrExternalDependency, s.writer.Name())
		}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	prompt, err := buildContentPrompt(req)
	if err != nil {
		return domain.GeneratedContent{}, fmt.Errorf("%w: %w", domain.ErrExternalDependency, err)
	}
	text, err := s.writer.Complete(ctx, prompt, s.params)
	if err != nil {
		return domain.GeneratedContent{}, fmt.Errorf("%w: %s: %w", domain.ErrExternalDependency, s.writer.Name(), err)
	}
	content, err := parseGeneratedContent(text, req.MaxLength)
	if err != nil {
		return domain.GeneratedContent{}, fmt.Errorf("%w: %s: %w", domain.ErrExternalDependency, s.writer.Name(), err)
	}
	return content, nil
}

func buildContentPrompt(req domain.ContentRequest) (string, error) {
	audience, err := json.Marshal(req.Audience)
	if err != nil {
		return "", fmt.Errorf("encode audience: %w", err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Create a compelling %s ad for a %s campaign.\n", req.Platform, req.Objective)
	fmt.Fprintf(&b, "Target audience: %s\n", audience)
	fmt.Fprintf(&b, "Tone: %s\n", req.Tone)
	fmt.Fprintf(&b, "The headline must be at most %d characters.\n\n", req.MaxLength)
	b.WriteString("Respond with a single JSON object and nothing else, using the fields: ")
	b.WriteString(`"headline" (string), "description" (string), "call_to_action" (string), `)
	b.WriteString(`"hashtags" (array of strings), "confidence_score" (number between 0 and 1).`)
	return b.String(), nil
}

var errNoJSON = errors.New("response contains no JSON object")

// generatedPayload is the answer shape requested from the model.
type generatedPayload struct {
	Headline        string      `json:"headline"`
	Description     string      `json:"description"`
	CallToAction    string      `json:"call_to_action"`
	Hashtags        hashtagList `json:"hashtags"`
	ConfidenceScore *float64    `json:"confidence_score"`
}

// hashtagList accepts either a JSON array or a single space separated string.
type hashtagList []string

func (h *hashtagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*h = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("hashtags: %w", err)
	}
	*h = strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	return nil
}

func parseGeneratedContent(text string, maxLength int) (domain.GeneratedContent, error) {
	raw := extractJSON(text)
	if raw == "" {
		return domain.GeneratedContent{}, errNoJSON
	}
	var p generatedPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.GeneratedContent{}, fmt.Errorf("decode response: %w", err)
	}

	out := domain.GeneratedContent{
		Headline:     strings.TrimSpace(p.Headline),
		Description:  strings.TrimSpace(p.Description),
		CallToAction: strings.TrimSpace(p.CallToAction),
		Hashtags:     normalizeHashtags(p.Hashtags),
	}
	switch {
	case out.Headline == "":
		return domain.GeneratedContent{}, errors.New("response is missing headline")
	case out.Description == "":
		return domain.GeneratedContent{}, errors.New("response is missing description")
	case out.CallToAction == "":
		return domain.GeneratedContent{}, errors.New("response is missing call_to_action")
	case p.ConfidenceScore != nil && !(*p.ConfidenceScore >= 0 && *p.ConfidenceScore <= 1):
		return domain.GeneratedContent{}, fmt.Errorf("confidence_score %v out of range", *p.ConfidenceScore)
	}
	if len(out.Hashtags) == 0 {
		out.Hashtags = append([]string(nil), fallbackContent.Hashtags...)
	}
	out.Headline = truncateRunes(out.Headline, maxLength)
	return out, nil
}

func normalizeHashtags(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, tag := range in {
		tag = strings.TrimSpace(tag)
		tag = strings.TrimLeft(tag, "#")
		if tag == "" {
			continue
		}
		tag = "#" + tag
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}
