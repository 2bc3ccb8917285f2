package configs

import (
	"strings"
	"time"
)

// LLM configures the language model copywriters. A backend without an API
// key is not used; with no keys at all content comes from templates. Keys
// can be given directly or as a path in the matching _FILE variable, which
// suits container secrets.
type LLM struct {
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	OpenAIAPIKeyFile string `env:"OPENAI_API_KEY_FILE,file"`
	OpenAIBaseURL    string `env:"OPENAI_BASE_URL"`
	OpenAIModel      string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	GeminiAPIKey     string `env:"GEMINI_API_KEY"`
	GeminiAPIKeyFile string `env:"GEMINI_API_KEY_FILE,file"`
	GeminiModel      string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	Timeout     time.Duration `env:"TIMEOUT" envDefault:"10s"`
	MaxTokens   int           `env:"MAX_TOKENS" envDefault:"300"`
	Temperature float32       `env:"TEMPERATURE" envDefault:"0.7"`

	// QuotaPerMinute caps model calls per backend across all replicas. It
	// needs Redis; zero disables the cap.
	QuotaPerMinute int64 `env:"QUOTA_PER_MINUTE" envDefault:"0"`
}

// OpenAIKey returns the OpenAI key, preferring the direct variable.
func (c LLM) OpenAIKey() string {
	return firstKey(c.OpenAIAPIKey, c.OpenAIAPIKeyFile)
}

// GeminiKey returns the Gemini key, preferring the direct variable.
func (c LLM) GeminiKey() string {
	return firstKey(c.GeminiAPIKey, c.GeminiAPIKeyFile)
}

func firstKey(direct, fromFile string) string {
	if k := strings.TrimSpace(direct); k != "" {
		return k
	}
	return strings.TrimSpace(fromFile)
}
