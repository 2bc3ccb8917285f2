package domain

// Content defaults applied when the caller leaves a field empty.
const (
	DefaultTone      = "professional"
	DefaultMaxLength = 125
)

// ContentRequest describes the ad copy a caller wants generated.
type ContentRequest struct {
	Objective string         `json:"objective"`
	Audience  map[string]any `json:"audience,omitempty"`
	Platform  string         `json:"platform"`
	Tone      string         `json:"tone,omitempty"`
	MaxLength int            `json:"max_length,omitempty"`
}

// WithDefaults returns a copy with Tone and MaxLength populated.
// A non-positive MaxLength is replaced by DefaultMaxLength.
func (r ContentRequest) WithDefaults() ContentRequest {
	if r.Tone == "" {
		r.Tone = DefaultTone
	}
	if r.MaxLength <= 0 {
		r.MaxLength = DefaultMaxLength
	}
	return r
}

// AudienceString returns a string audience attribute or def when the key is
// absent, empty or not a string.
func (r ContentRequest) AudienceString(key, def string) string {
	if v, ok := r.Audience[key].(string); ok && v != "" {
		return v
	}
	return def
}

// GeneratedContent is a complete piece of ad copy. Headline never exceeds
// the requested maximum length in runes.
type GeneratedContent struct {
	Headline        string   `json:"headline"`
	Description     string   `json:"description"`
	CallToAction    string   `json:"call_to_action"`
	Hashtags        []string `json:"hashtags"`
	ConfidenceScore float64  `json:"confidence_score"`
	Strategy        string   `json:"strategy"`
}
