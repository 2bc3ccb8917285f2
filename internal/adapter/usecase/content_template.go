package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"campaign-engine/internal/core/domain"
)

const defaultObjective = "awareness"

// DefaultTemplates maps a normalised objective to its headline templates.
// The first template of a set is used for generation.
func DefaultTemplates() map[string][]string {
	return map[string][]string{
		"awareness": {
			"Discover the future of {industry} with {brand}",
			"Transform your {goal} with our innovative solutions",
			"Join thousands who trust {brand} for {benefit}",
		},
		"traffic": {
			"Ready to boost your {metric}? Click now!",
			"Drive more {audience} to your site today",
			"Increase your {goal} by {percentage}%",
		},
		"sales": {
			"Limited time: Save {discount}% on {product}",
			"Get {benefit} for only ${price}/month",
			"Upgrade to {premium_feature} today",
		},
	}
}

// placeholderDefaults fill template slots the audience leaves empty.
var placeholderDefaults = map[string]string{
	"industry":        "business",
	"brand":           "our platform",
	"goal":            "goals",
	"benefit":         "results",
	"metric":          "conversions",
	"audience":        "customers",
	"percentage":      "50",
	"discount":        "20",
	"product":         "our products",
	"price":           "9.99",
	"premium_feature": "Premium",
}

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// TemplateStrategy generates copy deterministically from a template table.
type TemplateStrategy struct {
	templates map[string][]string
}

// NewTemplateStrategy returns a strategy over templates. A nil table uses
// DefaultTemplates.
func NewTemplateStrategy(templates map[string][]string) *TemplateStrategy {
	if templates == nil {
		templates = DefaultTemplates()
	}
	return &TemplateStrategy{templates: templates}
}

func (s *TemplateStrategy) Name() string { return "template" }

func (s *TemplateStrategy) Source() domain.Source { return domain.SourceRule }

// Generate fills the objective's template from the audience.
func (s *TemplateStrategy) Generate(_ context.Context, req domain.ContentRequest) (domain.GeneratedContent, error) {
	req = req.WithDefaults()
	templates := s.templates[strings.ToLower(strings.TrimSpace(req.Objective))]
	if len(templates) == 0 {
		templates = s.templates[defaultObjective]
	}
	if len(templates) == 0 {
		return domain.GeneratedContent{}, fmt.Errorf("%w: no templates for objective %q", domain.ErrInternalComputation, req.Objective)
	}

	headline, err := fillTemplate(templates[0], req)
	if err != nil {
		return domain.GeneratedContent{}, err
	}
	segment := req.AudienceString("segment", "industry leaders")

	return domain.GeneratedContent{
		Headline:     truncateRunes(headline, req.MaxLength),
		Description:  fmt.Sprintf("Join the %s who are achieving remarkable results.", segment),
		CallToAction: "Get Started",
		Hashtags:     []string{"#marketing", "#business", "#success"},
	}, nil
}

func fillTemplate(tmpl string, req domain.ContentRequest) (string, error) {
	var missing []string
	out := placeholderPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
		key := m[1 : len(m)-1]
		if v, ok := audienceValue(req.Audience, key); ok {
			return v
		}
		if v, ok := placeholderDefaults[key]; ok {
			return v
		}
		missing = append(missing, key)
		return m
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: template placeholders without value: %s", domain.ErrInternalComputation, strings.Join(missing, ", "))
	}
	return out, nil
}

func audienceValue(audience map[string]any, key string) (string, bool) {
	switch v := audience[key].(type) {
	case nil:
		return "", false
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	case float64, int, int64, bool:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}
