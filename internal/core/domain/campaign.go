package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// CampaignSnapshot represents the state of an advertising campaign at the
// moment a decision is requested. Budget is a currency amount and must be
// non-negative. Targeting and Creative are opaque to the engine.
type CampaignSnapshot struct {
	ID          string         `json:"id" validate:"required"`
	Name        string         `json:"name"`
	Platform    string         `json:"platform"`
	Objective   string         `json:"objective"`
	Budget      float64        `json:"budget" validate:"gte=0"`
	Targeting   map[string]any `json:"targeting,omitempty"`
	Creative    map[string]any `json:"creative,omitempty"`
	Performance Metrics        `json:"performance,omitempty"`
}

// HistoricalRecord is read-only context passed alongside a campaign.
type HistoricalRecord struct {
	Campaigns    []CampaignSnapshot `json:"campaigns" validate:"dive"`
	MarketTrends map[string]any     `json:"market_trends,omitempty"`
}

// Metrics holds raw performance counters reported by an ad platform.
// Values arrive untyped from the caller and are converted on read.
type Metrics map[string]any

// Well-known metric keys.
const (
	MetricSpend       = "spend"
	MetricConversions = "conversions"
	MetricClicks      = "clicks"
	MetricImpressions = "impressions"
)

// Float returns the named metric as a float64. A missing key yields zero.
// Values that are not numeric, or not finite, produce an error.
func (m Metrics) Float(name string) (float64, error) {
	raw, ok := m[name]
	if !ok || raw == nil {
		return 0, nil
	}
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("metric %q: %w", name, err)
		}
		v = f
	default:
		return 0, fmt.Errorf("metric %q has non-numeric value of type %T", name, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("metric %q is not finite", name)
	}
	return v, nil
}
