package domain

// MetricConversionRate is the performance key variants are ranked by.
const MetricConversionRate = "conversion_rate"

// DefaultConfidenceLevel is the significance threshold when none is given.
const DefaultConfidenceLevel = 0.95

// Variant is one candidate in an A/B test.
type Variant struct {
	ID          string             `json:"id" validate:"required"`
	Content     map[string]any     `json:"content,omitempty"`
	Performance map[string]float64 `json:"performance"`
}

// ConversionRate returns the variant's conversion rate, zero when unset.
func (v Variant) ConversionRate() float64 {
	return v.Performance[MetricConversionRate]
}

// ABTestResult is the analyzer's verdict. Winner is always the ID of one
// of the analysed variants.
type ABTestResult struct {
	Winner                  string   `json:"winner"`
	Confidence              float64  `json:"confidence"`
	StatisticalSignificance bool     `json:"statistical_significance"`
	SignificanceScore       float64  `json:"significance_score"`
	Lift                    float64  `json:"lift"`
	Recommendations         []string `json:"recommendations"`
}
