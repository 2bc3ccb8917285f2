package domain

// PerformanceForecast is a coarse projection of campaign delivery for the
// campaign's current budget.
type PerformanceForecast struct {
	PredictedImpressions float64 `json:"predicted_impressions"`
	PredictedClicks      float64 `json:"predicted_clicks"`
	PredictedConversions float64 `json:"predicted_conversions"`
	Confidence           float64 `json:"confidence"`
}

// AudienceInsights summarises observed audience behaviour.
type AudienceInsights struct {
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	Confidence      float64  `json:"confidence"`
}
