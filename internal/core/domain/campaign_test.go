package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsFloat(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    float64
		wantErr bool
	}{
		{"float64", 12.5, 12.5, false},
		{"float32", float32(2), 2, false},
		{"int", 7, 7, false},
		{"int64", int64(9), 9, false},
		{"json number", json.Number("3.25"), 3.25, false},
		{"nil", nil, 0, false},
		{"string", "500", 0, true},
		{"bool", true, 0, true},
		{"bad json number", json.Number("x"), 0, true},
		{"nan", math.NaN(), 0, true},
		{"inf", math.Inf(1), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Metrics{MetricSpend: tt.value}.Float(MetricSpend)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetricsFloatMissing(t *testing.T) {
	got, err := Metrics(nil).Float(MetricConversions)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCampaignSnapshotDecode(t *testing.T) {
	var c CampaignSnapshot
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c1","budget":100,"performance":{"spend":40,"conversions":"n/a"}}`), &c))

	spend, err := c.Performance.Float(MetricSpend)
	require.NoError(t, err)
	assert.Equal(t, 40.0, spend)

	_, err = c.Performance.Float(MetricConversions)
	assert.Error(t, err)
}
