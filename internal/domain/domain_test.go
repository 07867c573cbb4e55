package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomerID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CustomerID
		wantErr bool
	}{
		{name: "Número simples", input: "1532072415", want: 1532072415},
		{name: "Espaços ao redor", input: "  42 ", want: 42},
		{name: "Texto", input: "abc", wantErr: true},
		{name: "Vazio", input: "   ", wantErr: true},
		{name: "Decimal não é aceito na entrada do operador", input: "42.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCustomerID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCustomerID))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeCustomerCell(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CustomerID
		wantErr bool
	}{
		{name: "Inteiro", input: "42", want: 42},
		{name: "Inteiro com espaços", input: " 42 ", want: 42},
		{name: "Float exportado", input: "42.0", want: 42},
		{name: "Float com fração", input: "42.5", wantErr: true},
		{name: "NaN", input: "NaN", wantErr: true},
		{name: "Texto", input: "cliente", wantErr: true},
		{name: "Maior int64", input: "9223372036854775807", want: CustomerID(math.MaxInt64)},
		{name: "Acima do int64", input: "9223372036854775808", wantErr: true},
		{name: "Acima do int64 em float", input: "9223372036854775808.0", wantErr: true},
		{name: "Menor int64 em float", input: "-9223372036854775808.0", want: CustomerID(math.MinInt64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCustomerCell(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCustomerID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThresholds_Classify(t *testing.T) {
	tests := []struct {
		mean float64
		want EngagementBand
	}{
		{mean: 3.1, want: EngagementHigh},
		{mean: 2.0, want: EngagementHigh},
		{mean: 1.999, want: EngagementModerate},
		{mean: 1.0, want: EngagementModerate},
		{mean: 0.999, want: EngagementLow},
		{mean: 0, want: EngagementLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultThresholds.Classify(tt.mean), "mean %v", tt.mean)
	}
}

func TestNewForecastSeries(t *testing.T) {
	series := NewForecastSeries([]ForecastRow{
		{Day: 1, PredictedValue: 1.5},
		{Day: 2, PredictedValue: 2.5},
		{Day: 3, PredictedValue: 1.0},
	})

	assert.Equal(t, 3, series.Horizon)
	assert.InDelta(t, 1.6667, series.Mean, 0.0001)
	assert.Equal(t, 1.0, series.Min)
	assert.Equal(t, 2.5, series.Max)
	assert.Equal(t, []float64{1.5, 2.5, 1.0}, series.Values())

	empty := NewForecastSeries(nil)
	assert.Zero(t, empty.Horizon)
	assert.Zero(t, empty.Mean)
	assert.Empty(t, empty.Values())
}

func TestSectionConstructors(t *testing.T) {
	ok := SectionWith(3)
	assert.True(t, ok.OK())
	assert.Equal(t, 3, ok.Data)

	empty := EmptySection[int]("nada aqui")
	assert.Equal(t, SectionEmpty, empty.Status)
	assert.Equal(t, "nada aqui", empty.Message)

	failed := FailedSection[int](errors.New("boom"))
	assert.Equal(t, SectionError, failed.Status)
	assert.Equal(t, "boom", failed.Message)

	assert.Equal(t, SectionSkipped, SkippedSection[int]().Status)
}

func TestInsightMessages(t *testing.T) {
	assert.Equal(t,
		"Suggest offering a 10% discount for Item 7 (Category 3) to drive conversions.",
		TopItemMessage("7", "3"),
	)
	assert.Contains(t, BandMessage(EngagementLow, 0.5), "discount")
	assert.Contains(t, BandMessage(EngagementModerate, 1.667), "1.67")
}
