package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amounts(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.RequireFromString(v)
	}
	return out
}

func fixed(r Rules, values []decimal.Decimal) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = r.Format(v)
	}
	return out
}

func TestNewRules(t *testing.T) {
	r, err := NewRules(2)
	require.NoError(t, err)
	assert.Equal(t, int32(2), r.DecimalPlaces())
	assert.Equal(t, "0.01", r.SmallestIncrement().String())

	r, err = NewRules(0)
	require.NoError(t, err)
	assert.Equal(t, "1", r.SmallestIncrement().String())

	_, err = NewRules(-1)
	assert.ErrorIs(t, err, ErrInvalidDecimalPlaces)
}

func TestRoundAndFormat(t *testing.T) {
	r, _ := NewRules(2)

	assert.Equal(t, "33.33", r.Format(decimal.RequireFromString("33.3333")))
	assert.Equal(t, "0.02", r.Format(decimal.RequireFromString("0.015")))
	assert.Equal(t, "-0.02", r.Format(decimal.RequireFromString("-0.015")))
	assert.Equal(t, "5.00", r.Format(decimal.NewFromInt(5)))

	assert.True(t, r.IsMultiple(decimal.RequireFromString("1.23")))
	assert.False(t, r.IsMultiple(decimal.RequireFromString("1.235")))
}

func TestSpread(t *testing.T) {
	r, _ := NewRules(2)

	tests := []struct {
		name     string
		amounts  []decimal.Decimal
		residual string
		want     []string
		steps    int64
	}{
		{"no residual", amounts("1", "2"), "0", []string{"1.00", "2.00"}, 0},
		{"single cent", amounts("33.33", "33.33", "33.33"), "0.01", []string{"33.34", "33.33", "33.33"}, 1},
		{"wraps around", amounts("0", "0"), "0.05", []string{"0.03", "0.02"}, 5},
		{"negative", amounts("0.02", "0.02", "0.02"), "-0.01", []string{"0.01", "0.02", "0.02"}, 1},
		{"negative wraps", amounts("1", "1"), "-0.03", []string{"0.98", "0.99"}, 3},
		{"sub-increment residual rounds away", amounts("1"), "0.004", []string{"1.00"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, steps := r.Spread(tt.amounts, decimal.RequireFromString(tt.residual))
			assert.Equal(t, tt.want, fixed(r, got))
			assert.Equal(t, tt.steps, steps)
		})
	}
}

func TestSpreadDoesNotMutateInput(t *testing.T) {
	r, _ := NewRules(2)
	in := amounts("1", "1")

	_, _ = r.Spread(in, decimal.RequireFromString("0.01"))

	assert.Equal(t, []string{"1.00", "1.00"}, fixed(r, in))
}

func TestSpreadEmpty(t *testing.T) {
	r, _ := NewRules(2)
	got, steps := r.Spread(nil, decimal.NewFromInt(1))
	assert.Empty(t, got)
	assert.Zero(t, steps)
}
