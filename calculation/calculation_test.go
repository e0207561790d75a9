package calculation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type value float64

func (v value) Number() float64 { return float64(v) }
func (v value) Flag() bool      { return v != 0 }
func (v value) Text() string    { return formatNumber(float64(v)) }

func values(numbers ...float64) []Source {
	var result = make([]Source, 0, len(numbers))
	for _, n := range numbers {
		result = append(result, value(n))
	}
	return result
}

func TestStrategies(t *testing.T) {
	tests := []struct {
		description string
		strategy    Strategy
		sources     []Source
		number      float64
		text        string
	}{
		{description: "sum", strategy: Sum{}, sources: values(3, 4), number: 7, text: ""},
		{description: "sum many", strategy: Sum{}, sources: values(1, 2, 3, 4.5), number: 10.5, text: ""},
		{description: "difference", strategy: Difference{}, sources: values(10, 3, 2), number: 5, text: ""},
		{description: "difference empty", strategy: Difference{}, sources: nil, number: 0, text: ""},
		{description: "average", strategy: Average{}, sources: values(1, 2), number: 1.5, text: "1.5"},
		{description: "average truncated", strategy: Average{}, sources: values(1, 1, 0), number: 2.0 / 3.0, text: "0.666"},
		{description: "average empty", strategy: Average{}, sources: nil, number: 0, text: "0"},
		{description: "percentage", strategy: Percentage{}, sources: values(1, 2), number: 0.5, text: "50%"},
		{description: "percentage thirds", strategy: Percentage{}, sources: values(1, 3), number: 1.0 / 3.0, text: "33.33%"},
		{description: "percentage zero divisor", strategy: Percentage{}, sources: values(4, 0), number: 0, text: "0%"},
		{description: "percentage missing divisor", strategy: Percentage{}, sources: values(4), number: 0, text: "0%"},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.InDelta(t, tc.number, tc.strategy.Number(tc.sources), 1e-9)
			assert.Equal(t, tc.text, tc.strategy.Text(tc.sources))
			assert.False(t, tc.strategy.Flag(tc.sources))
		})
	}
}

func TestRange(t *testing.T) {
	assert.Equal(t, Range{Min: 2, Max: 100}, Sum{}.Range())
	assert.Equal(t, Range{Min: 2, Max: 2}, Percentage{}.Range())
	assert.True(t, Range{Min: 2, Max: 3}.Contains(2))
	assert.True(t, Range{Min: 2, Max: 3}.Contains(3))
	assert.False(t, Range{Min: 2, Max: 3}.Contains(1))
	assert.False(t, Range{Min: 2, Max: 3}.Contains(4))
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		strategy, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, strategy.Name())
		assert.NotEmpty(t, Describe(name))
	}
	assert.Equal(t, []string{"Sum", "Difference", "Average", "Percentage"}, Names())

	_, err := Lookup("Median")
	assert.True(t, errors.Is(err, ErrUnknown))
	_, err = Lookup(None)
	assert.True(t, errors.Is(err, ErrUnknown))
	assert.Equal(t, "", Describe(None))
}
