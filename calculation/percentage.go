package calculation

import "math"

// Percentage divides the first source by the second one.
// A zero divisor yields zero.
type Percentage struct{}

func (Percentage) Name() string { return "Percentage" }

func (Percentage) Range() Range { return Range{Min: 2, Max: 2} }

func (Percentage) Description() string { return "[0] / [1]" }

func (Percentage) Number(sources []Source) float64 {
	if len(sources) < 2 {
		return 0
	}
	divisor := sources[1].Number()
	if divisor == 0 {
		return 0
	}
	return sources[0].Number() / divisor
}

func (Percentage) Flag(sources []Source) bool { return false }

// Text renders the ratio as a percentage with two decimal places, i.e. "33.33%"
func (p Percentage) Text(sources []Source) string {
	return formatNumber(math.Floor(p.Number(sources)*10000)/100) + "%"
}
