package calculation

// Difference subtracts every following source from the first one
type Difference struct{}

func (Difference) Name() string { return "Difference" }

func (Difference) Range() Range { return Range{Min: 2, Max: 100} }

func (Difference) Description() string { return "[0] - [1] - ..." }

func (Difference) Number(sources []Source) float64 {
	if len(sources) == 0 {
		return 0
	}
	result := sources[0].Number()
	for _, source := range sources[1:] {
		result -= source.Number()
	}
	return result
}

func (Difference) Flag(sources []Source) bool { return false }

func (Difference) Text(sources []Source) string { return "" }
