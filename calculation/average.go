package calculation

// Average is the arithmetic mean of all sources
type Average struct{}

func (Average) Name() string { return "Average" }

func (Average) Range() Range { return Range{Min: 2, Max: 100} }

func (Average) Description() string { return "( [0] + [1] + ... ) / Count" }

func (Average) Number(sources []Source) float64 {
	count := len(sources)
	if count == 0 {
		count = 1
	}
	return sum(sources) / float64(count)
}

func (Average) Flag(sources []Source) bool { return false }

// Text renders the mean truncated to three decimal places
func (a Average) Text(sources []Source) string {
	return formatNumber(floorTo(a.Number(sources), 1000))
}
