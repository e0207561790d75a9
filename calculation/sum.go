package calculation

// Sum adds all sources
type Sum struct{}

func (Sum) Name() string { return "Sum" }

func (Sum) Range() Range { return Range{Min: 2, Max: 100} }

func (Sum) Description() string { return "[0] + [1] + ..." }

func (Sum) Number(sources []Source) float64 { return sum(sources) }

func (Sum) Flag(sources []Source) bool { return false }

func (Sum) Text(sources []Source) string { return "" }
