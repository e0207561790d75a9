package calculation

import "fmt"

// None is the name used when a data point has no calculation
const None = "None"

var strategies = []Strategy{Sum{}, Difference{}, Average{}, Percentage{}}

var registry = func() map[string]Strategy {
	result := make(map[string]Strategy, len(strategies))
	for _, strategy := range strategies {
		result[strategy.Name()] = strategy
	}
	return result
}()

// Lookup returns the strategy registered under name
func Lookup(name string) (Strategy, error) {
	strategy, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return strategy, nil
}

// Names returns registered calculation names in display order
func Names() []string {
	var result = make([]string, 0, len(strategies))
	for _, strategy := range strategies {
		result = append(result, strategy.Name())
	}
	return result
}

// Describe returns the output description of the named calculation, empty for None or unknown names
func Describe(name string) string {
	if strategy, ok := registry[name]; ok {
		return strategy.Description()
	}
	return ""
}
