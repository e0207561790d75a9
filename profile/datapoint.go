package profile

// DataPoint represents a named, typed analytics value, either stored or derived from sources
type DataPoint struct {
	ID          string   // identifier, unique within a profile
	Kind        Kind     // native output type
	Number      float64  // stored number
	Flag        bool     // stored flag
	Text        string   // stored text
	Export      bool     // whether the resolved value is exported
	Calculation string   // calculation name, empty when the value is stored
	Sources     []Handle // calculation arguments, in order

	handle Handle
}

// Handle returns the point's stable identity
func (d *DataPoint) Handle() Handle {
	return d.handle
}

// IsCalculated returns true if a calculation derives the value
func (d *DataPoint) IsCalculated() bool {
	return d.Calculation != ""
}

func (d *DataPoint) clone() *DataPoint {
	result := *d
	result.Sources = append([]Handle(nil), d.Sources...)
	return &result
}

func (d *DataPoint) references(handle Handle) bool {
	for _, source := range d.Sources {
		if source == handle {
			return true
		}
	}
	return false
}
