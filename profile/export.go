package profile

// Entry is an exported data point value
type Entry struct {
	ID    string      `yaml:"id" json:"id"`
	Kind  Kind        `yaml:"kind" json:"kind"`
	Value interface{} `yaml:"value" json:"value"`
}

// Exporter receives the export projection of a profile, i.e. a CSV, SQL or xAPI uploader
type Exporter interface {
	Export(name string, entries []Entry) error
}

// ExporterFunc adapts a function to Exporter
type ExporterFunc func(name string, entries []Entry) error

// Export calls fn(name, entries)
func (fn ExporterFunc) Export(name string, entries []Entry) error {
	return fn(name, entries)
}

// Export returns the resolved value of every exported point, in display order
func (p *Profile) Export() []Entry {
	var result = make([]Entry, 0)
	evaluation := p.evaluation()
	for _, handle := range p.order {
		point := p.points[handle]
		if !point.Export {
			continue
		}
		value := evaluation.value(point)
		result = append(result, Entry{ID: point.ID, Kind: value.Kind, Value: value.Interface()})
	}
	return result
}

// ExportTo hands the export projection over to exporter
func (p *Profile) ExportTo(exporter Exporter) error {
	return exporter.Export(p.Name, p.Export())
}
