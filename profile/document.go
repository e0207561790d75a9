package profile

import (
	"fmt"

	"github.com/viant/dpgraph/calculation"
)

// Document is the persisted form of a profile; sources are positions in Points
type Document struct {
	Name        string          `yaml:"name" json:"name"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Points      []PointDocument `yaml:"points" json:"points"`
}

// PointDocument is the persisted form of a data point
type PointDocument struct {
	ID          string  `yaml:"id" json:"id"`
	Kind        Kind    `yaml:"kind" json:"kind"`
	Number      float64 `yaml:"number" json:"number"`
	Flag        bool    `yaml:"flag" json:"flag"`
	Text        string  `yaml:"text" json:"text"`
	Export      bool    `yaml:"export" json:"export"`
	Calculation string  `yaml:"calculation,omitempty" json:"calculation,omitempty"`
	Sources     []int   `yaml:"sources,omitempty" json:"sources,omitempty"`
}

// noCalculation is how editor-written documents mark a stored value
const noCalculation = "<None>"

func (d *PointDocument) calculation() string {
	switch d.Calculation {
	case calculation.None, noCalculation:
		return ""
	}
	return d.Calculation
}

// Document returns the persisted form of the profile
func (p *Profile) Document() *Document {
	doc := &Document{Name: p.Name, Description: p.Description, Points: make([]PointDocument, 0, len(p.order))}
	for _, handle := range p.order {
		point := p.points[handle]
		var sources []int
		for _, source := range point.Sources {
			sources = append(sources, p.index[source])
		}
		doc.Points = append(doc.Points, PointDocument{
			ID:          point.ID,
			Kind:        point.Kind,
			Number:      point.Number,
			Flag:        point.Flag,
			Text:        point.Text,
			Export:      point.Export,
			Calculation: point.Calculation,
			Sources:     sources,
		})
	}
	return doc
}

// FromDocument validates doc and builds a profile from it
func FromDocument(doc *Document) (*Profile, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %q: %w", doc.Name, err)
	}
	p := New(doc.Name, WithDescription(doc.Description))
	var handles = make([]Handle, len(doc.Points))
	for i := range doc.Points {
		handles[i] = newHandle()
	}
	for i, item := range doc.Points {
		point := &DataPoint{
			ID:          item.ID,
			Kind:        item.Kind,
			Number:      item.Number,
			Flag:        item.Flag,
			Text:        item.Text,
			Export:      item.Export,
			Calculation: item.calculation(),
			handle:      handles[i],
		}
		for _, source := range item.Sources {
			point.Sources = append(point.Sources, handles[source])
		}
		p.push(point)
	}
	return p, nil
}
