package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	name    string
	entries []Entry
}

func (c *collector) Export(name string, entries []Entry) error {
	c.name = name
	c.entries = entries
	return nil
}

func TestExport(t *testing.T) {
	p := sample(t)
	expect := []Entry{
		{ID: "Total", Kind: Number, Value: 10.25},
		{ID: "Accuracy", Kind: Number, Value: 7 / 10.25},
		{ID: "Note", Kind: Text, Value: `quoted "note"`},
		{ID: "Done", Kind: Flag, Value: true},
	}
	assert.Equal(t, expect, p.Export())

	exporter := &collector{}
	require.NoError(t, p.ExportTo(exporter))
	assert.Equal(t, "test", exporter.name)
	assert.Equal(t, expect, exporter.entries)

	assert.Empty(t, New("empty").Export())

	var names []string
	require.NoError(t, p.ExportTo(ExporterFunc(func(name string, entries []Entry) error {
		names = append(names, name)
		assert.Len(t, entries, 4)
		return nil
	})))
	assert.Equal(t, []string{"test"}, names)
}
