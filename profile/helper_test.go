package profile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// build creates a profile with one Number point per id
func build(t *testing.T, ids ...string) *Profile {
	t.Helper()
	p := New("test")
	for _, id := range ids {
		index := p.AddPoint(Number)
		assigned, err := p.RenamePoint(index, id)
		require.NoError(t, err)
		require.Equal(t, id, assigned)
	}
	return p
}

// calculate attaches a calculation and replaces defaulted sources with the given ones
func calculate(t *testing.T, p *Profile, index int, name string, sources ...int) {
	t.Helper()
	require.NoError(t, p.SetCalculation(index, name))
	for pos, source := range sources {
		point, err := p.Point(index)
		require.NoError(t, err)
		if pos < len(point.Sources) {
			require.NoError(t, p.SetSource(index, pos, source))
			continue
		}
		require.NoError(t, p.AddSource(index, source))
	}
}

func numbers(t *testing.T, p *Profile, values map[int]float64) {
	t.Helper()
	for index, value := range values {
		require.NoError(t, p.SetNumber(index, value))
	}
}
