package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buffer bytes.Buffer
	logger := New(Params{Output: &buffer})
	logger.Debug("hidden")
	logger.Info("visible", "point", "Score")
	assert.NotContains(t, buffer.String(), "hidden")
	assert.Contains(t, buffer.String(), "visible")
	assert.Contains(t, buffer.String(), "Score")

	buffer.Reset()
	logger = New(Params{Output: &buffer, Debug: true})
	logger.Debug("shown")
	assert.Contains(t, buffer.String(), "shown")
}
