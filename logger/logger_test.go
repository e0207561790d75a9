package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	entries []string
}

func (r *recorder) Debug(message string, keyvals ...any) { r.entries = append(r.entries, "debug:"+message) }
func (r *recorder) Info(message string, keyvals ...any)  { r.entries = append(r.entries, "info:"+message) }
func (r *recorder) Warn(message string, keyvals ...any)  { r.entries = append(r.entries, "warn:"+message) }
func (r *recorder) Error(message string, keyvals ...any) { r.entries = append(r.entries, "error:"+message) }

func TestDispatch(t *testing.T) {
	defer Reset()
	Info("dropped")

	first, second := &recorder{}, &recorder{}
	Init(first, second)
	Debug("a", "k", 1)
	Info("b")
	Warn("c")
	Error("d")

	expect := []string{"debug:a", "info:b", "warn:c", "error:d"}
	assert.Equal(t, expect, first.entries)
	assert.Equal(t, expect, second.entries)

	Reset()
	Info("dropped")
	assert.Len(t, first.entries, 4)
}
