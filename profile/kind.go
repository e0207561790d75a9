package profile

import (
	"fmt"
	"strings"
)

// Kind is the native output type of a data point
type Kind string

const (
	Number Kind = "Number"
	Flag   Kind = "Flag"
	Text   Kind = "Text"
)

// Kinds returns all value kinds in display order
func Kinds() []Kind {
	return []Kind{Number, Flag, Text}
}

// ParseKind parses a kind name, case-insensitively
func ParseKind(name string) (Kind, error) {
	for _, kind := range Kinds() {
		if strings.EqualFold(string(kind), name) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unsupported value kind: %q", name)
}

// IsValid returns true for a known kind
func (k Kind) IsValid() bool {
	switch k {
	case Number, Flag, Text:
		return true
	}
	return false
}
