package profile

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a document encoding
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// ParseFormat parses a format name
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case YAML, "yml":
		return YAML, nil
	case JSON:
		return JSON, nil
	}
	return "", fmt.Errorf("unsupported format: %q", name)
}

// FormatOf returns the format matching the URL extension, YAML unless it ends with .json
func FormatOf(URL string) Format {
	if strings.EqualFold(path.Ext(URL), ".json") {
		return JSON
	}
	return YAML
}

// Marshal encodes v
func (f Format) Marshal(v interface{}) ([]byte, error) {
	if f == JSON {
		return json.MarshalIndent(v, "", "  ")
	}
	return yaml.Marshal(v)
}

// Unmarshal decodes data into v
func (f Format) Unmarshal(data []byte, v interface{}) error {
	if f == JSON {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

// Encode returns the encoded profile document
func (p *Profile) Encode(format Format) ([]byte, error) {
	return format.Marshal(p.Document())
}

// Decode builds a profile from an encoded document
func Decode(data []byte, format Format) (*Profile, error) {
	doc := &Document{}
	if err := format.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode %v profile: %w", format, err)
	}
	return FromDocument(doc)
}
