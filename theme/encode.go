package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a serialization of a theme document.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}

	return "json"
}

// FormatOf picks the format from a file extension; anything but .yaml and .yml is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Encode serializes the document, keeping the field order of the types.
func (d *Document) Encode(format Format) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}

	if format == JSON {
		return buf.Bytes(), nil
	}

	return jsonToYAML(buf.Bytes())
}

// jsonToYAML re-encodes a JSON document as block-style YAML. Going through
// yaml.Node keeps the key order; the encoder quotes only the strings that need it.
func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}

	restyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}

	return buf.Bytes(), nil
}

// restyle drops the flow and quoting styles the JSON input left on every node.
func restyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		restyle(child)
	}
}
