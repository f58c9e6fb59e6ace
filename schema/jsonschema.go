package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	jsv "github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaID identifies the v2 contract.
const SchemaID = "https://themekit.dev/schema/theme-v2.json"

// JSONSchema renders the rule tree as a JSON Schema document. It is the
// exact contract Validate enforces.
func JSONSchema() *jsonschema.Schema {
	defs := jsonschema.Definitions{}

	root := Document.Schema(defs)
	root.Version = jsonschema.Version
	root.ID = jsonschema.ID(SchemaID)
	root.Title = "themekit theme"
	root.Description = "Theme document with light and dark variants, format v2"
	root.Definitions = defs

	return root
}

var (
	compileOnce sync.Once
	compiled    *jsv.Schema
)

// contract compiles JSONSchema once.
func contract() *jsv.Schema {
	compileOnce.Do(func() {
		compiled = lo.Must(compile(JSONSchema()))
	})

	return compiled
}

func compile(s *jsonschema.Schema) (*jsv.Schema, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}

	doc, err := jsv.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}

	c := jsv.NewCompiler()
	if err := c.AddResource(SchemaID, doc); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}

	return c.Compile(SchemaID)
}
