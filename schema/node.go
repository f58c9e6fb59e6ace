package schema

import (
	"regexp"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

// Kind is the JSON type a node expects.
type Kind int

const (
	Object Kind = iota
	String
)

func (k Kind) String() string {
	if k == String {
		return "string"
	}

	return "object"
}

// Node is one rule of the declarative document contract.
type Node struct {
	Kind     Kind
	Required []string
	Props    map[string]*Node
	// Closed rejects properties not listed in Props
	Closed  bool
	Pattern *regexp.Regexp
	Enum    []string
	// Ref names the $defs entry this node is emitted as, if any
	Ref         string
	Description string
}

// Schema renders the node as JSON Schema. Nodes with a Ref are emitted as
// references and collected into defs.
func (n *Node) Schema(defs jsonschema.Definitions) *jsonschema.Schema {
	if n.Ref != "" {
		if _, ok := defs[n.Ref]; !ok {
			defs[n.Ref] = n.inline(defs)
		}

		return &jsonschema.Schema{Ref: "#/$defs/" + n.Ref}
	}

	return n.inline(defs)
}

func (n *Node) inline(defs jsonschema.Definitions) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:        n.Kind.String(),
		Description: n.Description,
	}

	switch n.Kind {
	case String:
		if n.Pattern != nil {
			s.Pattern = n.Pattern.String()
		}

		if n.Enum != nil {
			s.Enum = lo.ToAnySlice(n.Enum)
		}
	case Object:
		s.Required = n.Required

		if len(n.Props) > 0 {
			s.Properties = jsonschema.NewProperties()
			for _, name := range n.order() {
				s.Properties.Set(name, n.Props[name].Schema(defs))
			}
		}

		if n.Closed {
			s.AdditionalProperties = jsonschema.FalseSchema
		}
	}

	return s
}

// order lists required properties first, in declaration order, then the rest by name.
func (n *Node) order() []string {
	rest := lo.Without(lo.Keys(n.Props), n.Required...)
	sort.Strings(rest)

	return append(lo.Filter(n.Required, func(name string, _ int) bool {
		_, ok := n.Props[name]
		return ok
	}), rest...)
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escape(token string) string {
	return pointerEscaper.Replace(token)
}

// pointer joins instance location tokens into a JSON pointer, "/" for the root.
func pointer(tokens []string) string {
	if len(tokens) == 0 {
		return "/"
	}

	return "/" + strings.Join(lo.Map(tokens, func(t string, _ int) string {
		return escape(t)
	}), "/")
}
