package schema

import (
	"regexp"

	"github.com/themekit/themekit/theme"
)

// ColorPattern is the grammar every color-valued field must match.
const ColorPattern = `^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$|^rgba?\([^)]+\)|^linear-gradient|^transparent$`

var (
	colorGrammar = regexp.MustCompile(ColorPattern)
	namePattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
	versionRule  = regexp.MustCompile(`^2\.\d+\.\d+$`)
)

var (
	colorLeaf  = &Node{Kind: String, Pattern: colorGrammar, Ref: "color", Description: "Hex, rgb(a), linear-gradient or transparent"}
	textLeaf   = &Node{Kind: String}
	openObject = &Node{Kind: Object}
)

// role is an object of color leaves.
func role(required []string, optional ...string) *Node {
	props := make(map[string]*Node, len(required)+len(optional))
	for _, name := range append(append([]string{}, required...), optional...) {
		props[name] = colorLeaf
	}

	return &Node{Kind: Object, Required: required, Props: props}
}

var colorsRule = &Node{
	Kind:     Object,
	Ref:      "colors",
	Required: []string{"brand", "semantic", "background", "text", "border"},
	Props: map[string]*Node{
		"brand":      role([]string{"primary", "secondary", "tertiary", "accent"}, "dark", "light"),
		"semantic":   role([]string{"success", "warning", "error", "info"}),
		"background": role([]string{"primary", "secondary", "tertiary", "elevated", "overlay"}, "blur", "muted"),
		"text":       role([]string{"primary", "secondary", "tertiary", "disabled", "inverse"}, "accent", "muted", "link", "linkHover"),
		"border":     role([]string{"default", "hover", "focus", "subtle"}, "muted"),
		"button": {
			Kind: Object,
			Props: map[string]*Node{
				"primary":   role(nil, "background", "text", "hover", "active"),
				"secondary": role(nil, "background", "text", "border", "hover", "active"),
				"ghost":     role(nil, "background", "text", "hover", "active"),
			},
		},
		"input": role(nil, "background", "border", "borderHover", "borderFocus", "text", "placeholder"),
		"card": {
			Kind: Object,
			Props: map[string]*Node{
				"background": colorLeaf,
				"border":     colorLeaf,
				"hover":      role(nil, "background", "border"),
			},
		},
	},
}

var variantRule = &Node{
	Kind:     Object,
	Ref:      "variant",
	Required: []string{"colors"},
	Props: map[string]*Node{
		"colors":       colorsRule,
		"typography":   openObject,
		"spacing":      openObject,
		"borderRadius": openObject,
		"shadows":      openObject,
		"animations":   openObject,
		"effects":      openObject,
	},
}

// Document is the v2 contract. Unknown top-level properties are tolerated;
// variants is closed to exactly light and dark.
var Document = &Node{
	Kind: Object,
	Required: []string{
		"name", "version", "colors", "typography", "spacing", "shadows", "animations", "borderRadius", "variants",
	},
	Props: map[string]*Node{
		"name":             {Kind: String, Pattern: namePattern, Description: "Theme identifier: lowercase letters, digits and hyphens"},
		"displayName":      {Kind: String, Description: "Human-readable theme name"},
		"version":          {Kind: String, Pattern: versionRule, Description: "Document format version"},
		"description":      textLeaf,
		"author":           textLeaf,
		"colors":           colorsRule,
		"typography":       openObject,
		"spacing":          openObject,
		"shadows":          openObject,
		"animations":       openObject,
		"borderRadius":     openObject,
		"effects":          openObject,
		"loadingAnimation": {Kind: String, Enum: theme.LoadingAnimations},
		"variants": {
			Kind:     Object,
			Required: []string{"light", "dark"},
			Props: map[string]*Node{
				"light": variantRule,
				"dark":  variantRule,
			},
			Closed: true,
		},
	},
}
