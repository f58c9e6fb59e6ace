package theme

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Style is the closed set of visual styles a theme can be generated in.
type Style int

const (
	Modern Style = iota
	Neon
	Glass
	Flat
	Gradient
)

// traits is everything that differs between styles.
type traits struct {
	name        string
	description string
	// flat suppresses every shadow level
	flat bool
	// glow tints the glow shadow with the primary seed
	glow    bool
	fonts   FontFamily
	radius  BorderRadius
	effects func(Seeds, Mode) *Effects
}

var (
	softRadius = BorderRadius{
		None: "0",
		SM:   "0.375rem",
		MD:   "0.75rem",
		LG:   "1rem",
		XL:   "1.5rem",
		X2L:  "2rem",
		Full: "9999px",
	}

	sharpRadius = BorderRadius{
		None: "0",
		SM:   "0.25rem",
		MD:   "0.5rem",
		LG:   "0.75rem",
		XL:   "1rem",
		X2L:  "1.5rem",
		Full: "9999px",
	}

	squareRadius = BorderRadius{
		None: "0",
		SM:   "0",
		MD:   "0",
		LG:   "0",
		XL:   "0",
		X2L:  "0",
		Full: "0",
	}
)

var styles = [...]traits{
	Modern: {
		name:        "Modern",
		description: "Clean and minimalist with subtle shadows",
		fonts: FontFamily{
			Heading: "'Inter', 'Segoe UI', system-ui, sans-serif",
			Body:    "'Inter', 'Segoe UI', system-ui, sans-serif",
			Mono:    "'JetBrains Mono', 'Cascadia Code', monospace",
			Display: "'Inter', 'Segoe UI', sans-serif",
		},
		radius: softRadius,
	},
	Neon: {
		name:        "Neon",
		description: "Vibrant with glowing effects",
		glow:        true,
		fonts: FontFamily{
			Heading: "'Orbitron', 'Segoe UI', system-ui, sans-serif",
			Body:    "'Inter', 'Segoe UI', system-ui, sans-serif",
			Mono:    "'JetBrains Mono', 'Cascadia Code', monospace",
			Display: "'Michroma', 'Orbitron', sans-serif",
		},
		radius:  sharpRadius,
		effects: neonEffects,
	},
	Glass: {
		name:        "Glass",
		description: "Transparent with blur effects",
		fonts: FontFamily{
			Heading: "'Poppins', 'Segoe UI', system-ui, sans-serif",
			Body:    "'Inter', 'Segoe UI', system-ui, sans-serif",
			Mono:    "'Fira Code', 'Cascadia Code', monospace",
			Display: "'Poppins', 'Segoe UI', sans-serif",
		},
		radius:  softRadius,
		effects: glassEffects,
	},
	Flat: {
		name:        "Flat",
		description: "No shadows, solid colors",
		flat:        true,
		fonts: FontFamily{
			Heading: "'Roboto', 'Segoe UI', system-ui, sans-serif",
			Body:    "'Roboto', 'Segoe UI', system-ui, sans-serif",
			Mono:    "'Roboto Mono', monospace",
			Display: "'Roboto', 'Segoe UI', sans-serif",
		},
		radius: squareRadius,
	},
	Gradient: {
		name:        "Gradient",
		description: "Rich gradients and transitions",
		fonts: FontFamily{
			Heading: "'Montserrat', 'Segoe UI', system-ui, sans-serif",
			Body:    "'Open Sans', 'Segoe UI', system-ui, sans-serif",
			Mono:    "'Source Code Pro', monospace",
			Display: "'Montserrat', 'Segoe UI', sans-serif",
		},
		radius:  sharpRadius,
		effects: gradientEffects,
	},
}

// traits returns the record of s, or Modern's when s is out of range.
func (s Style) traits() traits {
	if !s.Valid() {
		return styles[Modern]
	}

	return styles[s]
}

// Valid reports whether s is one of the declared styles.
func (s Style) Valid() bool {
	return s >= 0 && int(s) < len(styles)
}

func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}

	return styles[s].name
}

// Description is the one-line summary shown next to the style in menus.
func (s Style) Description() string {
	return s.traits().description
}

// Styles lists every style in menu order.
func Styles() []Style {
	return lo.Times(len(styles), func(i int) Style {
		return Style(i)
	})
}

// StyleNames lists the names of every style in menu order.
func StyleNames() []string {
	return lo.Map(Styles(), func(s Style, _ int) string {
		return s.String()
	})
}

// ParseStyle resolves a style by name, ignoring case.
func ParseStyle(name string) (Style, error) {
	name = strings.TrimSpace(name)
	for _, s := range Styles() {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}

	return Modern, fmt.Errorf("unknown style %q, did you mean %q?", name, Closest(name, StyleNames()))
}

// MarshalText encodes the style by name.
func (s Style) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid style %d", int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText decodes a style name.
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}
