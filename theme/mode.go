package theme

// Mode selects the light or dark base palette.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}

	return "light"
}

// palette holds the mode-dependent values that do not come from the seeds.
type palette struct {
	// colors is a template; brand-derived roles are filled in by buildColors
	colors Colors

	// secondaryHover and secondaryActive are the alphas of the outlined button overlays
	secondaryHover  float64
	secondaryActive float64

	// shadowOpacity is the base opacity of the elevation shadows
	shadowOpacity float64

	glass GlassEffect
}

var palettes = [...]palette{
	Light: {
		colors: Colors{
			Semantic: semantic,
			Background: Background{
				Primary:   "#ffffff",
				Secondary: "#f8fafc",
				Tertiary:  "#f1f5f9",
				Elevated:  "#ffffff",
				Overlay:   "rgba(0, 0, 0, 0.5)",
				Blur:      "rgba(255, 255, 255, 0.85)",
				Muted:     "#f8fafc",
			},
			Text: Text{
				Primary:   "#0f172a",
				Secondary: "#475569",
				Tertiary:  "#64748b",
				Disabled:  "#94a3b8",
				Inverse:   "#ffffff",
				Muted:     "#94a3b8",
			},
			Border: Border{
				Default: "rgba(0, 0, 0, 0.1)",
				Hover:   "rgba(0, 0, 0, 0.2)",
				Subtle:  "rgba(0, 0, 0, 0.05)",
				Muted:   "rgba(0, 0, 0, 0.03)",
			},
			Button: Button{
				Ghost: ButtonState{
					Background: "transparent",
					Text:       "#0f172a",
					Hover:      "rgba(15, 23, 42, 0.1)",
					Active:     "rgba(15, 23, 42, 0.2)",
				},
			},
			Input: Input{
				Background:  "rgba(248, 250, 252, 0.8)",
				Border:      "rgba(0, 0, 0, 0.1)",
				BorderHover: "rgba(0, 0, 0, 0.2)",
				Text:        "#0f172a",
				Placeholder: "#64748b",
			},
			Card: Card{
				Background: "#f8fafc",
				Border:     "rgba(0, 0, 0, 0.05)",
				Hover: CardHover{
					Background: "#f1f5f9",
					Border:     "rgba(0, 0, 0, 0.1)",
				},
			},
		},
		secondaryHover:  0.1,
		secondaryActive: 0.2,
		shadowOpacity:   0.1,
		glass: GlassEffect{
			Background: "rgba(255, 255, 255, 0.7)",
			Backdrop:   glassBackdrop,
			Border:     "1px solid rgba(0, 0, 0, 0.1)",
		},
	},
	Dark: {
		colors: Colors{
			Semantic: semantic,
			Background: Background{
				Primary:   "#0a0e27",
				Secondary: "#0f1428",
				Tertiary:  "#141b3c",
				Elevated:  "#1a2240",
				Overlay:   "rgba(0, 0, 0, 0.8)",
				Blur:      "rgba(10, 14, 39, 0.85)",
				Muted:     "#0d1220",
			},
			Text: Text{
				Primary:   "#ffffff",
				Secondary: "#94a3b8",
				Tertiary:  "#64748b",
				Disabled:  "#475569",
				Inverse:   "#0f172a",
				Muted:     "#52606d",
			},
			Border: Border{
				Default: "rgba(255, 255, 255, 0.1)",
				Hover:   "rgba(255, 255, 255, 0.2)",
				Subtle:  "rgba(255, 255, 255, 0.05)",
				Muted:   "rgba(255, 255, 255, 0.03)",
			},
			Button: Button{
				Ghost: ButtonState{
					Background: "transparent",
					Text:       "#ffffff",
					Hover:      "rgba(255, 255, 255, 0.1)",
					Active:     "rgba(255, 255, 255, 0.2)",
				},
			},
			Input: Input{
				Background:  "rgba(10, 14, 39, 0.8)",
				Border:      "rgba(255, 255, 255, 0.1)",
				BorderHover: "rgba(255, 255, 255, 0.2)",
				Text:        "#ffffff",
				Placeholder: "#52606d",
			},
			Card: Card{
				Background: "#0d1220",
				Border:     "rgba(255, 255, 255, 0.05)",
				Hover: CardHover{
					Background: "#141b3c",
					Border:     "rgba(255, 255, 255, 0.1)",
				},
			},
		},
		secondaryHover:  0.2,
		secondaryActive: 0.3,
		shadowOpacity:   0.3,
		glass: GlassEffect{
			Background: "rgba(255, 255, 255, 0.1)",
			Backdrop:   glassBackdrop,
			Border:     "1px solid rgba(255, 255, 255, 0.2)",
		},
	},
}

var semantic = Semantic{
	Success: "#10b981",
	Warning: "#f59e0b",
	Error:   "#ef4444",
	Info:    "#3b82f6",
}

const glassBackdrop = "blur(10px) saturate(180%)"

func (m Mode) palette() palette {
	if m == Dark {
		return palettes[Dark]
	}

	return palettes[Light]
}
