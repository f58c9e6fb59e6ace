package theme

import (
	"fmt"

	"github.com/themekit/themekit/colormath"
)

const none = "none"

// elevation is one step of the shadow scale.
type elevation struct {
	geometry   string
	multiplier float64
}

var elevations = [...]elevation{
	{"0 1px 2px", 0.5},
	{"0 2px 4px", 1},
	{"0 4px 8px", 1.5},
	{"0 8px 16px", 2},
	{"0 12px 24px", 2.5},
	{"0 16px 32px", 3},
}

func blackShadow(geometry string, opacity float64) string {
	return fmt.Sprintf("%s rgba(0, 0, 0, %s)", geometry, colormath.FormatAlpha(opacity))
}

// GenerateShadows builds the elevation scale for a style and mode.
func GenerateShadows(seeds Seeds, style Style, mode Mode) Shadows {
	t := style.traits()
	if t.flat {
		return Shadows{
			XS:    none,
			SM:    none,
			MD:    none,
			LG:    none,
			XL:    none,
			X2L:   none,
			Inner: none,
			Glow:  none,
			None:  none,
		}
	}

	base := mode.palette().shadowOpacity
	level := func(i int) string {
		e := elevations[i]
		return blackShadow(e.geometry, base*e.multiplier)
	}

	glow := none
	if t.glow {
		glow = "0 0 20px " + colormath.Translucent(seeds.Primary, 0.5)
	}

	return Shadows{
		XS:    level(0),
		SM:    level(1),
		MD:    level(2),
		LG:    level(3),
		XL:    level(4),
		X2L:   level(5),
		Inner: blackShadow("inset 0 2px 4px", base),
		Glow:  glow,
		None:  none,
	}
}

// GenerateTypography pairs the style's font bundle with the shared type scale.
func GenerateTypography(style Style) Typography {
	return Typography{
		FontFamily: style.traits().fonts,
		FontSize: FontSize{
			XS:   "0.75rem",
			SM:   "0.875rem",
			Base: "1rem",
			LG:   "1.125rem",
			XL:   "1.25rem",
			X2L:  "1.5rem",
			X3L:  "2rem",
			X4L:  "2.5rem",
			X5L:  "3rem",
		},
		FontWeight: FontWeight{
			Light:     300,
			Normal:    400,
			Medium:    500,
			Semibold:  600,
			Bold:      700,
			Extrabold: 800,
		},
		LineHeight: LineHeight{
			Tight:   1.25,
			Normal:  1.5,
			Relaxed: 1.75,
			Loose:   2,
		},
	}
}

// GenerateSpacing returns the fixed spacing scale.
func GenerateSpacing() Spacing {
	return Spacing{
		XS:  "0.25rem",
		SM:  "0.5rem",
		MD:  "1rem",
		LG:  "1.5rem",
		XL:  "2rem",
		X2L: "3rem",
		X3L: "4rem",
	}
}

// GenerateBorderRadius returns the radius scale of a style.
func GenerateBorderRadius(style Style) BorderRadius {
	return style.traits().radius
}

// GenerateAnimations returns the fixed durations and easing curves.
func GenerateAnimations() Animations {
	return Animations{
		Duration: Duration{
			Instant: "0ms",
			Fast:    "150ms",
			Normal:  "300ms",
			Slow:    "500ms",
			Slower:  "700ms",
		},
		Easing: Easing{
			Linear:    "linear",
			Ease:      "ease",
			EaseIn:    "ease-in",
			EaseOut:   "ease-out",
			EaseInOut: "ease-in-out",
			Spring:    "cubic-bezier(0.68, -0.55, 0.265, 1.55)",
		},
	}
}
