package theme

import (
	"fmt"

	"github.com/themekit/themekit/colormath"
)

// GenerateEffects returns the style-specific effects, or nil for styles without any.
func GenerateEffects(seeds Seeds, style Style, mode Mode) *Effects {
	build := style.traits().effects
	if build == nil {
		return nil
	}

	return build(seeds, mode)
}

func glassEffects(_ Seeds, mode Mode) *Effects {
	glass := mode.palette().glass
	return &Effects{Glass: &glass}
}

func neonEffects(seeds Seeds, _ Mode) *Effects {
	halo := func(hex string) string {
		return "0 0 20px " + colormath.Translucent(hex, 0.5)
	}

	return &Effects{
		Glow: &GlowEffect{
			Primary:   halo(seeds.Primary),
			Secondary: halo(seeds.Secondary),
			Error:     halo(string(semantic.Error)),
			Success:   halo(string(semantic.Success)),
		},
		Neon: &NeonEffect{
			Text: "0 0 10px currentColor, 0 0 20px currentColor",
			Box: fmt.Sprintf(
				"0 0 30px %s, inset 0 0 30px %s",
				colormath.Translucent(seeds.Primary, 0.3),
				colormath.Translucent(seeds.Primary, 0.1),
			),
		},
	}
}

func gradientEffects(seeds Seeds, _ Mode) *Effects {
	return &Effects{
		Gradient: &GradientEffect{
			Brand:   Color(fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", seeds.Primary, seeds.Secondary)),
			Accent:  Color(fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", seeds.Secondary, seeds.Tertiary)),
			Vibrant: Color(fmt.Sprintf("linear-gradient(45deg, %s, %s, %s, %s)", seeds.Primary, seeds.Secondary, seeds.Tertiary, seeds.Accent)),
		},
	}
}
