package theme

import "github.com/themekit/themekit/colormath"

// BuildVariant composes the complete token set of one mode. It is total and deterministic.
func BuildVariant(seeds Seeds, style Style, mode Mode) Variant {
	return Variant{
		Colors:       buildColors(seeds, mode),
		Shadows:      GenerateShadows(seeds, style, mode),
		Typography:   GenerateTypography(style),
		Spacing:      GenerateSpacing(),
		BorderRadius: GenerateBorderRadius(style),
		Animations:   GenerateAnimations(),
		Effects:      GenerateEffects(seeds, style, mode),
	}
}

func buildColors(seeds Seeds, mode Mode) Colors {
	p := mode.palette()
	c := p.colors

	primary := Color(seeds.Primary)

	c.Brand = Brand{
		Primary:   primary,
		Secondary: Color(seeds.Secondary),
		Tertiary:  Color(seeds.Tertiary),
		Accent:    Color(seeds.Accent),
		Dark:      Color(colormath.Darken(seeds.Primary, 0.3)),
		Light:     Color(colormath.Lighten(seeds.Primary, 0.3)),
	}

	c.Text.Accent = primary
	c.Text.Link = Color(seeds.Secondary)
	c.Text.LinkHover = Color(colormath.Lighten(seeds.Secondary, 0.2))

	c.Border.Focus = primary

	c.Button.Primary = ButtonState{
		Background: primary,
		Text:       "#ffffff",
		Hover:      Color(seeds.Secondary),
		Active:     Color(seeds.Tertiary),
	}
	c.Button.Secondary = ButtonState{
		Background: "transparent",
		Text:       primary,
		Border:     primary,
		Hover:      Color(colormath.Translucent(seeds.Primary, p.secondaryHover)),
		Active:     Color(colormath.Translucent(seeds.Primary, p.secondaryActive)),
	}

	c.Input.BorderFocus = primary

	return c
}
