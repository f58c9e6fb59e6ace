package theme

import (
	"encoding/json"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"
)

var ocean = Seeds{
	Primary:   "#0891b2",
	Secondary: "#06b6d4",
	Tertiary:  "#22d3ee",
	Accent:    "#67e8f9",
}

func TestSlugify(t *testing.T) {
	Convey("Given display names", t, func() {
		Convey("Whitespace becomes hyphens and punctuation is dropped", func() {
			So(Slugify("My Awesome Theme!"), ShouldEqual, "my-awesome-theme")
			So(Slugify("  Neon\tNights  2 "), ShouldEqual, "-neon-nights-2-")
			So(Slugify("Café"), ShouldEqual, "caf")
		})

		Convey("Names without slug characters collapse to empty", func() {
			So(Slugify("!!!"), ShouldBeEmpty)
		})

		Convey("Slugify is idempotent", func() {
			for _, name := range []string{"My Awesome Theme!", "Rose Gold", "a--b", "ÜBER cool"} {
				once := Slugify(name)
				So(Slugify(once), ShouldEqual, once)
			}
		})
	})
}

func TestStyle(t *testing.T) {
	Convey("Given the style enumeration", t, func() {
		Convey("It lists five styles in menu order", func() {
			So(StyleNames(), ShouldResemble, []string{"Modern", "Neon", "Glass", "Flat", "Gradient"})
		})

		Convey("Parsing ignores case", func() {
			s, err := ParseStyle("gLaSs")
			So(err, ShouldBeNil)
			So(s, ShouldEqual, Glass)
		})

		Convey("Unknown names suggest the closest style", func() {
			_, err := ParseStyle("neo")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `"Neon"`)
		})

		Convey("Out of range values fall back to Modern traits", func() {
			bogus := Style(42)
			So(bogus.Valid(), ShouldBeFalse)
			So(GenerateTypography(bogus).FontFamily, ShouldResemble, GenerateTypography(Modern).FontFamily)
			So(GenerateBorderRadius(bogus), ShouldResemble, GenerateBorderRadius(Modern))
			So(GenerateEffects(ocean, bogus, Dark), ShouldBeNil)
		})

		Convey("Every style has a description", func() {
			for _, s := range Styles() {
				So(s.Description(), ShouldNotBeEmpty)
			}
		})
	})
}

func TestSeeds(t *testing.T) {
	Convey("Given seed colors", t, func() {
		Convey("Hex checks accept #RRGGBB in either case", func() {
			So(CheckHex("#00d4FF"), ShouldBeNil)
		})

		Convey("Hex checks reject other forms", func() {
			for _, bad := range []string{"", "00d4ff", "#fff", "#00d4ffaa", "#gggggg", "red"} {
				So(CheckHex(bad), ShouldEqual, ErrInvalidHex)
			}
		})

		Convey("Validate reports every bad seed", func() {
			s := ocean
			s.Secondary = "blue"
			s.Accent = ""
			err := s.Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "secondary")
			So(err.Error(), ShouldContainSubstring, "accent")
			So(ocean.Validate(), ShouldBeNil)
		})
	})
}

func TestPresets(t *testing.T) {
	Convey("Given the preset table", t, func() {
		Convey("Names are in menu order and end with Custom", func() {
			So(PresetNames(), ShouldResemble, []string{
				"Cyberpunk", "Ocean", "Forest", "Sunset", "Purple Dream", "Monochrome", "Rose Gold", "Custom",
			})
		})

		Convey("Every preset seed is a valid color", func() {
			for _, p := range Presets() {
				So(p.Seeds.Validate(), ShouldBeNil)
			}
			So(CustomDefaults.Validate(), ShouldBeNil)
		})

		Convey("Exact names match ignoring case", func() {
			p, err := FindPreset("ocean")
			So(err, ShouldBeNil)
			So(p.Seeds, ShouldResemble, ocean)
		})

		Convey("Partial names match fuzzily", func() {
			p, err := FindPreset("purp")
			So(err, ShouldBeNil)
			So(p.Name, ShouldEqual, "Purple Dream")
		})

		Convey("Unknown names suggest the closest preset", func() {
			_, err := FindPreset("Oceam")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `"Ocean"`)
		})

		Convey("Custom is a menu entry, not a preset", func() {
			So(IsCustom("custom"), ShouldBeTrue)
			So(IsCustom(" Custom "), ShouldBeTrue)
			So(IsCustom("cust"), ShouldBeFalse)
			So(PresetNames(), ShouldContain, Custom)
		})

		Convey("Loading animations parse by name", func() {
			a, err := ParseLoadingAnimation("Glitch")
			So(err, ShouldBeNil)
			So(a, ShouldEqual, "glitch")

			_, err = ParseLoadingAnimation("spin")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestShadows(t *testing.T) {
	Convey("Given the shadow generator", t, func() {
		Convey("Flat suppresses every level", func() {
			for _, mode := range []Mode{Light, Dark} {
				s := GenerateShadows(ocean, Flat, mode)
				So([]string{s.XS, s.SM, s.MD, s.LG, s.XL, s.X2L, s.Inner, s.Glow, s.None}, ShouldResemble,
					[]string{"none", "none", "none", "none", "none", "none", "none", "none", "none"})
			}
		})

		Convey("Light opacities scale from 0.1", func() {
			s := GenerateShadows(ocean, Modern, Light)
			So(s.XS, ShouldEqual, "0 1px 2px rgba(0, 0, 0, 0.05)")
			So(s.SM, ShouldEqual, "0 2px 4px rgba(0, 0, 0, 0.1)")
			So(s.MD, ShouldEqual, "0 4px 8px rgba(0, 0, 0, 0.15)")
			So(s.X2L, ShouldEqual, "0 16px 32px rgba(0, 0, 0, 0.3)")
			So(s.Inner, ShouldEqual, "inset 0 2px 4px rgba(0, 0, 0, 0.1)")
			So(s.Glow, ShouldEqual, "none")
		})

		Convey("Dark opacities scale from 0.3", func() {
			s := GenerateShadows(ocean, Glass, Dark)
			So(s.MD, ShouldEqual, "0 4px 8px rgba(0, 0, 0, 0.45)")
			So(s.XL, ShouldEqual, "0 12px 24px rgba(0, 0, 0, 0.75)")
			So(s.X2L, ShouldEqual, "0 16px 32px rgba(0, 0, 0, 0.9)")
		})

		Convey("Neon glows in the primary seed", func() {
			s := GenerateShadows(ocean, Neon, Dark)
			So(s.Glow, ShouldEqual, "0 0 20px rgba(8, 145, 178, 0.5)")
		})
	})
}

func TestEffects(t *testing.T) {
	Convey("Given the effects generator", t, func() {
		Convey("Effects exist only for Neon, Glass and Gradient", func() {
			for _, s := range Styles() {
				has := GenerateEffects(ocean, s, Light) != nil
				So(has, ShouldEqual, s == Neon || s == Glass || s == Gradient)
			}
		})

		Convey("Glass depends on the mode", func() {
			light := GenerateEffects(ocean, Glass, Light)
			dark := GenerateEffects(ocean, Glass, Dark)
			So(light.Glass.Background, ShouldEqual, Color("rgba(255, 255, 255, 0.7)"))
			So(dark.Glass.Background, ShouldEqual, Color("rgba(255, 255, 255, 0.1)"))
			So(dark.Glass.Border, ShouldEqual, "1px solid rgba(255, 255, 255, 0.2)")
			So(light.Glass.Backdrop, ShouldEqual, "blur(10px) saturate(180%)")
			So(light.Neon, ShouldBeNil)
		})

		Convey("Neon carries glow and neon blocks", func() {
			e := GenerateEffects(ocean, Neon, Dark)
			So(e.Glow.Error, ShouldEqual, "0 0 20px rgba(239, 68, 68, 0.5)")
			So(e.Glow.Success, ShouldEqual, "0 0 20px rgba(16, 185, 129, 0.5)")
			So(e.Neon.Box, ShouldEqual, "0 0 30px rgba(8, 145, 178, 0.3), inset 0 0 30px rgba(8, 145, 178, 0.1)")
			So(e.Glass, ShouldBeNil)
		})

		Convey("Gradient blends the seeds", func() {
			e := GenerateEffects(ocean, Gradient, Light)
			So(e.Gradient.Brand, ShouldEqual, Color("linear-gradient(135deg, #0891b2 0%, #06b6d4 100%)"))
			So(e.Gradient.Vibrant, ShouldEqual, Color("linear-gradient(45deg, #0891b2, #06b6d4, #22d3ee, #67e8f9)"))
		})
	})
}

func TestBuildVariant(t *testing.T) {
	Convey("Given the Ocean seeds", t, func() {
		dark := BuildVariant(ocean, Modern, Dark)
		light := BuildVariant(ocean, Modern, Light)

		Convey("Brand colors derive from the primary seed", func() {
			So(dark.Colors.Brand.Primary, ShouldEqual, Color("#0891b2"))
			So(dark.Colors.Brand.Dark, ShouldEqual, Color("#004465"))
			So(dark.Colors.Brand.Light, ShouldEqual, Color("#55deff"))
			So(dark.Colors.Text.LinkHover, ShouldEqual, Color("#39e9ff"))
		})

		Convey("Mode palettes differ", func() {
			So(light.Colors.Background.Primary, ShouldEqual, Color("#ffffff"))
			So(dark.Colors.Background.Primary, ShouldEqual, Color("#0a0e27"))
			So(light.Colors.Button.Secondary.Hover, ShouldEqual, Color("rgba(8, 145, 178, 0.1)"))
			So(dark.Colors.Button.Secondary.Active, ShouldEqual, Color("rgba(8, 145, 178, 0.3)"))
		})

		Convey("Building twice yields the same variant", func() {
			So(BuildVariant(ocean, Neon, Light), ShouldResemble, BuildVariant(ocean, Neon, Light))
		})

		Convey("Flat uses square corners", func() {
			So(BuildVariant(ocean, Flat, Light).BorderRadius.Full, ShouldEqual, "0")
			So(light.BorderRadius.Full, ShouldEqual, "9999px")
		})
	})
}

func TestAssemble(t *testing.T) {
	Convey("Given a request", t, func() {
		req := Request{
			DisplayName: "My Awesome Theme!",
			Description: "Calm blues",
			Author:      "someone",
			Seeds:       ocean,
			Style:       Glass,
		}
		doc := Assemble(req)

		Convey("Identity fields are filled in", func() {
			So(doc.Name, ShouldEqual, "my-awesome-theme")
			So(doc.Version, ShouldEqual, "2.0.0")
			So(doc.LoadingAnimation, ShouldEqual, "pulse")
		})

		Convey("Top-level tokens mirror the dark variant", func() {
			So(doc.Colors, ShouldResemble, doc.Variants.Dark.Colors)
			So(doc.Shadows, ShouldResemble, doc.Variants.Dark.Shadows)
			So(doc.Typography, ShouldResemble, doc.Variants.Dark.Typography)
			So(doc.Spacing, ShouldResemble, doc.Variants.Dark.Spacing)
			So(doc.Animations, ShouldResemble, doc.Variants.Dark.Animations)
			So(doc.BorderRadius, ShouldResemble, doc.Variants.Dark.BorderRadius)
			So(*doc.Effects, ShouldResemble, *doc.Variants.Dark.Effects)
		})

		Convey("Styles without effects omit the field", func() {
			req.Style = Modern
			data, err := Assemble(req).Encode(JSON)
			So(err, ShouldBeNil)
			So(string(data), ShouldNotContainSubstring, `"effects"`)
		})

		Convey("Assembly is deterministic", func() {
			a, _ := Assemble(req).Encode(JSON)
			b, _ := Assemble(req).Encode(JSON)
			So(string(a), ShouldEqual, string(b))
		})
	})
}

func TestEncode(t *testing.T) {
	Convey("Given an assembled document", t, func() {
		doc := Assemble(Request{DisplayName: "Ocean Breeze", Seeds: ocean, Style: Neon, LoadingAnimation: "wave"})

		Convey("The format follows the extension", func() {
			So(FormatOf("theme.json"), ShouldEqual, JSON)
			So(FormatOf("out/theme.YML"), ShouldEqual, YAML)
			So(FormatOf("theme.yaml"), ShouldEqual, YAML)
			So(FormatOf("theme"), ShouldEqual, JSON)
		})

		Convey("JSON keeps the document key order", func() {
			data, err := doc.Encode(JSON)
			So(err, ShouldBeNil)

			s := string(data)
			So(strings.Index(s, `"name"`), ShouldBeLessThan, strings.Index(s, `"variants"`))
			So(strings.Index(s, `"variants"`), ShouldBeLessThan, strings.Index(s, `"borderRadius": {`))
			So(s, ShouldContainSubstring, `"2xl": "0 16px 32px rgba(0, 0, 0, 0.9)"`)

			var decoded map[string]any
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded["loadingAnimation"], ShouldEqual, "wave")
		})

		Convey("Text is written as typed, without HTML escapes", func() {
			doc := Assemble(Request{DisplayName: "Rock & Roll <3", Seeds: ocean, Style: Modern})
			data, err := doc.Encode(JSON)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"displayName": "Rock & Roll <3"`)
			So(string(data), ShouldNotContainSubstring, `\u0026`)
			So(string(data), ShouldEndWith, "}\n")
		})

		Convey("YAML decodes to the same tree as JSON", func() {
			jsonData, err := doc.Encode(JSON)
			So(err, ShouldBeNil)
			yamlData, err := doc.Encode(YAML)
			So(err, ShouldBeNil)
			So(string(yamlData), ShouldNotContainSubstring, "{")

			var fromJSON, fromYAML map[string]any
			So(json.Unmarshal(jsonData, &fromJSON), ShouldBeNil)
			So(yaml.Unmarshal(yamlData, &fromYAML), ShouldBeNil)

			colors := fromYAML["colors"].(map[string]any)
			brand := colors["brand"].(map[string]any)
			So(brand["primary"], ShouldEqual, "#0891b2")
			So(fromYAML["version"], ShouldEqual, fromJSON["version"])
		})
	})
}
