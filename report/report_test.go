package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/themekit/themekit/key"
	"github.com/themekit/themekit/schema"
	"github.com/themekit/themekit/theme"
)

func printer() (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Printer{out: &buf, width: 80}, &buf
}

func TestResult(t *testing.T) {
	Convey("Given validation results", t, func() {
		p, out := printer()

		Convey("Valid documents show their info and features", func() {
			p.Result(schema.Result{
				Path:     "theme.json",
				Valid:    true,
				Info:     &schema.Info{Name: "ocean", Version: "2.0.0"},
				Features: []string{schema.FeatureEffects, schema.FeatureShadows},
			})

			s := out.String()
			So(s, ShouldContainSubstring, "theme.json")
			So(s, ShouldContainSubstring, "Theme is valid (v2.0 format)")
			So(s, ShouldContainSubstring, "Display Name: ocean")
			So(s, ShouldContainSubstring, "Author: Not specified")
			So(s, ShouldContainSubstring, "Features: effects, custom shadows")
		})

		Convey("Violations list the missing and unknown fields", func() {
			p.Result(schema.Result{
				Path: "bad.json",
				Violations: []schema.Violation{
					{Path: "/variants", Message: "must have required property 'dark'", Keyword: schema.KeywordRequired, Field: "dark"},
					{Path: "/variants", Message: "must NOT have additional properties", Keyword: schema.KeywordAdditional, Field: "sepia"},
					{Path: "/name", Message: "must match pattern", Keyword: schema.KeywordPattern},
				},
				Tip: schema.MigrationTip,
			})

			s := out.String()
			So(s, ShouldContainSubstring, "Theme validation failed:")
			So(s, ShouldContainSubstring, "- /variants: must have required property 'dark'")
			So(s, ShouldContainSubstring, "Missing required property: dark")
			So(s, ShouldContainSubstring, "Unknown property: sepia")
			So(s, ShouldContainSubstring, "- /name: must match pattern")
			So(s, ShouldContainSubstring, "Migration tip:")
		})

		Convey("Version errors show the found version", func() {
			p.Result(schema.Result{Path: "old.json", Err: &schema.VersionError{Found: "1.0.0"}})
			So(out.String(), ShouldContainSubstring, "Theme must be version 2.0.0 or higher")
			So(out.String(), ShouldContainSubstring, "Current version: 1.0.0")
		})

		Convey("Parse errors are their own diagnostic", func() {
			p.Result(schema.Result{Path: "x.json", Err: &schema.ParseError{Path: "x.json", Err: errors.New("unexpected end of JSON input")}})
			So(out.String(), ShouldContainSubstring, "Error reading/parsing theme")
			So(out.String(), ShouldContainSubstring, "unexpected end of JSON input")
		})
	})
}

func TestSummary(t *testing.T) {
	Convey("Given batch summaries", t, func() {
		p, out := printer()

		Convey("A clean batch", func() {
			p.Summary(schema.Summary{Total: 2, Passed: 2})
			So(out.String(), ShouldContainSubstring, "All 2 themes are valid v2.0 format!")
		})

		Convey("A failing batch", func() {
			viper.Set(key.IconsVariant, "plain")
			Reset(func() { viper.Set(key.IconsVariant, "") })

			p.Summary(schema.Summary{Total: 3, Passed: 2, Failed: 1})
			So(out.String(), ShouldContainSubstring, "1 theme of 3 has validation errors")
			So(out.String(), ShouldContainSubstring, "! Please update to v2.0 format")
		})

		Convey("JSON output carries results and summary", func() {
			So(p.JSON([]schema.Result{{Path: "a.json", Valid: true}, {Path: "b.json"}}), ShouldBeNil)

			var decoded struct {
				Results []map[string]any `json:"results"`
				Summary schema.Summary   `json:"summary"`
			}
			So(json.Unmarshal(out.Bytes(), &decoded), ShouldBeNil)
			So(decoded.Results, ShouldHaveLength, 2)
			So(decoded.Summary, ShouldResemble, schema.Summary{Total: 2, Passed: 1, Failed: 1})
		})
	})
}

func TestGenerator(t *testing.T) {
	Convey("Given generator output", t, func() {
		p, out := printer()
		viper.Set(key.IconsVariant, "plain")
		Reset(func() { viper.Set(key.IconsVariant, "") })

		Convey("The summary names the seeds and the file", func() {
			ocean, _ := theme.FindPreset("Ocean")
			p.Created(theme.Request{DisplayName: "My Theme", Seeds: ocean.Seeds, Style: theme.Neon}, ocean.Name, "theme.json")

			s := out.String()
			So(s, ShouldContainSubstring, "my-theme")
			So(s, ShouldContainSubstring, "Style: Neon")
			So(s, ShouldContainSubstring, "#0891b2")
			So(s, ShouldContainSubstring, "File: theme.json")
			So(s, ShouldContainSubstring, "* Colors: Ocean")
		})

		Convey("The preset listing covers presets, styles and animations", func() {
			p.Presets()
			s := out.String()
			So(s, ShouldContainSubstring, "Purple Dream")
			So(s, ShouldContainSubstring, "Transparent with blur effects")
			So(s, ShouldContainSubstring, "fractal")
		})

		Convey("The JSON listing decodes", func() {
			So(p.PresetsJSON(), ShouldBeNil)

			var decoded struct {
				Presets []theme.Preset `json:"presets"`
			}
			So(json.Unmarshal(out.Bytes(), &decoded), ShouldBeNil)
			So(decoded.Presets, ShouldHaveLength, 7)
			So(decoded.Presets[1].Seeds.Primary, ShouldEqual, "#0891b2")
		})

		Convey("Errors are capitalized and trimmed", func() {
			p.Error(errors.New("unknown preset \"xyz\"\n"))
			So(out.String(), ShouldContainSubstring, "Unknown preset \"xyz\"\n")
			So(out.String(), ShouldNotContainSubstring, "\"\n\n")
		})
	})
}
