package report

import (
	"encoding/json"
	"strings"

	"github.com/samber/lo"
	"github.com/themekit/themekit/icon"
	"github.com/themekit/themekit/style"
	"github.com/themekit/themekit/theme"
	"github.com/themekit/themekit/util"
)

// Created summarizes a freshly written theme and suggests what to do next.
func (p *Printer) Created(req theme.Request, preset, path string) {
	p.printf("\n%s %s\n\n", icon.Get(icon.Success), success("Theme created successfully!"))
	p.printf("%s\n", style.Bold("Theme Summary:"))
	p.printf("  Name: %s (%s)\n", req.DisplayName, theme.Slugify(req.DisplayName))
	p.printf("  Style: %s\n", req.Style)
	p.printf("  Loading animation: %s\n", or(req.LoadingAnimation, theme.DefaultLoadingAnimation))
	p.printf("  %s Colors: %s\n", icon.Get(icon.Palette), style.Faint(preset))

	for _, role := range []struct{ name, hex string }{
		{"Primary", req.Seeds.Primary},
		{"Secondary", req.Seeds.Secondary},
		{"Tertiary", req.Seeds.Tertiary},
		{"Accent", req.Seeds.Accent},
	} {
		p.printf("    %-10s %s\n", role.name, style.Swatch(role.hex))
	}

	p.printf("  File: %s\n\n", path)

	p.printf("%s\n", style.Bold("Next steps:"))
	p.printf("  1. Run \"themekit validate %s\" to validate your theme\n", path)
	p.printf("  2. Load the theme in your application\n")
	p.printf("  3. Test it in both light and dark modes\n")
}

// Presets lists the color presets, styles and loading animations.
func (p *Printer) Presets() {
	presets := theme.Presets()
	width := util.Max(lo.Map(presets, func(pr theme.Preset, _ int) int {
		return len(pr.Name)
	})...)

	p.printf("%s\n", style.Title("Color presets"))
	for _, pr := range presets {
		p.printf("  %-*s %s %s\n", width, pr.Name, style.Swatches(pr.Seeds.List()...), style.Faint(strings.Join(pr.Seeds.List(), " ")))
	}
	p.printf("  %-*s %s\n", width, theme.Custom, style.Faint("pick the four seed colors yourself"))

	p.printf("\n%s\n", style.Title("Styles"))
	styleWidth := util.Max(lo.Map(theme.StyleNames(), func(name string, _ int) int {
		return len(name)
	})...)
	for _, s := range theme.Styles() {
		p.printf("  %-*s %s\n", styleWidth, s, style.Faint(s.Description()))
	}

	p.printf("\n%s\n", style.Title("Loading animations"))
	p.printf("  %s\n", strings.Join(theme.LoadingAnimations, ", "))
}

// PresetsJSON writes the same listing as Presets in JSON.
func (p *Printer) PresetsJSON() error {
	type styleEntry struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")

	return enc.Encode(struct {
		Presets           []theme.Preset `json:"presets"`
		Styles            []styleEntry   `json:"styles"`
		LoadingAnimations []string       `json:"loadingAnimations"`
	}{
		Presets: theme.Presets(),
		Styles: lo.Map(theme.Styles(), func(s theme.Style, _ int) styleEntry {
			return styleEntry{Name: s.String(), Description: s.Description()}
		}),
		LoadingAnimations: theme.LoadingAnimations,
	})
}

// Error prints a failure the way every command reports it.
func (p *Printer) Error(err error) {
	p.printf("%s %s\n", icon.Get(icon.Fail), failure(util.Capitalize(strings.TrimSpace(err.Error()))))
}

